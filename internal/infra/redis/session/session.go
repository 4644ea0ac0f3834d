package infra_session_cache

import (
	"errors"
	"time"

	"github.com/go-redis/redis"
)

// Driver maps session tokens to user ids. Keys live under "<namespace>:<token>"
// and expire with the session.
type Driver struct {
	client    *redis.Client
	namespace string
}

func New(
	client *redis.Client,
	namespace string,
) *Driver {
	return &Driver{
		client:    client,
		namespace: namespace,
	}
}

func (d *Driver) Set(token string, userID string, ttl time.Duration) error {
	return d.client.Set(d.key(token), userID, ttl).Err()
}

// Get returns an empty value for an unknown or expired token.
func (d *Driver) Get(token string) (string, error) {
	userID, err := d.client.Get(d.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return userID, err
}

func (d *Driver) Delete(token string) error {
	return d.client.Del(d.key(token)).Err()
}

func (d *Driver) key(token string) string {
	if d.namespace == "" {
		return token
	}
	return d.namespace + ":" + token
}
