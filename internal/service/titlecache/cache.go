// Package titlecache keeps movie id -> title resolutions for the lifetime of
// the process.
//
// Entries are only ever inserted, never replaced or evicted. Concurrent
// resolutions of the same id share a single upstream fetch.
package titlecache

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// FetchFunc loads a title from upstream. An empty title with a nil error
// means the movie has no title and is not cached.
type FetchFunc func(ctx context.Context, movieID int) (string, error)

type Cache struct {
	mu     sync.RWMutex
	titles map[int]string
	group  singleflight.Group
}

func New() *Cache {
	return &Cache{
		titles: make(map[int]string),
	}
}

func (c *Cache) Get(movieID int) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	title, ok := c.titles[movieID]
	return title, ok
}

// Put inserts title if movieID has no entry yet and returns the stored value.
func (c *Cache) Put(movieID int, title string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.titles[movieID]; ok {
		return existing
	}
	c.titles[movieID] = title
	return title
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.titles)
}

// Resolve returns the cached title or fetches it once. The shared fetch runs
// detached from any single caller's cancellation; a caller whose ctx ends
// stops waiting without failing the others.
func (c *Cache) Resolve(ctx context.Context, movieID int, fetch FetchFunc) (string, error) {
	if title, ok := c.Get(movieID); ok {
		return title, nil
	}

	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(strconv.Itoa(movieID), func() (any, error) {
		if title, ok := c.Get(movieID); ok {
			return title, nil
		}
		title, err := fetch(fetchCtx, movieID)
		if err != nil {
			return "", err
		}
		if title == "" {
			return "", nil
		}
		return c.Put(movieID, title), nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}
