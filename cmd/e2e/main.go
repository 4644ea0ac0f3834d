package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

func baseURL() string {
	if url := os.Getenv("E2E_BASE_URL"); url != "" {
		return url
	}
	if os.Getenv("ENV") == "CI" {
		return "http://core-app:8080/api/v1"
	}
	return "http://localhost:8080/api/v1"
}

const smokeMovieID = 550

type session struct {
	client *http.Client
	token  string
}

func main() {
	fmt.Println("Starting E2E smoke run for Cinemind API...")

	s := &session{client: &http.Client{Timeout: 30 * time.Second}}
	if !s.waitForService() {
		os.Exit(1)
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"register", s.register},
		{"profile", s.profile},
		{"rate movie", s.rate},
		{"save movie", s.save},
		{"list saved", s.listSaved},
		{"chat", s.chat},
	}
	for i, step := range steps {
		fmt.Printf("\n Step %d: %s...\n", i+1, step.name)
		if err := step.run(); err != nil {
			fmt.Printf("%s failed: %v\n", step.name, err)
			os.Exit(1)
		}
	}

	fmt.Println("\n All E2E checks passed!")
}

func (s *session) waitForService() bool {
	fmt.Println(" Waiting for service to be ready...")

	const maxRetries = 5
	for i := 0; i < maxRetries; i++ {
		resp, err := s.client.Get(baseURL() + "/search/trending")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				fmt.Println(" Service is ready!")
				return true
			}
		}
		if i < maxRetries-1 {
			fmt.Printf(" Service not ready yet (attempt %d/%d)...\n", i+1, maxRetries)
			time.Sleep(2 * time.Second)
		}
	}

	fmt.Println(" Service didn't start in time")
	return false
}

// do sends body as JSON and decodes the reply into out when the status matches.
func (s *session) do(method, path string, body any, expect int, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, baseURL()+path, payload)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Token "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != expect {
		return fmt.Errorf("%s %s returned status %d: %s", method, path, resp.StatusCode, string(raw))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (s *session) register() error {
	var resp struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	email := fmt.Sprintf("smoke-%s@cinemind.test", uuid.NewString()[:8])
	if err := s.do(http.MethodPost, "/auth/register", map[string]string{
		"email":    email,
		"password": "smoke-password",
	}, http.StatusCreated, &resp); err != nil {
		return err
	}
	if resp.Token == "" {
		return fmt.Errorf("token not found in register response")
	}
	s.token = resp.Token
	fmt.Printf(" Registered %s as %s\n", email, resp.User.Username)
	return nil
}

func (s *session) profile() error {
	return s.do(http.MethodGet, "/auth/profile", nil, http.StatusOK, nil)
}

func (s *session) rate() error {
	path := fmt.Sprintf("/users/movies/%d/rate", smokeMovieID)
	return s.do(http.MethodPost, path, map[string]float64{"rating": 4.5}, http.StatusOK, nil)
}

func (s *session) save() error {
	var resp struct {
		IsSaved bool `json:"is_saved"`
	}
	path := fmt.Sprintf("/users/movies/%d/save", smokeMovieID)
	if err := s.do(http.MethodPost, path, nil, http.StatusOK, &resp); err != nil {
		return err
	}
	if !resp.IsSaved {
		return fmt.Errorf("movie %d is not saved after toggle", smokeMovieID)
	}
	return nil
}

func (s *session) listSaved() error {
	var resp struct {
		MovieIDs []int `json:"movie_ids"`
		Total    int   `json:"total"`
	}
	if err := s.do(http.MethodGet, "/users/movies/saved", nil, http.StatusOK, &resp); err != nil {
		return err
	}
	fmt.Printf(" Retrieved %d saved movies\n", resp.Total)
	return nil
}

func (s *session) chat() error {
	var resp struct {
		ResponseText string `json:"response_text"`
		Movies       []struct {
			Title string `json:"title"`
		} `json:"movies"`
	}
	if err := s.do(http.MethodPost, "/chat", map[string]string{
		"message": "Recommend a movie like Fight Club",
	}, http.StatusOK, &resp); err != nil {
		return err
	}
	fmt.Printf(" Assistant replied with %d movies\n", len(resp.Movies))
	return nil
}
