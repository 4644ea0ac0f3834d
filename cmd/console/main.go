package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/humanbelnik/cinemind/core/internal/model"
	usecase_chat "github.com/humanbelnik/cinemind/core/internal/usecase/chat"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	scanner    *bufio.Scanner
	history    []model.ConversationTurn
}

func NewClient(baseURL string, scanner *bufio.Scanner) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		scanner:    scanner,
	}
}

func (c *Client) prompt(label string) string {
	fmt.Print(label)
	if !c.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(c.scanner.Text())
}

func (c *Client) post(path string, body any, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(data))
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// authenticate calls register or login and keeps the returned token.
func (c *Client) authenticate(path string) error {
	email := c.prompt("Email: ")
	password := c.prompt("Пароль: ")

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	if err := c.post(path, map[string]string{"email": email, "password": password}, &resp); err != nil {
		return err
	}
	c.token = resp.Token
	fmt.Printf("Вы вошли как %s\n", resp.User.Username)
	return nil
}

func (c *Client) wsURL() (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	scheme := "ws"
	if base.Scheme == "https" {
		scheme = "wss"
	}
	u := url.URL{Scheme: scheme, Host: base.Host, Path: base.Path + "/chat/ws"}
	return u.String(), nil
}

// Chat opens a websocket session. Every line is sent with the running
// history, "/exit" returns to the menu.
func (c *Client) Chat() error {
	addr, err := c.wsURL()
	if err != nil {
		return err
	}
	header := http.Header{}
	if c.token != "" {
		header.Set("Authorization", "Token "+c.token)
	}
	conn, _, err := websocket.DefaultDialer.Dial(addr, header)
	if err != nil {
		return fmt.Errorf("websocket connection failed: %w", err)
	}
	defer conn.Close()

	fmt.Println("Чат открыт. /exit для выхода")
	for {
		line := c.prompt("> ")
		if line == "/exit" {
			return nil
		}
		if line == "" {
			continue
		}

		if err := conn.WriteJSON(usecase_chat.Request{Message: line, History: c.history}); err != nil {
			return err
		}
		var resp usecase_chat.Response
		if err := conn.ReadJSON(&resp); err != nil {
			return err
		}
		if resp.Error != "" && resp.ResponseText == "" {
			fmt.Printf("Ошибка: %s\n", resp.Error)
			continue
		}

		fmt.Println(resp.ResponseText)
		summaries := make([]model.MovieSummary, 0, len(resp.Movies))
		for i, m := range resp.Movies {
			fmt.Printf("  %d. %s (id %d)\n", i+1, m.Title, m.ID)
			summaries = append(summaries, model.MovieSummary{ID: m.ID, Title: m.Title})
		}
		c.history = append(c.history,
			model.ConversationTurn{Role: model.RoleUser, Content: line},
			model.ConversationTurn{Role: model.RoleAssistant, Content: resp.ResponseText, Movies: summaries},
		)
		c.history = model.RecentTurns(c.history)
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080/api/v1", "API base URL")
	flag.Parse()

	scanner := bufio.NewScanner(os.Stdin)
	client := NewClient(*baseURL, scanner)

	for {
		fmt.Println("\n=== Cinemind Console Client ===")
		fmt.Println("1. Регистрация")
		fmt.Println("2. Вход")
		fmt.Println("3. Чат с ассистентом")
		fmt.Println("0. Выход")

		var err error
		switch client.prompt("Выберите действие: ") {
		case "1":
			err = client.authenticate("/auth/register")
		case "2":
			err = client.authenticate("/auth/login")
		case "3":
			err = client.Chat()
		case "0", "":
			fmt.Println("До свидания!")
			return
		default:
			fmt.Println("Неверный выбор")
		}
		if err != nil {
			fmt.Printf("Ошибка: %v\n", err)
		}
	}
}
