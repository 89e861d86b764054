package homeassistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"remi-card/internal/domain/model"
)

const languageCacheTTL = 30 * time.Second

type Client struct {
	url        string
	token      string
	httpClient *http.Client
	mu         sync.RWMutex

	cacheLanguage string
	cacheTime     time.Time
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Configure(url, token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.url = strings.TrimSuffix(url, "/")
	c.token = token
	c.cacheLanguage = ""
	c.cacheTime = time.Time{}
}

func (c *Client) IsConfigured() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.url != "" && c.token != ""
}

// GetLanguage returns the instance language from /api/config.
func (c *Client) GetLanguage(ctx context.Context) (string, error) {
	c.mu.RLock()
	if c.cacheLanguage != "" && time.Since(c.cacheTime) < languageCacheTTL {
		lang := c.cacheLanguage
		c.mu.RUnlock()
		return lang, nil
	}
	url := c.url
	token := c.token
	c.mu.RUnlock()

	if url == "" || token == "" {
		return "", fmt.Errorf("Home Assistant not configured")
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url+"/api/config", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HA API error: %d", resp.StatusCode)
	}

	var cfg struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		return "", err
	}
	if cfg.Language == "" {
		return "", fmt.Errorf("HA config has no language")
	}

	c.mu.Lock()
	c.cacheLanguage = cfg.Language
	c.cacheTime = time.Now()
	c.mu.Unlock()

	return cfg.Language, nil
}

// FireEvent posts data on the Home Assistant event bus.
func (c *Client) FireEvent(ctx context.Context, eventType string, data interface{}) error {
	c.mu.RLock()
	urlBase := c.url
	token := c.token
	c.mu.RUnlock()

	if urlBase == "" || token == "" {
		return fmt.Errorf("Home Assistant not configured")
	}
	if eventType == "" {
		return fmt.Errorf("no event type specified")
	}

	body, err := json.Marshal(data)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/events/%s", urlBase, eventType)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HA API error: %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) PublishConfigChanged(ctx context.Context, event model.ConfigChanged) error {
	return c.FireEvent(ctx, model.ConfigChangedEventType, event)
}
