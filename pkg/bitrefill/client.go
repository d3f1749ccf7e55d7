// Package bitrefill is a small client for the Bitrefill v2 product API.
package bitrefill

import (
	"Giftspin/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	DefaultLimit = 50

	// maxBodyBytes 单次响应体上限
	maxBodyBytes = 4 << 20
)

// GamingCategories 首页展示的游戏卡分类
var GamingCategories = []string{"xbox", "playstation", "nintendo", "steam"}

var (
	ErrNotConfigured = errors.New("bitrefill api key not configured")
	ErrBodyTooLarge  = errors.New("bitrefill response body too large")
)

type Package struct {
	ID     string  `json:"id"`
	Value  string  `json:"value"`
	Price  float64 `json:"price"`
	Amount float64 `json:"amount"`
}

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CountryCode   string    `json:"country_code,omitempty"`
	CountryName   string    `json:"country_name,omitempty"`
	Currency      string    `json:"currency,omitempty"`
	Categories    []string  `json:"categories,omitempty"`
	CreatedTime   string    `json:"created_time,omitempty"`
	RecipientType string    `json:"recipient_type,omitempty"`
	Image         string    `json:"image,omitempty"`
	InStock       *bool     `json:"in_stock,omitempty"`
	Packages      []Package `json:"packages"`
}

type Meta struct {
	Start    int    `json:"start"`
	Limit    int    `json:"limit"`
	Endpoint string `json:"_endpoint"`
	Next     string `json:"_next,omitempty"`
}

type Response struct {
	Meta Meta      `json:"meta"`
	Data []Product `json:"data"`
}

// APIError 非 2xx 响应
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("bitrefill api error: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("bitrefill api error: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(conf *config.Bitrefill) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.BaseURL, "/"),
		apiKey:  conf.ApiKey,
		http:    &http.Client{Timeout: conf.Timeout},
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Search 按关键字搜索商品
func (c *Client) Search(ctx context.Context, query string, limit int) (*Response, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("start", "0")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("include_test_products", "false")
	return c.get(ctx, "/products/search?"+q.Encode())
}

func (c *Client) ByCategory(ctx context.Context, category string) (*Response, error) {
	return c.Search(ctx, category, DefaultLimit)
}

func (c *Client) get(ctx context.Context, endpoint string) (*Response, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bitrefill request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("bitrefill read body: %w", err)
	}
	if len(body) > maxBodyBytes {
		return nil, ErrBodyTooLarge
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(body)}
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("bitrefill decode: %w", err)
	}
	if out.Data == nil {
		out.Data = []Product{}
	}
	return &out, nil
}

// errorMessage 兼容几种错误体格式
func errorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, path := range []string{"message", "error.message", "error", "errors.0.message"} {
		if v := gjson.GetBytes(body, path); v.Exists() && v.Type == gjson.String {
			return v.String()
		}
	}
	return ""
}
