package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultAPIURL  = "https://newsapi.org/v2/everything"
	defaultTimeout = 10 * time.Second

	// DefaultCount is the article count used when the caller does not ask
	// for a specific number.
	DefaultCount = 5
)

// Client is the NewsAPI client.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new NewsAPI client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     defaultAPIURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Headlines fetches up to count recent articles about a topic and formats
// them as a numbered "title - source" summary.
func (c *Client) Headlines(ctx context.Context, topic string, count int) Result {
	if c.apiKey == "" {
		return Result{
			Success: false,
			Message: "News API key not configured. Please set NEWS_API_KEY environment variable.",
		}
	}
	if topic == "" {
		topic = "general"
	}
	if count <= 0 {
		count = DefaultCount
	}

	params := url.Values{}
	params.Set("q", topic)
	params.Set("apiKey", c.apiKey)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", fmt.Sprintf("%d", count))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return Result{Success: false, Message: fmt.Sprintf("Error getting news: %v", err)}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Result{Success: false, Message: fmt.Sprintf("Network error getting news: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{Success: false, Message: fmt.Sprintf("Could not get news for %s", topic)}
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Result{Success: false, Message: fmt.Sprintf("Error getting news: %v", err)}
	}

	if len(body.Articles) == 0 {
		return Result{Success: false, Message: fmt.Sprintf("No news articles found for %s", topic)}
	}

	articles := body.Articles
	if len(articles) > count {
		articles = articles[:count]
	}

	var summary strings.Builder
	summary.WriteString(fmt.Sprintf("Here are the latest %d news articles about %s:\n\n", len(articles), topic))
	for i, article := range articles {
		title := article.Title
		if title == "" {
			title = "No title"
		}
		source := article.Source.Name
		if source == "" {
			source = "Unknown source"
		}
		summary.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, title, source))
	}

	return Result{
		Success:  true,
		Message:  strings.TrimSpace(summary.String()),
		Articles: articles,
	}
}
