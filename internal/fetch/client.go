// Package fetch retrieves AWS service authorization reference pages and the
// published table of contents.
//
// The client composes resty over a retryablehttp transport with a shared
// rate limiter, so a full catalog build survives the transient errors and
// throttling the documentation site produces under concurrent fetching.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/docwolf/actionmap/internal/scrape"
)

// Config holds fetcher tunables.
type Config struct {
	// BaseURL is the documentation root; pages live at
	// <BaseURL>/list_<pageID>.html.
	BaseURL string
	// TOCURL is the published table-of-contents JSON.
	TOCURL string

	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// RateLimit caps requests per second across all workers. Zero or
	// negative means unlimited.
	RateLimit float64
}

// Client fetches pages as parsed documents. It satisfies catalog.Source.
type Client struct {
	resty   *resty.Client
	limiter *rate.Limiter
	baseURL string
	tocURL  string
}

// New creates a fetch client.
func New(cfg Config) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryMax
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.Logger = nil

	restyClient := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryMax).
		SetRetryWaitTime(cfg.RetryWaitMin).
		SetRetryMaxWaitTime(cfg.RetryWaitMax).
		SetHeader("User-Agent", "actionmap/1.0").
		SetTransport(retryClient.HTTPClient.Transport)

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	return &Client{
		resty:   restyClient,
		limiter: limiter,
		baseURL: cfg.BaseURL,
		tocURL:  cfg.TOCURL,
	}
}

// PageURL returns the documentation URL for a page identifier.
func (c *Client) PageURL(pageID string) string {
	return fmt.Sprintf("%s/list_%s.html", c.baseURL, pageID)
}

// Document fetches one documentation page and parses it with charset
// detection.
func (c *Client) Document(ctx context.Context, pageID string) (*goquery.Document, error) {
	body, err := c.get(ctx, c.PageURL(pageID))
	if err != nil {
		return nil, err
	}
	doc, err := scrape.LoadDocument(body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageID, err)
	}
	return doc, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	resp, err := c.resty.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode())
	}
	return resp.Body(), nil
}
