package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// PageSize is fixed by the upstream API contract.
const PageSize = 100

type Client struct {
	apiKey    string
	baseURL   string
	http      *http.Client
	pageDelay time.Duration
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:    apiKey,
		baseURL:   baseURL,
		http:      &http.Client{Timeout: 30 * time.Second},
		pageDelay: 200 * time.Millisecond,
	}
}

// SearchLeads walks the paginated search endpoint from offset 0 until the API
// returns an empty page. Any non-2xx response aborts the whole run with the
// status and body; there is no retry and no partial result.
func (c *Client) SearchLeads(ctx context.Context, params SearchParams) ([]Lead, error) {
	var all []Lead
	offset := 0

	for {
		page, err := c.fetchPage(ctx, params, offset)
		if err != nil {
			return nil, err
		}
		log.Printf("offset %d: %d leads", offset, len(page))
		if len(page) == 0 {
			return all, nil
		}

		all = append(all, page...)
		offset += PageSize

		// Fixed pause between pages to stay under the API rate limit.
		select {
		case <-time.After(c.pageDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (c *Client) fetchPage(ctx context.Context, params SearchParams, offset int) ([]Lead, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(PageSize))
	q.Set("offset", strconv.Itoa(offset))
	q.Set("start_date", params.StartDate)
	q.Set("end_date", params.EndDate)
	q.Set("date_range_type", params.DateRangeType)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("crm request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("crm search returned %d: %s", resp.StatusCode, string(body))
	}

	var page []Lead
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("crm response decode: %w", err)
	}
	return page, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Accept", "application/json")
}
