package sheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"leadboard-engine/internal/sheetcsv"
)

// ErrNotCSV marks a 2xx response that turned out to be an HTML page (sign-in
// wall, quota error, deleted tab). Callers treat it as "no data".
var ErrNotCSV = errors.New("response is not CSV")

// Client fetches public CSV exports of a spreadsheet's tabs. Every fetch is
// fresh: no-cache headers plus a cache-buster param, because the write path
// depends on seeing the sheet as it is now, not as some proxy remembers it.
type Client struct {
	DocID   string
	BaseURL string // default https://docs.google.com, overridable for tests

	hc      *http.Client
	limiter *hostLimiter
	now     func() time.Time
}

func NewClient(docID string, reqPerSec float64, burst int) *Client {
	return &Client{
		DocID:   docID,
		BaseURL: "https://docs.google.com",
		hc:      &http.Client{Timeout: 30 * time.Second},
		limiter: newHostLimiter(reqPerSec, burst),
		now:     time.Now,
	}
}

// FetchTabByGID fetches one tab's CSV export addressed by gid.
func (c *Client) FetchTabByGID(ctx context.Context, gid int64) ([][]string, error) {
	u := fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv&gid=%d", c.BaseURL, c.DocID, gid)
	return c.fetch(ctx, u)
}

// FetchTabByName fetches one tab's CSV export addressed by tab name.
func (c *Client) FetchTabByName(ctx context.Context, name string) ([][]string, error) {
	u := fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?tqx=out:csv&sheet=%s",
		c.BaseURL, c.DocID, url.QueryEscape(name))
	return c.fetch(ctx, u)
}

func (c *Client) fetch(ctx context.Context, rawURL string) ([][]string, error) {
	if err := c.limiter.waitURL(ctx, rawURL); err != nil {
		return nil, err
	}

	// Cache-buster: some intermediaries ignore Cache-Control on GETs.
	sep := "&"
	if !strings.Contains(rawURL, "?") {
		sep = "?"
	}
	rawURL += fmt.Sprintf("%scb=%d", sep, c.now().UnixMilli())

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	req.Header.Set("User-Agent", "Leadboard/1.0 (+local)")
	req.Header.Set("Cache-Control", "no-cache")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheet fetch: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("sheet fetch status %d", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, 16<<20))
	if err != nil {
		return nil, fmt.Errorf("sheet read body: %w", err)
	}

	text := string(body)
	if looksLikeHTML(text) {
		if title := htmlTitle(text); title != "" {
			return nil, fmt.Errorf("%w (page: %q)", ErrNotCSV, title)
		}
		return nil, ErrNotCSV
	}
	return sheetcsv.Decode(text), nil
}

func looksLikeHTML(body string) bool {
	head := strings.ToLower(body)
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.Contains(head, "<!doctype html") || strings.Contains(head, "<html")
}

// htmlTitle pulls the <title> out of an HTML error page so the log line says
// what the export endpoint actually complained about.
func htmlTitle(body string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return ""
	}
	return Clean(doc.Find("title").First().Text())
}
