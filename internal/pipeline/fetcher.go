package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/ppiankov/namescreen/internal/cache"
	"github.com/ppiankov/namescreen/internal/model"
	"github.com/ppiankov/namescreen/internal/util"
)

// Fetcher retrieves article text for URL-mode screening. Fetched pages are
// cached so repeated screenings of the same article hit the network once.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *util.RobotsChecker // nil = robots checking disabled
	store      cache.Cache         // nil = fetch caching disabled
	cacheTTL   time.Duration
}

// NewFetcher creates a fetcher from the HTTP configuration
func NewFetcher(cfg model.HTTPConfig, store cache.Cache, cacheTTL time.Duration) *Fetcher {
	var robots *util.RobotsChecker
	if cfg.RespectRobots {
		robots = util.NewRobotsChecker(cfg.UserAgent, cfg.Timeout)
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		robots:    robots,
		store:     store,
		cacheTTL:  cacheTTL,
	}
}

// FetchResult is the extracted article text plus provenance
type FetchResult struct {
	Text      string
	FinalURL  string
	FromCache bool
}

// Fetch retrieves the page at rawURL and reduces it to visible article text
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	key := cache.Key("fetch", rawURL)
	if f.store != nil {
		if data, ok := f.store.Get(key); ok {
			return &FetchResult{Text: string(data), FinalURL: rawURL, FromCache: true}, nil
		}
	}

	if f.robots != nil && !f.robots.IsAllowed(ctx, rawURL) {
		return nil, fmt.Errorf("fetch %s: disallowed by robots.txt", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	text := string(body)
	if isHTML(resp.Header.Get("Content-Type"), text) {
		text = visibleText(text)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("fetch %s: page contained no readable text", rawURL)
	}

	if f.store != nil {
		if err := f.store.Set(key, []byte(text), f.cacheTTL); err != nil {
			fmt.Printf("Warning: failed to cache fetched article: %v\n", err)
		}
	}

	return &FetchResult{Text: text, FinalURL: resp.Request.URL.String()}, nil
}

func isHTML(contentType, body string) bool {
	if strings.Contains(contentType, "html") {
		return true
	}
	head := strings.ToLower(body)
	if len(head) > 256 {
		head = head[:256]
	}
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html")
}

// visibleText strips markup and returns whitespace-normalized page text.
// Script, style and metadata subtrees are dropped entirely.
func visibleText(pageHTML string) string {
	doc, err := html.Parse(strings.NewReader(pageHTML))
	if err != nil {
		return pageHTML
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "head", "nav", "footer":
				return
			}
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(sb.String()), " ")
}
