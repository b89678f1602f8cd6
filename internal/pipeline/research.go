package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// PostingFetcher retrieves the visible text of a job posting page.
type PostingFetcher interface {
	Fetch(ctx context.Context, link string) (string, error)
}

const (
	maxPostingBytes     = 20_000
	defaultFetchTimeout = 15 * time.Second
)

// CollyFetcher scrapes posting text with a single-page collector. Fetching is
// best-effort; callers fall back to the raw link on error.
type CollyFetcher struct {
	UserAgent string
}

func NewCollyFetcher() *CollyFetcher {
	return &CollyFetcher{UserAgent: "Mozilla/5.0 (compatible; tailormake/1.0)"}
}

func (f *CollyFetcher) Fetch(ctx context.Context, link string) (string, error) {
	if strings.TrimSpace(link) == "" {
		return "", errors.New("empty link")
	}

	collector := colly.NewCollector(
		colly.UserAgent(f.UserAgent),
		colly.MaxDepth(1),
	)
	collector.SetRequestTimeout(fetchTimeout(ctx))
	collector.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
		}
	})

	var parts []string
	collector.OnHTML("h1, h2, h3, p, li", func(e *colly.HTMLElement) {
		text := strings.TrimSpace(e.Text)
		if text != "" {
			parts = append(parts, text)
		}
	})

	var visitErr error
	collector.OnError(func(_ *colly.Response, err error) {
		visitErr = err
	})

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := collector.Visit(link); err != nil {
		return "", err
	}
	collector.Wait()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if visitErr != nil {
		return "", visitErr
	}

	text := strings.Join(parts, "\n")
	if len(text) > maxPostingBytes {
		text = text[:maxPostingBytes]
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("no text extracted")
	}
	return text, nil
}

// fetchTimeout bounds the HTTP request by the context deadline when one is
// set, capped at the default.
func fetchTimeout(ctx context.Context) time.Duration {
	timeout := defaultFetchTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	return timeout
}

var _ PostingFetcher = (*CollyFetcher)(nil)
