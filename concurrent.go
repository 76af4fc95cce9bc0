package songlink

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds the number of in-flight queries during a
// batch resolve.
const DefaultBatchConcurrency = 5

// BatchResult pairs one requested URL with its outcome
type BatchResult struct {
	URL      string
	Response *Response
	Err      error
}

// LinksByURLs resolves several URLs concurrently. Each URL is still its own
// API call with its own connection pick; individual failures land in the
// result slice without aborting the batch. Results keep input order.
func (c *Client) LinksByURLs(ctx context.Context, urls []string, opts ...QueryOption) []BatchResult {
	results := make([]BatchResult, len(urls))
	if len(urls) == 0 {
		return results
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultBatchConcurrency)

	var mu sync.Mutex
	for i, pageURL := range urls {
		i, pageURL := i, pageURL
		g.Go(func() error {
			resp, err := c.LinksByURL(ctx, pageURL, opts...)
			if err != nil {
				c.logger.Warn().
					Err(err).
					Str("url", pageURL).
					Msg("Failed to resolve links")
			}

			mu.Lock()
			results[i] = BatchResult{URL: pageURL, Response: resp, Err: err}
			mu.Unlock()

			// Don't stop on individual errors
			return nil
		})
	}
	_ = g.Wait()

	return results
}
