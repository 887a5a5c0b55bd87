package core

import (
	"context"
	"errors"
	"io"
	"time"
)

// PageCounter reports the number of pages in a paginated document.
type PageCounter interface {
	CountPages(ctx context.Context, doc io.ReadSeeker) (int, error)
}

var errNoCounter = errors.New("no page counter configured")

// countPages asks counter for the page count of doc, reporting 0 pages with
// the cause on any failure. It gives up after timeout (when > 0) or when ctx
// is done.
func countPages(ctx context.Context, counter PageCounter, doc io.ReadSeeker, timeout time.Duration) (int, error) {
	if counter == nil || doc == nil {
		return 0, errNoCounter
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		n   int
		err error
	}
	// Buffered so the counter goroutine can finish after we stop waiting.
	done := make(chan result, 1)
	go func() {
		n, err := counter.CountPages(ctx, doc)
		done <- result{n, err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return 0, r.err
		}
		return max(r.n, 0), nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}
