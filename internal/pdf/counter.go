// Package pdf counts pages of uploaded print documents.
package pdf

import (
	"context"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Counter reads page counts with pdfcpu in relaxed validation mode, since
// customer files are often slightly malformed.
type Counter struct {
	conf *model.Configuration
}

func NewCounter() *Counter {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Counter{conf: conf}
}

// CountPages does not observe ctx once parsing starts; callers bound it with
// a timeout of their own.
func (c *Counter) CountPages(ctx context.Context, doc io.ReadSeeker) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if _, err := doc.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("rewind document: %w", err)
	}
	n, err := api.PageCount(doc, c.conf)
	if err != nil {
		return 0, fmt.Errorf("count pdf pages: %w", err)
	}
	return n, nil
}
