package core

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// PrintJobInput is the raw print order form. PageCount is the text the user
// typed; Document, when set, overrides it with the document's page count.
type PrintJobInput struct {
	PageCount        string        `json:"page_count"`
	ColorMode        string        `json:"color_mode"`
	Duplex           bool          `json:"duplex"`
	RingBinding      bool          `json:"ring_binding"`
	SoftcoverBinding bool          `json:"softcover_binding"`
	Document         io.ReadSeeker `json:"-"`
}

// PrintQuote is a priced print job. DocumentUnreadable is set when a document
// was sent but its pages could not be counted, so the job is priced at 0 pages.
type PrintQuote struct {
	Job                PrintJob `json:"job"`
	Total              int      `json:"total"`
	PagesFromDocument  bool     `json:"pages_from_document"`
	DocumentUnreadable bool     `json:"document_unreadable,omitempty"`
}

// PricingService never fails on bad form input; only a finished ctx is
// reported.
type PricingService interface {
	Quote(ctx context.Context, in PrintJobInput) (PrintQuote, error)
}

type pricingService struct {
	counter      PageCounter
	countTimeout time.Duration
	log          *slog.Logger
}

func NewPricingService(counter PageCounter, countTimeout time.Duration, log *slog.Logger) PricingService {
	return &pricingService{
		counter:      counter,
		countTimeout: countTimeout,
		log:          log,
	}
}

func (s *pricingService) Quote(ctx context.Context, in PrintJobInput) (PrintQuote, error) {
	if err := ctx.Err(); err != nil {
		return PrintQuote{}, err
	}

	job := PrintJob{
		PageCount:        ParsePageCount(in.PageCount),
		ColorMode:        ParseColorMode(in.ColorMode),
		Duplex:           in.Duplex,
		RingBinding:      in.RingBinding,
		SoftcoverBinding: in.SoftcoverBinding,
	}

	var fromDoc, unreadable bool
	if in.Document != nil {
		pages, err := countPages(ctx, s.counter, in.Document, s.countTimeout)
		if err != nil {
			if s.log != nil {
				s.log.WarnContext(ctx, "page count unavailable, using 0", "err", err)
			}
			unreadable = true
		} else {
			fromDoc = true
		}
		job.PageCount = pages
	}

	return PrintQuote{
		Job:                job,
		Total:              job.Total(),
		PagesFromDocument:  fromDoc,
		DocumentUnreadable: unreadable,
	}, nil
}
