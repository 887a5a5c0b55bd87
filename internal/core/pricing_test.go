package core

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestPrintJob_Total(t *testing.T) {
	tests := []struct {
		name string
		job  PrintJob
		want int
	}{
		{"nothing selected", PrintJob{}, 0},
		{"pages only", PrintJob{PageCount: 10}, 100},
		{"black and white duplex ring", PrintJob{PageCount: 10, ColorMode: ColorModeBlackAndWhite, Duplex: true, RingBinding: true}, 1550},
		{"color", PrintJob{PageCount: 3, ColorMode: ColorModeColor}, 3*10 + 3*120},
		{"softcover only", PrintJob{SoftcoverBinding: true}, 1500},
		{"both bindings", PrintJob{PageCount: 1, RingBinding: true, SoftcoverBinding: true}, 10 + 900 + 1500},
		{"negative pages ignored", PrintJob{PageCount: -5, ColorMode: ColorModeColor, Duplex: true, RingBinding: true}, 900},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.job.Total(); got != tt.want {
				t.Errorf("Total() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParsePageCount(t *testing.T) {
	tests := map[string]int{
		"":      0,
		"  12 ": 12,
		"abc":   0,
		"-3":    0,
		"7.5":   0,
	}
	for in, want := range tests {
		if got := ParsePageCount(in); got != want {
			t.Errorf("ParsePageCount(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseColorMode(t *testing.T) {
	tests := map[string]ColorMode{
		"BLACK_AND_WHITE": ColorModeBlackAndWhite,
		"bw":              ColorModeBlackAndWhite,
		" color ":         ColorModeColor,
		"":                ColorModeNone,
		"sepia":           ColorModeNone,
	}
	for in, want := range tests {
		if got := ParseColorMode(in); got != want {
			t.Errorf("ParseColorMode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPricingService_Quote(t *testing.T) {
	ctx := context.Background()

	t.Run("form values", func(t *testing.T) {
		svc := NewPricingService(nil, 0, nil)
		q, err := svc.Quote(ctx, PrintJobInput{PageCount: "10", ColorMode: "BLACK_AND_WHITE", Duplex: true, RingBinding: true})
		if err != nil {
			t.Fatalf("Quote: %v", err)
		}
		if q.Total != 1550 || q.PagesFromDocument {
			t.Errorf("got %+v", q)
		}
	})

	t.Run("garbage is zero", func(t *testing.T) {
		svc := NewPricingService(nil, 0, nil)
		q, err := svc.Quote(ctx, PrintJobInput{PageCount: "lots", ColorMode: "??"})
		if err != nil {
			t.Fatalf("Quote: %v", err)
		}
		if q.Total != 0 {
			t.Errorf("Total = %d, want 0", q.Total)
		}
	})

	t.Run("document overrides form page count", func(t *testing.T) {
		svc := NewPricingService(fixedCounter{pages: 4}, time.Second, nil)
		q, err := svc.Quote(ctx, PrintJobInput{PageCount: "100", ColorMode: "COLOR", Document: strings.NewReader("%PDF")})
		if err != nil {
			t.Fatalf("Quote: %v", err)
		}
		if q.Job.PageCount != 4 || !q.PagesFromDocument || q.DocumentUnreadable || q.Total != 4*130 {
			t.Errorf("got %+v", q)
		}
	})

	t.Run("counter failure counts zero pages", func(t *testing.T) {
		svc := NewPricingService(fixedCounter{err: errBoom}, time.Second, nil)
		q, err := svc.Quote(ctx, PrintJobInput{PageCount: "9", RingBinding: true, Document: strings.NewReader("x")})
		if err != nil {
			t.Fatalf("Quote: %v", err)
		}
		if q.Job.PageCount != 0 || q.Total != RingBindingPrice {
			t.Errorf("got %+v", q)
		}
		if q.PagesFromDocument || !q.DocumentUnreadable {
			t.Errorf("unreadable document reported as counted: %+v", q)
		}
	})

	t.Run("slow counter is abandoned", func(t *testing.T) {
		svc := NewPricingService(fixedCounter{pages: 5, delay: time.Second}, 20*time.Millisecond, nil)
		q, err := svc.Quote(ctx, PrintJobInput{Document: strings.NewReader("%PDF")})
		if err != nil {
			t.Fatalf("Quote: %v", err)
		}
		if q.Job.PageCount != 0 || q.PagesFromDocument || !q.DocumentUnreadable {
			t.Errorf("got %+v", q)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		svc := NewPricingService(nil, 0, nil)
		if _, err := svc.Quote(cctx, PrintJobInput{PageCount: "1"}); err == nil {
			t.Error("expected error for cancelled context")
		}
	})
}

func TestCountPages(t *testing.T) {
	ctx := context.Background()
	doc := strings.NewReader("%PDF")

	tests := []struct {
		name    string
		counter PageCounter
		timeout time.Duration
		want    int
		wantErr bool
	}{
		{"ok", fixedCounter{pages: 12}, time.Second, 12, false},
		{"no counter", nil, time.Second, 0, true},
		{"error", fixedCounter{pages: 3, err: errBoom}, time.Second, 0, true},
		{"negative", fixedCounter{pages: -2}, time.Second, 0, false},
		{"slow counter times out", fixedCounter{pages: 5, delay: time.Second}, 20 * time.Millisecond, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := countPages(ctx, tt.counter, doc, tt.timeout)
			if got != tt.want || (err != nil) != tt.wantErr {
				t.Errorf("countPages = %d, %v; want %d, err %v", got, err, tt.want, tt.wantErr)
			}
		})
	}

	if got, err := countPages(ctx, fixedCounter{pages: 1}, nil, 0); got != 0 || err == nil {
		t.Errorf("nil document gave %d pages, err %v", got, err)
	}
}
