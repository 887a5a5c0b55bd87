package pdf

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/lamontana/storefront/internal/pdf/pdftest"
)

func TestCountPages(t *testing.T) {
	c := NewCounter()
	for _, pages := range []int{1, 3, 10} {
		doc := bytes.NewReader(pdftest.Document(pages))
		n, err := c.CountPages(context.Background(), doc)
		if err != nil {
			t.Fatalf("%d pages: %v", pages, err)
		}
		if n != pages {
			t.Errorf("pages = %d, want %d", n, pages)
		}
	}
}

func TestCountPagesRewindsDocument(t *testing.T) {
	doc := bytes.NewReader(pdftest.Document(2))
	if _, err := doc.Seek(0, io.SeekEnd); err != nil {
		t.Fatal(err)
	}
	if n, err := NewCounter().CountPages(context.Background(), doc); err != nil || n != 2 {
		t.Errorf("got %d, %v; want 2 pages", n, err)
	}
}

func TestCountPagesRejectsNonPDF(t *testing.T) {
	c := NewCounter()
	n, err := c.CountPages(context.Background(), strings.NewReader("hello, not a pdf"))
	if err == nil {
		t.Fatal("expected error for non-pdf input")
	}
	if n != 0 {
		t.Errorf("pages = %d, want 0", n)
	}
}

func TestCountPagesHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewCounter().CountPages(ctx, strings.NewReader("%PDF-1.4")); err == nil {
		t.Fatal("expected context error")
	}
}
