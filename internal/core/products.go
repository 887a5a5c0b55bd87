package core

import (
	"context"
	"fmt"
	"strings"
)

type Category string

const (
	CategoryPrint   Category = "PRINT"
	CategoryBinding Category = "BINDING"
)

// ParseCategory accepts the two category names in any case.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToUpper(strings.TrimSpace(s))) {
	case CategoryPrint:
		return CategoryPrint, nil
	case CategoryBinding:
		return CategoryBinding, nil
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrValidation, s)
}

// CategoryFromKind maps the free-text "kind" stored with remote catalog
// records to a category. Anything that is not a binding service is a print.
func CategoryFromKind(kind string) Category {
	k := strings.ToLower(strings.TrimSpace(kind))
	if strings.Contains(k, "anill") || strings.Contains(k, "encuad") || strings.Contains(k, "tapa dura") {
		return CategoryBinding
	}
	return CategoryPrint
}

// Product is an immutable catalog entry. Name is the identity key.
type Product struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"` // whole currency units
	Category    Category `json:"category"`
	ImageRes    string   `json:"image_res,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	CopyBased   bool     `json:"copy_based"` // quantity comes from a document's page count
}

// NewProduct builds a validated product with trimmed name and description.
func NewProduct(name, desc string, price int, cat Category, imageRes, imageURL string, copyBased bool) (Product, error) {
	p := Product{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(desc),
		Price:       price,
		Category:    cat,
		ImageRes:    imageRes,
		ImageURL:    strings.TrimSpace(imageURL),
		CopyBased:   copyBased,
	}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if p.Category != CategoryPrint && p.Category != CategoryBinding {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, p.Category)
	}
	return nil
}

type ProductRepo interface {
	List(ctx context.Context) ([]Product, error)
	GetByName(ctx context.Context, name string) (Product, error)
	UpsertByName(ctx context.Context, p Product) error
}

// Error helpers pertaining to products.
var (
	ErrProductNotFound = fmt.Errorf("%w: product not found", ErrNotFound)
)
