package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/lamontana/storefront/internal/core"
)

// CatalogRefreshWorker reloads the in-memory catalog so store edits reach
// customers without a restart.
type CatalogRefreshWorker struct {
	BaseWorker
	catalog core.CatalogService
}

func NewCatalogRefreshWorker(catalog core.CatalogService, interval time.Duration, log *slog.Logger) *CatalogRefreshWorker {
	return &CatalogRefreshWorker{
		BaseWorker: NewBaseWorker("catalog_refresh", interval, log),
		catalog:    catalog,
	}
}

func (w *CatalogRefreshWorker) Start(ctx context.Context) {
	w.Poll(ctx, w.refresh)
}

func (w *CatalogRefreshWorker) refresh(ctx context.Context) error {
	if err := w.catalog.Reload(ctx); err != nil {
		return err
	}
	products, err := w.catalog.List(ctx, nil)
	if err != nil {
		return err
	}
	w.log.Debug("catalog refreshed", "products", len(products))
	return nil
}
