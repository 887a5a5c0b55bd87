package main

import (
	"context"
	"os"
	"time"

	"github.com/lamontana/storefront/internal/core"
	"github.com/lamontana/storefront/internal/platform/config"
	"github.com/lamontana/storefront/internal/platform/logging"
	"github.com/lamontana/storefront/internal/store"
)

func main() {
	cfg := config.MustLoad()
	log := logging.New(cfg.Env, cfg.LogLevel)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	backend, err := store.Open(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open store", "db", cfg.DBType, "err", err)
		os.Exit(1)
	}
	defer backend.Close(context.Background())

	log.Info("seeding products", "db", backend.Name)
	failed := 0
	for _, p := range seedCatalog() {
		if err := backend.Products.UpsertByName(ctx, p); err != nil {
			log.Error("failed to seed product", "name", p.Name, "err", err)
			failed++
			continue
		}
		log.Info("seeded", "name", p.Name, "price", p.Price)
	}
	if failed > 0 {
		os.Exit(1)
	}
	log.Info("done seeding")
}

func seedCatalog() []core.Product {
	return []core.Product{
		{Name: "Impresión B/N", Description: "Cara simple · A4", Price: 100, Category: core.CategoryPrint, ImageRes: "sample_print_bw", CopyBased: true},
		{Name: "Impresión color", Description: "Doble cara · A4", Price: 200, Category: core.CategoryPrint, ImageRes: "sample_print_color", CopyBased: true},
		{Name: "Fotocopia B/N", Description: "Cara simple · A4 u oficio", Price: 80, Category: core.CategoryPrint, ImageRes: "sample_print_bw", CopyBased: true},
		{Name: "Anillado A4", Description: "Tapa plástica + contratapa", Price: 800, Category: core.CategoryBinding, ImageRes: "sample_binding"},
		{Name: "Encuadernado tapa blanda", Description: "Lomo encolado · hasta 300 hojas", Price: 1500, Category: core.CategoryBinding, ImageRes: "sample_binding"},
		{Name: "Encuadernado tapa dura", Description: "Tapa cartoné forrada", Price: 3500, Category: core.CategoryBinding, ImageRes: "sample_binding"},
	}
}
