package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/AndreWeigel/bestbuy2/internal/config"
	"github.com/AndreWeigel/bestbuy2/internal/domain"
	"github.com/AndreWeigel/bestbuy2/internal/logger"
	"github.com/AndreWeigel/bestbuy2/internal/menu"
	"github.com/AndreWeigel/bestbuy2/internal/seed"
	"github.com/AndreWeigel/bestbuy2/internal/service"
	"github.com/AndreWeigel/bestbuy2/internal/store"
)

func main() {
	envFile := pflag.String("env-file", "", "dotenv file to load before reading the environment")
	catalogFile := pflag.String("catalog", "", "YAML catalog to seed the store with (overrides CATALOG_FILE)")
	pflag.Parse()

	cfg := config.MustLoad(*envFile)
	if *catalogFile != "" {
		cfg.CatalogFile = *catalogFile
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	products, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		log.Fatal("failed to seed catalog", zap.String("catalog", cfg.CatalogFile), zap.Error(err))
	}

	catalog := store.New(products...)
	log.Info("store opened",
		zap.String("store", cfg.StoreName),
		zap.Int("products", len(products)),
		zap.Int("total_quantity", catalog.TotalQuantity()))

	checkout := service.NewCheckoutService(catalog, log)

	if err := menu.New(cfg.StoreName, catalog, checkout, os.Stdin, os.Stdout).Run(); err != nil {
		log.Fatal("failed to read input", zap.Error(err))
	}
	log.Info("store closed", zap.Int("total_quantity", catalog.TotalQuantity()))
}

func loadCatalog(path string) ([]*domain.Product, error) {
	if path == "" {
		return seed.Default()
	}
	return seed.Load(path)
}
