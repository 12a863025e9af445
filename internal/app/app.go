// Package app assembles the application state: configuration, logger,
// every store with its backing file, and the services built on top. The
// container makes the load-at-start / flush-at-mutation lifecycle
// explicit instead of leaning on package-level state.
package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"jbpos/internal/auth"
	"jbpos/internal/config"
	"jbpos/internal/domain"
	"jbpos/internal/pos"
	"jbpos/internal/store"
)

// App bundles the loaded stores and services for one interactive session.
type App struct {
	Config *config.Config
	Logger *zap.Logger

	Catalog    *store.Catalog
	Customers  *store.CustomerDirectory
	Suppliers  *store.SupplierDirectory
	Categories *store.CategoryRegistry
	Sales      *store.Ledger
	Purchases  *store.Ledger
	Users      *store.UserStore

	Auth      *auth.Service
	Receipts  *pos.FileReceipts
	Processor *pos.Processor
	Reports   *pos.Reporter
}

// New bootstraps the data directories, seeds defaults where backing files
// are absent, loads every store and wires the services.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if err := os.MkdirAll(cfg.Store.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	seedProducts := false
	if _, err := os.Stat(cfg.Store.ProductsFile); os.IsNotExist(err) {
		seedProducts = true
	}

	catalog, err := store.OpenCatalog(cfg.Store.ProductsFile, logger)
	if err != nil {
		return nil, err
	}
	if seedProducts {
		if err := seedCatalog(catalog); err != nil {
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
		logger.Info("Seeded sample products")
	}

	customers, err := store.OpenCustomerDirectory(cfg.Store.CustomersFile, logger)
	if err != nil {
		return nil, err
	}
	suppliers, err := store.OpenSupplierDirectory(cfg.Store.SuppliersFile, logger)
	if err != nil {
		return nil, err
	}
	categories, err := store.OpenCategoryRegistry(cfg.Store.CategoriesFile, logger)
	if err != nil {
		return nil, err
	}
	sales, err := store.OpenLedger(cfg.Store.SalesFile, domain.InvoiceSale, logger)
	if err != nil {
		return nil, err
	}
	purchases, err := store.OpenLedger(cfg.Store.PurchasesFile, domain.InvoicePurchase, logger)
	if err != nil {
		return nil, err
	}
	users, err := store.OpenUserStore(cfg.Store.UsersFile, logger)
	if err != nil {
		return nil, err
	}

	receipts, err := pos.NewFileReceipts(cfg.Receipts.InvoicesDir, cfg.Receipts.ReceiptsDir, catalog)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:     cfg,
		Logger:     logger,
		Catalog:    catalog,
		Customers:  customers,
		Suppliers:  suppliers,
		Categories: categories,
		Sales:      sales,
		Purchases:  purchases,
		Users:      users,
		Auth:       auth.NewService(users, logger),
		Receipts:   receipts,
		Processor:  pos.NewProcessor(catalog, sales, purchases, receipts, logger),
		Reports: pos.NewReporter(catalog, customers, suppliers, sales, purchases,
			cfg.Inventory.LowStockThreshold),
	}, nil
}

// seedCatalog writes the starter inventory used the first time the shop
// runs with no products file.
func seedCatalog(catalog *store.Catalog) error {
	samples := []domain.Product{
		{Name: "Air Runner", Brand: "Nike", Category: "Sneakers", Stock: 10, Price: 4999.50, Barcode: "BAR0001"},
		{Name: "Street Classic", Brand: "Adidas", Category: "Sneakers", Stock: 4, Price: 3999.00, Barcode: "BAR0002"},
		{Name: "Wrist Pro", Brand: "Casio", Category: "Watches", Stock: 6, Price: 2599.75, Barcode: "BAR0003"},
	}
	for _, p := range samples {
		if _, err := catalog.Add(p); err != nil {
			return err
		}
	}
	return nil
}
