package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Env       string
	Store     StoreConfig
	Receipts  ReceiptsConfig
	Inventory InventoryConfig
}

// StoreConfig resolves the backing text files. File names are fixed; only
// the data directory moves.
type StoreConfig struct {
	DataDir        string
	ProductsFile   string
	CustomersFile  string
	SuppliersFile  string
	SalesFile      string
	PurchasesFile  string
	CategoriesFile string
	UsersFile      string
}

type ReceiptsConfig struct {
	InvoicesDir string
	ReceiptsDir string
}

type InventoryConfig struct {
	LowStockThreshold int
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("POS_ENV", "development")
	viper.SetDefault("POS_DATA_DIR", "data")
	viper.SetDefault("POS_INVOICES_DIR", "Invoices")
	viper.SetDefault("POS_RECEIPTS_DIR", "InventoryReceipts")
	viper.SetDefault("POS_LOW_STOCK_THRESHOLD", 5)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	dataDir := viper.GetString("POS_DATA_DIR")
	return &Config{
		Env: viper.GetString("POS_ENV"),
		Store: StoreConfig{
			DataDir:        dataDir,
			ProductsFile:   filepath.Join(dataDir, "products.txt"),
			CustomersFile:  filepath.Join(dataDir, "customers.txt"),
			SuppliersFile:  filepath.Join(dataDir, "suppliers.txt"),
			SalesFile:      filepath.Join(dataDir, "sales.txt"),
			PurchasesFile:  filepath.Join(dataDir, "purchases.txt"),
			CategoriesFile: filepath.Join(dataDir, "categories.txt"),
			UsersFile:      filepath.Join(dataDir, "admins.txt"),
		},
		Receipts: ReceiptsConfig{
			InvoicesDir: viper.GetString("POS_INVOICES_DIR"),
			ReceiptsDir: viper.GetString("POS_RECEIPTS_DIR"),
		},
		Inventory: InventoryConfig{
			LowStockThreshold: viper.GetInt("POS_LOW_STOCK_THRESHOLD"),
		},
	}
}
