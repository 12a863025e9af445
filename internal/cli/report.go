package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reportTop int

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the summary report and exit",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().IntVar(&reportTop, "top", 10, "number of top-selling products to list")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.Logger.Sync()

	s := a.Reports.Summary()
	fmt.Printf("Total Products: %d\n", s.Products)
	fmt.Printf("Total Customers: %d\n", s.Customers)
	fmt.Printf("Total Suppliers: %d\n", s.Suppliers)
	fmt.Printf("Total Sales (grand): %.2f\n", s.SalesTotal)
	fmt.Printf("Total Purchases (grand): %.2f\n", s.PurchasesTotal)
	fmt.Printf("Low-stock Products (<=%d): %d\n", a.Config.Inventory.LowStockThreshold, s.LowStock)
	fmt.Printf("Total inventory value: %.2f\n", a.Reports.InventoryValue())

	top := a.Reports.TopSelling(reportTop)
	if len(top) > 0 {
		fmt.Println("\nQty | Product")
		for _, it := range top {
			fmt.Printf("%d | %s\n", it.Quantity, it.Name)
		}
	}
	return nil
}
