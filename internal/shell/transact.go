package shell

import (
	"errors"
	"fmt"
	"strings"

	"jbpos/internal/pos"
	"jbpos/internal/store"
)

func (s *shell) salesMenu() {
	for {
		switch s.menu("SALES", []string{"New Sale / Checkout", "View Sales History"}) {
		case 1:
			s.newSale()
		case 2:
			s.ledgerHistory("SALES HISTORY", s.app.Sales)
		default:
			return
		}
	}
}

func (s *shell) purchasesMenu() {
	for {
		switch s.menu("PURCHASES", []string{"New Purchase (stock in)", "View Purchase History"}) {
		case 1:
			s.newPurchase()
		case 2:
			s.ledgerHistory("PURCHASE HISTORY", s.app.Purchases)
		default:
			return
		}
	}
}

func (s *shell) newSale() {
	name := s.partyName("Customer", s.listCustomers, func(id int) string {
		if c := s.app.Customers.ByID(id); c != nil {
			return c.Name
		}
		return ""
	})
	if name == "" {
		name = "Walk-in"
	}
	session := s.app.Processor.NewSale(name)
	if s.buildSession(session, "Sale") {
		s.lowStockAlert()
	}
}

func (s *shell) newPurchase() {
	name := s.partyName("Supplier", s.listSuppliers, func(id int) string {
		if sup := s.app.Suppliers.ByID(id); sup != nil {
			return sup.Name
		}
		return ""
	})
	if name == "" {
		name = "Unknown Supplier"
	}
	session := s.app.Processor.NewPurchase(name)
	s.buildSession(session, "Purchase")
}

// partyName asks for a name directly or lets the operator pick one from
// the directory with "list".
func (s *shell) partyName(label string, list func(), nameByID func(int) string) string {
	fmt.Printf("Enter %s name, 'list' to choose an existing one, or leave blank:\n", strings.ToLower(label))
	input := s.prompt(label + ": ")
	if strings.EqualFold(input, "list") {
		list()
		id, ok := s.promptInt("ID (0 to cancel): ", true)
		if !ok {
			return ""
		}
		input = nameByID(id)
	}
	return strings.TrimSpace(input)
}

// buildSession runs the add-item loop until done/cancel and reports the
// commit outcome. Returns true when the session committed.
func (s *shell) buildSession(session *pos.Session, label string) bool {
	fmt.Printf("Building %s for: %s\n", strings.ToLower(label), session.Party())
	for {
		fmt.Println("Enter product ID or barcode ('list' to show products, 'done' to finish, 'cancel' to abort):")
		cmd := s.prompt("> ")
		switch {
		case cmd == "":
			continue
		case strings.EqualFold(cmd, "cancel"):
			session.Cancel()
			fmt.Printf("%s canceled.\n", label)
			return false
		case strings.EqualFold(cmd, "list"):
			s.listProductsBrief()
			continue
		case strings.EqualFold(cmd, "done"):
			inv, err := session.Commit(s.operator)
			if errors.Is(err, pos.ErrEmptySession) {
				fmt.Printf("No items added. %s canceled.\n", label)
				return false
			}
			if err != nil {
				s.reportError("commit "+strings.ToLower(label), err)
			}
			if inv == nil {
				return false
			}
			fmt.Printf("%s saved. Invoice #%d Total: %.2f\n", label, inv.ID, inv.GrandTotal())
			return true
		}

		p := session.Resolve(cmd)
		if p == nil {
			fmt.Println("Product not found.")
			continue
		}
		fmt.Printf("%d | %s | Price: %.2f | Stock: %d\n", p.ID, p.Name, p.Price, p.Stock)
		qty, ok := s.promptInt("Quantity (0 to cancel item): ", true)
		if !ok {
			continue
		}
		if _, err := session.AddItem(cmd, qty); err != nil {
			switch {
			case errors.Is(err, pos.ErrInsufficientStock):
				fmt.Println("Not enough stock.")
			case errors.Is(err, pos.ErrInvalidQuantity):
				fmt.Println("Invalid quantity.")
			case errors.Is(err, store.ErrProductNotFound):
				fmt.Println("Product not found.")
			default:
				s.reportError("add item", err)
			}
			continue
		}
		fmt.Println("Item added.")
	}
}

func (s *shell) ledgerHistory(heading string, ledger *store.Ledger) {
	invoices := ledger.All()
	if len(invoices) == 0 {
		fmt.Println("Nothing recorded.")
		return
	}
	fmt.Printf("-- %s --\n", heading)
	for i := len(invoices) - 1; i >= 0; i-- {
		inv := invoices[i]
		fmt.Printf("Invoice #%d | %s | %s | Total: %.2f\n",
			inv.ID, inv.Date.Format("2006-01-02 15:04:05"), inv.Party, inv.GrandTotal())
		for _, it := range inv.Items {
			fmt.Printf("   - %s x%d @ %.2f = %.2f\n", it.ProductName, it.Quantity, it.UnitPrice, it.Total())
		}
		fmt.Println(strings.Repeat("-", 60))
	}
}

func (s *shell) reportsMenu() {
	for {
		switch s.menu("REPORTS", []string{"Summary (totals)", "Top selling items", "Inventory value"}) {
		case 1:
			sum := s.app.Reports.Summary()
			fmt.Printf("Total Products: %d\n", sum.Products)
			fmt.Printf("Total Customers: %d\n", sum.Customers)
			fmt.Printf("Total Suppliers: %d\n", sum.Suppliers)
			fmt.Printf("Total Sales (grand): %.2f\n", sum.SalesTotal)
			fmt.Printf("Total Purchases (grand): %.2f\n", sum.PurchasesTotal)
			fmt.Printf("Low-stock Products (<=%d): %d\n", s.app.Config.Inventory.LowStockThreshold, sum.LowStock)
		case 2:
			top := s.app.Reports.TopSelling(10)
			if len(top) == 0 {
				fmt.Println("No sales data yet.")
				continue
			}
			fmt.Println("Qty | Product")
			for _, it := range top {
				fmt.Printf("%d | %s\n", it.Quantity, it.Name)
			}
		case 3:
			fmt.Printf("Total inventory value: %.2f\n", s.app.Reports.InventoryValue())
		default:
			return
		}
	}
}

func (s *shell) lowStockView() {
	low := s.app.Catalog.LowStock(s.app.Config.Inventory.LowStockThreshold)
	if len(low) == 0 {
		fmt.Println("No low stock products.")
		return
	}
	for _, p := range low {
		fmt.Printf("%d | %s | %s | %d pcs\n", p.ID, p.Name, p.Brand, p.Stock)
	}
}

func (s *shell) lowStockAlert() {
	low := s.app.Catalog.LowStock(s.app.Config.Inventory.LowStockThreshold)
	if len(low) == 0 {
		return
	}
	fmt.Println("\nLOW STOCK ALERT")
	for _, p := range low {
		fmt.Printf("- %s (%d pcs left)\n", p.Name, p.Stock)
	}
}
