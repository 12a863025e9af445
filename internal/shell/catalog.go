package shell

import (
	"errors"
	"fmt"
	"strings"

	"jbpos/internal/domain"
	"jbpos/internal/store"
)

func (s *shell) productsMenu() {
	options := []string{"Add Product", "Edit Product", "Delete Product", "View All Products", "Search / Scan"}
	for {
		switch s.menu("PRODUCTS", options) {
		case 1:
			s.addProduct()
		case 2:
			s.editProduct()
		case 3:
			s.deleteProduct()
		case 4:
			s.viewProducts()
		case 5:
			s.searchProducts()
		default:
			return
		}
	}
}

func (s *shell) addProduct() {
	fmt.Println("Enter 0 at any prompt to cancel.")
	name := s.prompt("Name: ")
	if name == "0" {
		return
	}
	brand := s.prompt("Brand: ")

	category, ok := s.pickCategory("", false)
	if !ok {
		return
	}

	stock, ok := s.promptInt("Stock: ", true)
	if !ok {
		return
	}
	price, ok := s.promptFloat("Price: ", true)
	if !ok {
		return
	}
	barcode := s.prompt("Barcode (leave blank to auto-generate): ")
	if barcode == "" {
		barcode = generateBarcode()
	}

	p, err := s.app.Catalog.Add(domain.Product{
		Name:     strings.TrimSpace(name),
		Brand:    strings.TrimSpace(brand),
		Category: category,
		Stock:    stock,
		Price:    price,
		Barcode:  strings.TrimSpace(barcode),
	})
	if err != nil && p == nil {
		if errors.Is(err, store.ErrBarcodeExists) {
			fmt.Println("Barcode already exists.")
		} else {
			s.reportError("add product", err)
		}
		return
	}
	if err != nil {
		s.reportError("add product", err)
	}
	if rerr := s.app.Receipts.ProductAdded(p, s.operator); rerr != nil {
		s.reportError("product receipt", rerr)
	}
	fmt.Printf("Product added: %d | %s\n", p.ID, p.Name)
}

func (s *shell) editProduct() {
	s.listProductsBrief()
	id, ok := s.promptInt("\nProduct ID to edit (0 to go back): ", true)
	if !ok {
		return
	}
	p := s.app.Catalog.ByID(id)
	if p == nil {
		fmt.Println("Not found.")
		return
	}
	old := *p

	patch := store.ProductPatch{}
	fmt.Println("Leave blank to keep current value.")
	if v := s.prompt(fmt.Sprintf("Name (%s): ", p.Name)); v != "" {
		patch.Name = &v
	}
	if v := s.prompt(fmt.Sprintf("Brand (%s): ", p.Brand)); v != "" {
		patch.Brand = &v
	}
	if cat, ok := s.pickCategory(p.Category, true); ok && cat != p.Category {
		patch.Category = &cat
	}
	if v := s.prompt(fmt.Sprintf("Price (%v): ", p.Price)); v != "" {
		if f, ok := parseFloat(v); ok {
			patch.Price = &f
		}
	}
	if v := s.prompt(fmt.Sprintf("Stock (%d): ", p.Stock)); v != "" {
		if n, ok := parseInt(v); ok {
			patch.Stock = &n
		}
	}
	if v := s.prompt(fmt.Sprintf("Barcode (%s): ", p.Barcode)); v != "" {
		patch.Barcode = &v
	}

	updated, err := s.app.Catalog.Edit(id, patch)
	if err != nil && updated == nil {
		s.reportError("edit product", err)
		return
	}
	if err != nil {
		s.reportError("edit product", err)
	}
	if rerr := s.app.Receipts.ProductEdited(&old, updated, s.operator); rerr != nil {
		s.reportError("product receipt", rerr)
	}
	fmt.Println("Product updated.")
}

func (s *shell) deleteProduct() {
	s.listProductsBrief()
	id, ok := s.promptInt("\nProduct ID to delete (0 to go back): ", true)
	if !ok {
		return
	}
	p := s.app.Catalog.ByID(id)
	if p == nil {
		fmt.Println("Not found.")
		return
	}
	if !strings.EqualFold(s.prompt(fmt.Sprintf("Delete %q? (y/n): ", p.Name)), "y") {
		fmt.Println("Cancelled.")
		return
	}
	snapshot := *p
	if err := s.app.Catalog.Delete(id); err != nil {
		s.reportError("delete product", err)
		return
	}
	if rerr := s.app.Receipts.ProductDeleted(&snapshot, s.operator); rerr != nil {
		s.reportError("product receipt", rerr)
	}
	fmt.Println("Deleted.")
}

func (s *shell) viewProducts() {
	products := s.app.Catalog.All()
	if len(products) == 0 {
		fmt.Println("No products available.")
		return
	}
	fmt.Println("Id | Name | Brand | Category | Stock | Price | Barcode")
	fmt.Println(strings.Repeat("-", 80))
	threshold := s.app.Config.Inventory.LowStockThreshold
	for _, p := range products {
		low := ""
		if p.Stock <= threshold {
			low = " <- LOW"
		}
		fmt.Printf("%d | %s | %s | %s | %d | %.2f | %s%s\n",
			p.ID, p.Name, p.Brand, p.Category, p.Stock, p.Price, p.Barcode, low)
	}
}

func (s *shell) searchProducts() {
	switch s.menu("PRODUCTS - SEARCH / SCAN", []string{"Search by name / brand", "Scan / enter barcode"}) {
	case 1:
		kw := s.prompt("Keyword (0 to back): ")
		if kw == "0" {
			return
		}
		results := s.app.Catalog.Search(kw)
		if len(results) == 0 {
			fmt.Println("No results.")
			return
		}
		for _, p := range results {
			fmt.Printf("%d | %s | %s | %s | %d | %.2f\n", p.ID, p.Name, p.Brand, p.Category, p.Stock, p.Price)
		}
	case 2:
		bc := s.prompt("Barcode (0 to back): ")
		if bc == "0" {
			return
		}
		p := s.app.Catalog.ByBarcode(bc)
		if p == nil {
			fmt.Println("Product not found for that barcode.")
			return
		}
		fmt.Printf("%d | %s | %s | %s | %d | %.2f\n", p.ID, p.Name, p.Brand, p.Category, p.Stock, p.Price)
	}
}

// pickCategory lists the registry plus an add-new entry. Returns
// (category, true) on a choice; with allowKeep the current category is the
// first option.
func (s *shell) pickCategory(current string, allowKeep bool) (string, bool) {
	for {
		names := s.app.Categories.Names()
		var options []string
		if allowKeep {
			options = append(options, "Keep current ("+current+")")
		}
		options = append(options, names...)
		options = append(options, "Add New Category")

		choice := s.menu("CHOOSE CATEGORY", options)
		if choice == 0 {
			return "", false
		}
		if allowKeep {
			if choice == 1 {
				return current, true
			}
			choice--
		}
		if choice <= len(names) {
			return names[choice-1], true
		}

		name := s.prompt("New category name (0 to cancel): ")
		if name == "0" || name == "" {
			continue
		}
		if err := s.app.Categories.Add(name); err != nil {
			if errors.Is(err, store.ErrCategoryExists) {
				fmt.Println("Category already exists.")
			} else {
				s.reportError("add category", err)
			}
			continue
		}
		fmt.Printf("Category %q added.\n", name)
		return strings.TrimSpace(name), true
	}
}

func (s *shell) listProductsBrief() {
	products := s.app.Catalog.All()
	if len(products) == 0 {
		fmt.Println("No products.")
		return
	}
	fmt.Println("Id | Name | Category | Stock")
	fmt.Println(strings.Repeat("-", 50))
	for _, p := range products {
		fmt.Printf("%d | %s | %s | %d\n", p.ID, p.Name, p.Category, p.Stock)
	}
}
