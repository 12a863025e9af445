package shell

import (
	"fmt"
	"strings"

	"jbpos/internal/domain"
	"jbpos/internal/store"
)

func (s *shell) customersMenu() {
	options := []string{"Add Customer", "Edit Customer", "Delete Customer", "View Customers"}
	for {
		switch s.menu("CUSTOMERS", options) {
		case 1:
			name := s.prompt("Name (0 to back): ")
			if name == "0" {
				return
			}
			contact := s.prompt("Contact: ")
			c, err := s.app.Customers.Add(domain.Customer{Name: strings.TrimSpace(name), Contact: strings.TrimSpace(contact)})
			if err != nil && c == nil {
				s.reportError("add customer", err)
				continue
			}
			if err != nil {
				s.reportError("add customer", err)
			}
			fmt.Printf("Customer added: %d | %s\n", c.ID, c.Name)
		case 2:
			s.listCustomers()
			id, ok := s.promptInt("Customer ID (0 to back): ", true)
			if !ok {
				continue
			}
			c := s.app.Customers.ByID(id)
			if c == nil {
				fmt.Println("Not found.")
				continue
			}
			patch := store.PartyPatch{}
			if v := s.prompt(fmt.Sprintf("Name (%s): ", c.Name)); v != "" {
				patch.Name = &v
			}
			if v := s.prompt(fmt.Sprintf("Contact (%s): ", c.Contact)); v != "" {
				patch.Contact = &v
			}
			if _, err := s.app.Customers.Edit(id, patch); err != nil {
				s.reportError("edit customer", err)
				continue
			}
			fmt.Println("Updated.")
		case 3:
			s.listCustomers()
			id, ok := s.promptInt("Customer ID (0 to back): ", true)
			if !ok {
				continue
			}
			if err := s.app.Customers.Delete(id); err != nil {
				s.reportError("delete customer", err)
				continue
			}
			fmt.Println("Deleted.")
		case 4:
			s.listCustomers()
		default:
			return
		}
	}
}

func (s *shell) suppliersMenu() {
	options := []string{"Add Supplier", "Edit Supplier", "Delete Supplier", "View Suppliers"}
	for {
		switch s.menu("SUPPLIERS", options) {
		case 1:
			name := s.prompt("Name (0 to back): ")
			if name == "0" {
				return
			}
			contact := s.prompt("Contact: ")
			sup, err := s.app.Suppliers.Add(domain.Supplier{Name: strings.TrimSpace(name), Contact: strings.TrimSpace(contact)})
			if err != nil && sup == nil {
				s.reportError("add supplier", err)
				continue
			}
			if err != nil {
				s.reportError("add supplier", err)
			}
			fmt.Printf("Supplier added: %d | %s\n", sup.ID, sup.Name)
		case 2:
			s.listSuppliers()
			id, ok := s.promptInt("Supplier ID (0 to back): ", true)
			if !ok {
				continue
			}
			sup := s.app.Suppliers.ByID(id)
			if sup == nil {
				fmt.Println("Not found.")
				continue
			}
			patch := store.PartyPatch{}
			if v := s.prompt(fmt.Sprintf("Name (%s): ", sup.Name)); v != "" {
				patch.Name = &v
			}
			if v := s.prompt(fmt.Sprintf("Contact (%s): ", sup.Contact)); v != "" {
				patch.Contact = &v
			}
			if _, err := s.app.Suppliers.Edit(id, patch); err != nil {
				s.reportError("edit supplier", err)
				continue
			}
			fmt.Println("Updated.")
		case 3:
			s.listSuppliers()
			id, ok := s.promptInt("Supplier ID (0 to back): ", true)
			if !ok {
				continue
			}
			if err := s.app.Suppliers.Delete(id); err != nil {
				s.reportError("delete supplier", err)
				continue
			}
			fmt.Println("Deleted.")
		case 4:
			s.listSuppliers()
		default:
			return
		}
	}
}

func (s *shell) listCustomers() {
	customers := s.app.Customers.All()
	if len(customers) == 0 {
		fmt.Println("No customers.")
		return
	}
	fmt.Println("Id | Name | Contact")
	fmt.Println(strings.Repeat("-", 40))
	for _, c := range customers {
		fmt.Printf("%d | %s | %s\n", c.ID, c.Name, c.Contact)
	}
}

func (s *shell) listSuppliers() {
	suppliers := s.app.Suppliers.All()
	if len(suppliers) == 0 {
		fmt.Println("No suppliers.")
		return
	}
	fmt.Println("Id | Name | Contact")
	fmt.Println(strings.Repeat("-", 40))
	for _, sup := range suppliers {
		fmt.Printf("%d | %s | %s\n", sup.ID, sup.Name, sup.Contact)
	}
}
