// Package shell is the interactive text interface. It renders menus and
// prompts on stdout and calls into the core; all business rules live in
// the stores and the transaction processor.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"jbpos/internal/app"
	"jbpos/internal/auth"
	"jbpos/internal/store"
)

type shell struct {
	app      *app.App
	in       *bufio.Reader
	operator string
}

// Run drives the login loop and the main menu until the operator exits.
func Run(a *app.App) error {
	s := &shell{app: a, in: bufio.NewReader(os.Stdin)}

	title("JB SNEAKERS & APPAREL")

	if !a.Auth.HasUsers() {
		fmt.Println("No admin found. Create the first admin account.")
		s.register()
	}

	for {
		switch s.menu("LOGIN / REGISTER", []string{"Login", "Register (create admin)", "Exit"}) {
		case 1:
			if user := s.login(); user != nil {
				s.operator = user.Username
				s.lowStockAlert()
				s.mainMenu()
				s.operator = ""
			}
		case 2:
			s.register()
		default:
			return nil
		}
	}
}

func (s *shell) mainMenu() {
	options := []string{"Products", "Customers", "Suppliers", "Sales", "Purchases", "Reports", "Low Stock", "Logout"}
	for {
		switch s.menu("MAIN MENU - "+s.operator, options) {
		case 1:
			s.productsMenu()
		case 2:
			s.customersMenu()
		case 3:
			s.suppliersMenu()
		case 4:
			s.salesMenu()
		case 5:
			s.purchasesMenu()
		case 6:
			s.reportsMenu()
		case 7:
			s.lowStockView()
		default:
			return
		}
	}
}

// --- auth ---

func (s *shell) login() *userRef {
	u := s.prompt("Username: ")
	p := s.readPassword("Password: ")
	user, err := s.app.Auth.Login(u, p)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			fmt.Println("Login failed.")
		} else {
			fmt.Println("Login error:", err)
		}
		return nil
	}
	fmt.Println("Login successful.")
	return &userRef{Username: user.Username}
}

type userRef struct{ Username string }

func (s *shell) register() {
	u := s.prompt("New username: ")
	p := s.readPassword("New password: ")
	if _, err := s.app.Auth.Register(u, p); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			fmt.Println("Username exists.")
		} else {
			s.reportError("register", err)
		}
		return
	}
	fmt.Println("Registered. You can now login.")
}

// --- prompts ---

func title(t string) {
	bar := strings.Repeat("=", len(t)+8)
	fmt.Printf("%s\n    %s\n%s\n", bar, t, bar)
}

// menu prints numbered options and returns the 1-based choice; 0 means
// back/exit (always the implicit last option).
func (s *shell) menu(heading string, options []string) int {
	for {
		fmt.Printf("\n-- %s --\n", heading)
		for i, opt := range options {
			fmt.Printf("%d) %s\n", i+1, opt)
		}
		fmt.Println("0) Back / Exit")
		raw := s.prompt("> ")
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > len(options) {
			fmt.Println("Invalid choice.")
			continue
		}
		return n
	}
}

func (s *shell) prompt(label string) string {
	fmt.Print(label)
	line, err := s.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

// promptInt keeps asking until it gets an integer; "0" returns ok=false
// when backAllowed.
func (s *shell) promptInt(label string, backAllowed bool) (int, bool) {
	for {
		raw := s.prompt(label)
		if backAllowed && raw == "0" {
			return 0, false
		}
		if n, err := strconv.Atoi(raw); err == nil {
			return n, true
		}
		fmt.Println("Invalid integer. Try again.")
	}
}

func (s *shell) promptFloat(label string, backAllowed bool) (float64, bool) {
	for {
		raw := s.prompt(label)
		if backAllowed && raw == "0" {
			return 0, false
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f, true
		}
		fmt.Println("Invalid number. Try again.")
	}
}

// readPassword masks input when stdin is a terminal and falls back to a
// plain read otherwise (pipes, tests).
func (s *shell) readPassword(label string) string {
	fmt.Print(label)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Println()
		if err == nil {
			return strings.TrimSpace(string(raw))
		}
	}
	line, _ := s.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// reportError prints a persistence failure as a warning (the in-memory
// change already applied) and anything else as a plain error.
func (s *shell) reportError(action string, err error) {
	var perr *store.PersistError
	if errors.As(err, &perr) {
		fmt.Println("Warning:", perr)
		s.app.Logger.Warn("Persistence failure", zap.String("action", action), zap.Error(perr))
		return
	}
	fmt.Println("Error:", err)
}

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, err == nil
}

func generateBarcode() string {
	return fmt.Sprintf("BAR%s%d", time.Now().Format("20060102150405"), 100+rand.Intn(900))
}
