package domain

// Customer represents an entry in the customer directory
type Customer struct {
	ID      int
	Name    string `validate:"required"`
	Contact string
}

// Supplier represents an entry in the supplier directory
type Supplier struct {
	ID      int
	Name    string `validate:"required"`
	Contact string
}
