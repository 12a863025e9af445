package domain

// User is an operator account. The credential file stores the password in
// plaintext; that is the store's historical format and is kept as-is
// rather than silently migrated (see DESIGN.md).
type User struct {
	Username string
	Password string
}
