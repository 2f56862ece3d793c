package models

// User is a registered trader as returned by registration. Balance and the
// stock pointers live in the user's hash and are read field by field.
type User struct {
	ID       string
	Password string
}
