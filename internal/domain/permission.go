package domain

// Permission is a named capability record managed by administrators.
type Permission struct {
	ID          int64
	Name        string
	Description string
}
