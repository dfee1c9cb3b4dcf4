package entity

// Base holds the server-assigned primary key shared by every table.
type Base struct {
	ID int64 `db:"id"`
}
