package models

import "database/sql"

// Category is the row shape of the categories table.
type Category struct {
	ID   int64  `db:"id"`
	Type string `db:"type"`
}

// Question is the row shape of the questions table. Difficulty is nullable
// in older schemas.
type Question struct {
	ID         int64         `db:"id"`
	Question   string        `db:"question"`
	Answer     string        `db:"answer"`
	Category   int64         `db:"category"`
	Difficulty sql.NullInt64 `db:"difficulty"`
}
