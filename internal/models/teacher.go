package models

// Teacher is one row of the teachers table.
type Teacher struct {
	ID      int64  `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Subject string `db:"subject" json:"subject"`
	Phone   string `db:"phone" json:"phone"`
}
