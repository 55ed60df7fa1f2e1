package models

import "time"

// Fee is one row of the fees table. StudentName is deliberately free text
// (no foreign key), and PaidDate stays nil for unpaid records.
type Fee struct {
	ID          int64      `db:"id" json:"id"`
	StudentName string     `db:"student_name" json:"student_name"`
	Amount      float64    `db:"amount" json:"amount"`
	PaidDate    *time.Time `db:"paid_date" json:"paid_date,omitempty"`
	Status      string     `db:"status" json:"status"`
}
