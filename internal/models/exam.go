package models

import "time"

// Exam is one row of the exams table.
type Exam struct {
	ID       int64     `db:"id" json:"id"`
	Name     string    `db:"name" json:"name"`
	ExamDate time.Time `db:"exam_date" json:"exam_date"`
	Remarks  string    `db:"remarks" json:"remarks"`
}
