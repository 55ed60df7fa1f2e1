package models

// Student is one row of the students table. StudentClass is a free-text
// class label, unrelated to the classes table.
type Student struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	StudentClass string `db:"student_class" json:"student_class"`
	Age          int    `db:"age" json:"age"`
}
