package models

// Class is one row of the classes table. ClassTeacher is stored as a plain
// name, not a reference into the teachers table.
type Class struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Room         string `db:"room" json:"room"`
	ClassTeacher string `db:"class_teacher" json:"class_teacher"`
}

// ClassOption is the id/name pair offered by form dropdowns.
type ClassOption struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
