package models

import "time"

// Attendance is one row of the attendance table. Status is free text;
// anything spelled "present" (any casing) counts as present in charts.
type Attendance struct {
	ID        int64     `db:"id" json:"id"`
	StudentID int64     `db:"student_id" json:"student_id"`
	ClassID   int64     `db:"class_id" json:"class_id"`
	Date      time.Time `db:"date" json:"date"`
	Status    string    `db:"status" json:"status"`
}

// AttendanceDetail joins student and class names for display.
type AttendanceDetail struct {
	ID          int64     `db:"id" json:"id"`
	Date        time.Time `db:"date" json:"date"`
	Status      string    `db:"status" json:"status"`
	StudentName string    `db:"student_name" json:"student_name"`
	ClassName   string    `db:"class_name" json:"class_name"`
}

// StudentOption is the id/name pair offered by form dropdowns.
type StudentOption struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
