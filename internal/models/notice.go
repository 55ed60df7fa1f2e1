package models

import "time"

// Notice is one row of the notices table. ClassID is optional: a nil value
// means the notice is school-wide.
type Notice struct {
	ID        int64     `db:"id" json:"id"`
	ClassID   *int64    `db:"class_id" json:"class_id,omitempty"`
	Title     string    `db:"title" json:"title"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// NoticeDetail carries the left-joined class name for display; it stays nil
// for school-wide notices.
type NoticeDetail struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	ClassName *string   `db:"class_name" json:"class_name,omitempty"`
}

// RecentNotice is the trimmed shape used by the dashboard header dropdown.
type RecentNotice struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
