package models

// AttendanceMonthly is one aggregated attendance bucket: all rows of a
// calendar month with how many of them count as present.
type AttendanceMonthly struct {
	Period       string `db:"period" json:"period"`
	PresentCount int    `db:"present_count" json:"present_count"`
	TotalCount   int    `db:"total_count" json:"total_count"`
}

// FeeMonthly is the summed paid amount for one calendar month.
type FeeMonthly struct {
	Period      string  `db:"period" json:"period"`
	TotalAmount float64 `db:"total_amount" json:"total_amount"`
}

// AttendanceChart is the wire shape of the attendance chart endpoint.
type AttendanceChart struct {
	Labels  []string  `json:"labels"`
	Percent []float64 `json:"percent"`
}

// FeesChart is the wire shape of the fees chart endpoint.
type FeesChart struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}
