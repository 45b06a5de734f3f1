package model

// RevenueData is one row of the dashboard revenue time series: a period
// label, revenue for the period and the number of bookings taken. The
// series is static reference data with no lifecycle; it is never
// persisted and never mutated.
type RevenueData struct {
	Name     string `json:"name"`
	Revenue  int64  `json:"revenue"`
	Bookings int    `json:"bookings"`
}
