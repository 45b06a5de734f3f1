package model

// BookingStatus tracks the lifecycle of a booking request. Like
// properties, a booking is created PENDING and never transitioned;
// CONFIRMED and CANCELLED appear only in seeded data.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking is a tenant's request to view or reserve a property. It is
// independent of the property's own status; creating a booking does not
// move the listing out of AVAILABLE. PropertyName is denormalized at
// creation time so dashboards can render without a second lookup.
//
// Dates are calendar dates in "2006-01-02" form, kept as strings since
// no operation does date arithmetic on them. TotalPriceCents is a flat
// copy of whatever amount the caller quoted; it is not derived from the
// stay length.
type Booking struct {
	ID              string        `json:"id"`
	PropertyID      string        `json:"propertyId"`
	PropertyName    string        `json:"propertyName"`
	StartDate       string        `json:"startDate"`
	EndDate         string        `json:"endDate"`
	Status          BookingStatus `json:"status"`
	TotalPriceCents int64         `json:"totalPriceCents"`
}
