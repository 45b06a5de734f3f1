package model

// PropertyType categorizes a listing. Filtering compares the stored
// value exactly, so the constants double as the accepted filter values.
type PropertyType string

const (
	TypeApartment  PropertyType = "APARTMENT"
	TypeVilla      PropertyType = "VILLA"
	TypeLand       PropertyType = "LAND"
	TypeCommercial PropertyType = "COMMERCIAL"
)

// PropertyStatus tracks where a listing stands commercially. A property
// is created AVAILABLE and its status is never transitioned afterwards;
// the other values only occur in seeded reference data.
type PropertyStatus string

const (
	StatusAvailable     PropertyStatus = "AVAILABLE"
	StatusReserved      PropertyStatus = "RESERVED"
	StatusUnderContract PropertyStatus = "UNDER_CONTRACT"
	StatusSold          PropertyStatus = "SOLD"
	StatusRented        PropertyStatus = "RENTED"
)

// PropertyImage is one image of a listing's ordered gallery.
type PropertyImage struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Order int    `json:"order"`
}

// Property is a real-estate listing as surfaced to browsing and search.
// Prices are integer minor-currency units (cents) to avoid floating
// point money. AgentName is a denormalized display string; there is no
// foreign key back to the user collection and none of the operations
// check referential integrity.
//
// Fields:
//  ID           – store-assigned identifier (e.g. "p_1712345678901234567").
//  Title        – listing headline.
//  Description  – free-form listing text.
//  PriceCents   – price in minor currency units.
//  Currency     – ISO 4217 code (e.g. "EUR").
//  Address      – street address.
//  City         – city name, searched by the query filter.
//  Country      – country name.
//  PropertyType – one of the PropertyType constants.
//  Status       – one of the PropertyStatus constants.
//  Bedrooms     – bedroom count (0 for commercial/land).
//  Bathrooms    – bathroom count.
//  AreaSqm      – floor or plot area in square meters.
//  Images       – ordered gallery.
//  AgentName    – display-only name of the listing agent.
type Property struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	PriceCents   int64           `json:"priceCents"`
	Currency     string          `json:"currency"`
	Address      string          `json:"address"`
	City         string          `json:"city"`
	Country      string          `json:"country"`
	PropertyType PropertyType    `json:"propertyType"`
	Status       PropertyStatus  `json:"status"`
	Bedrooms     int             `json:"bedrooms"`
	Bathrooms    int             `json:"bathrooms"`
	AreaSqm      int             `json:"areaSqm"`
	Images       []PropertyImage `json:"images"`
	AgentName    string          `json:"agentName"`
}
