package facility

// Category is a kind of care facility.
type Category string

const (
	CategoryHospital Category = "hospital"
	CategoryPharmacy Category = "pharmacy"
)

// Categories are queried in this order; ties in distance keep it.
var Categories = []Category{CategoryHospital, CategoryPharmacy}

const (
	DefaultRadiusKM = 10.0
	MaxRadiusKM     = 50.0
	MaxResults      = 10

	UnknownName    = "Unknown"
	UnknownAddress = "Address not available"

	earthRadiusKM = 6371.0
)

// Facility is one nearby care facility.
type Facility struct {
	Name       string
	Address    string
	DistanceKM float64
	PlaceID    string
	Rating     *float64
	Category   Category
	Latitude   float64
	Longitude  float64
}

// SearchInput is a radius search around a center point. RadiusKM must lie in (0, MaxRadiusKM];
// callers that have no preference pass DefaultRadiusKM.
type SearchInput struct {
	Latitude  float64
	Longitude float64
	RadiusKM  float64
}

// SearchOutput holds facilities sorted by distance, nearest first.
type SearchOutput struct {
	Facilities []Facility
}
