package places

// NearbyRequest is a radius search around a center point.
type NearbyRequest struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	Type         string
}

// NearbyResponse is the Nearby Search response body.
type NearbyResponse struct {
	Results      []Place `json:"results"`
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

// Place is one Nearby Search result. Every field may be missing.
type Place struct {
	Name     string    `json:"name"`
	Vicinity string    `json:"vicinity"`
	PlaceID  string    `json:"place_id"`
	Rating   *float64  `json:"rating,omitempty"`
	Geometry *Geometry `json:"geometry,omitempty"`
}

// Geometry holds the place location.
type Geometry struct {
	Location *LatLng `json:"location,omitempty"`
}

// LatLng is a coordinate pair; pointers distinguish missing values from zero.
type LatLng struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}
