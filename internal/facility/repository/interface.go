package repository

import (
	"context"

	"github.com/devkan/FirstAidVox/internal/facility"
)

// PlacesRepository runs category radius searches against a places directory.
type PlacesRepository interface {
	Nearby(ctx context.Context, opt NearbyOptions) ([]Place, error)
}

// Place is a provider entry as returned; any field may be missing.
type Place struct {
	Name      string
	Address   string
	PlaceID   string
	Latitude  *float64
	Longitude *float64
	Rating    *float64
}

// HasCoordinate reports whether both coordinate parts are present.
func (p Place) HasCoordinate() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// NearbyOptions defines one category search.
type NearbyOptions struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	Category     facility.Category
}
