// Package googleplaces implements the places repository on the Google Places Nearby Search API.
package googleplaces

import (
	"context"
	"fmt"

	"github.com/devkan/FirstAidVox/internal/facility/repository"
	pkgLog "github.com/devkan/FirstAidVox/pkg/log"
	"github.com/devkan/FirstAidVox/pkg/places"
)

type implRepository struct {
	client *places.Client
	l      pkgLog.Logger
}

// New creates a new Google Places repository.
func New(client *places.Client, l pkgLog.Logger) repository.PlacesRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

// Nearby returns the provider entries for one category.
func (r *implRepository) Nearby(ctx context.Context, opt repository.NearbyOptions) ([]repository.Place, error) {
	results, err := r.client.Nearby(ctx, places.NearbyRequest{
		Latitude:     opt.Latitude,
		Longitude:    opt.Longitude,
		RadiusMeters: opt.RadiusMeters,
		Type:         string(opt.Category),
	})
	if err != nil {
		r.l.Errorf(ctx, "googleplaces repository: %s search failed: %v", opt.Category, err)
		return nil, fmt.Errorf("failed to search %s: %w", opt.Category, err)
	}

	out := make([]repository.Place, 0, len(results))
	for _, p := range results {
		place := repository.Place{
			Name:    p.Name,
			Address: p.Vicinity,
			PlaceID: p.PlaceID,
			Rating:  p.Rating,
		}
		if p.Geometry != nil && p.Geometry.Location != nil {
			place.Latitude = p.Geometry.Location.Lat
			place.Longitude = p.Geometry.Location.Lng
		}
		out = append(out, place)
	}

	r.l.Debugf(ctx, "googleplaces repository: %d %s results", len(out), opt.Category)
	return out, nil
}
