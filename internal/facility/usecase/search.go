package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/devkan/FirstAidVox/internal/facility"
	"github.com/devkan/FirstAidVox/internal/facility/repository"
)

// Search validates the input, queries every category concurrently and ranks the
// merged results by distance.
func (uc *implUseCase) Search(ctx context.Context, input facility.SearchInput) (facility.SearchOutput, error) {
	if !facility.ValidCoordinate(input.Latitude, input.Longitude) {
		return facility.SearchOutput{}, fmt.Errorf("%w: (%v, %v)", facility.ErrInvalidCoordinate, input.Latitude, input.Longitude)
	}
	if !(input.RadiusKM > 0 && input.RadiusKM <= facility.MaxRadiusKM) {
		return facility.SearchOutput{}, fmt.Errorf("%w: %v", facility.ErrInvalidRadius, input.RadiusKM)
	}

	uc.l.Infof(ctx, "facility.Search: center=(%.4f, %.4f) radius=%.1fkm", input.Latitude, input.Longitude, input.RadiusKM)

	perCategory := make([][]repository.Place, len(facility.Categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, category := range facility.Categories {
		g.Go(func() error {
			found, err := uc.places.Nearby(gctx, repository.NearbyOptions{
				Latitude:     input.Latitude,
				Longitude:    input.Longitude,
				RadiusMeters: int(input.RadiusKM * 1000),
				Category:     category,
			})
			if err != nil {
				return err
			}
			perCategory[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "facility.Search: places lookup failed: %v", err)
		return facility.SearchOutput{}, fmt.Errorf("%w: %v", facility.ErrUpstreamService, err)
	}

	facilities := make([]facility.Facility, 0)
	for i, found := range perCategory {
		for _, p := range found {
			f, err := toFacility(input, facility.Categories[i], p)
			if err != nil {
				uc.l.Warnf(ctx, "facility.Search: dropping entry %q: %v", p.Name, err)
				continue
			}
			facilities = append(facilities, f)
		}
	}

	sort.SliceStable(facilities, func(a, b int) bool {
		return facilities[a].DistanceKM < facilities[b].DistanceKM
	})
	if len(facilities) > facility.MaxResults {
		facilities = facilities[:facility.MaxResults]
	}
	for i := range facilities {
		facilities[i].DistanceKM = roundDistance(facilities[i].DistanceKM)
	}

	uc.l.Infof(ctx, "facility.Search: returning %d facilities", len(facilities))
	return facility.SearchOutput{Facilities: facilities}, nil
}

// toFacility defaults missing fields. Entries without a coordinate are rejected.
func toFacility(center facility.SearchInput, category facility.Category, p repository.Place) (facility.Facility, error) {
	if !p.HasCoordinate() || !facility.ValidCoordinate(*p.Latitude, *p.Longitude) {
		return facility.Facility{}, fmt.Errorf("%w: no usable coordinate", facility.ErrMalformedPlace)
	}
	lat, lng := *p.Latitude, *p.Longitude

	f := facility.Facility{
		Name:       p.Name,
		Address:    p.Address,
		PlaceID:    p.PlaceID,
		Category:   category,
		Latitude:   lat,
		Longitude:  lng,
		DistanceKM: facility.Distance(center.Latitude, center.Longitude, lat, lng),
	}
	if f.Name == "" {
		f.Name = facility.UnknownName
	}
	if f.Address == "" {
		f.Address = facility.UnknownAddress
	}
	if f.PlaceID == "" {
		f.PlaceID = syntheticPlaceID(f.Name, lat, lng)
	}
	if p.Rating != nil && *p.Rating >= 0 && *p.Rating <= 5 {
		rating := *p.Rating
		f.Rating = &rating
	}
	return f, nil
}

// syntheticPlaceID derives a stable id for entries the provider returned without one.
func syntheticPlaceID(name string, lat, lng float64) string {
	key := fmt.Sprintf("%s|%.6f|%.6f", name, lat, lng)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}

func roundDistance(km float64) float64 {
	return math.Round(km*100) / 100
}
