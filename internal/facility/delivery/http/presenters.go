package http

import (
	"github.com/devkan/FirstAidVox/internal/facility"
)

// --- Request DTOs ---

type searchReq struct {
	Latitude  *float64 `form:"latitude"  binding:"required"`
	Longitude *float64 `form:"longitude" binding:"required"`
	RadiusKM  *float64 `form:"radius_km"`
}

func (r searchReq) toInput() facility.SearchInput {
	input := facility.SearchInput{
		Latitude:  *r.Latitude,
		Longitude: *r.Longitude,
		RadiusKM:  facility.DefaultRadiusKM,
	}
	if r.RadiusKM != nil {
		input.RadiusKM = *r.RadiusKM
	}
	return input
}

// --- Response DTOs ---

// FacilityResp is one nearby hospital or pharmacy.
type FacilityResp struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	DistanceKM float64  `json:"distance_km"`
	PlaceID    string   `json:"place_id"`
	Rating     *float64 `json:"rating"`
	Category   string   `json:"category"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
}

type searchResp struct {
	Facilities []FacilityResp `json:"facilities"`
	Count      int            `json:"count"`
}

// NewFacilityResps converts facilities for JSON output. It never returns nil.
func NewFacilityResps(in []facility.Facility) []FacilityResp {
	out := make([]FacilityResp, len(in))
	for i, f := range in {
		out[i] = FacilityResp{
			Name:       f.Name,
			Address:    f.Address,
			DistanceKM: f.DistanceKM,
			PlaceID:    f.PlaceID,
			Rating:     f.Rating,
			Category:   string(f.Category),
			Latitude:   f.Latitude,
			Longitude:  f.Longitude,
		}
	}
	return out
}

func (h *handler) newSearchResp(out facility.SearchOutput) searchResp {
	items := NewFacilityResps(out.Facilities)
	return searchResp{Facilities: items, Count: len(items)}
}
