package stage

import (
	"github.com/devkan/FirstAidVox/internal/triage"
	"github.com/devkan/FirstAidVox/internal/triage/marker"
)

var careKeywords = []string{
	"hospital", "emergency", "doctor", "medical help", "seek medical attention",
	"병원", "응급실", "의사", "의료진", "진료",
	"emergencia", "médico", "atención médica",
	"病院", "救急", "医者", "医療",
}

var urgencyKeywords = []string{
	"emergency", "urgent", "immediate", "serious",
	"응급", "긴급", "즉시", "심각",
	"emergencia", "urgente", "inmediato", "grave",
	"緊急", "急ぎ", "重篤",
}

// ShouldSearchFacilities reports whether a final reply should come with a facility lookup.
// Lookups never fire before the final stage or without a location.
func ShouldSearchFacilities(st triage.Stage, loc *triage.Location, text string) bool {
	if st != triage.StageFinal || loc == nil {
		return false
	}
	if _, ok := marker.FindAny(text, careKeywords); ok {
		return true
	}
	_, ok := marker.FindAny(text, urgencyKeywords)
	return ok
}

// LookupFor builds the facility lookup for loc with the default radius.
func LookupFor(loc triage.Location) triage.FacilityLookupRequest {
	return triage.FacilityLookupRequest{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		RadiusKM:  triage.DefaultFacilityRadiusKM,
	}
}
