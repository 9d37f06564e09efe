package googleplaces_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devkan/FirstAidVox/internal/facility"
	"github.com/devkan/FirstAidVox/internal/facility/repository"
	"github.com/devkan/FirstAidVox/internal/facility/repository/googleplaces"
	pkgLog "github.com/devkan/FirstAidVox/pkg/log"
	"github.com/devkan/FirstAidVox/pkg/places"
)

func TestNearby(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("type") {
		case "hospital":
			w.Write([]byte(`{"status":"OK","results":[
				{"name":"General Hospital","vicinity":"1 Main St","place_id":"h1","rating":4.5,
				 "geometry":{"location":{"lat":37.78,"lng":-122.41}}},
				{"name":"No Geometry Clinic","place_id":"h2"}
			]}`))
		case "pharmacy":
			w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"bad key"}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer ts.Close()

	client, err := places.NewClient("key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo := googleplaces.New(client.WithBaseURL(ts.URL), pkgLog.NewNop())

	t.Run("maps provider fields", func(t *testing.T) {
		got, err := repo.Nearby(context.Background(), repository.NearbyOptions{
			Latitude: 37.77, Longitude: -122.42, RadiusMeters: 10000, Category: facility.CategoryHospital,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 places, got %d", len(got))
		}
		first := got[0]
		if first.Name != "General Hospital" || first.Address != "1 Main St" || first.PlaceID != "h1" {
			t.Errorf("unexpected place: %+v", first)
		}
		if !first.HasCoordinate() || *first.Latitude != 37.78 || *first.Longitude != -122.41 {
			t.Errorf("unexpected coordinate: %+v", first)
		}
		if first.Rating == nil || *first.Rating != 4.5 {
			t.Errorf("unexpected rating: %v", first.Rating)
		}
		if got[1].HasCoordinate() {
			t.Error("place without geometry must not have a coordinate")
		}
	})

	t.Run("provider error", func(t *testing.T) {
		_, err := repo.Nearby(context.Background(), repository.NearbyOptions{Category: facility.CategoryPharmacy, RadiusMeters: 1000})
		if err == nil {
			t.Fatal("expected error for REQUEST_DENIED")
		}
	})
}
