package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devkan/FirstAidVox/config"
	"github.com/devkan/FirstAidVox/internal/bootstrap"
	"github.com/devkan/FirstAidVox/internal/facility"
)

var (
	facilitiesLat    float64
	facilitiesLng    float64
	facilitiesRadius float64
)

func getFacilitiesCommand() *cobra.Command {
	facilitiesCmd := &cobra.Command{
		Use:   "facilities",
		Short: "List hospitals and pharmacies near a point",
		Long: `Searches Google Places for hospitals and pharmacies, nearest first.

Example:
  firstaidvox facilities --lat 37.7749 --lng -122.4194 --radius 5`,
		RunE: runFacilities,
	}

	facilitiesCmd.Flags().Float64Var(&facilitiesLat, "lat", 0, "Latitude (required)")
	facilitiesCmd.Flags().Float64Var(&facilitiesLng, "lng", 0, "Longitude (required)")
	facilitiesCmd.Flags().Float64Var(&facilitiesRadius, "radius", facility.DefaultRadiusKM, "Search radius in km")
	facilitiesCmd.MarkFlagRequired("lat")
	facilitiesCmd.MarkFlagRequired("lng")

	return facilitiesCmd
}

func runFacilities(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	uc := bootstrap.Facilities(cfg.Places, newLogger(false))
	if uc == nil {
		return errors.New("GOOGLE_MAPS_API_KEY is not configured")
	}

	out, err := uc.Search(cmd.Context(), facility.SearchInput{
		Latitude:  facilitiesLat,
		Longitude: facilitiesLng,
		RadiusKM:  facilitiesRadius,
	})
	if err != nil {
		return err
	}

	renderFacilities(cmd.OutOrStdout(), out.Facilities)
	return nil
}
