package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/devkan/FirstAidVox/internal/facility"
	"github.com/devkan/FirstAidVox/internal/triage"
)

func renderReply(w io.Writer, out triage.RunOutput, detailed bool) {
	text := out.BriefText
	if detailed {
		text = out.DetailedText
	}
	fmt.Fprintf(w, "\n%s\n", strings.TrimSpace(text))
	fmt.Fprintf(w, "[stage: %s | language: %s]\n", out.Metadata.AssessmentStage, out.Metadata.DetectedLanguage)
}

func renderFacilities(w io.Writer, facilities []facility.Facility) {
	if len(facilities) == 0 {
		fmt.Fprintln(w, "No facilities found nearby.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCATEGORY\tDISTANCE\tRATING\tADDRESS")
	for _, f := range facilities {
		rating := "-"
		if f.Rating != nil {
			rating = fmt.Sprintf("%.1f", *f.Rating)
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f km\t%s\t%s\n", f.Name, f.Category, f.DistanceKM, rating, f.Address)
	}
	tw.Flush()
}
