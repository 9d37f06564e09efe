// Package stage reconstructs the assessment stage of a dialogue from its length
// and from markers in the latest reply, and decides when a facility lookup fires.
package stage

import (
	"github.com/devkan/FirstAidVox/internal/triage"
	"github.com/devkan/FirstAidVox/internal/triage/marker"
)

const (
	finalTurnCount         = 4
	clarificationTurnCount = 2
)

// diagnosisMarkers signal a final answer once the dialogue has at least
// clarificationTurnCount turns.
var diagnosisMarkers = []string{
	"**diagnosis**:", "diagnosis:", "**진단**:", "진단:",
	"**immediate care**:", "immediate care:", "즉시 관리:",
	"**hospital**:", "hospital:", "**병원**:", "병원:",
	"**pharmacy**:", "pharmacy:", "**약국**:", "약국:",
	"**emergency**:", "emergency:", "**응급**:", "응급상황:",
	"final diagnosis", "assessment complete", "최종 진단", "상담 완료",
	"upper respiratory", "common cold", "flu", "infection",
	"감기", "상기도 감염", "독감", "바이러스",
}

// Classify returns the stage of raw, given the history before raw is appended.
func Classify(history []triage.Turn, raw string) triage.Stage {
	n := len(history)

	if marker.HasCompletion(raw) {
		return triage.StageFinal
	}
	if n >= clarificationTurnCount {
		if _, ok := marker.FindAny(raw, diagnosisMarkers); ok {
			return triage.StageFinal
		}
	}

	switch {
	case n >= finalTurnCount:
		return triage.StageFinal
	case n < clarificationTurnCount:
		return triage.StageInitial
	default:
		return triage.StageClarification
	}
}
