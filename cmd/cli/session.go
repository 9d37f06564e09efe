package main

import (
	"context"
	"fmt"

	"github.com/devkan/FirstAidVox/internal/facility"
	"github.com/devkan/FirstAidVox/internal/triage"
)

// session keeps the caller-owned history of one terminal conversation.
type session struct {
	uc         triage.UseCase
	facilities facility.UseCase
	location   *triage.Location
	history    []triage.Turn
}

type turnResult struct {
	output     triage.RunOutput
	facilities []facility.Facility
	lookupErr  error
}

// send runs one turn. History only grows when the turn succeeds.
func (s *session) send(ctx context.Context, text string) (turnResult, error) {
	out, err := s.uc.Run(ctx, triage.RunInput{
		Text:     text,
		History:  s.history,
		Location: s.location,
	})
	if err != nil {
		return turnResult{}, err
	}

	s.history = append(s.history,
		triage.Turn{Role: triage.RoleUser, Content: text},
		triage.Turn{Role: triage.RoleAssistant, Content: out.RawText},
	)

	res := turnResult{output: out}
	if s.facilities == nil {
		return res, nil
	}
	for _, call := range out.FunctionCalls {
		found, err := s.facilities.Search(ctx, facility.SearchInput{
			Latitude:  call.Latitude,
			Longitude: call.Longitude,
			RadiusKM:  call.RadiusKM,
		})
		if err != nil {
			res.lookupErr = fmt.Errorf("facilities.Search: %w", err)
			continue
		}
		res.facilities = append(res.facilities, found.Facilities...)
	}
	return res, nil
}
