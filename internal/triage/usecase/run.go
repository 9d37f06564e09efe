package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/devkan/FirstAidVox/internal/triage"
	"github.com/devkan/FirstAidVox/internal/triage/language"
	"github.com/devkan/FirstAidVox/internal/triage/marker"
	"github.com/devkan/FirstAidVox/internal/triage/repository"
	"github.com/devkan/FirstAidVox/internal/triage/stage"
	"github.com/devkan/FirstAidVox/pkg/llmprovider"
)

// Run processes one user turn. History is read, never modified.
func (uc *implUseCase) Run(ctx context.Context, input triage.RunInput) (triage.RunOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return triage.RunOutput{}, triage.ErrInvalidInput
	}
	if input.Location != nil && !validLocation(*input.Location) {
		return triage.RunOutput{}, triage.ErrInvalidLocation
	}

	lang := language.Detect(text)
	uc.l.Infof(ctx, "triage.Run: language=%s history=%d image=%t location=%t",
		lang, len(input.History), input.Image != nil, input.Location != nil)

	if consultationCompleted(input.History) {
		uc.l.Infof(ctx, "triage.Run: consultation already completed, skipping generation")
		return completedOutput(lang, len(input.History)), nil
	}

	docs := uc.retrieve(ctx, text)
	prompt := buildPrompt(text, lang, formatKnowledge(docs), input.History, input.Image != nil)

	msg := llmprovider.TextMessage(llmprovider.RoleUser, prompt)
	if input.Image != nil {
		msg.Parts = append(msg.Parts, llmprovider.Part{
			InlineData: &llmprovider.Blob{MIMEType: input.Image.MIMEType, Data: input.Image.Data},
		})
	}

	genCtx, cancel := context.WithTimeout(ctx, uc.cfg.GenerationTimeout)
	defer cancel()

	resp, err := uc.llm.GenerateContent(genCtx, &llmprovider.Request{
		Messages:    []llmprovider.Message{msg},
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	})
	if err != nil {
		if isTimeout(genCtx, err) {
			uc.l.Errorf(ctx, "triage.Run: generation timed out after %s: %v", uc.cfg.GenerationTimeout, err)
			return triage.RunOutput{}, fmt.Errorf("%w: %v", triage.ErrUpstreamTimeout, err)
		}
		uc.l.Errorf(ctx, "triage.Run: generation failed: %v", err)
		return triage.RunOutput{}, fmt.Errorf("%w: %v", triage.ErrUpstreamService, err)
	}

	raw := strings.TrimSpace(resp.Text())
	if raw == "" {
		uc.l.Warnf(ctx, "triage.Run: empty generation from %s", resp.ProviderName)
		raw = fallbackReply
	}

	brief, detailed := marker.Parse(raw)
	st := stage.Classify(input.History, raw)

	calls := []triage.FacilityLookupRequest{}
	if stage.ShouldSearchFacilities(st, input.Location, raw) {
		calls = append(calls, stage.LookupFor(*input.Location))
	}

	uc.l.Infof(ctx, "triage.Run: stage=%s function_calls=%d provider=%s", st, len(calls), resp.ProviderName)

	return triage.RunOutput{
		RawText:       raw,
		BriefText:     brief,
		DetailedText:  detailed,
		FunctionCalls: calls,
		Metadata: triage.Metadata{
			AssessmentStage:       st,
			ConversationLength:    len(input.History),
			DetectedLanguage:      lang,
			ConsultationCompleted: marker.HasCompletion(raw),
			ProviderName:          resp.ProviderName,
			ModelName:             resp.ModelName,
			ContextDocuments:      len(docs),
		},
	}, nil
}

// retrieve fetches prompt context. Failures degrade to no documents.
func (uc *implUseCase) retrieve(ctx context.Context, query string) []triage.Document {
	if uc.knowledge == nil {
		return nil
	}

	rctx, cancel := context.WithTimeout(ctx, uc.cfg.RetrievalTimeout)
	defer cancel()

	docs, err := uc.knowledge.SearchDocuments(rctx, repository.SearchDocumentsOptions{
		Query: query,
		Limit: uc.cfg.MaxResults,
	})
	if err != nil {
		uc.l.Warnf(ctx, "triage.retrieve: continuing without context: %v", err)
		return nil
	}
	if len(docs) > uc.cfg.MaxResults {
		docs = docs[:uc.cfg.MaxResults]
	}
	return docs
}

// consultationCompleted reports whether an assistant turn already closed the consultation.
func consultationCompleted(history []triage.Turn) bool {
	for _, turn := range history {
		if turn.Role == triage.RoleAssistant && marker.HasCompletion(turn.Content) {
			return true
		}
	}
	return false
}

func completedOutput(lang triage.Language, historyLen int) triage.RunOutput {
	reply, ok := completedReplies[lang]
	if !ok {
		reply = completedReplies[triage.LanguageEnglish]
	}
	return triage.RunOutput{
		RawText:       marker.Format(reply.brief, reply.detailed),
		BriefText:     reply.brief,
		DetailedText:  reply.detailed,
		FunctionCalls: []triage.FacilityLookupRequest{},
		Metadata: triage.Metadata{
			AssessmentStage:       triage.StageCompleted,
			ConversationLength:    historyLen,
			DetectedLanguage:      lang,
			ConsultationCompleted: true,
		},
	}
}

func isTimeout(ctx context.Context, err error) bool {
	return errors.Is(err, llmprovider.ErrProviderTimeout) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(ctx.Err(), context.DeadlineExceeded)
}

func validLocation(loc triage.Location) bool {
	return loc.Latitude >= -90 && loc.Latitude <= 90 &&
		loc.Longitude >= -180 && loc.Longitude <= 180
}
