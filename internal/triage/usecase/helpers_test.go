package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/devkan/FirstAidVox/internal/triage"
	"github.com/devkan/FirstAidVox/internal/triage/repository"
	"github.com/devkan/FirstAidVox/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockGenerator records requests and replies with a fixed text or error.
type mockGenerator struct {
	text  string
	err   error
	block bool
	calls int
	last  *llmprovider.Request
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.last = req
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.TextMessage(llmprovider.RoleAssistant, m.text),
		ProviderName: "fake",
		ModelName:    "fake-1",
	}, nil
}

// prompt returns the text part of the last request.
func (m *mockGenerator) prompt() string {
	if m.last == nil || len(m.last.Messages) == 0 {
		return ""
	}
	return m.last.Messages[0].Parts[0].Text
}

type mockKnowledge struct {
	docs  []triage.Document
	err   error
	block bool
	calls int
	opt   repository.SearchDocumentsOptions
}

func (m *mockKnowledge) SearchDocuments(ctx context.Context, opt repository.SearchDocumentsOptions) ([]triage.Document, error) {
	m.calls++
	m.opt = opt
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return m.docs, m.err
}

func turns(contents ...string) []triage.Turn {
	out := make([]triage.Turn, 0, len(contents))
	for i, c := range contents {
		role := triage.RoleUser
		if i%2 == 1 {
			role = triage.RoleAssistant
		}
		out = append(out, triage.Turn{Role: role, Content: c})
	}
	return out
}
