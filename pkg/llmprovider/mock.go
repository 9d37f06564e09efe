package llmprovider

import (
	"context"
	"strings"
)

// MockProvider answers offline with canned replies in the BRIEF:/DETAILED: format.
// The reply depends on how many history lines ("User:"/"AI:") the prompt carries,
// so a scripted conversation walks through questioning into a final answer.
type MockProvider struct{}

// NewMockProvider creates a new offline provider
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

const (
	mockFirstReply = "BRIEF: I'm sorry you're not feeling well. When did this start, and how bad is it from 1 to 10?\n\n" +
		"DETAILED: To understand your situation, please tell me when the symptoms started, how severe they are " +
		"on a scale of 1 to 10, and whether you have a fever or any other symptoms."
	mockSecondReply = "BRIEF: Thank you. Do you have a fever, cough, or trouble breathing?\n\n" +
		"DETAILED: A few more details will help: do you have a fever, a cough, a sore throat, or any difficulty " +
		"breathing? Are you taking any medication right now?"
	mockFinalReply = "BRIEF: This looks like a common cold. Rest, drink fluids, and see a doctor if it gets worse.\n\n" +
		"DETAILED: **Diagnosis**: Common cold (upper respiratory infection).\n" +
		"**Immediate care**: Rest, drink plenty of fluids, and use a humidifier.\n" +
		"**Hospital**: Visit an internal medicine clinic if symptoms last more than a week.\n" +
		"**Pharmacy**: Acetaminophen can relieve fever and aches.\n" +
		"**Emergency**: Seek emergency care for trouble breathing or a fever above 39°C.\n" +
		"Consultation completed. Take care and get well soon."
)

// GenerateContent implements Provider interface
func (p *MockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	turns := 0
	for _, m := range req.Messages {
		for _, part := range m.Parts {
			for _, line := range strings.Split(part.Text, "\n") {
				if strings.HasPrefix(line, "User:") || strings.HasPrefix(line, "AI:") {
					turns++
				}
			}
		}
	}

	reply := mockFirstReply
	switch {
	case turns >= 4:
		reply = mockFinalReply
	case turns >= 2:
		reply = mockSecondReply
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, reply),
		ProviderName: p.Name(),
		ModelName:    p.Model(),
		Usage:        &Usage{},
	}, nil
}

// Name returns provider name
func (p *MockProvider) Name() string {
	return "mock"
}

// Model returns model name
func (p *MockProvider) Model() string {
	return "mock-triage"
}
