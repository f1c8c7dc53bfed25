package planner

import (
	"context"
	"time"

	"google.golang.org/genai"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(text, genai.RoleModel)},
		},
	}
}

type stubGenerator struct {
	resp    *genai.GenerateContentResponse
	err     error
	prompts []string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (*genai.GenerateContentResponse, error) {
	s.prompts = append(s.prompts, prompt)
	return s.resp, s.err
}
