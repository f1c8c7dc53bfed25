package planner

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

var errEmptyResponse = errors.New("model response carried no text")

// ResponseParser turns a Gemini response into a Plan. It never returns a
// partial plan: any failure yields the fallback plan for the same request.
type ResponseParser struct {
	fallback *FallbackGenerator
	now      func() time.Time
	logger   *zap.Logger
}

func NewResponseParser(fallback *FallbackGenerator, now func() time.Time, logger *zap.Logger) *ResponseParser {
	if now == nil {
		now = systemNow
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResponseParser{fallback: fallback, now: now, logger: logger}
}

func (p *ResponseParser) Parse(resp *genai.GenerateContentResponse, req Request) (plan Plan) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("panic while parsing model response, using fallback plan", zap.Any("panic", r))
			plan = p.fallback.Generate(&req, ReasonParseError)
		}
	}()

	plan, err := p.parse(resp)
	if err != nil {
		p.logger.Warn("could not parse model response, using fallback plan", zap.Error(err))
		return p.fallback.Generate(&req, ReasonParseError)
	}

	p.logger.Info("parsed model plan",
		zap.Int("tasks", plan.TotalTasks),
		zap.Int("hours", plan.EstimatedTotalHours),
		zap.Time("start", plan.SuggestedStartDate),
		zap.Time("end", plan.SuggestedEndDate))
	return plan
}

func (p *ResponseParser) parse(resp *genai.GenerateContentResponse) (Plan, error) {
	text, err := ResponseText(resp)
	if err != nil {
		return Plan{}, err
	}
	return decodePlan(StripCodeFence(text), p.now())
}

// ResponseText reads candidates[0].content.parts[0].text.
func ResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errEmptyResponse
	}
	if resp.Candidates[0] == nil {
		return "", errEmptyResponse
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0] == nil {
		return "", errEmptyResponse
	}
	text := content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", errEmptyResponse
	}
	return text, nil
}

// StripCodeFence removes one leading ```json or ``` marker and one trailing
// ``` marker, trimming whitespace around each.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if rest, ok := strings.CutPrefix(text, "```json"); ok {
		text = strings.TrimSpace(rest)
	} else if rest, ok := strings.CutPrefix(text, "```"); ok {
		text = strings.TrimSpace(rest)
	}
	if rest, ok := strings.CutSuffix(text, "```"); ok {
		text = strings.TrimSpace(rest)
	}
	return text
}
