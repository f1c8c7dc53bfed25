package planner

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"smart-task-planner.com/smart-task-planner/internal/ai"
	"smart-task-planner.com/smart-task-planner/internal/metrics"
)

// ContentGenerator is the AI transport: one prompt in, one response envelope out.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error)
}

// Service runs prompt, model call and parse, degrading to the fallback plan
// on any failure. GeneratePlan always returns a usable plan.
type Service struct {
	generator ContentGenerator
	prompts   *PromptBuilder
	parser    *ResponseParser
	fallback  *FallbackGenerator
	logger    *zap.Logger
}

// NewService wires the pipeline. A nil generator means no credentials are
// configured and every request gets the fallback plan.
func NewService(generator ContentGenerator, now func() time.Time, logger *zap.Logger) *Service {
	if now == nil {
		now = systemNow
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fallback := NewFallbackGenerator(now, logger)
	return &Service{
		generator: generator,
		prompts:   NewPromptBuilder(now),
		parser:    NewResponseParser(fallback, now, logger),
		fallback:  fallback,
		logger:    logger,
	}
}

func (s *Service) GeneratePlan(ctx context.Context, req Request) Plan {
	plan := s.generate(ctx, req)
	metrics.ObservePlan(string(plan.Source), string(plan.FallbackReason), plan.TotalTasks)
	return plan
}

func (s *Service) generate(ctx context.Context, req Request) Plan {
	logger := s.logger.With(zap.String("goal", req.Description))

	if s.generator == nil {
		logger.Error("gemini api key is not configured")
		return s.fallback.Generate(&req, ReasonConfiguration)
	}

	prompt := s.prompts.Build(req)
	logger.Debug("prompt built", zap.Int("length", len(prompt)))

	resp, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		kind := ai.Classify(err)
		logger.Error("gemini request failed",
			zap.String("kind", string(kind)),
			zap.Int("status", ai.StatusCode(err)),
			zap.Error(err))
		return s.fallback.Generate(&req, reasonFor(kind))
	}

	return s.parser.Parse(resp, req)
}

func reasonFor(kind ai.ErrorKind) FallbackReason {
	switch kind {
	case ai.KindConfiguration:
		return ReasonConfiguration
	case ai.KindClient:
		return ReasonClientError
	case ai.KindServer:
		return ReasonServerError
	default:
		return ReasonTransportError
	}
}
