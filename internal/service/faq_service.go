package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/grievance-service/internal/completion"
	"github.com/spec-kit/grievance-service/internal/faq"
	"github.com/spec-kit/grievance-service/internal/repository"
)

// Warning texts returned in place of a generated answer.
const (
	InvalidKeyWarning   = "⚠️ Invalid OpenAI API Key. Please check your key and try again."
	gatewayErrorWarning = "⚠️ OpenAI Error: %s"
)

// AnswerSource records where an answer came from.
type AnswerSource string

const (
	SourceFAQ        AnswerSource = "faq"
	SourceCache      AnswerSource = "cache"
	SourceCompletion AnswerSource = "completion"
)

// FAQAnswer is a resolved answer and its origin.
type FAQAnswer struct {
	Text   string
	Source AnswerSource
}

// FAQService answers HR questions from the FAQ table, falling back to the
// completion gateway.
type FAQService struct {
	resolver *faq.Resolver
	gateway  completion.Gateway
	cache    repository.AnswerCache
	logger   *zap.Logger
}

// FAQDependencies bundles collaborators for the FAQ service. Cache may be nil.
type FAQDependencies struct {
	Resolver *faq.Resolver
	Gateway  completion.Gateway
	Cache    repository.AnswerCache
	Logger   *zap.Logger
}

// NewFAQService constructs the service.
func NewFAQService(deps FAQDependencies) *FAQService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FAQService{
		resolver: deps.Resolver,
		gateway:  deps.Gateway,
		cache:    deps.Cache,
		logger:   logger,
	}
}

// Ask resolves question. A non-nil error is always a gateway failure
// (*completion.AuthError or *completion.Error).
func (s *FAQService) Ask(ctx context.Context, question string) (FAQAnswer, error) {
	if answer, ok := s.resolver.Resolve(question); ok {
		return FAQAnswer{Text: answer, Source: SourceFAQ}, nil
	}

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, question)
		if err != nil {
			s.logger.Warn("answer cache read failed", zap.Error(err))
		} else if ok {
			return FAQAnswer{Text: cached, Source: SourceCache}, nil
		}
	}

	answer, err := s.gateway.Complete(ctx, question)
	if err != nil {
		s.logger.Warn("completion failed", zap.Error(err))
		return FAQAnswer{}, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, question, answer); err != nil {
			s.logger.Warn("answer cache write failed", zap.Error(err))
		}
	}
	return FAQAnswer{Text: answer, Source: SourceCompletion}, nil
}

// Respond is Ask with gateway failures folded into a warning text, so the
// caller always has something to show.
func (s *FAQService) Respond(ctx context.Context, question string) string {
	answer, err := s.Ask(ctx, question)
	if err != nil {
		return WarningFor(err)
	}
	return answer.Text
}

// WarningFor renders a gateway failure as a user-facing warning.
func WarningFor(err error) string {
	var authErr *completion.AuthError
	if errors.As(err, &authErr) {
		return InvalidKeyWarning
	}
	return fmt.Sprintf(gatewayErrorWarning, err.Error())
}
