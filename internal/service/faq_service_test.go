package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/grievance-service/internal/completion"
	"github.com/spec-kit/grievance-service/internal/faq"
	"github.com/spec-kit/grievance-service/internal/service"
)

func newFAQService(gw completion.Gateway, cache *MockAnswerCache) *service.FAQService {
	deps := service.FAQDependencies{
		Resolver: faq.NewResolver(faq.DefaultEntries()),
		Gateway:  gw,
	}
	if cache != nil {
		deps.Cache = cache
	}
	return service.NewFAQService(deps)
}

func TestAskFAQHitSkipsGateway(t *testing.T) {
	gw := new(MockGateway)
	svc := newFAQService(gw, nil)

	answer, err := svc.Ask(context.Background(), "what is the work from home policy")

	require.NoError(t, err)
	assert.Equal(t, service.FAQAnswer{Text: "Employees can work from home up to 2 days per week.", Source: service.SourceFAQ}, answer)
	gw.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestAskMissCallsGateway(t *testing.T) {
	gw := new(MockGateway)
	gw.On("Complete", mock.Anything, "Can I adopt a desk plant?").Return("Yes, within reason.", nil).Once()
	svc := newFAQService(gw, nil)

	answer, err := svc.Ask(context.Background(), "Can I adopt a desk plant?")

	require.NoError(t, err)
	assert.Equal(t, "Yes, within reason.", answer.Text)
	assert.Equal(t, service.SourceCompletion, answer.Source)
	gw.AssertExpectations(t)
}

func TestRespondAuthWarning(t *testing.T) {
	gw := new(MockGateway)
	gw.On("Complete", mock.Anything, mock.Anything).
		Return("", &completion.AuthError{Err: completion.ErrMissingAPIKey}).Once()
	svc := newFAQService(gw, nil)

	assert.Equal(t, service.InvalidKeyWarning, svc.Respond(context.Background(), "parking?"))
}

func TestRespondGenericWarning(t *testing.T) {
	gw := new(MockGateway)
	gw.On("Complete", mock.Anything, mock.Anything).
		Return("", &completion.Error{StatusCode: 429, Err: errors.New("status 429: quota exceeded")}).Once()
	svc := newFAQService(gw, nil)

	assert.Equal(t, "⚠️ OpenAI Error: status 429: quota exceeded", svc.Respond(context.Background(), "parking?"))
}

func TestAskUsesCacheBeforeGateway(t *testing.T) {
	gw := new(MockGateway)
	cache := new(MockAnswerCache)
	cache.On("Get", mock.Anything, "parking?").Return("Level B2.", true, nil).Once()
	svc := newFAQService(gw, cache)

	answer, err := svc.Ask(context.Background(), "parking?")

	require.NoError(t, err)
	assert.Equal(t, service.FAQAnswer{Text: "Level B2.", Source: service.SourceCache}, answer)
	gw.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestAskStoresGeneratedAnswer(t *testing.T) {
	gw := new(MockGateway)
	gw.On("Complete", mock.Anything, "parking?").Return("Level B2.", nil).Once()
	cache := new(MockAnswerCache)
	cache.On("Get", mock.Anything, "parking?").Return("", false, errors.New("redis down")).Once()
	cache.On("Set", mock.Anything, "parking?", "Level B2.").Return(errors.New("redis down")).Once()
	svc := newFAQService(gw, cache)

	answer, err := svc.Ask(context.Background(), "parking?")

	require.NoError(t, err)
	assert.Equal(t, "Level B2.", answer.Text)
	cache.AssertExpectations(t)
}

func TestAskDoesNotCacheFailures(t *testing.T) {
	gw := new(MockGateway)
	gw.On("Complete", mock.Anything, mock.Anything).Return("", &completion.Error{Err: errors.New("timeout")}).Once()
	cache := new(MockAnswerCache)
	cache.On("Get", mock.Anything, mock.Anything).Return("", false, nil).Once()
	svc := newFAQService(gw, cache)

	_, err := svc.Ask(context.Background(), "parking?")

	require.Error(t, err)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestAskFAQHitSkipsCache(t *testing.T) {
	cache := new(MockAnswerCache)
	svc := newFAQService(new(MockGateway), cache)

	_, err := svc.Ask(context.Background(), "DRESS CODE on fridays")

	require.NoError(t, err)
	cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
