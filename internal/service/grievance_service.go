package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/grievance-service/internal/domain"
	"github.com/spec-kit/grievance-service/internal/events"
	"github.com/spec-kit/grievance-service/internal/repository"
	apperrors "github.com/spec-kit/grievance-service/pkg/util/errorutil"
)

const ticketIDLength = 8

// GrievanceService coordinates grievance intake and listing.
type GrievanceService struct {
	grievances repository.GrievanceRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	newID      func() string
}

// GrievanceDependencies bundles collaborators for the grievance service.
type GrievanceDependencies struct {
	GrievanceRepo repository.GrievanceRepository
	Dispatcher    events.Dispatcher
	Logger        *zap.Logger
	// NewID overrides ticket id generation; nil uses GenerateTicketID.
	NewID func() string
}

// GrievanceSubmitInput describes a submission. Name and Email may be nil.
type GrievanceSubmitInput struct {
	Name      *string
	Email     *string
	Message   string
	Anonymous bool
}

// NewGrievanceService constructs the service.
func NewGrievanceService(deps GrievanceDependencies) *GrievanceService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	newID := deps.NewID
	if newID == nil {
		newID = GenerateTicketID
	}
	return &GrievanceService{
		grievances: deps.GrievanceRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		newID:      newID,
	}
}

// Submit stores a grievance under a freshly minted ticket id. A colliding id
// is regenerated once before the conflict is surfaced.
func (s *GrievanceService) Submit(ctx context.Context, input GrievanceSubmitInput) (*domain.Grievance, error) {
	grievance := &domain.Grievance{
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		Anonymous: input.Anonymous,
	}
	grievance.ApplyAnonymity()

	var err error
	for attempt := 0; attempt < 2; attempt++ {
		grievance.ID = s.newID()
		err = s.grievances.Create(ctx, grievance)
		if !errors.Is(err, repository.ErrDuplicateID) {
			break
		}
		s.logger.Warn("ticket id collision", zap.String("ticket_id", grievance.ID), zap.Int("attempt", attempt+1))
	}
	if errors.Is(err, repository.ErrDuplicateID) {
		return nil, apperrors.NewStorageConflict(err)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("grievance submitted", zap.String("ticket_id", grievance.ID), zap.Bool("anonymous", grievance.Anonymous))
	s.publishEvent(ctx, events.Event{
		Type:     events.EventGrievanceSubmitted,
		TicketID: grievance.ID,
		Payload: events.GrievanceSubmittedPayload{
			Anonymous:     grievance.Anonymous,
			MessageLength: len(grievance.Message),
		},
	})
	return grievance, nil
}

// List returns every stored grievance in insertion order.
func (s *GrievanceService) List(ctx context.Context) ([]domain.Grievance, error) {
	return s.grievances.List(ctx)
}

// GenerateTicketID returns the first eight hex digits of a random UUID.
func GenerateTicketID() string {
	return uuid.NewString()[:ticketIDLength]
}

func (s *GrievanceService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handlers failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
