package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/grievance-service/internal/domain"
)

type MockGrievanceRepository struct {
	mock.Mock
}

func (m *MockGrievanceRepository) Create(ctx context.Context, g *domain.Grievance) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGrievanceRepository) List(ctx context.Context) ([]domain.Grievance, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]domain.Grievance), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Complete(ctx context.Context, question string) (string, error) {
	args := m.Called(ctx, question)
	return args.String(0), args.Error(1)
}

type MockAnswerCache struct {
	mock.Mock
}

func (m *MockAnswerCache) Get(ctx context.Context, question string) (string, bool, error) {
	args := m.Called(ctx, question)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockAnswerCache) Set(ctx context.Context, question, answer string) error {
	args := m.Called(ctx, question, answer)
	return args.Error(0)
}
