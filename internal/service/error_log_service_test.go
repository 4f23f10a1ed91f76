package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storeapi/internal/model"
)

// MockErrorLogRepository is a mock implementation of ErrorLogRepository.
type MockErrorLogRepository struct {
	mock.Mock
}

func (m *MockErrorLogRepository) Create(ctx context.Context, entry *model.ErrorLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func TestErrorLogService_Log(t *testing.T) {
	mockRepo := new(MockErrorLogRepository)
	var captured *model.ErrorLog
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ErrorLog")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*model.ErrorLog)
		}).Return(nil)

	svc := NewErrorLogService(mockRepo)
	svc.Log(context.Background(), errors.New("boom"), "/api/products", "POST", `{"name":"Widget"}`, "ProductHandler")

	mockRepo.AssertExpectations(t)
	assert.Equal(t, "boom", captured.Message)
	assert.Equal(t, "/api/products", captured.RequestPath)
	assert.Equal(t, "POST", captured.RequestMethod)
	assert.Equal(t, `{"name":"Widget"}`, captured.RequestBody)
	assert.Equal(t, "ProductHandler", captured.Origin)
	assert.NotEmpty(t, captured.StackTrace)
	assert.WithinDuration(t, time.Now().UTC(), captured.Timestamp, time.Minute)
}

func TestErrorLogService_Log_SwallowsWriteFailure(t *testing.T) {
	mockRepo := new(MockErrorLogRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ErrorLog")).Return(errors.New("log table unavailable"))

	svc := NewErrorLogService(mockRepo)
	assert.NotPanics(t, func() {
		svc.Log(context.Background(), errors.New("boom"), "/api/products", "GET", "", "ProductHandler")
	})
	mockRepo.AssertExpectations(t)
}
