package service

import (
	"context"
	"log"
	"runtime/debug"
	"time"

	"storeapi/internal/model"
	"storeapi/internal/repository"
)

// ErrorLogService persists caught failures with their request metadata.
// Logging is best-effort telemetry: it must never influence the response,
// so Log returns nothing and swallows its own failures.
type ErrorLogService interface {
	Log(ctx context.Context, cause error, path, method, body, origin string)
}

type errorLogService struct {
	repo repository.ErrorLogRepository
}

// NewErrorLogService builds an ErrorLogService over the given repository.
func NewErrorLogService(repo repository.ErrorLogRepository) ErrorLogService {
	return &errorLogService{repo: repo}
}

func (s *errorLogService) Log(ctx context.Context, cause error, path, method, body, origin string) {
	entry := &model.ErrorLog{
		Timestamp:     time.Now().UTC(),
		Message:       cause.Error(),
		StackTrace:    string(debug.Stack()),
		RequestPath:   path,
		RequestMethod: method,
		RequestBody:   body,
		Origin:        origin,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		log.Printf("error log write failed (origin=%s): %v", origin, err)
	}
}
