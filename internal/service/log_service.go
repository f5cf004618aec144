package service

import (
	"context"
	"time"

	"depo-backend/internal/model"
	"depo-backend/internal/repository"
	"depo-backend/pkg/apperror"

	"github.com/google/uuid"
)

type LogResponse struct {
	ID         uuid.UUID  `json:"id"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	Username   string     `json:"username"`
	Action     string     `json:"action"`
	EntityType string     `json:"entity_type"`
	EntityID   string     `json:"entity_id"`
	Details    string     `json:"details"`
	SourceIP   string     `json:"source_ip"`
	CreatedAt  time.Time  `json:"created_at"`
}

// LogQuery carries the raw filter values from the query string
type LogQuery struct {
	StartDate  string
	EndDate    string
	UserID     string
	Action     string
	EntityType string
	Page       int
	Limit      int
}

type LogService interface {
	ListLogs(ctx context.Context, q LogQuery) ([]LogResponse, int64, error)
}

type logService struct {
	logRepo repository.LogRepository
}

func NewLogService(logRepo repository.LogRepository) LogService {
	return &logService{logRepo: logRepo}
}

func toLogResponse(l *model.SystemLog) LogResponse {
	return LogResponse{
		ID:         l.ID,
		UserID:     l.UserID,
		Username:   l.Username,
		Action:     l.Action,
		EntityType: l.EntityType,
		EntityID:   l.EntityID,
		Details:    l.Details,
		SourceIP:   l.SourceIP,
		CreatedAt:  l.CreatedAt,
	}
}

func parseDateBound(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		t, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return nil, apperror.New("invalid date: %s", value)
		}
		return &t, nil
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func (s *logService) ListLogs(ctx context.Context, q LogQuery) ([]LogResponse, int64, error) {
	start, err := parseDateBound(q.StartDate, false)
	if err != nil {
		return nil, 0, err
	}
	end, err := parseDateBound(q.EndDate, true)
	if err != nil {
		return nil, 0, err
	}
	if q.UserID != "" {
		if _, err := uuid.Parse(q.UserID); err != nil {
			return nil, 0, apperror.New("invalid user id")
		}
	}

	filter := repository.LogFilter{
		StartDate:  start,
		EndDate:    end,
		UserID:     q.UserID,
		Action:     q.Action,
		EntityType: q.EntityType,
		Page:       q.Page,
		Limit:      q.Limit,
	}

	logs, total, err := s.logRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	res := make([]LogResponse, 0, len(logs))
	for i := range logs {
		res = append(res, toLogResponse(&logs[i]))
	}
	return res, total, nil
}
