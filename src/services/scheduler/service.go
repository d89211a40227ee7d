package scheduler

import (
	"context"
	"fmt"
	"time"

	"Backend-Booking-Designer/src/errorz"
	"Backend-Booking-Designer/src/models"
	"Backend-Booking-Designer/src/repositories"
)

// Service handles scheduler configuration.
type Service interface {
	Create(ctx context.Context, dto models.CreateSchedulerConfigDto) (*models.SchedulerConfig, error)
}

type service struct {
	repo repositories.SchedulerConfigRepository
	now  func() time.Time
}

func NewService(repo repositories.SchedulerConfigRepository) Service {
	return &service{repo: repo, now: time.Now}
}

// Create บันทึก config ใหม่ โดยบังคับ status = false เสมอ
func (s *service) Create(ctx context.Context, dto models.CreateSchedulerConfigDto) (*models.SchedulerConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := s.now().UTC()
	cfg := &models.SchedulerConfig{
		Name:        dto.Name,
		Timezone:    dto.Timezone,
		SlotMinutes: dto.SlotMinutes,
		StartTime:   dto.StartTime,
		EndTime:     dto.EndTime,
		Weekdays:    dto.Weekdays,
		Status:      false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	saved, err := s.repo.Create(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create scheduler config: %w", err)
	}
	if saved == nil {
		return nil, errorz.ErrInternal
	}
	return saved, nil
}
