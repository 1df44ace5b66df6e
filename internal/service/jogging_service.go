package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jogging_tracker/internal/model"
	"jogging_tracker/internal/repository"
)

var ErrJogNotFound = errors.New("jogging record not found")

// JoggingService defines operations for jogging records
type JoggingService interface {
	CreateJog(ctx context.Context, userID int, req model.CreateJoggingRequest) (*model.JoggingRecord, error)
	ListJogs(ctx context.Context, userID int, userRole string, filters model.JoggingFilters) ([]model.JoggingRecord, error)
	UpdateJog(ctx context.Context, jogID int64, userID int, userRole string, req model.UpdateJoggingRequest) (*model.JoggingRecord, error)
	DeleteJog(ctx context.Context, jogID int64, userID int, userRole string) error
	WeeklyReport(ctx context.Context, userID int) ([]model.WeeklyReportRow, error)
}

type joggingService struct {
	repo repository.JoggingRepository
}

// NewJoggingService creates a new JoggingService
func NewJoggingService(repo repository.JoggingRepository) JoggingService {
	return &joggingService{repo: repo}
}

func (s *joggingService) CreateJog(ctx context.Context, userID int, req model.CreateJoggingRequest) (*model.JoggingRecord, error) {
	jog := &model.JoggingRecord{
		UserID:    userID,
		Date:      req.Date,
		Duration:  req.Duration,
		Distance:  req.Distance,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, jog); err != nil {
		return nil, fmt.Errorf("failed to create jogging record in repo: %w", err)
	}
	return jog, nil
}

// ListJogs returns records scoped to the caller: admins see every user's
// records, everyone else only their own.
func (s *joggingService) ListJogs(ctx context.Context, userID int, userRole string, filters model.JoggingFilters) ([]model.JoggingRecord, error) {
	if userRole == model.RoleAdmin {
		jogs, err := s.repo.FindAll(ctx, filters)
		if err != nil {
			return nil, fmt.Errorf("failed to get all jogging records: %w", err)
		}
		return jogs, nil
	}

	jogs, err := s.repo.FindByUser(ctx, userID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get user jogging records: %w", err)
	}
	return jogs, nil
}

// loadOwned fetches a record and enforces the owner-or-admin rule. A record
// owned by someone else is reported as not found so its existence stays hidden.
func (s *joggingService) loadOwned(ctx context.Context, jogID int64, userID int, userRole string) (*model.JoggingRecord, error) {
	jog, err := s.repo.FindByID(ctx, jogID)
	if err != nil {
		return nil, fmt.Errorf("failed to find jogging record: %w", err)
	}
	if jog == nil {
		return nil, ErrJogNotFound
	}
	if userRole != model.RoleAdmin && jog.UserID != userID {
		return nil, ErrJogNotFound
	}
	return jog, nil
}

func (s *joggingService) UpdateJog(ctx context.Context, jogID int64, userID int, userRole string, req model.UpdateJoggingRequest) (*model.JoggingRecord, error) {
	jog, err := s.loadOwned(ctx, jogID, userID, userRole)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		jog.Date = *req.Date
	}
	if req.Duration != nil {
		jog.Duration = *req.Duration
	}
	if req.Distance != nil {
		jog.Distance = *req.Distance
	}

	if err := s.repo.Update(ctx, jog); err != nil {
		return nil, fmt.Errorf("failed to update jogging record in repo: %w", err)
	}
	return jog, nil
}

func (s *joggingService) DeleteJog(ctx context.Context, jogID int64, userID int, userRole string) error {
	if _, err := s.loadOwned(ctx, jogID, userID, userRole); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, jogID); err != nil {
		return fmt.Errorf("failed to delete jogging record in repo: %w", err)
	}
	return nil
}

// WeeklyReport returns the caller's per-week averages
func (s *joggingService) WeeklyReport(ctx context.Context, userID int) ([]model.WeeklyReportRow, error) {
	report, err := s.repo.WeeklyReport(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to build weekly report: %w", err)
	}
	return report, nil
}
