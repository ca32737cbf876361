package stamp

import (
	"log/slog"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 50
)

// Repository defines the data access methods for the stamp log
type Repository interface {
	Create(ev *Event) error
	// LatestByUsername returns (nil, nil) when the user has no events.
	LatestByUsername(username string) (*Event, error)
	HistoryByUsername(username string, limit int) ([]*Event, error)
}

// Service handles stamp ledger business logic
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// RecordStamp appends one event to the log. Two consecutive "in" events for
// the same user are accepted; toggle discipline belongs to the caller.
func (s *Service) RecordStamp(dto RecordStampDTO) (*Event, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("stamp validation failed", "error", err)
		return nil, err
	}

	ev := &Event{
		Username: dto.Username,
		Type:     dto.Type,
	}

	if err := s.repo.Create(ev); err != nil {
		s.logger.Error("failed to record stamp", "error", err, "username", dto.Username, "type", dto.Type)
		return nil, err
	}

	s.logger.Info("stamp recorded", "stamp_id", ev.ID, "username", ev.Username, "type", ev.Type)
	return ev, nil
}

// GetStatus derives the attendance state from the persisted log only.
func (s *Service) GetStatus(username string) (Status, error) {
	latest, err := s.repo.LatestByUsername(username)
	if err != nil {
		s.logger.Error("failed to load latest stamp", "error", err, "username", username)
		return Status{}, err
	}
	return DeriveStatus(latest), nil
}

// History returns the most recent events for a user, newest first.
func (s *Service) History(username string, limit int) ([]*Event, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	events, err := s.repo.HistoryByUsername(username, limit)
	if err != nil {
		s.logger.Error("failed to load stamp history", "error", err, "username", username)
		return nil, err
	}
	if events == nil {
		events = []*Event{}
	}
	return events, nil
}
