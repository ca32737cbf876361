package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yarnuri/stampclock/internal/stamp"
)

// StampRepository implements the stamp.Repository interface using GORM
type StampRepository struct {
	db *gorm.DB
}

func NewStampRepository(db *gorm.DB) *StampRepository {
	return &StampRepository{db: db}
}

// Create appends one event. The insert is a single atomic statement; the
// timestamp is set here rather than by a column default so SQLite-backed
// tests behave like Postgres.
func (r *StampRepository) Create(ev *stamp.Event) error {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	return r.db.Create(ev).Error
}

func (r *StampRepository) LatestByUsername(username string) (*stamp.Event, error) {
	var ev stamp.Event
	err := r.db.Where("username = ?", username).
		Order("timestamp DESC, id DESC").
		First(&ev).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ev, nil
}

func (r *StampRepository) HistoryByUsername(username string, limit int) ([]*stamp.Event, error) {
	var events []*stamp.Event
	err := r.db.Where("username = ?", username).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
