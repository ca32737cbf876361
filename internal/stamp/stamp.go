package stamp

import "time"

const (
	TypeIn  = "in"
	TypeOut = "out"
)

// Event is one row in the append-only stamp log. Events are never updated or
// deleted; attendance state is always derived from the most recent one.
type Event struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"column:username;not null"`
	Type      string    `json:"type" gorm:"column:type;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"column:timestamp"`
}

func (Event) TableName() string {
	return "stamps"
}

// Status is the attendance state derived from the log for one user.
type Status struct {
	IsStampedIn bool   `json:"isStampedIn"`
	StampID     *int64 `json:"stampId"`
	LastStamp   *Event `json:"lastStamp"`
}

// DeriveStatus computes the attendance state from the latest event. A nil
// event means the user has never stamped and is therefore out.
func DeriveStatus(latest *Event) Status {
	if latest == nil {
		return Status{IsStampedIn: false, StampID: nil, LastStamp: nil}
	}
	return Status{
		IsStampedIn: latest.Type == TypeIn,
		StampID:     &latest.ID,
		LastStamp:   latest,
	}
}
