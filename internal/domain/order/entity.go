// Package order models scheduled cooking orders
package order

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTitleRequired   = errors.New("order title is required")
	ErrInvalidSchedule = errors.New("order end time must not be before start time")
	ErrMissingSchedule = errors.New("order start and end times are required")
	ErrInvalidDuration = errors.New("order duration must be greater than 0 minutes")
	ErrInvalidStatus   = errors.New("status must be one of pending, in-progress, completed")
	ErrOrderNotFound   = errors.New("order not found")
)

// Status is the lifecycle state of an order
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// ParseStatus validates a status label. An empty label yields pending.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return StatusPending, nil
	case StatusPending:
		return StatusPending, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusCompleted:
		return StatusCompleted, nil
	}
	return "", ErrInvalidStatus
}

// Order is a cooking job a user has scheduled
type Order struct {
	id             uuid.UUID
	userID         uuid.UUID
	title          string
	specifications string
	startTime      time.Time
	endTime        time.Time
	duration       int
	status         Status
	createdAt      time.Time
}

// Schedule carries the user-supplied fields of an order
type Schedule struct {
	Title          string
	Specifications string
	StartTime      time.Time
	EndTime        time.Time
	// Duration in minutes
	Duration int
	Status   string
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Title          *string
	Specifications *string
	StartTime      *time.Time
	EndTime        *time.Time
	Duration       *int
	Status         *string
}

// NewOrder creates an order with validation
func NewOrder(userID uuid.UUID, s Schedule) (*Order, error) {
	status, err := ParseStatus(s.Status)
	if err != nil {
		return nil, err
	}

	o := &Order{
		id:             uuid.New(),
		userID:         userID,
		title:          strings.TrimSpace(s.Title),
		specifications: s.Specifications,
		startTime:      s.StartTime,
		endTime:        s.EndTime,
		duration:       s.Duration,
		status:         status,
		createdAt:      time.Now(),
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Restore rebuilds an Order from persisted state
func Restore(id, userID uuid.UUID, s Schedule, status Status, createdAt time.Time) *Order {
	return &Order{
		id:             id,
		userID:         userID,
		title:          s.Title,
		specifications: s.Specifications,
		startTime:      s.StartTime,
		endTime:        s.EndTime,
		duration:       s.Duration,
		status:         status,
		createdAt:      createdAt,
	}
}

// Apply merges a partial update. On error the order is unchanged.
func (o *Order) Apply(p Patch) error {
	next := *o
	if p.Title != nil {
		next.title = strings.TrimSpace(*p.Title)
	}
	if p.Specifications != nil {
		next.specifications = *p.Specifications
	}
	if p.StartTime != nil {
		next.startTime = *p.StartTime
	}
	if p.EndTime != nil {
		next.endTime = *p.EndTime
	}
	if p.Duration != nil {
		next.duration = *p.Duration
	}
	if p.Status != nil {
		status, err := ParseStatus(*p.Status)
		if err != nil {
			return err
		}
		next.status = status
	}
	if err := next.validate(); err != nil {
		return err
	}
	*o = next
	return nil
}

func (o *Order) ID() uuid.UUID {
	return o.id
}

func (o *Order) UserID() uuid.UUID {
	return o.userID
}

func (o *Order) Title() string {
	return o.title
}

// Specifications holds free-text notes such as "less spicy"
func (o *Order) Specifications() string {
	return o.specifications
}

func (o *Order) StartTime() time.Time {
	return o.startTime
}

func (o *Order) EndTime() time.Time {
	return o.endTime
}

// Duration returns the planned duration in minutes
func (o *Order) Duration() int {
	return o.duration
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) validate() error {
	if o.title == "" {
		return ErrTitleRequired
	}
	if o.startTime.IsZero() || o.endTime.IsZero() {
		return ErrMissingSchedule
	}
	if o.endTime.Before(o.startTime) {
		return ErrInvalidSchedule
	}
	if o.duration <= 0 {
		return ErrInvalidDuration
	}
	return nil
}
