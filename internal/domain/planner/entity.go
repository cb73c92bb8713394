// Package planner models the per-user weekly meal plan.
// The plan is a single document whose entries are replaced as a whole on save.
package planner

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDay          = errors.New("day must be one of Mon, Tue, Wed, Thu, Fri, Sat, Sun")
	ErrRecipeRefRequired   = errors.New("meal entry needs a recipe reference or custom label")
	ErrDescriptionRequired = errors.New("meal entry description is required")
	ErrDuplicateEntryID    = errors.New("meal entry ids must be unique within a plan")
	ErrTooManyEntries      = errors.New("a weekly plan holds at most 100 entries")
	ErrPlanNotFound        = errors.New("meal plan not found")
)

// MaxEntries bounds the size of a weekly plan
const MaxEntries = 100

// Day is a weekday column of the planner
type Day string

const (
	Monday    Day = "Mon"
	Tuesday   Day = "Tue"
	Wednesday Day = "Wed"
	Thursday  Day = "Thu"
	Friday    Day = "Fri"
	Saturday  Day = "Sat"
	Sunday    Day = "Sun"
)

// Days lists the week in planner order
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseDay accepts the short form or the full English weekday name, in any case
func ParseDay(s string) (Day, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if len(key) >= 3 {
		for _, d := range Days {
			short := strings.ToLower(string(d))
			if key == short {
				return d, nil
			}
			if strings.HasPrefix(key, short) && isFullDayName(key) {
				return d, nil
			}
		}
	}
	return "", ErrInvalidDay
}

func isFullDayName(key string) bool {
	switch key {
	case "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday":
		return true
	}
	return false
}

// Entry is one meal slot. RecipeRef is either a catalog recipe id or a free-text label.
type Entry struct {
	ID          uuid.UUID
	Day         Day
	RecipeRef   string
	Description string
	ColorTag    string
}

// Validate validates the entry
func (e Entry) Validate() error {
	if _, err := ParseDay(string(e.Day)); err != nil {
		return err
	}
	if strings.TrimSpace(e.RecipeRef) == "" {
		return ErrRecipeRefRequired
	}
	if strings.TrimSpace(e.Description) == "" {
		return ErrDescriptionRequired
	}
	return nil
}

// WeeklyPlan is the aggregate holding a user's meal entries
type WeeklyPlan struct {
	id        uuid.UUID
	userID    uuid.UUID
	weekStart time.Time
	entries   []Entry
	updatedAt time.Time
}

// NewWeeklyPlan creates an empty plan whose week starts on the Monday of now's week
func NewWeeklyPlan(userID uuid.UUID, now time.Time) *WeeklyPlan {
	return &WeeklyPlan{
		id:        uuid.New(),
		userID:    userID,
		weekStart: WeekStart(now),
		entries:   []Entry{},
		updatedAt: now,
	}
}

// Restore rebuilds a plan from persisted state
func Restore(id, userID uuid.UUID, weekStart time.Time, entries []Entry, updatedAt time.Time) *WeeklyPlan {
	if entries == nil {
		entries = []Entry{}
	}
	return &WeeklyPlan{
		id:        id,
		userID:    userID,
		weekStart: weekStart,
		entries:   entries,
		updatedAt: updatedAt,
	}
}

// ReplaceEntries swaps the whole entry set atomically. Entries without an id
// are assigned one and day names are canonicalized. On error the plan is unchanged.
func (p *WeeklyPlan) ReplaceEntries(entries []Entry) error {
	if len(entries) > MaxEntries {
		return ErrTooManyEntries
	}

	next := make([]Entry, 0, len(entries))
	ids := make(map[uuid.UUID]struct{}, len(entries))
	for _, e := range entries {
		day, err := ParseDay(string(e.Day))
		if err != nil {
			return err
		}
		e.Day = day
		e.RecipeRef = strings.TrimSpace(e.RecipeRef)
		if err := e.Validate(); err != nil {
			return err
		}
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		if _, dup := ids[e.ID]; dup {
			return ErrDuplicateEntryID
		}
		ids[e.ID] = struct{}{}
		next = append(next, e)
	}

	p.entries = next
	p.updatedAt = time.Now()
	return nil
}

func (p *WeeklyPlan) ID() uuid.UUID {
	return p.id
}

func (p *WeeklyPlan) UserID() uuid.UUID {
	return p.userID
}

// WeekStart returns the Monday the plan was started on
func (p *WeeklyPlan) WeekStart() time.Time {
	return p.weekStart
}

// Entries returns a copy of the plan's entries
func (p *WeeklyPlan) Entries() []Entry {
	return append([]Entry{}, p.entries...)
}

// MealsPlanned returns the number of entries
func (p *WeeklyPlan) MealsPlanned() int {
	return len(p.entries)
}

// EntriesFor returns the entries of one day in stored order
func (p *WeeklyPlan) EntriesFor(day Day) []Entry {
	out := []Entry{}
	for _, e := range p.entries {
		if e.Day == day {
			out = append(out, e)
		}
	}
	return out
}

func (p *WeeklyPlan) UpdatedAt() time.Time {
	return p.updatedAt
}

// WeekStart returns midnight of the Monday on or before t, in t's location
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
