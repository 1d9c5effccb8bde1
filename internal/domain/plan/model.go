package plan

import (
	"errors"
	"strings"
	"time"
)

// Subscription plan names, as printed on receipts and the desk screen.
const (
	DayPass    = "تذكرة يومية"
	Zumba      = "خطة زومبا"
	Sessions12 = "خطة 12 جلسة"
	Monthly    = "خطة شهرية"
	Quarterly  = "خطة 3 أشهر"
	SemiAnnual = "خطة 6 أشهر"
	Yearly     = "خطة سنوية"
)

// Config prices a subscription plan and fixes its duration. Duration is
// expressed in months, except day-scale plans which use DurationDays.
type Config struct {
	Name           string
	Price          float64
	DurationMonths int
	DurationDays   int
	Rank           int
}

// Validate checks if the Config has valid data.
// PRE: Config struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("plan name cannot be empty")
	}
	if c.Price < 0 {
		return errors.New("plan price cannot be negative")
	}
	if c.DurationMonths <= 0 && c.DurationDays <= 0 {
		return errors.New("plan must have a positive duration")
	}
	return nil
}

// EndDateFrom computes the subscription end date for a plan starting on
// the given day.
// PRE: start is the first paid day
// POST: Returns the last paid day as YYYY-MM-DD
func (c *Config) EndDateFrom(start time.Time) string {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	if c.DurationDays > 0 {
		return day.AddDate(0, 0, c.DurationDays-1).Format("2006-01-02")
	}
	return day.AddDate(0, c.DurationMonths, 0).AddDate(0, 0, -1).Format("2006-01-02")
}

// Defaults returns the stock plan catalogue, ordered by rank.
func Defaults() []Config {
	return []Config{
		{Name: DayPass, Price: 50, DurationDays: 1, Rank: 0},
		{Name: Zumba, Price: 500, DurationMonths: 1, Rank: 1},
		{Name: Sessions12, Price: 600, DurationMonths: 1, Rank: 2},
		{Name: Monthly, Price: 800, DurationMonths: 1, Rank: 3},
		{Name: Quarterly, Price: 2100, DurationMonths: 3, Rank: 4},
		{Name: SemiAnnual, Price: 4200, DurationMonths: 6, Rank: 5},
		{Name: Yearly, Price: 7500, DurationMonths: 12, Rank: 6},
	}
}

// Settings holds the single-row gym configuration.
type Settings struct {
	GymName           string
	AbsenceDeduction  float64
	HalfDayDeduction  float64
	LastBackupDate    string // YYYY-MM-DD, empty when never backed up
	BackupReminderDue bool   // derived, not persisted
}

// BackupOverdue reports whether more than seven days have passed since
// the last backup.
// PRE: now is the current time
// POST: Returns true when a backup reminder should be shown
func (s *Settings) BackupOverdue(now time.Time) bool {
	if s.LastBackupDate == "" {
		return true
	}
	last, err := time.ParseInLocation("2006-01-02", s.LastBackupDate, now.Location())
	if err != nil {
		return true
	}
	return now.Sub(last) > 7*24*time.Hour
}
