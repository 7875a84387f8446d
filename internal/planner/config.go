package planner

// Weights control the composite priority score blend.
type Weights struct {
	Urgency  float64
	Priority float64
	Overdue  float64
}

// Config holds the tunable parameters for one plan synthesis. The planner
// itself never reads a wall clock or environment; callers inject everything.
type Config struct {
	// Classification windows, in days from the reference instant.
	UrgentDays   int
	UpcomingDays int

	// Session placement.
	DailyStudyBudget float64 // max total study hours per day, all assignments
	MaxSessionLength float64 // max hours for a single placed session
	DayStartHour     int     // local hour at which a study day opens

	// Recommendation thresholds.
	HeavyLoadHours  float64 // total pending hours above which a workload warning fires
	LargeAssignment float64 // per-assignment hours above which a break-down hint fires

	Weights Weights
}

// DefaultConfig returns a Config with the stock thresholds.
func DefaultConfig() Config {
	return Config{
		UrgentDays:       3,
		UpcomingDays:     14,
		DailyStudyBudget: 4,
		MaxSessionLength: 2,
		DayStartHour:     9,
		HeavyLoadHours:   20,
		LargeAssignment:  5,
		Weights: Weights{
			Urgency:  0.5,
			Priority: 0.3,
			Overdue:  0.2,
		},
	}
}

// Sanitized returns a copy with out-of-range values forced back to workable
// bounds, so synthesis stays total regardless of caller configuration.
func (c Config) Sanitized() Config {
	d := DefaultConfig()
	if c.UrgentDays <= 0 {
		c.UrgentDays = d.UrgentDays
	}
	if c.UpcomingDays <= c.UrgentDays {
		c.UpcomingDays = c.UrgentDays + d.UpcomingDays - d.UrgentDays
	}
	if c.DailyStudyBudget <= 0 || c.DailyStudyBudget > 12 {
		c.DailyStudyBudget = d.DailyStudyBudget
	}
	if c.MaxSessionLength <= 0 {
		c.MaxSessionLength = d.MaxSessionLength
	}
	if c.MaxSessionLength > c.DailyStudyBudget {
		c.MaxSessionLength = c.DailyStudyBudget
	}
	if c.DayStartHour < 0 || c.DayStartHour > 12 {
		c.DayStartHour = d.DayStartHour
	}
	if c.HeavyLoadHours <= 0 {
		c.HeavyLoadHours = d.HeavyLoadHours
	}
	if c.LargeAssignment <= 0 {
		c.LargeAssignment = d.LargeAssignment
	}
	if c.Weights.Urgency <= 0 && c.Weights.Priority <= 0 && c.Weights.Overdue <= 0 {
		c.Weights = d.Weights
	}
	return c
}
