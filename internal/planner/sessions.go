package planner

import (
	"time"
)

// allocEpsilon is the smallest session worth placing, in hours. Anything
// shorter is rounding noise from due-time truncation.
const allocEpsilon = 1.0 / 60

// dayTimeline tracks remaining budget and the next free offset for each
// study day of the walk. Day 0 opens at the reference instant (or the day
// start hour, whichever is later); later days open at the day start hour.
type dayTimeline struct {
	now      time.Time
	cfg      Config
	budgets  map[int]float64
	cursors  map[int]time.Time
}

func newDayTimeline(now time.Time, cfg Config) *dayTimeline {
	return &dayTimeline{
		now:     now,
		cfg:     cfg,
		budgets: make(map[int]float64),
		cursors: make(map[int]time.Time),
	}
}

// windowStart returns the instant at which study day d opens.
func (t *dayTimeline) windowStart(d int) time.Time {
	y, m, dd := t.now.Date()
	open := time.Date(y, m, dd, t.cfg.DayStartHour, 0, 0, 0, t.now.Location()).AddDate(0, 0, d)
	if d == 0 && t.now.After(open) {
		return t.now
	}
	return open
}

func (t *dayTimeline) budget(d int) float64 {
	if b, ok := t.budgets[d]; ok {
		return b
	}
	return t.cfg.DailyStudyBudget
}

func (t *dayTimeline) cursor(d int) time.Time {
	if c, ok := t.cursors[d]; ok {
		return c
	}
	return t.windowStart(d)
}

// place allocates up to maxHours on day d, never past hardEnd, never past the
// opening of day d+1, and never beyond the day's remaining budget. Returns the
// placed interval and false when nothing fits.
func (t *dayTimeline) place(d int, maxHours float64, hardEnd time.Time) (time.Time, time.Time, bool) {
	start := t.cursor(d)
	if !start.Before(hardEnd) {
		return time.Time{}, time.Time{}, false
	}

	hours := maxHours
	if b := t.budget(d); b < hours {
		hours = b
	}
	if untilDue := hardEnd.Sub(start).Hours(); untilDue < hours {
		hours = untilDue
	}
	if untilNext := t.windowStart(d + 1).Sub(start).Hours(); untilNext < hours {
		hours = untilNext
	}
	if hours < allocEpsilon {
		return time.Time{}, time.Time{}, false
	}

	end := start.Add(time.Duration(hours * float64(time.Hour)))
	t.budgets[d] = t.budget(d) - hours
	t.cursors[d] = end
	return start, end, true
}

// PlanSessions greedily places study sessions for each ranked assignment, in
// rank order, on a shared timeline bounded by [now, dueAt). Each assignment
// gets at most one session per day, each session at most MaxSessionLength
// hours, and no day's total across all assignments exceeds DailyStudyBudget.
//
// An assignment whose hours cannot all be placed before its deadline is
// flagged Underscheduled; no sessions are fabricated past the due time.
func PlanSessions(ranked []ScoredAssignment, now time.Time, cfg Config) {
	timeline := newDayTimeline(now, cfg)

	for i := range ranked {
		r := &ranked[i]
		remaining := r.Assignment.EstimatedHours
		if remaining <= 0 {
			continue
		}
		due := r.Assignment.DueAt
		if !due.After(now) {
			// Already past due: nothing can be scheduled inside the window.
			r.Underscheduled = true
			continue
		}

		horizon := walkHorizon(now, due)
		for d := 0; d <= horizon && remaining >= allocEpsilon; d++ {
			want := remaining
			if cfg.MaxSessionLength < want {
				want = cfg.MaxSessionLength
			}
			start, end, ok := timeline.place(d, want, due)
			if !ok {
				continue
			}
			r.Sessions = append(r.Sessions, StudySession{
				AssignmentID: r.Assignment.ID,
				Start:        start,
				End:          end,
			})
			remaining -= end.Sub(start).Hours()
		}

		if remaining >= allocEpsilon {
			r.Underscheduled = true
		}
	}
}

// walkHorizon returns the last day index whose window could still hold a
// session ending at or before due.
func walkHorizon(now, due time.Time) int {
	days := int(due.Sub(now).Hours() / 24)
	return days + 1
}
