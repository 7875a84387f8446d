package planner

// AdviceCode identifies one structured entry in the aggregate recommendation.
// The engine never renders prose; a composer outside the core turns these
// codes and their parameters into user-facing text.
type AdviceCode string

const (
	AdviceOverdueFocus    AdviceCode = "OVERDUE_FOCUS"
	AdviceHeavyLoad       AdviceCode = "HEAVY_LOAD"
	AdviceUnderscheduled  AdviceCode = "UNDERSCHEDULED"
	AdviceBreakDownLarge  AdviceCode = "BREAK_DOWN_LARGE"
	AdvicePreferredHours  AdviceCode = "PREFERRED_HOURS"
	AdviceDueSoonReminder AdviceCode = "DUE_SOON"
)

// AdviceItem is one bullet input for the recommendation renderer.
type AdviceItem struct {
	Code AdviceCode

	// Parameters; zero values mean not applicable for the code.
	Count        int
	Hours        float64
	AssignmentID string
	Title        string
}

// Recommendation is the aggregate-advice variant of a suggestion.
// At most one per plan.
type Recommendation struct {
	Items []AdviceItem
}

// ScheduledWork is the per-assignment variant: the sessions placed for one
// assignment, in chronological order.
type ScheduledWork struct {
	AssignmentID   string
	Title          string
	EstimatedHours float64
	Sessions       []StudySession
	Underscheduled bool
}

type SuggestionKind string

const (
	KindRecommendation SuggestionKind = "recommendations"
	KindScheduledWork  SuggestionKind = "assignment"
)

// Suggestion is a closed sum over the two variants. Exactly one of the
// pointers is set, matching Kind; render boundaries switch on Kind
// exhaustively.
type Suggestion struct {
	Kind           SuggestionKind
	Recommendation *Recommendation
	ScheduledWork  *ScheduledWork
}

// Compose builds the suggestion list: one aggregate Recommendation first
// (omitted when it has nothing to say beyond the standing preferred-hours
// hint and there is no pending work), then one ScheduledWork per assignment
// that received sessions, in score order. Never fails; an empty snapshot
// produces an empty list.
func Compose(summary Summary, ranked []ScoredAssignment, cfg Config) []Suggestion {
	if len(ranked) == 0 {
		return nil
	}

	var items []AdviceItem
	if summary.OverdueCount > 0 {
		items = append(items, AdviceItem{Code: AdviceOverdueFocus, Count: summary.OverdueCount})
	}
	if summary.TotalHoursNeeded > cfg.HeavyLoadHours {
		items = append(items, AdviceItem{Code: AdviceHeavyLoad, Hours: summary.TotalHoursNeeded})
	}
	for _, r := range ranked {
		if r.Assignment.EstimatedHours > cfg.LargeAssignment {
			items = append(items, AdviceItem{Code: AdviceBreakDownLarge})
			break
		}
	}
	for _, r := range ranked {
		if r.Underscheduled {
			items = append(items, AdviceItem{
				Code:         AdviceUnderscheduled,
				AssignmentID: r.Assignment.ID,
				Title:        r.Assignment.Title,
				Hours:        r.Assignment.EstimatedHours - placedHours(r.Sessions),
			})
		}
	}
	for _, r := range ranked {
		if r.DueSoon {
			items = append(items, AdviceItem{
				Code:         AdviceDueSoonReminder,
				AssignmentID: r.Assignment.ID,
				Title:        r.Assignment.Title,
			})
		}
	}
	items = append(items, AdviceItem{Code: AdvicePreferredHours})

	suggestions := []Suggestion{{
		Kind:           KindRecommendation,
		Recommendation: &Recommendation{Items: items},
	}}

	for _, r := range ranked {
		if len(r.Sessions) == 0 {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Kind: KindScheduledWork,
			ScheduledWork: &ScheduledWork{
				AssignmentID:   r.Assignment.ID,
				Title:          r.Assignment.Title,
				EstimatedHours: r.Assignment.EstimatedHours,
				Sessions:       r.Sessions,
				Underscheduled: r.Underscheduled,
			},
		})
	}
	return suggestions
}

func placedHours(sessions []StudySession) float64 {
	var total float64
	for _, s := range sessions {
		total += s.Hours()
	}
	return total
}
