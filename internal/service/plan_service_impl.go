package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/supervity/supervity/internal/contract"
	"github.com/supervity/supervity/internal/domain"
	"github.com/supervity/supervity/internal/intelligence"
	"github.com/supervity/supervity/internal/llm"
	"github.com/supervity/supervity/internal/planner"
	"github.com/supervity/supervity/internal/repository"
)

type planService struct {
	users       repository.UserRepo
	assignments repository.AssignmentRepo
	recommend   intelligence.RecommendService
	llmClient   llm.Client
	cfg         planner.Config
	observer    UseCaseObserver
	now         func() time.Time

	// Concurrent plan requests for the same user produce the same result,
	// so they share one synthesis instead of racing.
	group singleflight.Group
}

// NewPlanService wires the planning pipeline: snapshot load, synthesis,
// recommendation rendering, and contract mapping. llmClient may be nil;
// health then reports the deterministic fallback.
func NewPlanService(
	users repository.UserRepo,
	assignments repository.AssignmentRepo,
	recommend intelligence.RecommendService,
	llmClient llm.Client,
	cfg planner.Config,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		users:       users,
		assignments: assignments,
		recommend:   recommend,
		llmClient:   llmClient,
		cfg:         cfg.Sanitized(),
		observer:    useCaseObserverOrNoop(observers),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *planService) Plan(ctx context.Context, userID string) (*contract.PlanResponse, error) {
	started := s.now()
	v, err, _ := s.group.Do(userID, func() (interface{}, error) {
		return s.plan(ctx, userID)
	})
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "plan",
		UserID:    userID,
		Duration:  s.now().Sub(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
	})
	if err != nil {
		return nil, err
	}
	return v.(*contract.PlanResponse), nil
}

func (s *planService) plan(ctx context.Context, userID string) (*contract.PlanResponse, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &contract.PlanError{
				Code:    contract.ErrUserNotFound,
				Message: fmt.Sprintf("user %s not found", userID),
			}
		}
		return nil, &contract.PlanError{
			Code:    contract.ErrInternalError,
			Message: err.Error(),
		}
	}

	snapshot, err := s.assignments.ListPendingByUser(ctx, userID)
	if err != nil {
		return nil, &contract.PlanError{
			Code:    contract.ErrSnapshotLoad,
			Message: fmt.Sprintf("loading assignments for user %s: %v", userID, err),
		}
	}

	result := planner.Synthesize(snapshot, s.now(), s.cfg)
	return s.toResponse(ctx, userID, snapshot, result), nil
}

func (s *planService) toResponse(
	ctx context.Context,
	userID string,
	snapshot []*domain.Assignment,
	result *planner.StudyPlanResult,
) *contract.PlanResponse {
	resp := &contract.PlanResponse{
		UserID: userID,
		StudyPlan: contract.StudyPlan{
			OverdueCount:     result.Summary.OverdueCount,
			UrgentCount:      result.Summary.DisplayUrgentCount(),
			UpcomingCount:    result.Summary.UpcomingCount,
			FutureCount:      result.Summary.FutureCount,
			TotalHoursNeeded: result.Summary.TotalHoursNeeded,
		},
		Suggestions: make([]contract.Suggestion, 0, len(result.Suggestions)),
		Assignments: make([]contract.AssignmentPayload, 0, len(snapshot)),
		GeneratedAt: result.Summary.GeneratedAt,
	}

	for _, sug := range result.Suggestions {
		switch sug.Kind {
		case planner.KindRecommendation:
			lines, _ := s.recommend.Render(ctx, result.Summary, sug.Recommendation.Items)
			resp.Suggestions = append(resp.Suggestions, contract.Suggestion{
				Type:    contract.SuggestionTypeRecommendations,
				Content: lines,
			})
		case planner.KindScheduledWork:
			w := sug.ScheduledWork
			times := make([]time.Time, 0, len(w.Sessions))
			for _, sess := range w.Sessions {
				times = append(times, sess.Start)
			}
			resp.Suggestions = append(resp.Suggestions, contract.Suggestion{
				Type:           contract.SuggestionTypeAssignment,
				AssignmentID:   w.AssignmentID,
				Title:          w.Title,
				EstimatedHours: w.EstimatedHours,
				SuggestedTimes: times,
				Underscheduled: w.Underscheduled,
			})
		}
	}

	for _, a := range snapshot {
		resp.Assignments = append(resp.Assignments, AssignmentToPayload(a))
	}
	return resp
}

func (s *planService) Health(ctx context.Context) contract.AgentHealth {
	health := contract.AgentHealth{
		Status:    contract.HealthHealthy,
		AgentType: "StudyPlannerAgent",
	}
	if s.llmClient == nil {
		health.Status = contract.HealthDegraded
		health.Note = "LLM disabled; recommendations use deterministic templates"
		return health
	}
	health.Model = s.llmClient.Model()
	if !s.llmClient.Available(ctx) {
		health.Status = contract.HealthDegraded
		health.Note = "LLM unreachable; recommendations fall back to deterministic templates"
		return health
	}
	health.LLMAvailable = true
	return health
}

// AssignmentToPayload maps a stored assignment onto its wire shape.
func AssignmentToPayload(a *domain.Assignment) contract.AssignmentPayload {
	p := contract.AssignmentPayload{
		ID:             a.ID,
		UserID:         a.UserID,
		CourseID:       a.CourseID,
		Title:          a.Title,
		Description:    a.Description,
		DueDate:        a.DueAt,
		Priority:       a.Priority,
		EstimatedHours: a.EstimatedHours,
		Status:         string(a.Status),
		Category:       a.Category,
	}
	if !a.CreatedAt.IsZero() {
		created := a.CreatedAt
		p.CreatedAt = &created
	}
	if !a.UpdatedAt.IsZero() {
		updated := a.UpdatedAt
		p.UpdatedAt = &updated
	}
	return p
}

// CourseToPayload maps a stored course onto its wire shape.
func CourseToPayload(c *domain.Course) contract.CoursePayload {
	p := contract.CoursePayload{
		ID:         c.ID,
		UserID:     c.UserID,
		Name:       c.Name,
		Code:       c.Code,
		Credits:    c.Credits,
		Instructor: c.Instructor,
		Semester:   c.Semester,
	}
	if !c.CreatedAt.IsZero() {
		created := c.CreatedAt
		p.CreatedAt = &created
	}
	if !c.UpdatedAt.IsZero() {
		updated := c.UpdatedAt
		p.UpdatedAt = &updated
	}
	return p
}
