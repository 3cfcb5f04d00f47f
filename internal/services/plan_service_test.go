package services

import (
	"context"
	"errors"
	"testing"

	"plingplan/internal/models/domain_models"
	"plingplan/internal/models/request_models"
	"plingplan/internal/repositories"
	"plingplan/pkg/utils"
)

func newPlanService() PlanServiceInterface {
	return NewPlanService(repositories.NewInMemoryPlanRepository())
}

func mustCreatePlan(t *testing.T, svc PlanServiceInterface, start, end string) *domain_models.Plan {
	t.Helper()
	plan, err := svc.CreatePlan(request_models.CreatePlanRequest{
		Name:      "Trip",
		StartDate: start,
		EndDate:   end,
	}, context.Background())
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	return plan
}

func TestCreatePlan(t *testing.T) {
	svc := newPlanService()
	ctx := context.Background()

	t.Run("defaults end date to start date", func(t *testing.T) {
		plan, err := svc.CreatePlan(request_models.CreatePlanRequest{
			Name:      "Weekend",
			StartDate: "2025-06-01",
		}, ctx)
		if err != nil {
			t.Fatalf("CreatePlan: %v", err)
		}
		if plan.EndDate != "2025-06-01" {
			t.Errorf("EndDate = %q, want start date", plan.EndDate)
		}
		if plan.Theme != domain_models.DefaultPlanTheme {
			t.Errorf("Theme = %q, want default", plan.Theme)
		}
		if plan.Activities == nil || len(plan.Activities) != 0 {
			t.Errorf("Activities should start empty, got %v", plan.Activities)
		}
	})

	t.Run("rejects malformed start date", func(t *testing.T) {
		_, err := svc.CreatePlan(request_models.CreatePlanRequest{
			Name:      "Bad",
			StartDate: "06/01/2025",
		}, ctx)
		if !errors.Is(err, utils.ErrInvalidDateKey) {
			t.Errorf("err = %v, want ErrInvalidDateKey", err)
		}
	})

	t.Run("rejects end before start", func(t *testing.T) {
		_, err := svc.CreatePlan(request_models.CreatePlanRequest{
			Name:      "Backwards",
			StartDate: "2025-06-05",
			EndDate:   "2025-06-01",
		}, ctx)
		if !errors.Is(err, utils.ErrInvalidDateRange) {
			t.Errorf("err = %v, want ErrInvalidDateRange", err)
		}
	})

	t.Run("unknown theme falls back to default", func(t *testing.T) {
		plan, err := svc.CreatePlan(request_models.CreatePlanRequest{
			Name:      "Styled",
			StartDate: "2025-06-01",
			Theme:     "neon",
		}, ctx)
		if err != nil {
			t.Fatalf("CreatePlan: %v", err)
		}
		if plan.Theme != domain_models.DefaultPlanTheme {
			t.Errorf("Theme = %q, want default", plan.Theme)
		}
	})
}

func TestSelectDate(t *testing.T) {
	svc := newPlanService()
	ctx := context.Background()
	plan := mustCreatePlan(t, svc, "2025-06-01", "2025-06-05")

	t.Run("selects a day inside the range", func(t *testing.T) {
		got, err := svc.SelectDate(plan.ID, "2025-06-03", ctx)
		if err != nil {
			t.Fatalf("SelectDate: %v", err)
		}
		if got.SelectedDate != "2025-06-03" {
			t.Errorf("SelectedDate = %q", got.SelectedDate)
		}
	})

	t.Run("rejects a day outside the range", func(t *testing.T) {
		_, err := svc.SelectDate(plan.ID, "2025-07-01", ctx)
		if !errors.Is(err, utils.ErrDateOutsideRange) {
			t.Errorf("err = %v, want ErrDateOutsideRange", err)
		}
	})

	t.Run("empty date clears the selection", func(t *testing.T) {
		got, err := svc.SelectDate(plan.ID, "", ctx)
		if err != nil {
			t.Fatalf("SelectDate: %v", err)
		}
		if got.SelectedDate != "" {
			t.Errorf("SelectedDate = %q, want empty", got.SelectedDate)
		}
	})
}

func TestAddActivityBucketRule(t *testing.T) {
	svc := newPlanService()
	ctx := context.Background()
	plan := mustCreatePlan(t, svc, "2025-06-01", "2025-06-05")

	first, err := svc.AddActivity(plan.ID, request_models.CreateActivityRequest{Name: "Breakfast"}, ctx)
	if err != nil {
		t.Fatalf("AddActivity: %v", err)
	}
	if first.DateKey != "2025-06-01" {
		t.Errorf("no selection: DateKey = %q, want start date", first.DateKey)
	}

	if _, err := svc.SelectDate(plan.ID, "2025-06-03", ctx); err != nil {
		t.Fatalf("SelectDate: %v", err)
	}
	second, err := svc.AddActivity(plan.ID, request_models.CreateActivityRequest{Name: "Museum"}, ctx)
	if err != nil {
		t.Fatalf("AddActivity: %v", err)
	}
	if second.DateKey != "2025-06-03" {
		t.Errorf("with selection: DateKey = %q, want selected date", second.DateKey)
	}
}

func TestAddActivityNormalizesTagsAndCategory(t *testing.T) {
	svc := newPlanService()
	ctx := context.Background()
	plan := mustCreatePlan(t, svc, "2025-06-01", "2025-06-01")

	activity, err := svc.AddActivity(plan.ID, request_models.CreateActivityRequest{
		Name:  "Old Town Walk",
		Tags:  []string{"Hidden Gem", "must", "scenic", "MUST"},
		Types: []string{"tourist_attraction"},
	}, ctx)
	if err != nil {
		t.Fatalf("AddActivity: %v", err)
	}

	if len(activity.Tags) != 2 || activity.Tags[0] != domain_models.TagHiddenGem || activity.Tags[1] != domain_models.TagMust {
		t.Errorf("Tags = %v", activity.Tags)
	}
	if activity.Category != "Attraction" {
		t.Errorf("Category = %q", activity.Category)
	}
}

func TestAddActivityRequiresName(t *testing.T) {
	svc := newPlanService()
	ctx := context.Background()
	plan := mustCreatePlan(t, svc, "2025-06-01", "2025-06-01")

	_, err := svc.AddActivity(plan.ID, request_models.CreateActivityRequest{}, ctx)
	if !errors.Is(err, utils.ErrEmptyActivityName) {
		t.Errorf("err = %v, want ErrEmptyActivityName", err)
	}
}

func TestAcceptSuggestionMintsDistinctActivities(t *testing.T) {
	svc := newPlanService()
	ctx := context.Background()
	plan := mustCreatePlan(t, svc, "2025-06-01", "2025-06-01")

	sug := domain_models.SuggestedActivity{Name: "Night Market", Lat: 0, Lng: 0, Tags: []string{"popular"}}
	first, err := svc.AcceptSuggestion(plan.ID, sug, ctx)
	if err != nil {
		t.Fatalf("AcceptSuggestion: %v", err)
	}
	second, err := svc.AcceptSuggestion(plan.ID, sug, ctx)
	if err != nil {
		t.Fatalf("AcceptSuggestion: %v", err)
	}

	if first.ID == second.ID {
		t.Error("accepting the same suggestion twice must mint distinct activities")
	}
	if first.Lat != 0 || first.Lng != 0 {
		t.Errorf("unresolved coordinates must stay at 0,0: %+v", first)
	}
	if len(first.Tags) != 1 || first.Tags[0] != domain_models.TagPopular {
		t.Errorf("Tags = %v", first.Tags)
	}

	got, err := svc.GetPlan(plan.ID, ctx)
	if err != nil {
		t.Fatalf("GetPlan: %v", err)
	}
	if len(got.Activities) != 2 {
		t.Errorf("plan has %d activities, want 2", len(got.Activities))
	}
}

func TestDayBucketNewestFirst(t *testing.T) {
	svc := newPlanService()
	ctx := context.Background()
	plan := mustCreatePlan(t, svc, "2025-06-01", "2025-06-02")

	for _, name := range []string{"First", "Second", "Third"} {
		if _, err := svc.AddActivity(plan.ID, request_models.CreateActivityRequest{Name: name}, ctx); err != nil {
			t.Fatalf("AddActivity(%s): %v", name, err)
		}
	}
	if _, err := svc.SelectDate(plan.ID, "2025-06-02", ctx); err != nil {
		t.Fatalf("SelectDate: %v", err)
	}
	if _, err := svc.AddActivity(plan.ID, request_models.CreateActivityRequest{Name: "Elsewhere"}, ctx); err != nil {
		t.Fatalf("AddActivity: %v", err)
	}

	bucket, err := svc.DayBucket(plan.ID, "2025-06-01", ctx)
	if err != nil {
		t.Fatalf("DayBucket: %v", err)
	}
	if len(bucket) != 3 {
		t.Fatalf("bucket has %d activities, want 3", len(bucket))
	}
	if bucket[0].Name != "Third" || bucket[1].Name != "Second" || bucket[2].Name != "First" {
		t.Errorf("bucket order = %q %q %q, want newest first", bucket[0].Name, bucket[1].Name, bucket[2].Name)
	}
}

func TestRemoveActivity(t *testing.T) {
	svc := newPlanService()
	ctx := context.Background()
	plan := mustCreatePlan(t, svc, "2025-06-01", "2025-06-01")

	activity, err := svc.AddActivity(plan.ID, request_models.CreateActivityRequest{Name: "Dinner"}, ctx)
	if err != nil {
		t.Fatalf("AddActivity: %v", err)
	}

	if err := svc.RemoveActivity(plan.ID, activity.ID, ctx); err != nil {
		t.Fatalf("RemoveActivity: %v", err)
	}
	if err := svc.RemoveActivity(plan.ID, activity.ID, ctx); !errors.Is(err, utils.ErrActivityNotFound) {
		t.Errorf("second remove err = %v, want ErrActivityNotFound", err)
	}
}

func TestUpdatePlanClearsInvalidSelection(t *testing.T) {
	svc := newPlanService()
	ctx := context.Background()
	plan := mustCreatePlan(t, svc, "2025-06-01", "2025-06-10")

	if _, err := svc.SelectDate(plan.ID, "2025-06-09", ctx); err != nil {
		t.Fatalf("SelectDate: %v", err)
	}

	newEnd := "2025-06-05"
	got, err := svc.UpdatePlan(plan.ID, request_models.UpdatePlanRequest{EndDate: &newEnd}, ctx)
	if err != nil {
		t.Fatalf("UpdatePlan: %v", err)
	}
	if got.SelectedDate != "" {
		t.Errorf("SelectedDate = %q, want cleared after range shrank", got.SelectedDate)
	}
}

func TestPlanNotFound(t *testing.T) {
	svc := newPlanService()
	ctx := context.Background()

	if _, err := svc.GetPlan("missing", ctx); !errors.Is(err, utils.ErrPlanNotFound) {
		t.Errorf("GetPlan err = %v, want ErrPlanNotFound", err)
	}
	if err := svc.DeletePlan("missing", ctx); !errors.Is(err, utils.ErrPlanNotFound) {
		t.Errorf("DeletePlan err = %v, want ErrPlanNotFound", err)
	}
}
