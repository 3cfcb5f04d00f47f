package domain_models

// City is the optional destination attached to a plan.
type City struct {
	Name    string  `json:"name"`
	State   string  `json:"state,omitempty"`
	Country string  `json:"country,omitempty"`
	Lat     float64 `json:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty"`
}

// PlanThemes are the selectable background themes from the create form.
var PlanThemes = []string{"purple", "blue", "green", "orange", "teal", "pink"}

const DefaultPlanTheme = "purple"

func IsValidTheme(theme string) bool {
	for _, t := range PlanThemes {
		if t == theme {
			return true
		}
	}
	return false
}

// Plan is the itinerary container. Dates are plain YYYY-MM-DD keys in local
// calendar terms; SelectedDate is empty when no day is picked. Activities are
// kept most-recently-added first.
type Plan struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	StartDate    string     `json:"startDate"`
	EndDate      string     `json:"endDate"`
	City         *City      `json:"city,omitempty"`
	Image        string     `json:"image,omitempty"`
	Theme        string     `json:"theme"`
	SelectedDate string     `json:"selectedDate,omitempty"`
	Activities   []Activity `json:"activities"`
	CreatedAt    int64      `json:"createdAt"`
	UpdatedAt    int64      `json:"updatedAt"`
}

// InsertDateKey is the day bucket a new activity lands in: the currently
// selected day, or the plan's start date when none is selected.
func (p *Plan) InsertDateKey() string {
	if p.SelectedDate != "" {
		return p.SelectedDate
	}
	return p.StartDate
}

// ContainsDate reports whether key falls inside [StartDate, EndDate].
// Zero-padded ISO keys compare correctly as strings.
func (p *Plan) ContainsDate(key string) bool {
	return key >= p.StartDate && key <= p.EndDate
}

// DayBucket returns the activities assigned to key, preserving the plan's
// most-recently-added-first order.
func (p *Plan) DayBucket(key string) []Activity {
	bucket := make([]Activity, 0)
	for _, a := range p.Activities {
		if a.DateKey == key {
			bucket = append(bucket, a)
		}
	}
	return bucket
}

// Clone returns a deep copy so repository callers never share slices with the
// stored plan.
func (p *Plan) Clone() *Plan {
	cp := *p
	if p.City != nil {
		city := *p.City
		cp.City = &city
	}
	cp.Activities = make([]Activity, len(p.Activities))
	copy(cp.Activities, p.Activities)
	for i := range cp.Activities {
		if p.Activities[i].Tags != nil {
			cp.Activities[i].Tags = append([]Tag(nil), p.Activities[i].Tags...)
		}
		if p.Activities[i].Types != nil {
			cp.Activities[i].Types = append([]string(nil), p.Activities[i].Types...)
		}
	}
	return &cp
}
