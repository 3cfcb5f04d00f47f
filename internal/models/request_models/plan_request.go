package request_models

type CityInput struct {
	Name    string  `json:"name" binding:"required"`
	State   string  `json:"state"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type CreatePlanRequest struct {
	Name      string     `json:"name" binding:"required"`
	StartDate string     `json:"startDate" binding:"required"`
	EndDate   string     `json:"endDate"`
	City      *CityInput `json:"city"`
	Image     string     `json:"image"`
	Theme     string     `json:"theme"`
}

type UpdatePlanRequest struct {
	Name      *string    `json:"name"`
	StartDate *string    `json:"startDate"`
	EndDate   *string    `json:"endDate"`
	City      *CityInput `json:"city"`
	Image     *string    `json:"image"`
	Theme     *string    `json:"theme"`
}

// SelectDateRequest picks the plan's current day; an empty date clears the
// selection so new activities fall back to the start date.
type SelectDateRequest struct {
	Date string `json:"date"`
}
