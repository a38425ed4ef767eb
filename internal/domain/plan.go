package domain

import "time"

// PlanTypeTomorrow is the fixed key of the single persisted plan document.
const PlanTypeTomorrow = "tomorrow"

// Plan is the singleton "tomorrow's plan" aggregate: free-text notes plus
// references to deadline ids. References are not owned — a referenced
// deadline may have been deleted since the plan was saved.
type Plan struct {
	Type              string
	Content           string
	SelectedDeadlines []string
	UpdatedAt         time.Time
}
