package dto

import (
	"time"

	"github.com/shardulsaptarshi/deadlines-website/internal/domain"
)

// SavePlanRequest is a full overwrite: omitted fields reset to empty.
type SavePlanRequest struct {
	Content           string   `json:"content"`
	SelectedDeadlines []string `json:"selectedDeadlines"`
}

type PlanResponse struct {
	Content           string    `json:"content"`
	SelectedDeadlines []string  `json:"selectedDeadlines"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func NewPlanResponse(p domain.Plan) PlanResponse {
	selected := p.SelectedDeadlines
	if selected == nil {
		selected = []string{}
	}
	return PlanResponse{
		Content:           p.Content,
		SelectedDeadlines: selected,
		UpdatedAt:         p.UpdatedAt,
	}
}
