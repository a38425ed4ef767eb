package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shardulsaptarshi/deadlines-website/internal/domain"
	"github.com/shardulsaptarshi/deadlines-website/internal/status"
)

// DueDate parses dueDate from JSON as either date-only ("2006-01-02") or an
// RFC3339 datetime. Either way only the calendar day is kept, as midnight UTC.
type DueDate struct{ t *time.Time }

func (d *DueDate) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			day := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			d.t = &day
			return nil
		}
	}
	return fmt.Errorf("dueDate: use date (YYYY-MM-DD) or RFC3339 datetime")
}

// Ptr returns the parsed day, or nil if absent.
func (d DueDate) Ptr() *time.Time { return d.t }

// DeadlineRequest is the body of both create and update: update fully
// replaces title, description, dueDate and dueTime.
type DeadlineRequest struct {
	Title       string  `json:"title" binding:"max=200"`
	Description string  `json:"description" binding:"max=2000"`
	DueDate     DueDate `json:"dueDate"`
	DueTime     *string `json:"dueTime"` // "HH:MM" or null
}

// DeadlineStatus is derived per request, never stored.
type DeadlineStatus struct {
	Bucket status.Bucket `json:"bucket"`
	Label  string        `json:"label"`
}

type DeadlineResponse struct {
	ID             uuid.UUID      `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	DueDate        time.Time      `json:"dueDate"`
	DueTime        *string        `json:"dueTime"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	Status         DeadlineStatus `json:"status"`
	ElapsedPercent int            `json:"elapsedPercent"`
}

// NewDeadlineResponse builds the wire form of a deadline, evaluating the
// status engine at the given time.
func NewDeadlineResponse(d domain.Deadline, now time.Time) DeadlineResponse {
	bucket, label := status.Classify(d.DueDate, now)
	return DeadlineResponse{
		ID:             d.ID,
		Title:          d.Title,
		Description:    d.Description,
		DueDate:        d.DueDate,
		DueTime:        d.DueTime,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		Status:         DeadlineStatus{Bucket: bucket, Label: label},
		ElapsedPercent: status.ElapsedPercent(d.DueDate, d.CreatedAt, now),
	}
}

// NewDeadlineResponses maps a list, sharing one evaluation time so a page of
// results is classified consistently.
func NewDeadlineResponses(list []domain.Deadline, now time.Time) []DeadlineResponse {
	out := make([]DeadlineResponse, len(list))
	for i := range list {
		out[i] = NewDeadlineResponse(list[i], now)
	}
	return out
}
