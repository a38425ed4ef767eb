package dto

import (
	"encoding/json"
	"testing"
	"time"

	dom "github.com/shardulsaptarshi/deadlines-website/internal/domain"
	"github.com/shardulsaptarshi/deadlines-website/internal/status"
)

func TestDueDateUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"date only", `"2024-01-10"`, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", `"2024-01-10T18:30:00Z"`, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)},
		{"no zone", `"2024-01-10T18:30:00"`, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d DueDate
			if err := json.Unmarshal([]byte(tc.in), &d); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if d.Ptr() == nil || !d.Ptr().Equal(tc.want) {
				t.Fatalf("got %v, want %v", d.Ptr(), tc.want)
			}
		})
	}
}

func TestDueDateUnmarshalAbsent(t *testing.T) {
	for _, in := range []string{`null`, `""`, `"  "`} {
		var d DueDate
		if err := json.Unmarshal([]byte(in), &d); err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if d.Ptr() != nil {
			t.Fatalf("%s: want nil, got %v", in, d.Ptr())
		}
	}
}

func TestDueDateUnmarshalInvalid(t *testing.T) {
	var d DueDate
	if err := json.Unmarshal([]byte(`"next tuesday"`), &d); err == nil {
		t.Fatal("want error for unparseable date")
	}
}

func TestNewDeadlineResponseDerivesStatus(t *testing.T) {
	now := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
	d := dom.Deadline{
		Title:     "Essay",
		DueDate:   time.Date(2024, time.January, 11, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC),
	}

	resp := NewDeadlineResponse(d, now)
	if resp.Status.Bucket != status.BucketUpcoming || resp.Status.Label != "Tomorrow" {
		t.Fatalf("status = %+v, want upcoming/Tomorrow", resp.Status)
	}
	if resp.ElapsedPercent != 75 {
		t.Fatalf("elapsed = %d, want 75", resp.ElapsedPercent)
	}
}
