package dto

import (
	"encoding/json"
	"testing"
	"time"

	dom "github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/domain"
)

func TestDueDateUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *time.Time
		wantErr bool
	}{
		{"null", `null`, nil, false},
		{"empty string", `""`, nil, false},
		{"date only", `"2026-02-19"`, ptr(time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC)), false},
		{"rfc3339", `"2026-02-19T14:30:00Z"`, ptr(time.Date(2026, 2, 19, 14, 30, 0, 0, time.UTC)), false},
		{"garbage", `"not-a-date"`, nil, true},
		{"number", `42`, nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d DueDate
			err := json.Unmarshal([]byte(tc.input), &d)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			got := d.Ptr()
			switch {
			case tc.want == nil && got != nil:
				t.Errorf("got %v, want nil", got)
			case tc.want != nil && (got == nil || !got.Equal(*tc.want)):
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCreateTaskRequestDraftDefaults(t *testing.T) {
	req := CreateTaskRequest{Title: "  Buy milk  ", ProjectID: "3"}
	draft := req.Draft()
	if draft.Title != "Buy milk" {
		t.Errorf("title not trimmed: %q", draft.Title)
	}
	if draft.Priority != dom.PriorityMedium {
		t.Errorf("priority default: got %s", draft.Priority)
	}
	if draft.Completed {
		t.Error("draft must start incomplete")
	}
	if draft.DueAt != nil {
		t.Error("no due date expected")
	}
}

func TestUpdateTaskRequestPatchPresence(t *testing.T) {
	var req UpdateTaskRequest
	if err := json.Unmarshal([]byte(`{"completed": true}`), &req); err != nil {
		t.Fatal(err)
	}
	patch := req.Patch()
	if patch.Completed == nil || !*patch.Completed {
		t.Error("completed must be present")
	}
	if patch.Title != nil || patch.Priority != nil || patch.ProjectID != nil || patch.DueAtSet {
		t.Error("absent fields must not appear in the patch")
	}

	req = UpdateTaskRequest{}
	if err := json.Unmarshal([]byte(`{"due_date": ""}`), &req); err != nil {
		t.Fatal(err)
	}
	patch = req.Patch()
	if !patch.DueAtSet || patch.DueAt != nil {
		t.Error("empty due_date must clear the due date")
	}

	req = UpdateTaskRequest{}
	if err := json.Unmarshal([]byte(`{"title": "new"}`), &req); err != nil {
		t.Fatal(err)
	}
	patch = req.Patch()
	if patch.DueAtSet {
		t.Error("absent due_date must keep the current value")
	}
	if patch.Title == nil || *patch.Title != "new" {
		t.Error("title must be present")
	}
}

func ptr(t time.Time) *time.Time { return &t }
