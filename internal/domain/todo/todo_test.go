package todo

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-stream/internal/domain"
)

// requireValidationField is a test helper that asserts err wraps domain.ErrValidation
// and the resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	td := New("Study")

	if td.Title != "Study" {
		t.Errorf("Title = %q, want %q", td.Title, "Study")
	}
	if td.IsDone {
		t.Error("IsDone = true, want false for a new to-do")
	}
	if td.ID == uuid.Nil {
		t.Error("ID = uuid.Nil, want a generated ID")
	}
	if other := New("Study"); other.ID == td.ID {
		t.Errorf("two New() calls produced the same ID %s", td.ID)
	}
}

func TestToDo_Equal(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	base := ToDo{ID: id, Title: "Study", IsDone: false}

	tests := []struct {
		name  string
		other ToDo
		want  bool
	}{
		{
			name:  "identical values",
			other: ToDo{ID: id, Title: "Study", IsDone: false},
			want:  true,
		},
		{
			name:  "different id",
			other: ToDo{ID: uuid.New(), Title: "Study", IsDone: false},
			want:  false,
		},
		{
			name:  "different title",
			other: ToDo{ID: id, Title: "Clean room", IsDone: false},
			want:  false,
		},
		{
			name:  "different completion",
			other: ToDo{ID: id, Title: "Study", IsDone: true},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToDo_Status(t *testing.T) {
	t.Parallel()

	if got := (ToDo{IsDone: false}).Status(); got != StatusPending {
		t.Errorf("Status() = %q, want %q", got, StatusPending)
	}
	if got := (ToDo{IsDone: true}).Status(); got != StatusDone {
		t.Errorf("Status() = %q, want %q", got, StatusDone)
	}
}

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status Status
		want   bool
	}{
		{StatusPending, true},
		{StatusDone, true},
		{"", false},
		{"in_progress", false},
		{"Done", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("Status(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestToDo_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid to-do passes", func(t *testing.T) {
		t.Parallel()
		if err := New("Wash dishes").Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("blank title", func(t *testing.T) {
		t.Parallel()
		requireValidationField(t, New("   ").Validate(), "title")
	})

	t.Run("nil id", func(t *testing.T) {
		t.Parallel()
		requireValidationField(t, ToDo{Title: "Study"}.Validate(), "id")
	})
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{in: "pending", want: StatusPending},
		{in: " Done ", want: StatusDone},
		{in: "in_progress", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseStatus(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
