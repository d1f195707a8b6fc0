package route

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		path    string
		want    int
		wantErr bool
	}{
		{"/", 0, false},
		{"/day-1", 1, false},
		{"/day-30", 30, false},
		{"/day-0", 0, true},
		{"/day--2", 0, true},
		{"/day-x", 0, true},
		{"/days-3", 0, true},
		{"day-3", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDay(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDay(%q): expected error=%v, got %v", tt.path, tt.wantErr, err)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidPath) {
			t.Errorf("ParseDay(%q): expected ErrInvalidPath, got %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("ParseDay(%q): expected %d, got %d", tt.path, tt.want, got)
		}
	}
}

func TestRouterStartsAtHome(t *testing.T) {
	r := NewRouter(30)
	cur := r.Current()
	if cur.Path != HomePath || cur.Day != 0 {
		t.Errorf("Expected home entry, got %+v", cur)
	}
	if cur.ID == uuid.Nil {
		t.Error("Expected entry to carry an ID")
	}
}

func TestNavigateAndBack(t *testing.T) {
	r := NewRouter(30)

	r.Navigate("/day-3")
	r.Navigate("/day-12")
	if cur := r.Current(); cur.Path != "/day-12" || cur.Day != 12 {
		t.Errorf("Expected /day-12, got %+v", cur)
	}

	hist := r.History()
	if len(hist) != 3 {
		t.Fatalf("Expected 3 history entries, got %d", len(hist))
	}
	seen := map[uuid.UUID]bool{}
	for _, e := range hist {
		if seen[e.ID] {
			t.Errorf("Expected unique IDs, got duplicate %s", e.ID)
		}
		seen[e.ID] = true
	}

	prev, err := r.Back()
	if err != nil || prev.Path != "/day-3" {
		t.Errorf("Expected back to /day-3, got %+v err=%v", prev, err)
	}
	prev, err = r.Back()
	if err != nil || prev.Path != HomePath {
		t.Errorf("Expected back to home, got %+v err=%v", prev, err)
	}
	if _, err := r.Back(); !errors.Is(err, ErrNoHistory) {
		t.Errorf("Expected ErrNoHistory, got %v", err)
	}
}

func TestNavigateRejectsInvalid(t *testing.T) {
	r := NewRouter(30)
	r.Navigate("/day-31")
	r.Navigate("/nowhere")

	if len(r.History()) != 1 {
		t.Errorf("Expected invalid paths dropped, got %d entries", len(r.History()))
	}
	if _, err := r.Push("/day-31"); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("Expected ErrInvalidPath, got %v", err)
	}
}

func TestHistoryIsCopy(t *testing.T) {
	r := NewRouter(30)
	r.Navigate("/day-1")
	hist := r.History()
	hist[1].Path = "/mutated"
	if r.Current().Path != "/day-1" {
		t.Errorf("Expected router history unaffected, got %s", r.Current().Path)
	}
}
