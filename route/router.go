// =======================
// route/router.go
// =======================

// Package route is the in-process router the globe navigates through.
package route

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	HomePath  = "/"
	dayPrefix = "/day-"
)

var (
	// ErrInvalidPath indicates a path that names no known page.
	ErrInvalidPath = errors.New("invalid route path")

	// ErrNoHistory indicates Back was called on the first entry.
	ErrNoHistory = errors.New("no earlier route in history")
)

// Entry is one visited page.
type Entry struct {
	ID   uuid.UUID
	Path string
	Day  int // 1-based, 0 for home
	At   time.Time
}

// Router keeps a navigation history starting at the home page.
type Router struct {
	mu      sync.RWMutex
	history []Entry
	maxDay  int
	now     func() time.Time
}

// NewRouter creates a router accepting /day-1 through /day-maxDay.
func NewRouter(maxDay int) *Router {
	r := &Router{maxDay: maxDay, now: time.Now}
	r.history = []Entry{{ID: uuid.New(), Path: HomePath, At: r.now()}}
	return r
}

// ParseDay returns the day number named by path, or 0 for the home page.
func ParseDay(path string) (int, error) {
	if path == HomePath {
		return 0, nil
	}
	if !strings.HasPrefix(path, dayPrefix) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	day, err := strconv.Atoi(strings.TrimPrefix(path, dayPrefix))
	if err != nil || day < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return day, nil
}

// Push validates path and appends it to the history.
func (r *Router) Push(path string) (Entry, error) {
	day, err := ParseDay(path)
	if err != nil {
		return Entry{}, err
	}
	if day > r.maxDay {
		return Entry{}, fmt.Errorf("%w: %q beyond day %d", ErrInvalidPath, path, r.maxDay)
	}

	e := Entry{ID: uuid.New(), Path: path, Day: day, At: r.now()}
	r.mu.Lock()
	r.history = append(r.history, e)
	r.mu.Unlock()
	return e, nil
}

// Navigate pushes path and logs failures. Callers get no result.
func (r *Router) Navigate(path string) {
	e, err := r.Push(path)
	if err != nil {
		log.Printf("route: navigate failed: %v", err)
		return
	}
	log.Printf("route: %s -> %s", e.ID, e.Path)
}

// Back drops the current entry and returns the one before it.
func (r *Router) Back() (Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) < 2 {
		return r.history[0], ErrNoHistory
	}
	r.history = r.history[:len(r.history)-1]
	return r.history[len(r.history)-1], nil
}

// Current returns the page on top of the history.
func (r *Router) Current() Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.history[len(r.history)-1]
}

// History returns a copy of all entries, oldest first.
func (r *Router) History() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, len(r.history))
	copy(out, r.history)
	return out
}
