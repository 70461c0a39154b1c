// Package notify is the user-facing toast channel. Every mutating store
// operation reports its outcome here, fire-and-forget.
package notify

import (
	"sync"
	"time"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is one toast: a severity plus title and description.
type Notification struct {
	Severity    Severity  `json:"severity"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	At          time.Time `json:"at"`
}

// Sink receives notifications for a user. Implementations must not block.
type Sink interface {
	Success(userID, title, description string)
	Error(userID, title, description string)
}

const ringSize = 50

// Memory keeps a bounded per-user ring of recent notifications, oldest
// dropped first.
type Memory struct {
	mu     sync.Mutex
	recent map[string][]Notification
}

func NewMemory() *Memory {
	return &Memory{recent: make(map[string][]Notification)}
}

func (m *Memory) Success(userID, title, description string) {
	m.push(userID, Notification{Severity: SeveritySuccess, Title: title, Description: description, At: time.Now().UTC()})
}

func (m *Memory) Error(userID, title, description string) {
	m.push(userID, Notification{Severity: SeverityError, Title: title, Description: description, At: time.Now().UTC()})
}

// Recent returns the user's notifications, newest first.
func (m *Memory) Recent(userID string) []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	src := m.recent[userID]
	out := make([]Notification, 0, len(src))
	for i := len(src) - 1; i >= 0; i-- {
		out = append(out, src[i])
	}
	return out
}

// Clear drops the user's buffered notifications (sign-out reset).
func (m *Memory) Clear(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.recent, userID)
}

func (m *Memory) push(userID string, n Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := append(m.recent[userID], n)
	if len(list) > ringSize {
		list = list[len(list)-ringSize:]
	}
	m.recent[userID] = list
}
