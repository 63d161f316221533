package session

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/spec-kit/hrdesk/internal/domain"
)

// ErrNotFound is returned when a session id is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Session is the per-connection chat state: the authenticated employee, the
// append-only transcript, and the follow-up confirmation flag.
type Session struct {
	ID               string           `json:"id"`
	Employee         domain.Employee  `json:"employee"`
	Transcript       []domain.Message `json:"transcript"`
	AwaitingFollowUp bool             `json:"awaiting_follow_up"`
}

// New creates a session for an authenticated employee, seeding the transcript
// with the assistant greeting.
func New(employee domain.Employee, greeting string) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		Employee: employee,
	}
	if greeting != "" {
		s.Append(domain.RoleAssistant, greeting)
	}
	return s
}

// Append adds one message to the transcript. The transcript is append-only.
func (s *Session) Append(role domain.MessageRole, content string) {
	s.Transcript = append(s.Transcript, domain.Message{Role: role, Content: content})
}

// Store persists sessions keyed by id. Implementations apply an idle TTL.
type Store interface {
	Put(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
