package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hrdesk/internal/domain"
)

func TestNew_SeedsGreeting(t *testing.T) {
	emp := domain.Employee{Name: "Kim", Department: "총무팀", Rank: "대리"}
	s := New(emp, "안녕하세요!")

	require.Len(t, s.Transcript, 1)
	assert.Equal(t, domain.RoleAssistant, s.Transcript[0].Role)
	assert.Equal(t, "안녕하세요!", s.Transcript[0].Content)
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.AwaitingFollowUp)
}

func TestNew_NoGreeting(t *testing.T) {
	s := New(domain.Employee{Name: "Kim"}, "")
	assert.Empty(t, s.Transcript)
}

func TestAppend_IsOrdered(t *testing.T) {
	s := New(domain.Employee{Name: "Kim"}, "hello")
	s.Append(domain.RoleUser, "question")
	s.Append(domain.RoleAssistant, "answer")

	require.Len(t, s.Transcript, 3)
	assert.Equal(t, domain.RoleUser, s.Transcript[1].Role)
	assert.Equal(t, "answer", s.Transcript[2].Content)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	s := New(domain.Employee{Name: "Kim"}, "hi")
	require.NoError(t, store.Put(ctx, s))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, "Kim", got.Employee.Name)
}

func TestMemoryStore_GetUnknown(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	s := New(domain.Employee{Name: "Kim"}, "hi")
	require.NoError(t, store.Put(ctx, s))
	require.NoError(t, store.Delete(ctx, s.ID))

	_, err := store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
