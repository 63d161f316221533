package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/hrdesk/internal/config"
	"github.com/spec-kit/hrdesk/internal/domain"
	"github.com/spec-kit/hrdesk/internal/events"
	"github.com/spec-kit/hrdesk/internal/observability"
	"github.com/spec-kit/hrdesk/internal/session"
)

// Completer is the chat-completion dependency.
type Completer interface {
	Complete(ctx context.Context, system string, transcript []domain.Message) (string, error)
}

// KnowledgeSource yields the cached knowledge blob.
type KnowledgeSource interface {
	Load() domain.KnowledgeBlob
}

// Service runs one chat turn end to end: model call, tag extraction, ticket
// publication. Everything past extraction is fire-and-forget.
type Service struct {
	cfg        config.ChatConfig
	completer  Completer
	knowledge  KnowledgeSource
	sessions   session.Store
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// Dependencies bundles the turn pipeline collaborators.
type Dependencies struct {
	Completer  Completer
	Knowledge  KnowledgeSource
	Sessions   session.Store
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
}

// NewService builds the chat service.
func NewService(cfg config.ChatConfig, logger *zap.Logger, deps Dependencies) *Service {
	return &Service{
		cfg:        cfg,
		completer:  deps.Completer,
		knowledge:  deps.Knowledge,
		sessions:   deps.Sessions,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		metrics:    deps.Metrics,
	}
}

// TurnResult is what one chat turn returns to the transport layer.
type TurnResult struct {
	Reply          string
	Category       string
	Status         domain.TicketStatus
	FollowUpPrompt string
	Closed         bool
}

// Turn processes one user message. The turn always completes from the user's
// perspective: a model failure degrades to the apology reply, and sink or
// escalation failures never surface here.
func (s *Service) Turn(ctx context.Context, sess *session.Session, userMessage string) (*TurnResult, error) {
	userMessage = strings.TrimSpace(userMessage)

	if sess.AwaitingFollowUp && isClosing(userMessage) {
		sess.Append(domain.RoleUser, userMessage)
		sess.Append(domain.RoleAssistant, s.cfg.Farewell)
		sess.AwaitingFollowUp = false
		if err := s.sessions.Put(ctx, sess); err != nil {
			return nil, err
		}
		return &TurnResult{Reply: s.cfg.Farewell, Closed: true}, nil
	}

	sess.Append(domain.RoleUser, userMessage)

	system := BuildSystemPrompt(s.cfg, s.knowledge.Load(), sess.Employee)
	raw, err := s.completer.Complete(ctx, system, sess.Transcript)
	if err != nil {
		s.metrics.RecordModelFailure()
		s.logger.Warn("model call failed, degrading reply",
			zap.String("session_id", sess.ID),
			zap.Error(err))
		raw = s.cfg.ApologyReply
	}

	extracted := Extract(raw)
	sess.Append(domain.RoleAssistant, extracted.Clean)
	sess.AwaitingFollowUp = true
	if err := s.sessions.Put(ctx, sess); err != nil {
		return nil, err
	}

	record := domain.TicketRecord{
		ID:         uuid.NewString(),
		Timestamp:  time.Now(),
		Department: sess.Employee.Department,
		Name:       sess.Employee.Name,
		Rank:       sess.Employee.Rank,
		Category:   extracted.Category,
		Question:   userMessage,
		Answer:     extracted.Clean,
		Status:     extracted.Status(),
	}
	s.publish(ctx, record)
	s.metrics.RecordTurn()

	return &TurnResult{
		Reply:          extracted.Clean,
		Category:       extracted.Category,
		Status:         extracted.Status(),
		FollowUpPrompt: s.cfg.FollowUpPrompt,
	}, nil
}

func (s *Service) publish(ctx context.Context, record domain.TicketRecord) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventTicketRecorded,
		Timestamp: record.Timestamp,
		Record:    record,
	}
	_ = s.dispatcher.Publish(ctx, event)

	if record.Status == domain.TicketStatusNeedsFollowUp {
		event.ID = uuid.NewString()
		event.Type = events.EventTicketEscalated
		_ = s.dispatcher.Publish(ctx, event)
	}
}

// closingPhrases end the "anything else?" confirmation without a model call.
var closingPhrases = map[string]struct{}{
	"아니요":  {},
	"아니오":  {},
	"아뇨":   {},
	"없어요":  {},
	"없습니다": {},
	"괜찮아요": {},
	"no":   {},
	"nope": {},
}

func isClosing(message string) bool {
	normalized := strings.ToLower(strings.TrimRight(strings.TrimSpace(message), ".!"))
	_, ok := closingPhrases[normalized]
	return ok
}
