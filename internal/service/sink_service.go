package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/hrdesk/internal/events"
	"github.com/spec-kit/hrdesk/internal/observability"
	"github.com/spec-kit/hrdesk/internal/repository"
	"github.com/spec-kit/hrdesk/internal/sink"
)

// SinkService delivers ticket records to the external sheet, the optional
// local archive, and the escalation channel. Every delivery is best-effort:
// failures are logged and counted, never propagated. The worst outcome is
// "the user got an answer but it was never logged."
type SinkService struct {
	dispatcher events.Dispatcher
	sheet      *sink.SheetClient
	messenger  *sink.Messenger
	archive    repository.TicketRecordRepository
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// SinkDependencies bundles delivery targets.
type SinkDependencies struct {
	Dispatcher events.Dispatcher
	Sheet      *sink.SheetClient
	Messenger  *sink.Messenger
	Archive    repository.TicketRecordRepository
	Metrics    *observability.Metrics
}

// NewSinkService creates the service.
func NewSinkService(logger *zap.Logger, deps SinkDependencies) *SinkService {
	return &SinkService{
		dispatcher: deps.Dispatcher,
		sheet:      deps.Sheet,
		messenger:  deps.Messenger,
		archive:    deps.Archive,
		logger:     logger,
		metrics:    deps.Metrics,
	}
}

// RegisterHandlers subscribes to pipeline events.
func (s *SinkService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Subscribe(events.EventTicketRecorded, s.handleTicketRecorded)
	s.dispatcher.Subscribe(events.EventTicketEscalated, s.handleTicketEscalated)
}

func (s *SinkService) handleTicketRecorded(ctx context.Context, event events.Event) error {
	record := event.Record

	if s.sheet != nil && s.sheet.Enabled() {
		if err := s.sheet.AppendRow(ctx, record); err != nil {
			s.metrics.RecordSinkFailure()
			s.logger.Warn("sheet append failed",
				zap.String("ticket_id", record.ID),
				zap.Error(err))
		}
	}

	if s.archive != nil {
		if err := s.archive.Insert(ctx, &record); err != nil {
			s.metrics.RecordSinkFailure()
			s.logger.Warn("ticket archive insert failed",
				zap.String("ticket_id", record.ID),
				zap.Error(err))
		}
	}

	return nil
}

func (s *SinkService) handleTicketEscalated(ctx context.Context, event events.Event) error {
	if s.messenger == nil || !s.messenger.Enabled() {
		return nil
	}
	if err := s.messenger.Notify(ctx, event.Record); err != nil {
		s.metrics.RecordEscalationFailure()
		s.logger.Warn("escalation notify failed",
			zap.String("ticket_id", event.Record.ID),
			zap.String("category", event.Record.Category),
			zap.Error(err))
	}
	return nil
}
