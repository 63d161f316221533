package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hrdesk/internal/domain"
)

// TicketRecordRepository encapsulates the local append-only ticket archive.
// Records are inserted once and never updated or deleted.
type TicketRecordRepository interface {
	Insert(ctx context.Context, record *domain.TicketRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.TicketRecord, error)
	CountByStatus(ctx context.Context, status domain.TicketStatus) (int64, error)
}

type ticketRecordRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRecordRepository instantiates repository.
func NewTicketRecordRepository(pool *pgxpool.Pool) TicketRecordRepository {
	return &ticketRecordRepository{pool: pool}
}

func (r *ticketRecordRepository) Insert(ctx context.Context, record *domain.TicketRecord) error {
	const query = `
        INSERT INTO ticket_records (recorded_at, department, name, rank, category, question, answer, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id`
	ts := record.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return r.pool.QueryRow(ctx, query,
		ts,
		record.Department,
		record.Name,
		record.Rank,
		record.Category,
		record.Question,
		record.Answer,
		record.Status,
	).Scan(&record.ID)
}

func (r *ticketRecordRepository) ListRecent(ctx context.Context, limit int) ([]domain.TicketRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	const query = `
        SELECT id, recorded_at, department, name, rank, category, question, answer, status
        FROM ticket_records
        ORDER BY recorded_at DESC
        LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.TicketRecord
	for rows.Next() {
		var rec domain.TicketRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Timestamp,
			&rec.Department,
			&rec.Name,
			&rec.Rank,
			&rec.Category,
			&rec.Question,
			&rec.Answer,
			&rec.Status,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *ticketRecordRepository) CountByStatus(ctx context.Context, status domain.TicketStatus) (int64, error) {
	const query = `SELECT COUNT(*) FROM ticket_records WHERE status=$1`
	var count int64
	if err := r.pool.QueryRow(ctx, query, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
