package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spec-kit/hrdesk/internal/config"
	"github.com/spec-kit/hrdesk/internal/domain"
)

// SheetClient appends ticket rows to the shared spreadsheet service. Delivery
// is at-most-once: callers log failures and move on, nothing is retried.
type SheetClient struct {
	baseURL   string
	sheetID   string
	worksheet string
	token     string
	client    *http.Client
}

// NewSheetClient builds the append-row client.
func NewSheetClient(cfg config.SheetConfig) *SheetClient {
	return &SheetClient{
		baseURL:   cfg.BaseURL,
		sheetID:   cfg.SheetID,
		worksheet: cfg.Worksheet,
		token:     cfg.Token,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether a sheet destination is configured at all.
func (s *SheetClient) Enabled() bool {
	return s.baseURL != "" && s.sheetID != ""
}

// AppendRow appends one ticket record to the worksheet.
// Row shape: timestamp, department, name, rank, category, question, answer, status.
func (s *SheetClient) AppendRow(ctx context.Context, record domain.TicketRecord) error {
	payload, err := json.Marshal(map[string]any{
		"values": []string{
			record.Timestamp.Format("2006-01-02 15:04:05"),
			record.Department,
			record.Name,
			record.Rank,
			record.Category,
			record.Question,
			record.Answer,
			string(record.Status),
		},
	})
	if err != nil {
		return fmt.Errorf("marshal row: %w", err)
	}

	url := fmt.Sprintf("%s/sheets/%s/worksheets/%s/rows", s.baseURL, s.sheetID, s.worksheet)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sheet append: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sheet append: status %d", resp.StatusCode)
	}
	return nil
}
