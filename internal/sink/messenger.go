package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spec-kit/hrdesk/internal/config"
	"github.com/spec-kit/hrdesk/internal/domain"
)

// Messenger posts escalation notices to the team-messaging vendor. The vendor
// API has never been a dependable integration; every call here is best-effort
// and callers are expected to swallow the error after logging it.
type Messenger struct {
	baseURL     string
	token       string
	channelName string
	client      *http.Client
}

// NewMessenger builds the escalation client.
func NewMessenger(cfg config.MessengerConfig) *Messenger {
	return &Messenger{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		token:       cfg.Token,
		channelName: cfg.ChannelName,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether an escalation destination is configured.
func (m *Messenger) Enabled() bool {
	return m.baseURL != "" && m.channelName != ""
}

// Notify resolves the channel id by name and posts a free-text notification
// for a ticket that needs human follow-up.
func (m *Messenger) Notify(ctx context.Context, record domain.TicketRecord) error {
	channelID, err := m.resolveChannel(ctx)
	if err != nil {
		return fmt.Errorf("resolve channel: %w", err)
	}
	return m.postMessage(ctx, channelID, formatEscalation(record))
}

type channelList struct {
	Channels []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"channels"`
}

func (m *Messenger) resolveChannel(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/v1/channels", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+m.token)

	resp, err := m.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("channel listing: status %d", resp.StatusCode)
	}

	var list channelList
	if err := json.Unmarshal(body, &list); err != nil {
		return "", fmt.Errorf("parse channel listing: %w", err)
	}
	for _, ch := range list.Channels {
		if ch.Name == m.channelName {
			return ch.ID, nil
		}
	}
	return "", fmt.Errorf("channel %q not found", m.channelName)
}

func (m *Messenger) postMessage(ctx context.Context, channelID, text string) error {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/v1/channels/%s/messages", m.baseURL, channelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.token)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("post message: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("post message: status %d", resp.StatusCode)
	}
	return nil
}

func formatEscalation(record domain.TicketRecord) string {
	var sb strings.Builder
	sb.WriteString("[민원 접수] 담당자 확인이 필요합니다.\n")
	fmt.Fprintf(&sb, "접수자: %s (%s, %s)\n", record.Name, record.Department, record.Rank)
	fmt.Fprintf(&sb, "분류: %s\n", record.Category)
	fmt.Fprintf(&sb, "문의: %s\n", record.Question)
	fmt.Fprintf(&sb, "접수 시각: %s", record.Timestamp.Format("2006-01-02 15:04:05"))
	return sb.String()
}
