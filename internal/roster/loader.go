package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/hrdesk/internal/auth"
	"github.com/spec-kit/hrdesk/internal/config"
	"github.com/spec-kit/hrdesk/internal/domain"
)

// Load reads the roster CSV (name, department, rank, phone) and builds the
// identity store. Malformed rows are skipped; the load succeeds with whatever
// parsed. Built-in fallback accounts and configured override accounts get the
// fixed override password instead of the phone-derived one.
func Load(cfg config.RosterConfig, bcryptCost int, logger *zap.Logger) (*Store, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	store, err := parse(f, cfg, bcryptCost, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("roster loaded", zap.Int("employees", store.Len()), zap.String("path", cfg.Path))
	return store, nil
}

// ParseReader builds a store from an already-open roster stream. Useful when
// the roster does not live on the local filesystem.
func ParseReader(r io.Reader, cfg config.RosterConfig, bcryptCost int, logger *zap.Logger) (*Store, error) {
	return parse(r, cfg, bcryptCost, logger)
}

func parse(r io.Reader, cfg config.RosterConfig, bcryptCost int, logger *zap.Logger) (*Store, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	overrides := make(map[string]struct{}, len(cfg.OverrideAccounts))
	for _, name := range cfg.OverrideAccounts {
		overrides[strings.TrimSpace(name)] = struct{}{}
	}

	employees := make(map[string]domain.Employee)
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			logger.Warn("skipping malformed roster row", zap.Int("line", line), zap.Error(err))
			continue
		}
		if line == 1 && isHeader(record) {
			continue
		}
		if len(record) < 4 {
			logger.Warn("skipping short roster row", zap.Int("line", line), zap.Int("fields", len(record)))
			continue
		}

		name := strings.TrimSpace(record[0])
		if name == "" {
			logger.Warn("skipping roster row without name", zap.Int("line", line))
			continue
		}

		password := domain.DerivePassword(record[3])
		if _, ok := overrides[name]; ok {
			password = cfg.OverridePassword
		}
		hash, err := auth.HashPassword(password, bcryptCost)
		if err != nil {
			logger.Warn("skipping roster row, hash failed", zap.Int("line", line), zap.Error(err))
			continue
		}

		employees[name] = domain.Employee{
			Name:         name,
			Department:   strings.TrimSpace(record[1]),
			Rank:         strings.TrimSpace(record[2]),
			PasswordHash: hash,
		}
	}

	// Fallback accounts exist even when the roster file omits them.
	for _, name := range cfg.OverrideAccounts {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, exists := employees[name]; exists {
			continue
		}
		hash, err := auth.HashPassword(cfg.OverridePassword, bcryptCost)
		if err != nil {
			continue
		}
		employees[name] = domain.Employee{
			Name:         name,
			Department:   "경영지원",
			Rank:         "관리자",
			PasswordHash: hash,
		}
	}

	return NewStore(employees), nil
}

func isHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(record[0]))
	return first == "name" || first == "이름" || first == "성명"
}
