package roster

import (
	"strings"

	"github.com/spec-kit/hrdesk/internal/auth"
	"github.com/spec-kit/hrdesk/internal/domain"
	apperrors "github.com/spec-kit/hrdesk/pkg/util"
)

// Store is the read-only in-memory identity table. Loaded once at startup;
// safe for concurrent use without locking.
type Store struct {
	employees map[string]domain.Employee
}

// NewStore wraps a parsed employee table.
func NewStore(employees map[string]domain.Employee) *Store {
	return &Store{employees: employees}
}

// Len reports the number of loaded employees.
func (s *Store) Len() int {
	return len(s.employees)
}

// Authenticate verifies name and password against the roster. The name is
// whitespace-trimmed and matched case-sensitively. Unknown name and wrong
// password return the same generic failure.
func (s *Store) Authenticate(name, password string) (domain.Employee, error) {
	emp, ok := s.employees[strings.TrimSpace(name)]
	if !ok {
		return domain.Employee{}, apperrors.NewAuthFailed()
	}
	if err := auth.ComparePassword(emp.PasswordHash, password); err != nil {
		return domain.Employee{}, apperrors.NewAuthFailed()
	}
	return emp, nil
}

// Lookup returns the employee without checking credentials.
func (s *Store) Lookup(name string) (domain.Employee, bool) {
	emp, ok := s.employees[strings.TrimSpace(name)]
	return emp, ok
}
