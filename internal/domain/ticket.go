package domain

import "time"

// TicketStatus is terminal from this system's perspective: a turn either
// resolved the question or flagged it for human follow-up.
type TicketStatus string

const (
	TicketStatusResolved      TicketStatus = "RESOLVED"
	TicketStatusNeedsFollowUp TicketStatus = "NEEDS_FOLLOWUP"
)

// DefaultCategory is assigned when the model reply carries no category tag.
const DefaultCategory = "기타"

// DefaultCategories is the classification vocabulary offered to the model.
var DefaultCategories = []string{
	"시설/수리",
	"입사/퇴사",
	"업무/규정",
	"복지/휴가",
	"불만/건의",
	DefaultCategory,
}

// TicketRecord is one classified, logged question/answer exchange. Records are
// append-only; nothing in this system updates or deletes them.
type TicketRecord struct {
	ID         string
	Timestamp  time.Time
	Department string
	Name       string
	Rank       string
	Category   string
	Question   string
	Answer     string
	Status     TicketStatus
}
