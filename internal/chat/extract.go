package chat

import (
	"regexp"
	"strings"

	"github.com/spec-kit/hrdesk/internal/domain"
)

var (
	categoryRe = regexp.MustCompile(`\[CATEGORY:([^\]]*)\]`)
	actionRe   = regexp.MustCompile(`\[ACTION\]`)
	// legacyRe matches markers produced by earlier prompt revisions. They
	// carry no meaning beyond "strip before display", except 민원접수 which
	// predates [ACTION] and still signals follow-up.
	legacyInfoRe   = regexp.MustCompile(`\[INFO\]`)
	legacyActionRe = regexp.MustCompile(`\[민원접수\]`)
)

// ExtractResult is the parsed form of one raw model reply.
type ExtractResult struct {
	Clean         string
	Category      string
	NeedsFollowUp bool
}

// Extract parses the control tags out of a raw model reply. Pure and total:
// never fails, and feeding Clean back in returns it unchanged with defaults.
//
// Only the first [CATEGORY:...] marker is honored and removed; any later
// category markers are left as literal text. This mirrors the long-standing
// first-match behavior downstream consumers rely on.
func Extract(raw string) ExtractResult {
	result := ExtractResult{Category: domain.DefaultCategory}
	text := raw

	if loc := categoryRe.FindStringSubmatchIndex(text); loc != nil {
		value := strings.TrimSpace(text[loc[2]:loc[3]])
		if value != "" {
			result.Category = value
		}
		text = text[:loc[0]] + text[loc[1]:]
	}

	if actionRe.MatchString(text) || legacyActionRe.MatchString(text) {
		result.NeedsFollowUp = true
	}
	text = actionRe.ReplaceAllString(text, "")
	text = legacyInfoRe.ReplaceAllString(text, "")
	text = legacyActionRe.ReplaceAllString(text, "")

	result.Clean = strings.TrimSpace(text)
	return result
}

// Status maps the follow-up flag onto the ticket status vocabulary.
func (r ExtractResult) Status() domain.TicketStatus {
	if r.NeedsFollowUp {
		return domain.TicketStatusNeedsFollowUp
	}
	return domain.TicketStatusResolved
}
