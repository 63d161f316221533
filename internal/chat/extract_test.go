package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/hrdesk/internal/domain"
)

func TestExtract_CategoryAndAction(t *testing.T) {
	raw := "[ACTION]법인차량은 총무팀에 문의하세요.[CATEGORY:시설/수리]"
	result := Extract(raw)

	assert.Equal(t, "법인차량은 총무팀에 문의하세요.", result.Clean)
	assert.Equal(t, "시설/수리", result.Category)
	assert.True(t, result.NeedsFollowUp)
	assert.Equal(t, domain.TicketStatusNeedsFollowUp, result.Status())
	assert.NotContains(t, result.Clean, "[")
}

func TestExtract_NoTags(t *testing.T) {
	result := Extract("연차는 입사일 기준으로 계산됩니다.")

	assert.Equal(t, "연차는 입사일 기준으로 계산됩니다.", result.Clean)
	assert.Equal(t, "기타", result.Category)
	assert.False(t, result.NeedsFollowUp)
	assert.Equal(t, domain.TicketStatusResolved, result.Status())
}

func TestExtract_CategoryTrimmed(t *testing.T) {
	result := Extract("답변입니다 [CATEGORY: 복지/휴가 ]")
	assert.Equal(t, "복지/휴가", result.Category)
	assert.Equal(t, "답변입니다", result.Clean)
}

func TestExtract_EmptyCategoryFallsBack(t *testing.T) {
	result := Extract("답변 [CATEGORY:]")
	assert.Equal(t, domain.DefaultCategory, result.Category)
	assert.Equal(t, "답변", result.Clean)
}

func TestExtract_OnlyFirstCategoryHonored(t *testing.T) {
	result := Extract("앞부분 [CATEGORY:시설/수리] 중간 [CATEGORY:기타] 끝")

	assert.Equal(t, "시설/수리", result.Category)
	// The second marker is left as literal text, matching historical behavior.
	assert.Contains(t, result.Clean, "[CATEGORY:기타]")
	assert.NotContains(t, result.Clean, "[CATEGORY:시설/수리]")
}

func TestExtract_LegacyInfoMarkerStripped(t *testing.T) {
	result := Extract("[INFO]사내 규정 안내입니다.")

	assert.Equal(t, "사내 규정 안내입니다.", result.Clean)
	assert.False(t, result.NeedsFollowUp)
}

func TestExtract_LegacyComplaintMarkerMeansFollowUp(t *testing.T) {
	result := Extract("담당자 확인 후 처리해 드리겠습니다 [민원접수]")

	assert.Equal(t, "담당자 확인 후 처리해 드리겠습니다", result.Clean)
	assert.True(t, result.NeedsFollowUp)
}

func TestExtract_ActionAnywhereSetsFollowUp(t *testing.T) {
	for _, raw := range []string{
		"[ACTION]앞에 있음",
		"중간에 [ACTION] 있음",
		"끝에 있음[ACTION]",
	} {
		result := Extract(raw)
		assert.True(t, result.NeedsFollowUp, "raw: %q", raw)
		assert.NotContains(t, result.Clean, "[ACTION]")
	}
}

func TestExtract_TrimsWhitespaceAfterRemoval(t *testing.T) {
	result := Extract("  [ACTION]  답변 내용  [CATEGORY:기타]  ")
	assert.Equal(t, "답변 내용", result.Clean)
}

func TestExtract_IdempotentOnCleanText(t *testing.T) {
	for _, raw := range []string{
		"[ACTION]시설 문의입니다[CATEGORY:시설/수리]",
		"일반 답변입니다",
		"[INFO]안내[CATEGORY:업무/규정]",
	} {
		first := Extract(raw)
		second := Extract(first.Clean)
		assert.Equal(t, first.Clean, second.Clean, "raw: %q", raw)
		assert.Equal(t, domain.DefaultCategory, second.Category, "raw: %q", raw)
		assert.False(t, second.NeedsFollowUp, "raw: %q", raw)
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	result := Extract("")
	assert.Equal(t, "", result.Clean)
	assert.Equal(t, domain.DefaultCategory, result.Category)
	assert.False(t, result.NeedsFollowUp)
}
