package chat

import (
	"fmt"
	"strings"

	"github.com/spec-kit/hrdesk/internal/config"
	"github.com/spec-kit/hrdesk/internal/domain"
)

// BuildSystemPrompt assembles the single system message: persona, the
// knowledge blob verbatim, and the tagging instruction set.
func BuildSystemPrompt(cfg config.ChatConfig, blob domain.KnowledgeBlob, employee domain.Employee) string {
	categories := cfg.Categories
	if len(categories) == 0 {
		categories = domain.DefaultCategories
	}

	var sb strings.Builder
	sb.WriteString(cfg.Persona)
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "질문자: %s (%s, %s)\n\n", employee.Name, employee.Department, employee.Rank)

	if !blob.Empty() {
		sb.WriteString("아래는 참고 자료입니다. 답변 시 반드시 이 자료를 근거로 하세요.\n\n")
		sb.WriteString(blob.Combined())
		sb.WriteString("\n\n")
	}

	sb.WriteString("답변 규칙:\n")
	fmt.Fprintf(&sb, "1. 답변 끝에 반드시 [CATEGORY:분류] 태그를 붙이세요. 분류는 다음 중 하나입니다: %s\n",
		strings.Join(categories, ", "))
	sb.WriteString("2. 담당자의 직접 처리가 필요한 사안이면 답변에 [ACTION] 태그를 포함하세요.\n")
	sb.WriteString("3. 특정 직원의 실명은 절대 언급하지 마세요.\n")
	fmt.Fprintf(&sb, "4. 추가 문의가 필요한 경우 대표번호 %s 를 안내하세요.\n", cfg.CallbackNumber)
	sb.WriteString("5. 모르는 내용은 추측하지 말고 '담당자 확인 후 처리해 드리겠습니다'라고 답하고 [ACTION] 태그를 붙이세요.\n")

	return sb.String()
}
