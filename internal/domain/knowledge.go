package domain

import "strings"

// KnowledgeBlob holds the concatenated reference texts injected into the
// system prompt. Loaded once at startup and treated as an immutable snapshot.
type KnowledgeBlob struct {
	OrgChart      string
	IntranetGuide string
	PolicyText    string
	General       string
}

// Empty reports whether no reference text was loaded at all.
func (k KnowledgeBlob) Empty() bool {
	return k.OrgChart == "" && k.IntranetGuide == "" && k.PolicyText == "" && k.General == ""
}

// Combined renders the blob as one labeled plain-text block for the prompt.
func (k KnowledgeBlob) Combined() string {
	var sb strings.Builder
	appendSection(&sb, "조직도", k.OrgChart)
	appendSection(&sb, "인트라넷 가이드", k.IntranetGuide)
	appendSection(&sb, "사내 규정", k.PolicyText)
	appendSection(&sb, "참고 자료", k.General)
	return strings.TrimSpace(sb.String())
}

func appendSection(sb *strings.Builder, label, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	sb.WriteString("[" + label + "]\n")
	sb.WriteString(strings.TrimSpace(text))
	sb.WriteString("\n\n")
}
