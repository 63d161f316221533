package domain

// MessageRole identifies the author of a transcript entry.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one entry in a session transcript. Content may still contain
// control tags before extraction; transcript entries are always clean.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}
