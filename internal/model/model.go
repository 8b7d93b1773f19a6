package model

import (
	"errors"
	"strconv"
	"strings"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one the answering backend understands.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Source is a cited document excerpt supporting a finding or an answer.
type Source struct {
	Reference  string   `json:"reference"`
	Excerpt    string   `json:"excerpt"`
	Confidence *float64 `json:"confidence,omitempty"` // Raw scale as received (0..1 or 0..100).
}

// Finding is a normalized non-conformity or recommendation.
type Finding struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

// ChatMessage is a single entry of a conversation thread.
type ChatMessage struct {
	ID        string   `json:"id"`
	Role      Role     `json:"role"`
	Text      string   `json:"text"`
	Timestamp int64    `json:"timestamp"` // Unix milliseconds.
	Pending   bool     `json:"pending"`
	Sources   []Source `json:"sources,omitempty"`
	Stale     bool     `json:"stale"`
}

// HistoryEntry is the wire shape of a prior turn sent to the answering backend.
type HistoryEntry struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Suggestion is a quick-question chip offered to the user.
type Suggestion struct {
	Label    string `json:"label"`
	Question string `json:"question"`
}

// Thread is a snapshot of one conversation.
type Thread struct {
	Key         ThreadKey     `json:"key"`
	DisplayName string        `json:"display_name,omitempty"`
	Messages    []ChatMessage `json:"messages"`
}

// ThreadKey identifies a conversation: either one assessment or the global chatbot.
type ThreadKey struct {
	assessmentID int64
	global       bool
}

const globalThreadName = "global"

// ErrInvalidThreadKey is returned when a textual thread key cannot be parsed.
var ErrInvalidThreadKey = errors.New("invalid thread key")

// AssessmentThread returns the key of the conversation scoped to one assessment.
func AssessmentThread(id int64) ThreadKey {
	return ThreadKey{assessmentID: id}
}

// GlobalThread returns the key of the document chatbot conversation.
func GlobalThread() ThreadKey {
	return ThreadKey{global: true}
}

// IsGlobal reports whether k addresses the global chatbot.
func (k ThreadKey) IsGlobal() bool { return k.global }

// AssessmentID returns the assessment id; it is zero for the global key.
func (k ThreadKey) AssessmentID() int64 { return k.assessmentID }

func (k ThreadKey) String() string {
	if k.global {
		return globalThreadName
	}
	return strconv.FormatInt(k.assessmentID, 10)
}

// MarshalText lets ThreadKey travel as a plain JSON string.
func (k ThreadKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ThreadKey) UnmarshalText(text []byte) error {
	parsed, err := ParseThreadKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseThreadKey accepts "global" or a positive decimal assessment id.
func ParseThreadKey(s string) (ThreadKey, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, globalThreadName) {
		return GlobalThread(), nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return ThreadKey{}, ErrInvalidThreadKey
	}
	return AssessmentThread(id), nil
}
