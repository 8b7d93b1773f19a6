package chat

import "compliance-ai/backend/internal/model"

// DefaultHistoryWindow is the number of prior turns sent with a question.
const DefaultHistoryWindow = 10

// History returns the last limit settled user and assistant turns of key, oldest
// first. Pending messages and messages with blank text are skipped. A
// non-positive limit falls back to DefaultHistoryWindow.
func (s *Store) History(key model.ThreadKey, limit int) []model.HistoryEntry {
	if limit <= 0 {
		limit = DefaultHistoryWindow
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.threads[key]
	if !ok {
		return []model.HistoryEntry{}
	}

	entries := make([]model.HistoryEntry, 0, len(t.messages))
	for _, m := range t.messages {
		if m.Pending || !m.Role.Valid() || isBlank(m.Text) {
			continue
		}
		entries = append(entries, model.HistoryEntry{Role: m.Role, Content: m.Text})
	}
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries
}
