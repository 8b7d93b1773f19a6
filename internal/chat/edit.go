package chat

import (
	"errors"
	"strings"

	"compliance-ai/backend/internal/model"
)

// EditSavedStatus is returned after a successful edit. Later answers are not
// regenerated; the user has to ask again.
const EditSavedStatus = "Messaggio modificato. I messaggi successivi sono stati segnati come non aggiornati: " +
	"invia di nuovo la domanda per ottenere una nuova risposta."

var (
	ErrNoActiveEdit    = errors.New("chat: no message is being edited")
	ErrNotEditable     = errors.New("chat: only sent user messages can be edited")
	ErrMessageNotFound = errors.New("chat: message not found")
	ErrEmptyDraft      = errors.New("chat: edited message cannot be empty")
)

// EditState describes the message currently being edited.
type EditState struct {
	Key       model.ThreadKey `json:"thread"`
	MessageID string          `json:"message_id"`
	Draft     string          `json:"draft"`
	CanSave   bool            `json:"can_save"`
}

// EditResult is the outcome of SaveEdit.
type EditResult struct {
	Message    model.ChatMessage `json:"message"`
	StaleCount int               `json:"stale_count"`
	Status     string            `json:"status"`
}

// BeginEdit starts editing message id of key. Any edit already in progress is
// dropped first, even when the new one is refused.
func (s *Store) BeginEdit(key model.ThreadKey, id string) (EditState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.edit = nil

	t, ok := s.threads[key]
	if !ok {
		return EditState{}, ErrMessageNotFound
	}
	idx := indexOf(t.messages, id)
	if idx < 0 {
		return EditState{}, ErrMessageNotFound
	}
	msg := t.messages[idx]
	if msg.Role != model.RoleUser || msg.Pending {
		return EditState{}, ErrNotEditable
	}

	s.edit = &EditState{
		Key:       key,
		MessageID: id,
		Draft:     msg.Text,
		CanSave:   !isBlank(msg.Text),
	}
	return *s.edit, nil
}

// UpdateDraft replaces the draft of the active edit.
func (s *Store) UpdateDraft(text string) (EditState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.edit == nil {
		return EditState{}, ErrNoActiveEdit
	}
	s.edit.Draft = text
	s.edit.CanSave = !isBlank(text)
	return *s.edit, nil
}

// CancelEdit drops the active edit without touching any message. It reports
// whether an edit was in progress.
func (s *Store) CancelEdit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := s.edit != nil
	s.edit = nil
	return active
}

// ActiveEdit returns the edit in progress, if any.
func (s *Store) ActiveEdit() (EditState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.edit == nil {
		return EditState{}, false
	}
	return *s.edit, true
}

// SaveEdit writes the trimmed draft into the edited message, refreshes its
// timestamp and marks every later message of the thread as stale. With an
// empty draft the edit stays open and ErrEmptyDraft is returned.
func (s *Store) SaveEdit() (EditResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.edit == nil {
		return EditResult{}, ErrNoActiveEdit
	}
	draft := strings.TrimSpace(s.edit.Draft)
	if draft == "" {
		return EditResult{}, ErrEmptyDraft
	}

	edit := *s.edit
	s.edit = nil

	t, ok := s.threads[edit.Key]
	if !ok {
		return EditResult{}, ErrMessageNotFound
	}
	idx := indexOf(t.messages, edit.MessageID)
	if idx < 0 {
		return EditResult{}, ErrMessageNotFound
	}

	now := s.clock.Now().UnixMilli()
	stale := true
	applyPatch(&t.messages[idx], MessagePatch{Text: &draft, Timestamp: &now})
	for i := idx + 1; i < len(t.messages); i++ {
		applyPatch(&t.messages[i], MessagePatch{Stale: &stale})
	}

	return EditResult{
		Message:    copyMessages(t.messages[idx : idx+1])[0],
		StaleCount: len(t.messages) - idx - 1,
		Status:     EditSavedStatus,
	}, nil
}
