// Package chat holds the in-memory conversation threads: one per assessment
// plus the global document chatbot. It owns message creation, patching,
// history windowing and the single active message edit.
package chat

import (
	"strings"
	"sync"
	"time"

	"compliance-ai/backend/internal/model"
)

const (
	// AssessmentGreeting opens every assessment conversation.
	AssessmentGreeting = "Ciao! Sono qui per aiutarti a capire i difetti trovati e come risolverli.\n" +
		"Fammi una domanda sulle non conformità o sulle raccomandazioni visibili in questa pagina."

	// GlobalGreeting opens the document chatbot conversation.
	GlobalGreeting = "Ciao! Sono l'assistente normativo.\n" +
		"Chiedimi pure qualsiasi cosa sui documenti e sui regolamenti caricati."
)

// Clock abstracts time so tests can pin message timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock backed by time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// MessagePatch lists the fields to merge into an existing message.
// Nil fields are left untouched.
type MessagePatch struct {
	Text      *string
	Pending   *bool
	Sources   []model.Source
	Timestamp *int64
	Stale     *bool
}

type thread struct {
	displayName string
	messages    []model.ChatMessage
}

// Store is the process-wide registry of conversation threads.
// All methods are safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	clock    Clock
	newID    func() string
	threads  map[model.ThreadKey]*thread
	inFlight map[model.ThreadKey]struct{}
	edit     *EditState
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for message timestamps.
func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithIDGenerator overrides the message id generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		clock:    SystemClock{},
		newID:    NewMessageID,
		threads:  make(map[model.ThreadKey]*thread),
		inFlight: make(map[model.ThreadKey]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure returns the thread for key, creating it with a greeting on first use.
// A display name given for an existing thread only fills a missing one.
func (s *Store) Ensure(key model.ThreadKey, displayName string) model.Thread {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.ensureLocked(key, displayName)
	if t.displayName == "" {
		t.displayName = displayName
	}
	return snapshot(key, t)
}

// Reset discards every message of key and starts over with a fresh greeting.
// An edit in progress on this thread is cancelled.
func (s *Store) Reset(key model.ThreadKey) model.Thread {
	s.mu.Lock()
	defer s.mu.Unlock()

	var name string
	if old, ok := s.threads[key]; ok {
		name = old.displayName
	}
	delete(s.threads, key)
	if s.edit != nil && s.edit.Key == key {
		s.edit = nil
	}
	return snapshot(key, s.ensureLocked(key, name))
}

// Append adds a message to key, creating the thread if needed, and returns
// the new message id.
func (s *Store) Append(key model.ThreadKey, role model.Role, text string, pending bool) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.ensureLocked(key, "")
	msg := s.newMessage(role, text, pending)
	t.messages = append(t.messages, msg)
	return msg.ID
}

// Patch merges p into the message id of key. It reports whether the message
// was found; a missing thread or message is not an error.
func (s *Store) Patch(key model.ThreadKey, id string, p MessagePatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.threads[key]
	if !ok {
		return false
	}
	idx := indexOf(t.messages, id)
	if idx < 0 {
		return false
	}
	applyPatch(&t.messages[idx], p)
	return true
}

// Messages returns a copy of the messages of key, or an empty slice when the
// thread does not exist.
func (s *Store) Messages(key model.ThreadKey) []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.threads[key]
	if !ok {
		return []model.ChatMessage{}
	}
	return copyMessages(t.messages)
}

// Thread returns a snapshot of key without creating it.
func (s *Store) Thread(key model.ThreadKey) (model.Thread, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.threads[key]
	if !ok {
		return model.Thread{}, false
	}
	return snapshot(key, t), true
}

// Acquire marks a request in flight on key. It returns false when another
// request on the same thread has not been released yet.
func (s *Store) Acquire(key model.ThreadKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[key]; busy {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

// Release clears the in-flight mark set by Acquire.
func (s *Store) Release(key model.ThreadKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}

func (s *Store) ensureLocked(key model.ThreadKey, displayName string) *thread {
	if t, ok := s.threads[key]; ok {
		return t
	}
	greeting := AssessmentGreeting
	if key.IsGlobal() {
		greeting = GlobalGreeting
	}
	t := &thread{
		displayName: displayName,
		messages:    []model.ChatMessage{s.newMessage(model.RoleAssistant, greeting, false)},
	}
	s.threads[key] = t
	return t
}

func (s *Store) newMessage(role model.Role, text string, pending bool) model.ChatMessage {
	return model.ChatMessage{
		ID:        s.newID(),
		Role:      role,
		Text:      text,
		Timestamp: s.clock.Now().UnixMilli(),
		Pending:   pending,
	}
}

func applyPatch(msg *model.ChatMessage, p MessagePatch) {
	if p.Text != nil {
		msg.Text = *p.Text
	}
	if p.Pending != nil {
		msg.Pending = *p.Pending
	}
	if p.Sources != nil {
		msg.Sources = append([]model.Source(nil), p.Sources...)
	}
	if p.Timestamp != nil {
		msg.Timestamp = *p.Timestamp
	}
	if p.Stale != nil {
		msg.Stale = *p.Stale
	}
}

func indexOf(messages []model.ChatMessage, id string) int {
	for i := range messages {
		if messages[i].ID == id {
			return i
		}
	}
	return -1
}

func snapshot(key model.ThreadKey, t *thread) model.Thread {
	return model.Thread{
		Key:         key,
		DisplayName: t.displayName,
		Messages:    copyMessages(t.messages),
	}
}

func copyMessages(messages []model.ChatMessage) []model.ChatMessage {
	out := make([]model.ChatMessage, len(messages))
	for i, m := range messages {
		if m.Sources != nil {
			m.Sources = append([]model.Source(nil), m.Sources...)
		}
		out[i] = m
	}
	return out
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
