package chat_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"compliance-ai/backend/internal/chat"
	"compliance-ai/backend/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeClock advances by one second on every call so ordering is observable.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestStore() *chat.Store {
	var (
		mu sync.Mutex
		n  int
	)
	return chat.NewStore(
		chat.WithClock(&fakeClock{now: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)}),
		chat.WithIDGenerator(func() string {
			mu.Lock()
			defer mu.Unlock()
			n++
			return fmt.Sprintf("msg-%d", n)
		}),
	)
}

func TestStore_Ensure(t *testing.T) {
	store := newTestStore()
	key := model.AssessmentThread(7)

	first := store.Ensure(key, "Pressa idraulica")
	second := store.Ensure(key, "Altro nome")

	require.Len(t, first.Messages, 1)
	assert.Equal(t, first, second)
	assert.Equal(t, "Pressa idraulica", second.DisplayName)
	assert.Equal(t, model.RoleAssistant, first.Messages[0].Role)
	assert.Equal(t, chat.AssessmentGreeting, first.Messages[0].Text)
	assert.False(t, first.Messages[0].Pending)

	global := store.Ensure(model.GlobalThread(), "")
	require.Len(t, global.Messages, 1)
	assert.Equal(t, chat.GlobalGreeting, global.Messages[0].Text)
}

func TestStore_Reset(t *testing.T) {
	store := newTestStore()
	key := model.AssessmentThread(3)
	store.Ensure(key, "Tornio")
	store.Append(key, model.RoleUser, "domanda", false)
	greetingID := store.Messages(key)[0].ID

	reset := store.Reset(key)

	require.Len(t, reset.Messages, 1)
	assert.NotEqual(t, greetingID, reset.Messages[0].ID)
	assert.Equal(t, "Tornio", reset.DisplayName)

	again := store.Ensure(key, "")
	assert.Len(t, again.Messages, 1)
}

func TestStore_ResetUnknownThreadCreatesGreeting(t *testing.T) {
	store := newTestStore()
	reset := store.Reset(model.GlobalThread())
	assert.Len(t, reset.Messages, 1)
}

func TestStore_AppendAndPatch(t *testing.T) {
	store := newTestStore()
	key := model.AssessmentThread(1)

	userID := store.Append(key, model.RoleUser, "Cosa manca?", false)
	pendingID := store.Append(key, model.RoleAssistant, "Sto elaborando…", true)
	assert.NotEqual(t, userID, pendingID)

	msgs := store.Messages(key)
	require.Len(t, msgs, 3, "append creates the thread with its greeting")
	assert.True(t, msgs[2].Pending)
	assert.Less(t, msgs[1].Timestamp, msgs[2].Timestamp)

	text := "Manca la marcatura CE."
	pending := false
	conf := 0.91
	ok := store.Patch(key, pendingID, chat.MessagePatch{
		Text:    &text,
		Pending: &pending,
		Sources: []model.Source{{Reference: "Art. 16", Excerpt: "—", Confidence: &conf}},
	})
	require.True(t, ok)

	msgs = store.Messages(key)
	assert.Equal(t, text, msgs[2].Text)
	assert.False(t, msgs[2].Pending)
	require.Len(t, msgs[2].Sources, 1)
	assert.Equal(t, "Cosa manca?", msgs[1].Text, "patch touches only the target")

	t.Run("Missing message is a no-op", func(t *testing.T) {
		assert.False(t, store.Patch(key, "nope", chat.MessagePatch{Text: &text}))
		assert.False(t, store.Patch(model.AssessmentThread(99), pendingID, chat.MessagePatch{Text: &text}))
		_, exists := store.Thread(model.AssessmentThread(99))
		assert.False(t, exists)
	})
}

func TestStore_MessagesAreCopies(t *testing.T) {
	store := newTestStore()
	key := model.GlobalThread()
	id := store.Append(key, model.RoleAssistant, "risposta", false)
	store.Patch(key, id, chat.MessagePatch{Sources: []model.Source{{Reference: "a"}}})

	msgs := store.Messages(key)
	msgs[1].Text = "alterato"
	msgs[1].Sources[0].Reference = "b"

	fresh := store.Messages(key)
	assert.Equal(t, "risposta", fresh[1].Text)
	assert.Equal(t, "a", fresh[1].Sources[0].Reference)
}

func TestStore_ThreadsAreIndependent(t *testing.T) {
	store := newTestStore()
	store.Append(model.AssessmentThread(1), model.RoleUser, "uno", false)
	store.Append(model.GlobalThread(), model.RoleUser, "globale", false)

	assert.Len(t, store.Messages(model.AssessmentThread(1)), 2)
	assert.Len(t, store.Messages(model.GlobalThread()), 2)
	assert.Empty(t, store.Messages(model.AssessmentThread(2)))

	store.Reset(model.AssessmentThread(1))
	assert.Len(t, store.Messages(model.GlobalThread()), 2)
}

func TestStore_AcquireRelease(t *testing.T) {
	store := newTestStore()
	a := model.AssessmentThread(1)

	require.True(t, store.Acquire(a))
	assert.False(t, store.Acquire(a))
	assert.True(t, store.Acquire(model.GlobalThread()), "other threads are not blocked")

	store.Release(a)
	assert.True(t, store.Acquire(a))
}

func TestStore_ConcurrentAppend(t *testing.T) {
	store := chat.NewStore()
	key := model.AssessmentThread(5)

	const workers, perWorker = 8, 25
	ids := make(chan string, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids <- store.Append(key, model.RoleUser, fmt.Sprintf("%d-%d", w, i), false)
			}
		}(w)
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{})
	for id := range ids {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, workers*perWorker)
	assert.Len(t, store.Messages(key), workers*perWorker+1)
}
