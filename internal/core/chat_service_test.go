package core

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sehatanak.id/stunting-assistant/internal/knowledge"
	"sehatanak.id/stunting-assistant/internal/llm"
	"sehatanak.id/stunting-assistant/internal/store"
)

// fakeCompleter records the prompts it was called with and returns a fixed
// response or error.
type fakeCompleter struct {
	lastSystemPrompt string
	lastUserMessage  string
	response         string
	err              error
}

func (f *fakeCompleter) Complete(_ context.Context, systemPrompt, userMessage string) (string, error) {
	f.lastSystemPrompt = systemPrompt
	f.lastUserMessage = userMessage
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestService(t *testing.T, completer llm.Completer) (*ChatService, *store.SQLiteStore) {
	t.Helper()
	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"),
		func(p string) (string, error) { return "hashed:" + p, nil })
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.CreateUser("alice", "hash", nil, nil))
	return NewChatService(s, completer), s
}

func TestRespondPersistsExchange(t *testing.T) {
	completer := &fakeCompleter{response: "stunting is a growth deficiency"}
	svc, st := newTestService(t, completer)

	response, lang, err := svc.Respond(context.Background(), "alice", "tell me about growth")
	require.NoError(t, err)
	assert.Equal(t, "stunting is a growth deficiency", response)
	assert.Equal(t, knowledge.LanguageEnglish, lang)
	assert.Equal(t, "tell me about growth", completer.lastUserMessage)

	entries, err := st.RecentChats("alice", 50)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tell me about growth", entries[0].Message)
	assert.Equal(t, "stunting is a growth deficiency", entries[0].Response)
}

func TestRespondSelectsPromptByLanguage(t *testing.T) {
	completer := &fakeCompleter{response: "ok"}
	svc, _ := newTestService(t, completer)

	_, lang, err := svc.Respond(context.Background(), "alice", "apa penyebab stunting?")
	require.NoError(t, err)
	assert.Equal(t, knowledge.LanguageIndonesian, lang)
	assert.Equal(t, systemPromptIndonesian, completer.lastSystemPrompt)

	_, lang, err = svc.Respond(context.Background(), "alice", "how does it happen?")
	require.NoError(t, err)
	assert.Equal(t, knowledge.LanguageEnglish, lang)
	assert.Equal(t, systemPromptEnglish, completer.lastSystemPrompt)
}

func TestRespondFallsBackToKnowledge(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("upstream quota exceeded")}
	svc, st := newTestService(t, completer)

	response, _, err := svc.Respond(context.Background(), "alice", "what is stunting?")
	require.NoError(t, err)
	assert.Contains(t, response, "height")

	// The fallback exchange is persisted like any other.
	entries, err := st.RecentChats("alice", 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, response, entries[0].Response)
}

func TestRespondFallsBackToGuidance(t *testing.T) {
	completer := &fakeCompleter{err: llm.ErrNoCredential}
	svc, _ := newTestService(t, completer)

	response, _, err := svc.Respond(context.Background(), "alice", "completely unrelated weather question")
	require.NoError(t, err)
	assert.Equal(t, knowledge.Guidance(knowledge.LanguageEnglish), response)
}

func TestHistory(t *testing.T) {
	svc, st := newTestService(t, &fakeCompleter{response: "a"})
	require.NoError(t, st.AppendChat("alice", "q1", "a1"))
	require.NoError(t, st.AppendChat("alice", "q2", "a2"))

	entries, err := svc.History("alice", 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "q2", entries[0].Message)
}
