package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGet(t *testing.T) {
	m := NewManager()

	s := m.Create("alice", "Alice")
	require.NotEmpty(t, s.ID)
	assert.Equal(t, "alice", s.Username)
	assert.Equal(t, "Alice", s.DisplayName)

	assert.Same(t, s, m.Get(s.ID))
	assert.Nil(t, m.Get("unknown"))
}

func TestSessionsAreIndependent(t *testing.T) {
	m := NewManager()

	s1 := m.Create("alice", "Alice")
	s2 := m.Create("alice", "Alice")
	assert.NotEqual(t, s1.ID, s2.ID)

	s1.Append("q", "a")
	assert.Len(t, s1.Transcript(), 1)
	assert.Empty(t, s2.Transcript())
}

func TestDelete(t *testing.T) {
	m := NewManager()
	s := m.Create("alice", "Alice")

	m.Delete(s.ID)
	assert.Nil(t, m.Get(s.ID))
}

func TestDeleteByUsername(t *testing.T) {
	m := NewManager()
	s1 := m.Create("alice", "Alice")
	s2 := m.Create("alice", "Alice")
	s3 := m.Create("bob", "Bob")

	m.DeleteByUsername("alice")
	assert.Nil(t, m.Get(s1.ID))
	assert.Nil(t, m.Get(s2.ID))
	assert.Same(t, s3, m.Get(s3.ID))
}

func TestTranscriptIsCopied(t *testing.T) {
	m := NewManager()
	s := m.Create("alice", "Alice")
	s.Append("q1", "a1")

	transcript := s.Transcript()
	transcript[0].Message = "mutated"
	assert.Equal(t, "q1", s.Transcript()[0].Message)
}
