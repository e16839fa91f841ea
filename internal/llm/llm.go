// Package llm wraps the external completion APIs behind a single-turn
// interface: one system prompt plus one user message in, one text
// completion out. The assistant is stateless across turns, so no
// conversation history is ever sent.
package llm

import (
	"context"
	"errors"
)

// Sampling parameters shared by all backends. Output length is bounded,
// randomness is elevated to favor varied phrasing, and mild penalties
// discourage repetition.
const (
	MaxOutputTokens  = 1000
	Temperature      = 0.9
	PresencePenalty  = 0.1
	FrequencyPenalty = 0.1
)

// ErrNoCredential is returned when no API key is configured for the
// selected backend.
var ErrNoCredential = errors.New("no completion API credential configured")

type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
