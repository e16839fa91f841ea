package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"sehatanak.id/stunting-assistant/internal/knowledge"
	"sehatanak.id/stunting-assistant/internal/llm"
	"sehatanak.id/stunting-assistant/internal/store"
)

const systemPromptEnglish = `You are a Stunting Medical Assistant specializing in Indonesia that is extremely friendly and engaging. Focus your knowledge specifically on stunting in Indonesia.

Main Features:
- Provide accurate and up-to-date information about stunting in Indonesia
- Include current data and statistics about stunting in Indonesia
- Give examples and cases relevant to Indonesian context
- Focus on 4 main topics: STUNTING, PREVENTION, SOLUTIONS, and IMPACT in Indonesia
- Use engaging and conversational English
- Provide practical tips that can be implemented in Indonesia
- Include information about Indonesian government programs related to stunting

Main Topics (Indonesia Focus):
1. STUNTING: Definition, characteristics, and prevalence in Indonesia
2. PREVENTION: Effective prevention strategies in Indonesia
3. SOLUTIONS: Available treatment and interventions in Indonesia
4. IMPACT: Effects of stunting on children, families, and Indonesian society

Make your responses engaging, conversational, and full of Indonesia-specific information!`

const systemPromptIndonesian = `Anda adalah Asisten Medis Stunting Indonesia yang sangat ramah dan menarik. Fokuskan pengetahuan Anda khusus pada stunting di Indonesia.

Fitur Utama:
- Berikan informasi yang akurat dan terkini tentang stunting di Indonesia
- Sertakan data dan statistik terkini tentang stunting di Indonesia
- Berikan contoh dan kasus yang relevan dengan konteks Indonesia
- Fokus pada 4 topik utama: STUNTING, PENCEGAHAN, SOLUSI, dan DAMPAK di Indonesia
- Gunakan bahasa Indonesia yang natural dan friendly
- Berikan tips praktis yang bisa diterapkan di Indonesia
- Sertakan informasi tentang program pemerintah Indonesia terkait stunting

Topik Utama (Fokus Indonesia):
1. STUNTING: Definisi, karakteristik, dan prevalensi di Indonesia
2. PENCEGAHAN: Strategi pencegahan yang efektif di Indonesia
3. SOLUSI: Penanganan dan intervensi yang tersedia di Indonesia
4. DAMPAK: Efek stunting pada anak, keluarga, dan masyarakat Indonesia

Buat respons yang engaging, conversational, dan penuh dengan informasi spesifik Indonesia!`

// ChatService turns one user utterance into one persisted exchange.
type ChatService struct {
	store     *store.SQLiteStore
	completer llm.Completer
}

func NewChatService(s *store.SQLiteStore, completer llm.Completer) *ChatService {
	return &ChatService{store: s, completer: completer}
}

// Respond answers the message and persists the exchange. The returned string
// is always display-ready: completion failures of any kind degrade to the
// keyword-matched knowledge base, then to static setup guidance. The error,
// when non-nil, reports a persistence failure only; the response is still
// valid in that case.
func (s *ChatService) Respond(ctx context.Context, username, message string) (string, knowledge.Language, error) {
	lang := knowledge.DetectLanguage(message)
	response := s.generate(ctx, lang, message)

	if err := s.store.AppendChat(username, message, response); err != nil {
		return response, lang, fmt.Errorf("failed to persist exchange: %w", err)
	}
	return response, lang, nil
}

func (s *ChatService) generate(ctx context.Context, lang knowledge.Language, message string) string {
	prompt := systemPromptEnglish
	if lang == knowledge.LanguageIndonesian {
		prompt = systemPromptIndonesian
	}

	response, err := s.completer.Complete(ctx, prompt, message)
	if err == nil {
		return response
	}
	if errors.Is(err, llm.ErrNoCredential) {
		logrus.Debug("No completion credential configured, using knowledge base")
	} else {
		logrus.Warnf("Completion request failed, using knowledge base: %v", err)
	}

	if content, ok := knowledge.Lookup(message, lang); ok {
		return content
	}
	return knowledge.Guidance(lang)
}

// History returns the user's most recent exchanges, newest first.
func (s *ChatService) History(username string, limit int) ([]store.ChatEntry, error) {
	return s.store.RecentChats(username, limit)
}
