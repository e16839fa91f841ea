package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabasePath(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "relative sqlite url",
			url:  "sqlite:///stunting_assistant.db",
			want: "stunting_assistant.db",
		},
		{
			name: "relative sqlite url with directories",
			url:  "sqlite:///data/chat.db",
			want: "data/chat.db",
		},
		{
			name: "absolute sqlite url",
			url:  "sqlite:////var/lib/app/chat.db",
			want: "/var/lib/app/chat.db",
		},
		{
			name: "empty path falls back to default",
			url:  "sqlite:///",
			want: "stunting_assistant.db",
		},
		{
			name: "bare filename respected",
			url:  "mydata.db",
			want: "mydata.db",
		},
		{
			name: "unrecognized scheme falls back to default",
			url:  "postgres://localhost:5432/chat",
			want: "stunting_assistant.db",
		},
		{
			name: "garbage falls back to default",
			url:  "not-a-database",
			want: "stunting_assistant.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DatabasePath(tt.url))
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	// The developer's environment must not leak into the defaults under
	// test. t.Setenv registers restoration of any prior value.
	for _, key := range []string{"HTTP_PORT", "LLM_PROVIDER", "OPENAI_MODEL", "DATABASE_URL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	LoadConfig()

	assert.Equal(t, "8080", AppConfig.HTTPPort)
	assert.Equal(t, "openai", AppConfig.LLMProvider)
	assert.Equal(t, "gpt-4o", AppConfig.OpenAIModel)
	assert.Equal(t, "sqlite:///stunting_assistant.db", AppConfig.DatabaseURL)
}
