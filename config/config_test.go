package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
port: "9090"
ai_provider: "gemini"
model: "gemini-2.5-flash"
mongo_database: "papers_test"
upload_dir: "tmp_uploads"
max_pages: 5
max_prompt_chars: 4000
extract_attempts: 3
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "gemini", cfg.AIProvider)
	assert.Equal(t, "papers_test", cfg.MongoDatabase)
	assert.Equal(t, 5, cfg.MaxPages)
	assert.Equal(t, 4000, cfg.MaxPromptChars)
	assert.Equal(t, 3, cfg.ExtractAttempts)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `port: "8080"`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "paperdesk", cfg.MongoDatabase)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, 10, cfg.MaxPages)
	assert.Equal(t, 8000, cfg.MaxPromptChars)
	assert.Equal(t, 2, cfg.ExtractAttempts)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGeminiKeys(t *testing.T) {
	cfg := &Config{GeminiAPIKeys: "key-a, key-b ,,key-c"}
	assert.Equal(t, []string{"key-a", "key-b", "key-c"}, cfg.GeminiKeys())

	empty := &Config{}
	assert.Nil(t, empty.GeminiKeys())
}
