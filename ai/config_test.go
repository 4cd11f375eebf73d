package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://localhost:11434/v1", cfg.ExtractorHost)
	assert.Equal(t, "embeddinggemma", cfg.EmbeddingModel)
	assert.Equal(t, "qwen2.5:3b", cfg.ExtractorModel)
	assert.Equal(t, MaxRequiredTags, cfg.MaxTags)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		// Should have default values
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://localhost:11434/v1", cfg.ExtractorHost)
		assert.Equal(t, MaxRequiredTags, cfg.MaxTags)
	})

	t.Run("with custom host", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://custom:8080/v1"))

		assert.Equal(t, "http://custom:8080/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://custom:8080/v1", cfg.ExtractorHost)
	})

	t.Run("with separate hosts", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingHost("http://embed:8080/v1"),
			WithExtractorHost("http://extract:9090/v1"),
		)

		assert.Equal(t, "http://embed:8080/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://extract:9090/v1", cfg.ExtractorHost)
	})

	t.Run("with custom models", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingModel("text-embedding-3-small"),
			WithExtractorModel("gpt-4o-mini"),
		)

		assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
		assert.Equal(t, "gpt-4o-mini", cfg.ExtractorModel)
	})

	t.Run("with custom max tags", func(t *testing.T) {
		cfg := NewConfig(WithMaxTags(5))

		assert.Equal(t, 5, cfg.MaxTags)
	})
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name              string
		embeddingHost     string
		extractorHost     string
		expectedEmbedding string
		expectedExtractor string
	}{
		{
			name:              "already has /v1",
			embeddingHost:     "http://localhost:11434/v1",
			extractorHost:     "http://localhost:11434/v1",
			expectedEmbedding: "http://localhost:11434/v1",
			expectedExtractor: "http://localhost:11434/v1",
		},
		{
			name:              "missing /v1",
			embeddingHost:     "http://localhost:11434",
			extractorHost:     "http://localhost:9100",
			expectedEmbedding: "http://localhost:11434/v1",
			expectedExtractor: "http://localhost:9100/v1",
		},
		{
			name:              "trailing slash",
			embeddingHost:     "http://localhost:11434/",
			extractorHost:     "http://localhost:9100/",
			expectedEmbedding: "http://localhost:11434/v1",
			expectedExtractor: "http://localhost:9100/v1",
		},
		{
			name:              "empty hosts left alone",
			embeddingHost:     "",
			extractorHost:     "",
			expectedEmbedding: "",
			expectedExtractor: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				EmbeddingHost: tt.embeddingHost,
				ExtractorHost: tt.extractorHost,
			}
			cfg.Normalize()

			assert.Equal(t, tt.expectedEmbedding, cfg.EmbeddingHost)
			assert.Equal(t, tt.expectedExtractor, cfg.ExtractorHost)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("validate normalizes hosts", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434"))
		assert.NoError(t, cfg.Validate())
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})

	t.Run("missing embedding host", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.EmbeddingHost = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing extractor host", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ExtractorHost = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing embedding model", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.EmbeddingModel = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing extractor model", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ExtractorModel = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("max tags out of range", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxTags = 0
		assert.Error(t, cfg.Validate())

		cfg.MaxTags = MaxRequiredTags + 1
		assert.Error(t, cfg.Validate())
	})
}
