// Copyright 2026 Scholarch Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/scholarch/expertmatch/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// TagExtractor implements ai.TagExtractor using OpenAI-compatible chat APIs.
type TagExtractor struct {
	client  llms.Model
	maxTags int
	logger  *slog.Logger
}

// extraction is the wrapper structure for the LLM's JSON response.
type extraction struct {
	RequiredTags []string           `json:"required_tags"`
	KeyDomain    map[string]float64 `json:"key_domain"`
	Explanation  string             `json:"explanation"`
}

// newTagExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newTagExtractor(config *ai.Config) (*TagExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/extraction
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ExtractorHost),
		openai.WithToken("none"),
		openai.WithModel(config.ExtractorModel),
	)
	if err != nil {
		return nil, err
	}

	return &TagExtractor{
		client:  client,
		maxTags: config.MaxTags,
		logger:  slog.Default().With("component", "openai-extractor"),
	}, nil
}

// NewTagExtractor creates a new tag extractor using the provided configuration.
//
// Returns ai.TagExtractor interface to enforce abstraction.
func NewTagExtractor(config *ai.Config) (ai.TagExtractor, error) {
	return newTagExtractor(config)
}

// ExtractTags extracts required skill tags from a problem statement using an LLM.
// Tags come back in importance order; at most maxTags are kept.
func (e *TagExtractor) ExtractTags(ctx context.Context, problemStatement string) (*ai.ExtractedQuery, error) {
	systemPrompt := buildSystemPrompt(e.maxTags)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(problemStatement),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result extraction
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.2), llms.WithJSONMode())
		if err != nil {
			e.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			e.logger.Debug("no choices returned from model")
			return &ai.ExtractedQuery{}, nil
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			e.logger.Warn("error parsing extractor response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		e.logger.Error("failed to parse extractor response after retries", "err", lastErr)
		return nil, lastErr
	}

	// Enforce the tag budget and drop blank tags the model sometimes emits
	tags := make([]string, 0, len(result.RequiredTags))
	for _, tag := range result.RequiredTags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
		if len(tags) == e.maxTags {
			break
		}
	}

	// Clamp domain importances to [0, 1]
	for domain, importance := range result.KeyDomain {
		if importance < 0 {
			result.KeyDomain[domain] = 0
		} else if importance > 1 {
			result.KeyDomain[domain] = 1
		}
	}

	e.logger.Debug("extracted tags",
		"total", len(result.RequiredTags),
		"kept", len(tags),
		"domains", len(result.KeyDomain))

	return &ai.ExtractedQuery{
		RequiredTags: tags,
		KeyDomain:    result.KeyDomain,
		Explanation:  result.Explanation,
	}, nil
}
