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


package expertmatch

import (
	"context"
	"log/slog"

	"github.com/scholarch/expertmatch/ai"
	"github.com/scholarch/expertmatch/ai/openai"
	"github.com/scholarch/expertmatch/index"
	"github.com/scholarch/expertmatch/ingest"
	"github.com/scholarch/expertmatch/match"
	"github.com/scholarch/expertmatch/storage"
	"github.com/scholarch/expertmatch/storage/badger"
)

// Engine ties storage, the AI provider and the expert index together.
// It is the main entry point for embedding this module in an application.
type Engine struct {
	backend    *badger.Backend
	expertRepo storage.ExpertRepository
	provider   ai.Provider
	holder     *index.Holder
	logger     *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig *ai.Config
	inMemory bool
}

// WithAIConfig overrides the default AI service configuration.
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		o.aiConfig = config
	}
}

// WithInMemoryStorage uses an in-memory storage backend instead of a
// directory on disk. Intended for tests and ephemeral runs.
func WithInMemoryStorage() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// NewEngine opens the storage backend at filePath and wires up the
// repositories and AI provider. The expert index starts empty; call
// RebuildIndex after loading a corpus.
func NewEngine(filePath string, opts ...EngineOption) (*Engine, error) {
	// Apply options
	options := &engineOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create expert repository
	expertRepo, err := badger.NewExpertRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		expertRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Engine{
		backend:    backend,
		expertRepo: expertRepo,
		provider:   provider,
		holder:     index.NewHolder(nil),
		logger:     slog.Default(),
	}, nil
}

func (e *Engine) Close() error {
	// Close AI provider first
	if err := e.provider.Close(); err != nil {
		e.logger.Error("error closing AI provider", "err", err)
	}

	if err := e.expertRepo.Close(); err != nil {
		e.logger.Error("error closing expert repository", "err", err)
		return err
	}

	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// ExpertRepository returns the expert record store.
func (e *Engine) ExpertRepository() storage.ExpertRepository {
	return e.expertRepo
}

// Provider returns the AI provider.
func (e *Engine) Provider() ai.Provider {
	return e.provider
}

// Index returns the currently published expert index, or nil before the
// first RebuildIndex.
func (e *Engine) Index() *index.Index {
	return e.holder.Load()
}

// RebuildIndex reads every stored expert record, embeds the tag sets and
// atomically publishes the new index. Matchers created before the rebuild
// see the new index on their next request; a failed rebuild leaves the
// previous index in place.
func (e *Engine) RebuildIndex(ctx context.Context, opts ...index.Option) (*index.Index, error) {
	records, err := e.expertRepo.AllExpertRecords(ctx)
	if err != nil {
		return nil, err
	}

	idx, err := index.Build(ctx, records, e.provider.Embedder(), opts...)
	if err != nil {
		return nil, err
	}

	e.holder.Store(idx)
	e.logger.Info("expert index rebuilt", "experts", idx.Len(), "tags", len(idx.AllTags()))
	return idx, nil
}

// NewLoader creates a corpus loader writing into the engine's storage.
func (e *Engine) NewLoader(opts ...ingest.Option) (*ingest.Loader, error) {
	return ingest.NewLoader(e.expertRepo, opts...)
}

// NewMatcher creates a matcher reading the engine's published index.
func (e *Engine) NewMatcher(opts ...match.Option) (*match.Matcher, error) {
	return match.NewMatcher(e.holder, e.provider, opts...)
}
