package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/scholarch/expertmatch/core"
	"github.com/scholarch/expertmatch/storage"
)

const defaultBatchSize = 64

// corpusEntry mirrors one extraction object of the corpus wire format.
// Position and ScholarID stay nil when the source object omits the field.
type corpusEntry struct {
	Tags      []string `json:"tags"`
	Position  *string  `json:"position"`
	ScholarID *string  `json:"google_scholar_id"`
}

// corpusRecord mirrors one expert object of the corpus wire format.
type corpusRecord struct {
	Name        string        `json:"_id"`
	Department  string        `json:"department"`
	BaseURL     string        `json:"base_url"`
	Extractions []corpusEntry `json:"extractions"`
}

// Summary reports the outcome of a corpus load.
type Summary struct {
	Loaded  int
	Skipped int
}

// Loader reads expert corpus files and writes the records to storage.
// Batches are written concurrently through a worker pool.
type Loader struct {
	repository storage.ExpertRepository
	pool       *ants.Pool
	batchSize  int
	logger     *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader) error

// WithPoolSize sets the worker pool size for concurrent batch writes.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}
		if l.pool != nil {
			l.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		l.pool = pool
		return nil
	}
}

// WithBatchSize sets how many records go into one storage write.
// Default is 64.
func WithBatchSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = defaultBatchSize
		}
		l.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a new corpus loader.
func NewLoader(repository storage.ExpertRepository, opts ...Option) (*Loader, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		repository: repository,
		pool:       pool,
		batchSize:  defaultBatchSize,
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(l); err != nil {
			pool.Release()
			return nil, err
		}
	}

	return l, nil
}

// Close releases the worker pool.
func (l *Loader) Close() {
	l.pool.Release()
}

// LoadFile reads a JSON corpus file and stores its records.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return l.Load(ctx, f)
}

// Load decodes a JSON corpus from r and stores its records. Records that
// fail validation are skipped and counted rather than failing the load;
// storage errors abort it.
func (l *Loader) Load(ctx context.Context, r io.Reader) (*Summary, error) {
	var raw []corpusRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCorpus, err)
	}

	summary := &Summary{}
	records := make([]*core.ExpertRecord, 0, len(raw))
	for _, cr := range raw {
		record := convertRecord(cr)
		if err := core.ValidateExpertRecord(record); err != nil {
			l.logger.Warn("skipping invalid corpus record", "name", cr.Name, "err", err)
			summary.Skipped++
			continue
		}
		records = append(records, record)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for start := 0; start < len(records); start += l.batchSize {
		end := start + l.batchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[start:end]

		wg.Add(1)
		err := l.pool.Submit(func() {
			defer wg.Done()
			if _, err := l.repository.AddExpertRecords(ctx, batch...); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		})
		if err != nil {
			wg.Done()
			return nil, err
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	summary.Loaded = len(records)
	l.logger.Info("corpus loaded", "loaded", summary.Loaded, "skipped", summary.Skipped)
	return summary, nil
}

// convertRecord maps a corpus wire record onto the domain record.
func convertRecord(cr corpusRecord) *core.ExpertRecord {
	entries := make([]core.ExpertEntry, 0, len(cr.Extractions))
	for _, ex := range cr.Extractions {
		entries = append(entries, core.ExpertEntry{
			Tags:      ex.Tags,
			Position:  ex.Position,
			ScholarID: ex.ScholarID,
		})
	}
	return &core.ExpertRecord{
		Name:       cr.Name,
		Department: cr.Department,
		BaseURL:    cr.BaseURL,
		Entries:    entries,
	}
}
