package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/scholarch/expertmatch/core"
	"github.com/scholarch/expertmatch/storage"
)

// ExpertRepository implements storage.ExpertRepository for BadgerDB.
type ExpertRepository struct {
	backend *Backend
}

var _ storage.ExpertRepository = (*ExpertRepository)(nil)

// NewExpertRepository creates a new ExpertRepository.
func NewExpertRepository(backend *Backend) (*ExpertRepository, error) {
	return &ExpertRepository{
		backend: backend,
	}, nil
}

// Close releases resources. ExpertRepository has no resources to release.
func (r *ExpertRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ExpertRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddExpertRecords adds one or more expert records to storage.
// IDs are content-based, so a record with a previously seen name
// overwrites the stored record.
func (r *ExpertRepository) AddExpertRecords(ctx context.Context, records ...*core.ExpertRecord) ([]*core.ExpertRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			if err := core.ValidateExpertRecord(record); err != nil {
				return err
			}

			id := core.IDFromContent(record.Name)

			key := makeExpertKey(id)
			value := storage.MarshalExpertRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			nameKey := makeExpertNameKey(record.Name)
			if err := tx.Set(nameKey, storage.MarshalID(id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetExpertRecord retrieves a single expert record by ID.
func (r *ExpertRepository) GetExpertRecord(ctx context.Context, id core.ID) (*core.ExpertRecord, error) {
	var result *core.ExpertRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readExpertRecord(tx, makeExpertKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetExpertRecordByName retrieves an expert record by expert name.
func (r *ExpertRepository) GetExpertRecordByName(ctx context.Context, name string) (*core.ExpertRecord, error) {
	var result *core.ExpertRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeExpertNameKey(name))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var id core.ID
		err = item.Value(func(val []byte) error {
			id, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		result, err = readExpertRecord(tx, makeExpertKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// AllExpertRecords retrieves every stored expert record, ordered by ID.
func (r *ExpertRepository) AllExpertRecords(ctx context.Context) ([]*core.ExpertRecord, error) {
	var results []*core.ExpertRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(expertRecordPrefix + ":")
		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			var record *core.ExpertRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalExpertRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)
	return results, err
}

// DeleteExpertRecords removes expert records by their IDs.
func (r *ExpertRepository) DeleteExpertRecords(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeExpertKey(id)

			// Read the record first for name index cleanup
			record, err := readExpertRecord(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(makeExpertNameKey(record.Name)); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// CountExpertRecords returns the number of stored expert records.
func (r *ExpertRepository) CountExpertRecords(ctx context.Context) (int, error) {
	var count int
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(expertRecordPrefix + ":")
		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readExpertRecord reads an expert record from the transaction.
// Returns nil without error when the key does not exist.
func readExpertRecord(tx *badger.Txn, key []byte) (*core.ExpertRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.ExpertRecord
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalExpertRecord(val)
		return err
	})
	return record, err
}
