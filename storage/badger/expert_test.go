package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/scholarch/expertmatch/core"
	"github.com/scholarch/expertmatch/storage"
)

func testRecord(name, department string, tags ...string) *core.ExpertRecord {
	return &core.ExpertRecord{
		Name:       name,
		Department: department,
		BaseURL:    "https://example.edu/" + name,
		Entries:    []core.ExpertEntry{{Tags: tags}},
	}
}

func TestExpertRecordBasics(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	record := testRecord("Ada Lovelace", "Computer Science", "machine learning", "numerical analysis")

	added, err := repo.AddExpertRecords(ctx, record)
	if err != nil {
		t.Fatalf("Failed to add record: %v", err)
	}
	if len(added) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(added))
	}

	id := core.IDFromContent("Ada Lovelace")
	retrieved, err := repo.GetExpertRecord(ctx, id)
	if err != nil {
		t.Fatalf("Failed to get record: %v", err)
	}
	if retrieved.Name != "Ada Lovelace" {
		t.Fatalf("Expected 'Ada Lovelace', got '%s'", retrieved.Name)
	}
	if retrieved.Department != "Computer Science" {
		t.Fatalf("Expected 'Computer Science', got '%s'", retrieved.Department)
	}
	if len(retrieved.Entries) != 1 || len(retrieved.Entries[0].Tags) != 2 {
		t.Fatalf("Entries not round-tripped: %+v", retrieved.Entries)
	}

	byName, err := repo.GetExpertRecordByName(ctx, "Ada Lovelace")
	if err != nil {
		t.Fatalf("Failed to get record by name: %v", err)
	}
	if byName.Name != retrieved.Name {
		t.Fatalf("Name lookup returned different record: %s", byName.Name)
	}
}

func TestExpertRecordNotFound(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	if _, err := repo.GetExpertRecord(ctx, core.ID(12345)); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetExpertRecordByName(ctx, "nobody"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if err := repo.DeleteExpertRecords(ctx, core.ID(12345)); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestExpertRecordOverwriteByName(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	if _, err := repo.AddExpertRecords(ctx, testRecord("Ada Lovelace", "Mathematics", "number theory")); err != nil {
		t.Fatalf("Failed to add record: %v", err)
	}
	if _, err := repo.AddExpertRecords(ctx, testRecord("Ada Lovelace", "Computer Science", "compilers")); err != nil {
		t.Fatalf("Failed to re-add record: %v", err)
	}

	count, err := repo.CountExpertRecords(ctx)
	if err != nil {
		t.Fatalf("Failed to count records: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected 1 record after overwrite, got %d", count)
	}

	retrieved, err := repo.GetExpertRecordByName(ctx, "Ada Lovelace")
	if err != nil {
		t.Fatalf("Failed to get record: %v", err)
	}
	if retrieved.Department != "Computer Science" {
		t.Fatalf("Expected overwritten department, got '%s'", retrieved.Department)
	}
}

func TestExpertRecordValidationOnAdd(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	if _, err := repo.AddExpertRecords(ctx, &core.ExpertRecord{Department: "CS"}); !errors.Is(err, core.ErrEmptyExpertName) {
		t.Fatalf("Expected ErrEmptyExpertName, got %v", err)
	}
	if _, err := repo.AddExpertRecords(ctx, &core.ExpertRecord{Name: "Ada"}); !errors.Is(err, core.ErrNoEntries) {
		t.Fatalf("Expected ErrNoEntries, got %v", err)
	}

	// Nothing stored after a failed batch
	count, err := repo.CountExpertRecords(ctx)
	if err != nil {
		t.Fatalf("Failed to count records: %v", err)
	}
	if count != 0 {
		t.Fatalf("Expected empty store, got %d records", count)
	}
}

func TestAllExpertRecordsOrderedByID(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	names := []string{"Ada Lovelace", "Grace Hopper", "Edgar Codd", "Barbara Liskov"}
	for _, name := range names {
		if _, err := repo.AddExpertRecords(ctx, testRecord(name, "CS", "systems")); err != nil {
			t.Fatalf("Failed to add %s: %v", name, err)
		}
	}

	all, err := repo.AllExpertRecords(ctx)
	if err != nil {
		t.Fatalf("Failed to list records: %v", err)
	}
	if len(all) != len(names) {
		t.Fatalf("Expected %d records, got %d", len(names), len(all))
	}
	for i := 1; i < len(all); i++ {
		if core.IDFromContent(all[i-1].Name) >= core.IDFromContent(all[i].Name) {
			t.Fatalf("Records not ordered by ID at position %d", i)
		}
	}
}

func TestDeleteExpertRecords(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	if _, err := repo.AddExpertRecords(ctx,
		testRecord("Ada Lovelace", "CS", "ml"),
		testRecord("Grace Hopper", "CS", "databases")); err != nil {
		t.Fatalf("Failed to add records: %v", err)
	}

	if err := repo.DeleteExpertRecords(ctx, core.IDFromContent("Ada Lovelace")); err != nil {
		t.Fatalf("Failed to delete record: %v", err)
	}

	if _, err := repo.GetExpertRecordByName(ctx, "Ada Lovelace"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected name index cleanup, got %v", err)
	}

	count, err := repo.CountExpertRecords(ctx)
	if err != nil {
		t.Fatalf("Failed to count records: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected 1 remaining record, got %d", count)
	}
}
