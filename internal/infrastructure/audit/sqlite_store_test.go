package audit

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/doeshing/cfai-go/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleRecords(runID string) []domain.AuditRecord {
	now := time.Now().UTC().Truncate(time.Second)
	return []domain.AuditRecord{
		{RunID: runID, Timestamp: now, Zone: "example.com", Kind: "dns_create", Description: "add www", Risk: "low", Status: "success", Message: "ok", DurationMS: 40},
		{RunID: runID, Timestamp: now, Zone: "example.com", Kind: "cache_purge", Description: "flush", Risk: "medium", Status: "failed", Message: "rate limited", DurationMS: 40},
	}
}

func TestSaveAndRecords(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(sampleRecords("run1")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	// newest first
	if records[0].Kind != "cache_purge" || records[1].Kind != "dns_create" {
		t.Errorf("unexpected order: %s, %s", records[0].Kind, records[1].Kind)
	}
	if records[0].RunID != "run1" || records[0].Status != "failed" {
		t.Errorf("record = %+v", records[0])
	}
}

func TestRecordsSearchAndLimit(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(sampleRecords("run1")); err != nil {
		t.Fatal(err)
	}

	records, err := store.Records(0, "www")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 1 || records[0].Description != "add www" {
		t.Errorf("search result = %+v", records)
	}

	limited, err := store.Records(1, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limit ignored, got %d records", len(limited))
	}
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(sampleRecords("run1")); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	records, err := store.Records(0, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty store, got %d records", len(records))
	}
}

func TestSaveEmptyIsNoop(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(nil); err != nil {
		t.Fatalf("Save(nil) error = %v", err)
	}
}
