package storage

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) (*DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, path
}

func TestMatchCacheRoundTrip(t *testing.T) {
	db, _ := openTestDB(t)

	if _, ok, err := db.GetMatch("NA1_1"); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v, want miss", ok, err)
	}

	body := []byte(`{"metadata":{"matchId":"NA1_1"}}`)
	if err := db.PutMatch("NA1_1", body); err != nil {
		t.Fatalf("PutMatch: %v", err)
	}

	got, ok, err := db.GetMatch("NA1_1")
	if err != nil || !ok {
		t.Fatalf("GetMatch after put: ok=%v err=%v", ok, err)
	}
	if string(got) != string(body) {
		t.Errorf("body = %s, want %s", got, body)
	}

	// Re-putting the same id replaces, never errors.
	if err := db.PutMatch("NA1_1", []byte("{}")); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if n, err := db.Count(); err != nil || n != 1 {
		t.Errorf("Count = %d (%v), want 1", n, err)
	}
}

func TestPurge(t *testing.T) {
	db, _ := openTestDB(t)

	for _, id := range []string{"NA1_1", "NA1_2", "NA1_3"} {
		if err := db.PutMatch(id, []byte("{}")); err != nil {
			t.Fatalf("PutMatch: %v", err)
		}
	}

	n, err := db.Purge()
	if err != nil || n != 3 {
		t.Fatalf("Purge = %d (%v), want 3", n, err)
	}
	if count, _ := db.Count(); count != 0 {
		t.Errorf("Count after purge = %d, want 0", count)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	db, path := openTestDB(t)
	if err := db.PutMatch("NA1_1", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("PutMatch: %v", err)
	}
	db.Close()

	db2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db2.Close()

	if _, ok, err := db2.GetMatch("NA1_1"); err != nil || !ok {
		t.Errorf("cached match lost across reopen: ok=%v err=%v", ok, err)
	}
}
