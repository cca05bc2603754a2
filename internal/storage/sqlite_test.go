package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSaveAndRecentSessions(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, setup := range []string{"standard", "capture-demo", "standard"} {
		_, err := store.SaveSession(Session{
			SetupID:   setup,
			Player:    "tester",
			Moves:     i + 1,
			Captures:  i,
			Rejected:  2,
			StartedAt: base.Add(time.Duration(i) * time.Hour),
			EndedAt:   base.Add(time.Duration(i)*time.Hour + 5*time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	all, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(all))
	}
	if all[0].Moves != 3 || all[2].Moves != 1 {
		t.Errorf("sessions not newest first: %+v", all)
	}
	if all[0].Duration() != 5*time.Minute {
		t.Errorf("Duration() = %v, expected 5m", all[0].Duration())
	}
	if all[0].ID == "" || all[0].ID == all[1].ID {
		t.Error("sessions should get distinct generated IDs")
	}

	standard, err := store.RecentSessions("standard", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(standard) != 2 {
		t.Errorf("expected 2 standard sessions, got %d", len(standard))
	}

	limited, _ := store.RecentSessions("", 1)
	if len(limited) != 1 {
		t.Errorf("limit ignored: got %d sessions", len(limited))
	}
}

func TestSaveSessionKeepsGivenID(t *testing.T) {
	store := openTestStore(t)
	id := NewSessionID()

	got, err := store.SaveSession(Session{ID: id, SetupID: "standard"})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if got != id {
		t.Errorf("SaveSession() = %q, expected %q", got, id)
	}

	if _, err := store.SaveSession(Session{ID: id, SetupID: "standard"}); err == nil {
		t.Error("duplicate session ID should be rejected")
	}
}

func TestTotals(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Totals("standard")
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if empty != (Totals{}) {
		t.Errorf("Totals() on empty journal = %+v", empty)
	}

	store.SaveSession(Session{SetupID: "standard", Moves: 4, Captures: 1, Rejected: 2})
	store.SaveSession(Session{SetupID: "standard", Moves: 6, Captures: 2, Rejected: 0})
	store.SaveSession(Session{SetupID: "rooks-only", Moves: 10, Captures: 3})

	got, err := store.Totals("standard")
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	want := Totals{Sessions: 2, Moves: 10, Captures: 3, Rejected: 2}
	if got != want {
		t.Errorf("Totals(standard) = %+v, expected %+v", got, want)
	}

	all, _ := store.Totals("")
	if all.Sessions != 3 || all.Moves != 20 {
		t.Errorf("Totals(all) = %+v", all)
	}
}

func TestClearSessions(t *testing.T) {
	store := openTestStore(t)
	store.SaveSession(Session{SetupID: "standard", Moves: 1})
	store.SaveSession(Session{SetupID: "rooks-only", Moves: 1})

	if err := store.ClearSessions("standard"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	standard, _ := store.RecentSessions("standard", 10)
	if len(standard) != 0 {
		t.Errorf("expected no standard sessions after clear, got %d", len(standard))
	}
	rooks, _ := store.RecentSessions("rooks-only", 10)
	if len(rooks) != 1 {
		t.Error("other setups should not be affected by clear")
	}
}
