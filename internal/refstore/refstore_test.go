package refstore

import (
	"path/filepath"
	"testing"

	"github.com/FocuswithJustin/pericope/core/refparse"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "refs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBeginSession(t *testing.T) {
	s := openTestStore(t)

	sess, err := s.BeginSession("test.txt")
	if err != nil {
		t.Fatalf("BeginSession: %v", err)
	}
	if sess.ID == "" {
		t.Error("session should have an ID")
	}
	if sess.SchemeHash == "" {
		t.Error("session should record the scheme fingerprint")
	}

	other, err := s.BeginSession("other.txt")
	if err != nil {
		t.Fatalf("BeginSession: %v", err)
	}
	if other.ID == sess.ID {
		t.Error("session IDs should be unique")
	}
	if other.SchemeHash != sess.SchemeHash {
		t.Error("sessions under the same table should share a fingerprint")
	}

	sessions, err := s.Sessions()
	if err != nil {
		t.Fatalf("Sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("Sessions() len = %d, want 2", len(sessions))
	}
}

func TestAddAndQuery(t *testing.T) {
	s := openTestStore(t)
	sess, err := s.BeginSession("corpus.txt")
	if err != nil {
		t.Fatalf("BeginSession: %v", err)
	}

	for _, ref := range []string{"GEN 1:1-3", "MAT 5:3-12", "GEN 2:1,3"} {
		p, err := refparse.Parse(ref)
		if err != nil {
			t.Fatalf("Parse(%q): %v", ref, err)
		}
		if err := s.AddPericope(sess.ID, p); err != nil {
			t.Fatalf("AddPericope(%q): %v", ref, err)
		}
	}

	records, err := s.BySession(sess.ID)
	if err != nil {
		t.Fatalf("BySession: %v", err)
	}
	// GEN 2:1,3 contributes two rows (two disjoint ranges).
	if len(records) != 4 {
		t.Fatalf("BySession len = %d, want 4", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].StartEncoded > records[i].StartEncoded {
			t.Error("records should be ordered by encoded start")
		}
	}
	if records[0].Reference != "GEN 1:1-3" || records[0].StartEncoded != 1_001_001 {
		t.Errorf("first record = %+v, want GEN 1:1-3 at 1001001", records[0])
	}

	gen, err := s.InBook("GEN")
	if err != nil {
		t.Fatalf("InBook: %v", err)
	}
	if len(gen) != 3 {
		t.Errorf("InBook(GEN) len = %d, want 3", len(gen))
	}
	mat, err := s.InBook("MAT")
	if err != nil {
		t.Fatalf("InBook: %v", err)
	}
	if len(mat) != 1 || mat[0].StartEncoded != 40_005_003 {
		t.Errorf("InBook(MAT) = %+v, want one record at 40005003", mat)
	}
}

func TestAddEmptyPericope(t *testing.T) {
	s := openTestStore(t)
	sess, err := s.BeginSession("empty")
	if err != nil {
		t.Fatalf("BeginSession: %v", err)
	}
	if err := s.AddPericope(sess.ID, nil); err != nil {
		t.Errorf("AddPericope(nil) = %v, want no-op", err)
	}
	records, err := s.BySession(sess.ID)
	if err != nil {
		t.Fatalf("BySession: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("empty session should have no records, got %d", len(records))
	}
}

func TestDriverType(t *testing.T) {
	if got := DriverType(); got != "purego" && got != "cgo" {
		t.Errorf("DriverType() = %q, want purego or cgo", got)
	}
}
