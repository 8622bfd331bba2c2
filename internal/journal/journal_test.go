package journal

import (
	"bytes"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func aJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Couldn't open journal: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func aJournalSession(t *testing.T, j *Journal) *Session {
	t.Helper()
	var s *Session
	err := j.Transact(func(tx *sql.Tx) error {
		var err error
		s, err = j.CreateSession(tx)
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func appendAll(t *testing.T, j *Journal, s *Session, data ...[]byte) {
	t.Helper()
	err := j.Transact(func(tx *sql.Tx) error {
		for _, d := range data {
			if _, err := j.Append(tx, s, d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestReplayKeepsOrder(t *testing.T) {
	j := aJournal(t)
	s := aJournalSession(t, j)
	appendAll(t, j, s, []byte("one\n"), []byte{27, 3, 1, 2, 3}, []byte("three\n"))

	var got [][]byte
	n, err := j.Replay(s, func(d []byte) { got = append(got, d) })
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 || len(got) != 3 {
		t.Fatalf("Expected 3 jobs, replayed %d", n)
	}
	if !bytes.Equal(got[1], []byte{27, 3, 1, 2, 3}) || string(got[2]) != "three\n" {
		t.Errorf("Jobs replayed out of order or altered: %q", got)
	}
}

func TestSessionsAreSeparate(t *testing.T) {
	j := aJournal(t)
	a, b := aJournalSession(t, j), aJournalSession(t, j)
	appendAll(t, j, a, []byte("a"))
	appendAll(t, j, b, []byte("b"), []byte("b"))

	if jobs, _ := j.Jobs(a); len(jobs) != 1 {
		t.Errorf("Expected 1 job in first session, got %d", len(jobs))
	}
	latest, err := j.LatestSession()
	if err != nil || latest == nil || latest.Uuid != b.Uuid {
		t.Errorf("Expected latest session %s, got %v (%v)", b.Uuid, latest, err)
	}
}

func TestGetSession(t *testing.T) {
	j := aJournal(t)
	s := aJournalSession(t, j)

	got, err := j.GetSession(s.Uuid)
	if err != nil || got == nil || got.Id != s.Id {
		t.Fatalf("Couldn't find session %s: %v", s.Uuid, err)
	}
	if got, err := j.GetSession(uuid.New()); err != nil || got != nil {
		t.Errorf("Expected no session for a random UUID, got %v (%v)", got, err)
	}
}

func TestResume(t *testing.T) {
	j := aJournal(t)
	first, err := j.Resume()
	if err != nil || first == nil {
		t.Fatalf("Resume on an empty journal should create a session: %v", err)
	}
	again, err := j.Resume()
	if err != nil || again.Id != first.Id {
		t.Errorf("Resume should return the existing session")
	}
}

func TestClearAndCompact(t *testing.T) {
	j := aJournal(t)
	s := aJournalSession(t, j)
	appendAll(t, j, s, []byte("a\n"), []byte("b\n"))

	if err := j.Transact(func(tx *sql.Tx) error { return j.Compact(tx, s, []byte("b\n")) }); err != nil {
		t.Fatal(err)
	}
	jobs, _ := j.Jobs(s)
	if len(jobs) != 1 || string(jobs[0].Data) != "b\n" {
		t.Errorf("Expected one compacted job, got %v", jobs)
	}

	if err := j.Transact(func(tx *sql.Tx) error { return j.Clear(tx, s) }); err != nil {
		t.Fatal(err)
	}
	if jobs, _ := j.Jobs(s); len(jobs) != 0 {
		t.Errorf("Expected no jobs after clearing, got %d", len(jobs))
	}
}

func TestTransactRollsBack(t *testing.T) {
	j := aJournal(t)
	s := aJournalSession(t, j)
	failure := errors.New("failure")

	err := j.Transact(func(tx *sql.Tx) error {
		if _, err := j.Append(tx, s, []byte("lost")); err != nil {
			return err
		}
		return failure
	})
	if !errors.Is(err, failure) {
		t.Fatalf("Expected the function's error back, got %v", err)
	}
	if jobs, _ := j.Jobs(s); len(jobs) != 0 {
		t.Errorf("Rolled back job was kept")
	}
}

func TestEmptyJob(t *testing.T) {
	j := aJournal(t)
	s := aJournalSession(t, j)
	appendAll(t, j, s, nil)
	jobs, err := j.Jobs(s)
	if err != nil || len(jobs) != 1 || len(jobs[0].Data) != 0 {
		t.Errorf("Expected a single empty job, got %v (%v)", jobs, err)
	}
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	s, _ := j.Resume()
	appendAll(t, j, s, []byte("kept\n"))
	j.Close()

	j, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()
	again, _ := j.Resume()
	if again.Uuid != s.Uuid {
		t.Fatalf("Expected session %s after reopening, got %s", s.Uuid, again.Uuid)
	}
	if jobs, _ := j.Jobs(again); len(jobs) != 1 {
		t.Errorf("Expected the job to survive reopening")
	}
}
