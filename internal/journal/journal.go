// Package journal keeps every print job received by the emulator in a sqlite
// database, so that the paper survives a restart.
package journal

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

//go:embed schema.sql
var schema string

// A Session is one roll of paper: everything printed between two tear-offs.
type Session struct {
	Id        int64
	Uuid      uuid.UUID
	CreatedAt time.Time
}

// A Job is the bytes of one print request.
type Job struct {
	Id        int64
	CreatedAt time.Time
	Data      []byte
}

type Journal struct {
	Db *sql.DB
}

// Open opens or creates the journal database at path.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("Couldn't open database:\n%w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("Couldn't initialise database:\n%w", err)
	}
	return &Journal{Db: db}, nil
}

func (j *Journal) Close() error {
	return j.Db.Close()
}

// Run operations in a transaction, committing afterward, or rolling back if the
// passed function returns an error
func (j *Journal) Transact(f func(*sql.Tx) error) error {
	tx, err := j.Db.Begin()
	if err != nil {
		return err
	}

	if err := f(tx); err != nil {
		if err2 := tx.Rollback(); err2 != nil {
			return fmt.Errorf("Failed to roll back transaction: %w\n\nAfter handling: %v", err2, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction:\n%w", err)
	}
	return nil
}

func (j *Journal) CreateSession(tx *sql.Tx) (*Session, error) {
	s := Session{Uuid: uuid.New(), CreatedAt: time.Now()}
	row := tx.QueryRow(`
		INSERT INTO session(uuid, created_at)
		VALUES (?, ?)
		RETURNING id`, s.Uuid.String(), s.CreatedAt.UnixMilli())
	if err := row.Scan(&s.Id); err != nil {
		return nil, fmt.Errorf("Failed to insert into session:\n%w", err)
	}
	return &s, nil
}

func scanSession(row *sql.Row) (*Session, error) {
	var s Session
	var uuidString string
	var createdAt int64
	if err := row.Scan(&s.Id, &uuidString, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("Failed to read session:\n%w", err)
	}
	u, err := uuid.Parse(uuidString)
	if err != nil {
		return nil, fmt.Errorf("Session %d has an invalid UUID:\n%w", s.Id, err)
	}
	s.Uuid = u
	s.CreatedAt = time.UnixMilli(createdAt)
	return &s, nil
}

// GetSession returns nil if there is no session with the given UUID.
func (j *Journal) GetSession(u uuid.UUID) (*Session, error) {
	return scanSession(j.Db.QueryRow(`
		SELECT id, uuid, created_at
		FROM session
		WHERE uuid = ?`, u.String()))
}

// LatestSession returns the most recently created session, or nil if there are
// none.
func (j *Journal) LatestSession() (*Session, error) {
	return scanSession(j.Db.QueryRow(`
		SELECT id, uuid, created_at
		FROM session
		ORDER BY id DESC
		LIMIT 1`))
}

// Resume returns the latest session, creating one if the journal is empty.
func (j *Journal) Resume() (*Session, error) {
	s, err := j.LatestSession()
	if err != nil || s != nil {
		return s, err
	}
	err = j.Transact(func(tx *sql.Tx) error {
		s, err = j.CreateSession(tx)
		return err
	})
	return s, err
}

func (j *Journal) Append(tx *sql.Tx, s *Session, data []byte) (*Job, error) {
	if data == nil {
		// a nil slice would be stored as NULL
		data = []byte{}
	}
	job := Job{CreatedAt: time.Now(), Data: data}
	row := tx.QueryRow(`
		INSERT INTO job(session_id, created_at, data)
		VALUES (?, ?, ?)
		RETURNING id`, s.Id, job.CreatedAt.UnixMilli(), data)
	if err := row.Scan(&job.Id); err != nil {
		return nil, fmt.Errorf("Failed to insert job into session %s:\n%w", s.Uuid, err)
	}
	return &job, nil
}

// Jobs returns the jobs of a session in the order they were received.
func (j *Journal) Jobs(s *Session) ([]Job, error) {
	rows, err := j.Db.Query(`
		SELECT id, created_at, data
		FROM job
		WHERE session_id = ?
		ORDER BY id`, s.Id)
	if err != nil {
		return nil, fmt.Errorf("Query execution failed:\n%w", err)
	}
	defer rows.Close()

	jobs := []Job{}
	for rows.Next() {
		var job Job
		var createdAt int64
		if err := rows.Scan(&job.Id, &createdAt, &job.Data); err != nil {
			return nil, fmt.Errorf("Row scanning failed:\n%w", err)
		}
		job.CreatedAt = time.UnixMilli(createdAt)
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Error iterating rows:\n%w", err)
	}
	return jobs, nil
}

// Clear deletes every job of a session.
func (j *Journal) Clear(tx *sql.Tx, s *Session) error {
	if _, err := tx.Exec(`DELETE FROM job WHERE session_id = ?`, s.Id); err != nil {
		return fmt.Errorf("Couldn't clear session %s:\n%w", s.Uuid, err)
	}
	return nil
}

// Compact replaces every job of a session with a single one holding data.
func (j *Journal) Compact(tx *sql.Tx, s *Session, data []byte) error {
	if err := j.Clear(tx, s); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	_, err := j.Append(tx, s, data)
	return err
}

// Replay feeds the jobs of a session to sink in order and returns how many
// there were.
func (j *Journal) Replay(s *Session, sink func([]byte)) (int, error) {
	jobs, err := j.Jobs(s)
	if err != nil {
		return 0, fmt.Errorf("Couldn't read jobs of session %s:\n%w", s.Uuid, err)
	}
	for _, job := range jobs {
		sink(job.Data)
	}
	return len(jobs), nil
}
