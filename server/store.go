package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/puyokura/nuiadmin/model"
)

var ErrNoTicket = errors.New("ticket not found")

// Sanction is a ban or a suspension applied by a dashboard.
type Sanction struct {
	PlayerID  string `db:"player_id" json:"playerId"`
	Days      int    `db:"days" json:"days"`
	Reason    string `db:"reason" json:"reason"`
	CreatedAt int64  `db:"created_at" json:"createdAt"`
}

// Permanent reports whether a ban has no end.
func (s Sanction) Permanent() bool { return s.Days < 0 }

// AuditRecord is one event received from a dashboard.
type AuditRecord struct {
	ID        int64  `db:"id" json:"id"`
	Operator  string `db:"operator" json:"operator"`
	Event     string `db:"event" json:"event"`
	Args      string `db:"args" json:"args"`
	CreatedAt int64  `db:"created_at" json:"createdAt"`
}

// Store keeps the host-side effects of dashboard calls in sqlite.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
	// serialises ticket read-modify-write
	ticketMu sync.Mutex
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS bans (
		player_id TEXT PRIMARY KEY,
		days INTEGER NOT NULL,
		reason TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS suspensions (
		player_id TEXT PRIMARY KEY,
		days INTEGER NOT NULL,
		reason TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS audit (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		operator TEXT NOT NULL,
		event TEXT NOT NULL,
		args TEXT NOT NULL DEFAULT '[]',
		created_at INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id TEXT PRIMARY KEY,
		body TEXT NOT NULL
	);`,
}

// OpenStore connects to the database at path, creates missing tables and
// seeds the ticket queue on first run.
func OpenStore(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	// sqlite serialises writers anyway; one connection avoids "database is locked".
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}
	s := &Store{db: db, now: time.Now}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM tickets`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}
	if n == 0 {
		for _, t := range model.MockTickets() {
			if err := s.SaveTicket(t); err != nil {
				db.Close()
				return nil, err
			}
		}
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ban(playerID string, days int, reason string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO bans (player_id, days, reason, created_at) VALUES (?, ?, ?, ?)`,
		playerID, days, reason, s.now().Unix())
	if err != nil {
		return fmt.Errorf("failed to ban %s: %w", playerID, err)
	}
	return nil
}

// Unban lifts a ban and reports whether there was one.
func (s *Store) Unban(playerID string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM bans WHERE player_id = ?`, playerID)
	if err != nil {
		return false, fmt.Errorf("failed to unban %s: %w", playerID, err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (s *Store) Bans() ([]Sanction, error) {
	var out []Sanction
	if err := s.db.Select(&out, `SELECT * FROM bans ORDER BY created_at DESC, player_id`); err != nil {
		return nil, fmt.Errorf("failed to list bans: %w", err)
	}
	return out, nil
}

func (s *Store) Suspend(playerID string, days int, reason string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO suspensions (player_id, days, reason, created_at) VALUES (?, ?, ?, ?)`,
		playerID, days, reason, s.now().Unix())
	if err != nil {
		return fmt.Errorf("failed to suspend %s: %w", playerID, err)
	}
	return nil
}

func (s *Store) Suspensions() ([]Sanction, error) {
	var out []Sanction
	if err := s.db.Select(&out, `SELECT * FROM suspensions ORDER BY created_at DESC, player_id`); err != nil {
		return nil, fmt.Errorf("failed to list suspensions: %w", err)
	}
	return out, nil
}

// Audit records an event with its raw argument list.
func (s *Store) Audit(operator string, ev model.Event) error {
	args, err := json.Marshal(ev.Args)
	if err != nil {
		return err
	}
	if ev.Args == nil {
		args = []byte("[]")
	}
	_, err = s.db.Exec(`INSERT INTO audit (operator, event, args, created_at) VALUES (?, ?, ?, ?)`,
		operator, ev.Name, string(args), s.now().Unix())
	if err != nil {
		return fmt.Errorf("failed to write audit: %w", err)
	}
	return nil
}

// RecentAudit returns the newest n records, newest first.
func (s *Store) RecentAudit(n int) ([]AuditRecord, error) {
	var out []AuditRecord
	if err := s.db.Select(&out, `SELECT * FROM audit ORDER BY id DESC LIMIT ?`, n); err != nil {
		return nil, fmt.Errorf("failed to read audit: %w", err)
	}
	return out, nil
}

func (s *Store) SaveTicket(t model.Ticket) error {
	body, err := json.Marshal(t)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(`INSERT OR REPLACE INTO tickets (id, body) VALUES (?, ?)`, t.ID, string(body)); err != nil {
		return fmt.Errorf("failed to save ticket %s: %w", t.ID, err)
	}
	return nil
}

func (s *Store) Ticket(id string) (model.Ticket, error) {
	var body string
	err := s.db.Get(&body, `SELECT body FROM tickets WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Ticket{}, ErrNoTicket
	}
	if err != nil {
		return model.Ticket{}, fmt.Errorf("failed to load ticket %s: %w", id, err)
	}
	var t model.Ticket
	if err := json.Unmarshal([]byte(body), &t); err != nil {
		return model.Ticket{}, fmt.Errorf("failed to decode ticket %s: %w", id, err)
	}
	return t, nil
}

func (s *Store) Tickets() ([]model.Ticket, error) {
	var bodies []string
	if err := s.db.Select(&bodies, `SELECT body FROM tickets ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	out := make([]model.Ticket, 0, len(bodies))
	for _, b := range bodies {
		var t model.Ticket
		if err := json.Unmarshal([]byte(b), &t); err != nil {
			return nil, fmt.Errorf("failed to decode ticket: %w", err)
		}
		out = append(out, t)
	}
	return out, nil
}

// UpdateTicket loads a ticket, applies fn and saves the result.
func (s *Store) UpdateTicket(id string, fn func(*model.Ticket)) error {
	s.ticketMu.Lock()
	defer s.ticketMu.Unlock()
	t, err := s.Ticket(id)
	if err != nil {
		return err
	}
	fn(&t)
	t.UpdatedAt = s.now().Format(time.RFC3339)
	return s.SaveTicket(t)
}
