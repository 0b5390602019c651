package storefront

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// StateStore persists the two pieces of client state that survive restarts:
// the cart and the session. It mirrors the browser's two local-storage
// entries and is injected so tests can use the in-memory variant.
type StateStore interface {
	LoadCart() (Cart, error)
	SaveCart(cart Cart) error
	LoadSession() (*Session, error) // nil, nil when signed out
	SaveSession(session *Session) error
	ClearSession() error
}

const (
	keyCart    = "cart"
	keySession = "session"
)

type sqliteStateStore struct {
	db *sql.DB
}

// NewSQLiteStateStore opens (creating if needed) a single-table key/value
// database at dbPath.
func NewSQLiteStateStore(dbPath string) (StateStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("state db path must not be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create state db dir: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS state (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create state schema: %w", err)
	}

	return &sqliteStateStore{db: db}, nil
}

func (s *sqliteStateStore) LoadCart() (Cart, error) {
	var cart Cart
	ok, err := s.load(keyCart, &cart)
	if err != nil || !ok {
		return nil, err
	}
	return cart, nil
}

func (s *sqliteStateStore) SaveCart(cart Cart) error {
	if cart == nil {
		cart = Cart{}
	}
	return s.save(keyCart, cart)
}

func (s *sqliteStateStore) LoadSession() (*Session, error) {
	var session Session
	ok, err := s.load(keySession, &session)
	if err != nil || !ok {
		return nil, err
	}
	return &session, nil
}

func (s *sqliteStateStore) SaveSession(session *Session) error {
	if session == nil {
		return s.ClearSession()
	}
	return s.save(keySession, session)
}

func (s *sqliteStateStore) ClearSession() error {
	_, err := s.db.Exec(`DELETE FROM state WHERE key = ?`, keySession)
	return err
}

func (s *sqliteStateStore) load(key string, out any) (bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		return false, fmt.Errorf("decode %s state: %w", key, err)
	}
	return true, nil
}

func (s *sqliteStateStore) save(key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT OR REPLACE INTO state (key, value) VALUES (?, ?)`, key, string(encoded))
	return err
}

type memoryStateStore struct {
	mu      sync.Mutex
	cart    Cart
	session *Session
}

// NewMemoryStateStore returns a StateStore that forgets everything on
// process exit. Used by tests and as a fallback when no db path is set.
func NewMemoryStateStore() StateStore {
	return &memoryStateStore{}
}

func (m *memoryStateStore) LoadCart() (Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append(Cart{}, m.cart...), nil
}

func (m *memoryStateStore) SaveCart(cart Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart = append(Cart{}, cart...)
	return nil
}

func (m *memoryStateStore) LoadSession() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil, nil
	}
	session := *m.session
	return &session, nil
}

func (m *memoryStateStore) SaveSession(session *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if session == nil {
		m.session = nil
		return nil
	}
	copied := *session
	m.session = &copied
	return nil
}

func (m *memoryStateStore) ClearSession() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}
