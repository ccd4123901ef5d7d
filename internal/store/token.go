package store

import (
	"os"
	"sync"
)

// TokenKeeper persists the bearer token across sessions, the durable-storage
// analog of the browser's localStorage. Clear must be idempotent.
type TokenKeeper interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// MemoryKeeper keeps the token for the process lifetime only. Gateway
// sessions use this; the token dies with the session.
type MemoryKeeper struct {
	mu    sync.Mutex
	token string
}

func (m *MemoryKeeper) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryKeeper) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryKeeper) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// FileKeeper stores the token in a file, surviving restarts.
type FileKeeper struct {
	Path string
}

func (f *FileKeeper) Load() (string, error) {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (f *FileKeeper) Save(token string) error {
	return os.WriteFile(f.Path, []byte(token), 0o600)
}

func (f *FileKeeper) Clear() error {
	err := os.Remove(f.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
