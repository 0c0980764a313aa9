package local

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// FileStore keeps string values in a single JSON object on disk. Every
// write rewrites the whole file through a temp file and rename.
type FileStore struct {
	mu    sync.Mutex
	path  string
	log   *zap.Logger
	items map[string]string
}

// Open loads the store at path. An unreadable file is moved aside to
// <path>.corrupt and the store starts empty.
func Open(path string, log *zap.Logger) (*FileStore, error) {
	s := &FileStore{
		path:  path,
		log:   log,
		items: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("read storage %s: %w", path, err)
	case len(data) == 0:
		return s, nil
	}

	if err := json.Unmarshal(data, &s.items); err != nil {
		s.log.Warn("discarding unreadable local storage", zap.String("path", path), zap.Error(err))
		s.items = make(map[string]string)
		if err := os.Rename(path, path+".corrupt"); err != nil {
			s.log.Warn("failed to move unreadable local storage aside", zap.String("path", path), zap.Error(err))
		}
		return s, nil
	}
	if s.items == nil {
		s.items = make(map[string]string)
	}

	return s, nil
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.items[key]
	return value, ok
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.items[key]
	s.items[key] = value
	if err := s.flush(); err != nil {
		if had {
			s.items[key] = prev
		} else {
			delete(s.items, key)
		}
		return err
	}
	return nil
}

func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.items[key]
	if !had {
		return nil
	}
	delete(s.items, key)
	if err := s.flush(); err != nil {
		s.items[key] = prev
		return err
	}
	return nil
}

func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".quizmeon-*")
	if err != nil {
		return fmt.Errorf("create temp storage: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write storage: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write storage: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace storage: %w", err)
	}
	return nil
}
