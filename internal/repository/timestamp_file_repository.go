package repository

import (
	"encoding/json"
	"os"
	"sync"
)

// FileTimestampStore persists the whole map as one JSON object in a single
// file, the shape the dashboard originally kept under a localStorage key.
// Read, write and parse failures are swallowed: the store just acts empty.
type FileTimestampStore struct {
	mu   sync.Mutex
	path string
}

func NewFileTimestampStore(path string) *FileTimestampStore {
	return &FileTimestampStore{path: path}
}

func (s *FileTimestampStore) readMap() map[string]string {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]string{}
	}
	entries := map[string]string{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return map[string]string{}
	}
	return entries
}

func (s *FileTimestampStore) writeMap(entries map[string]string) {
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, raw, 0o644)
}

func (s *FileTimestampStore) Get(name, email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts, ok := s.readMap()[TimestampKey(name, email)]
	return ts, ok
}

func (s *FileTimestampStore) Set(name, email, timestamp string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.readMap()
	key := TimestampKey(name, email)
	if entries[key] != "" {
		return
	}
	entries[key] = timestamp
	s.writeMap(entries)
}

func (s *FileTimestampStore) Overwrite(name, email, timestamp string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.readMap()
	entries[TimestampKey(name, email)] = timestamp
	s.writeMap(entries)
}

func (s *FileTimestampStore) Remove(name, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.readMap()
	key := TimestampKey(name, email)
	if _, ok := entries[key]; !ok {
		return
	}
	delete(entries, key)
	s.writeMap(entries)
}

func (s *FileTimestampStore) Migrate(oldName, oldEmail, newName, newEmail string) {
	oldKey := TimestampKey(oldName, oldEmail)
	newKey := TimestampKey(newName, newEmail)
	if oldKey == newKey {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.readMap()
	if entries[oldKey] != "" && entries[newKey] == "" {
		entries[newKey] = entries[oldKey]
	}
	delete(entries, oldKey)
	s.writeMap(entries)
}
