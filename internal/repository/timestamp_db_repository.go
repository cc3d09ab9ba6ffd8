package repository

import (
	"github.com/movya/candidate-suite/internal/model"
	"gorm.io/gorm"
)

// DBTimestampStore keeps one row per identity. A nil or unreachable database
// degrades to a no-op store, same as the file backend.
type DBTimestampStore struct {
	db *gorm.DB
}

func NewDBTimestampStore(db *gorm.DB) *DBTimestampStore {
	return &DBTimestampStore{db: db}
}

func (s *DBTimestampStore) Get(name, email string) (string, bool) {
	if s.db == nil {
		return "", false
	}
	var entry model.CandidateTimestamp
	err := s.db.First(&entry, "key = ?", TimestampKey(name, email)).Error
	if err != nil {
		return "", false
	}
	return entry.Timestamp, true
}

func (s *DBTimestampStore) Set(name, email, timestamp string) {
	if s.db == nil {
		return
	}
	key := TimestampKey(name, email)
	var existing model.CandidateTimestamp
	if err := s.db.First(&existing, "key = ?", key).Error; err == nil {
		return
	}
	_ = s.db.Create(&model.CandidateTimestamp{Key: key, Timestamp: timestamp}).Error
}

func (s *DBTimestampStore) Overwrite(name, email, timestamp string) {
	if s.db == nil {
		return
	}
	entry := model.CandidateTimestamp{Key: TimestampKey(name, email), Timestamp: timestamp}
	_ = s.db.Save(&entry).Error
}

func (s *DBTimestampStore) Remove(name, email string) {
	if s.db == nil {
		return
	}
	_ = s.db.Delete(&model.CandidateTimestamp{}, "key = ?", TimestampKey(name, email)).Error
}

func (s *DBTimestampStore) Migrate(oldName, oldEmail, newName, newEmail string) {
	if s.db == nil {
		return
	}
	oldKey := TimestampKey(oldName, oldEmail)
	newKey := TimestampKey(newName, newEmail)
	if oldKey == newKey {
		return
	}
	var old model.CandidateTimestamp
	if err := s.db.First(&old, "key = ?", oldKey).Error; err == nil {
		var existing model.CandidateTimestamp
		if err := s.db.First(&existing, "key = ?", newKey).Error; err != nil {
			_ = s.db.Create(&model.CandidateTimestamp{Key: newKey, Timestamp: old.Timestamp}).Error
		}
	}
	_ = s.db.Delete(&model.CandidateTimestamp{}, "key = ?", oldKey).Error
}
