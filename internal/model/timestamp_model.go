package model

// CandidateTimestamp is one first-seen entry in the database-backed timestamp
// store. Key is the normalized "name|email" identity.
type CandidateTimestamp struct {
	Key       string `gorm:"primaryKey;size:512" json:"key"`
	Timestamp string `gorm:"type:text" json:"timestamp"`
}

func (CandidateTimestamp) TableName() string {
	return "candidate_timestamps"
}
