package models

import "time"

// StudySession is one completed timer run.
type StudySession struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	MaterialID string    `json:"materialId,omitempty"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Duration   int       `json:"duration"` // minutes
	Subject    string    `json:"subject"`
	Notes      string    `json:"notes,omitempty"`
}
