package report

import (
	"time"

	"github.com/oaseass/oaseass-saju/feature/face"
	"github.com/oaseass/oaseass-saju/feature/saju"
)

// Input combines saju and face results into a report request.
type Input struct {
	Saju saju.Result `json:"saju"`
	Face face.Result `json:"face"`
	// Goal defaults to "business".
	Goal string `json:"goal"`
	// Locale defaults to "ko-KR".
	Locale string `json:"locale"`
}

// Report is a composed reading report.
type Report struct {
	Summary    string            `json:"summary"`
	Sections   map[string]string `json:"sections"`
	Actions    []string          `json:"actions"`
	Disclaimer string            `json:"disclaimer"`
}

// Record is a persisted report.
type Record struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Goal      string    `gorm:"size:64" json:"goal"`
	Locale    string    `gorm:"size:16" json:"locale"`
	Summary   string    `json:"summary"`
	Payload   []byte    `gorm:"type:json" json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table for report records.
func (Record) TableName() string {
	return "reports"
}
