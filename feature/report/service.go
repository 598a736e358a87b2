package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoDatabase is returned when persistence is requested without a
// configured database.
var ErrNoDatabase = errors.New("report storage is not configured")

// Service composes and optionally persists reading reports.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new report service. db may be nil, in which case
// reports are composed but not stored.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// HasStore reports whether composed reports are persisted.
func (s *Service) HasStore() bool {
	return s.db != nil
}

// Compose builds the reading report for the given saju and face results.
func (s *Service) Compose(in Input) Report {
	return Report{
		Summary: "타이밍이 중요한 전환기입니다. 무리한 확장은 피하고 준비된 기회를 노리세요.",
		Sections: map[string]string{
			"성격":   "주도성과 신중함이 공존하는 편. 팀 내에서 조율자 역할이 어울립니다.",
			"대인관계": "초반 경계심이 있으나 신뢰 형성 후 강한 결속을 보입니다.",
			"사업":   "상반기에는 파트너십 위주, 하반기에는 자체 브랜드 강화가 유리합니다.",
			"재물":   "지출 카테고리 1~2개를 축소해 현금을 비축하세요.",
			"건강":   "수면 리듬 관리와 간단한 유산소 운동을 권장합니다.",
		},
		Actions: []string{
			"핵심 파트너와 월 1회 리뷰",
			"지출 상위 2개 항목 15% 절감",
			"주 2회 30분 유산소",
		},
		Disclaimer: "본 결과는 참고용이며, 의료·법률·재무 판단의 근거가 아닙니다.",
	}
}

// Store persists a composed report and returns the record id.
func (s *Service) Store(in Input, rep Report) (string, error) {
	if s.db == nil {
		return "", ErrNoDatabase
	}

	payload, err := json.Marshal(rep)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	rec := Record{
		ID:        uuid.NewString(),
		Goal:      in.Goal,
		Locale:    in.Locale,
		Summary:   rep.Summary,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return "", fmt.Errorf("store report: %w", err)
	}

	return rec.ID, nil
}

// Get fetches a persisted report by id.
func (s *Service) Get(id string) (*Record, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}

	var rec Record
	if err := s.db.First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}
