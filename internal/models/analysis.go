package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EcgAnalysis представляет сохранённый результат анализа записи ЭКГ
type EcgAnalysis struct {
	ID              string    `gorm:"type:uuid;primary_key" json:"id"`
	DeviceID        string    `gorm:"index" json:"device_id"`
	Source          string    `gorm:"not null" json:"source"` // api или mqtt
	TopLabel        string    `gorm:"index" json:"top_label"`
	ChunksProcessed int       `json:"chunks_processed"`
	VerdictData     string    `gorm:"type:text" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName устанавливает имя таблицы
func (EcgAnalysis) TableName() string {
	return "ecg_analyses"
}

// BeforeCreate устанавливает ID перед созданием
func (a *EcgAnalysis) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// SetVerdict сериализует вердикт в текстовое поле и заполняет сводные колонки
func (a *EcgAnalysis) SetVerdict(verdict *VerdictSummary) error {
	data, err := json.Marshal(verdict)
	if err != nil {
		return fmt.Errorf("ошибка сериализации вердикта: %w", err)
	}

	a.VerdictData = string(data)
	a.ChunksProcessed = verdict.ChunksProcessed
	if len(verdict.Labels) > 0 {
		a.TopLabel = verdict.Labels[0]
	}
	return nil
}

// GetVerdict разбирает и возвращает сохранённый вердикт
func (a *EcgAnalysis) GetVerdict() (*VerdictSummary, error) {
	if a.VerdictData == "" {
		return nil, fmt.Errorf("анализ %s не содержит вердикта", a.ID)
	}

	var verdict VerdictSummary
	if err := json.Unmarshal([]byte(a.VerdictData), &verdict); err != nil {
		return nil, fmt.Errorf("ошибка парсинга вердикта: %w", err)
	}

	return &verdict, nil
}
