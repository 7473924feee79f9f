package services

import (
	"fmt"

	"ecg-service/internal/models"

	"gorm.io/gorm"
)

// AnalysisService отвечает за сохранение и выборку результатов анализа
type AnalysisService struct {
	db *gorm.DB
}

// NewAnalysisService создает сервис для работы с результатами анализа
func NewAnalysisService(db *gorm.DB) *AnalysisService {
	return &AnalysisService{db: db}
}

// Save сохраняет вердикт анализа в базе данных
func (s *AnalysisService) Save(deviceID, source string, verdict *models.VerdictSummary) (*models.EcgAnalysis, error) {
	analysis := &models.EcgAnalysis{
		DeviceID: deviceID,
		Source:   source,
	}
	if err := analysis.SetVerdict(verdict); err != nil {
		return nil, err
	}

	if err := s.db.Create(analysis).Error; err != nil {
		return nil, fmt.Errorf("ошибка сохранения анализа: %w", err)
	}

	return analysis, nil
}

// ListRecent возвращает последние результаты анализа
func (s *AnalysisService) ListRecent(limit int) ([]models.EcgAnalysis, error) {
	if limit <= 0 {
		limit = 20
	}

	var analyses []models.EcgAnalysis
	err := s.db.Order("created_at DESC").
		Limit(limit).
		Find(&analyses).Error

	if err != nil {
		return nil, fmt.Errorf("ошибка получения анализов: %w", err)
	}

	return analyses, nil
}
