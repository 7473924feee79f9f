package models

// VerdictSummary итог классификации одной записи ЭКГ
// @Description Метки, отсортированные по убыванию частоты среди окон записи
type VerdictSummary struct {
	Labels          []string `json:"emotions" example:"calm,stressed"` // Различные метки по убыванию частоты
	Counts          []int    `json:"counts" example:"4,1"`             // Количество окон для каждой метки (по индексам)
	ChunksProcessed int      `json:"chunks_processed" example:"5"`     // Всего обработано окон
}

// ProcessRequest запрос на обработку записи ЭКГ
// @Description Сырой текст записи ЭКГ: заголовок устройства и числовые отсчёты построчно
type ProcessRequest struct {
	EcgData string `json:"ecgData" binding:"required"` // Сырой текст записи
}

// ErrorResponse стандартная структура ошибки
type ErrorResponse struct {
	Error   string `json:"error" example:"ecg processing error"`       // Сообщение об ошибке
	Details string `json:"details,omitempty" example:"not enough data"` // Дополнительные детали
}
