package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"ecg-service/internal/models"
	"ecg-service/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ECGHandler обрабатывает HTTP запросы анализа ЭКГ
type ECGHandler struct {
	processor       *services.Processor
	analysisService *services.AnalysisService // nil, если персистентность отключена
}

// NewECGHandler создает новый обработчик запросов анализа ЭКГ
func NewECGHandler(processor *services.Processor, analysisService *services.AnalysisService) *ECGHandler {
	return &ECGHandler{
		processor:       processor,
		analysisService: analysisService,
	}
}

// AnalysisResponse сохранённый анализ вместе с развёрнутым вердиктом
type AnalysisResponse struct {
	ID        string                 `json:"id"`
	DeviceID  string                 `json:"device_id"`
	Source    string                 `json:"source"`
	CreatedAt time.Time              `json:"created_at"`
	Verdict   *models.VerdictSummary `json:"verdict"`
}

// ProcessECG выполняет полный конвейер анализа записи ЭКГ
// @Summary Классификация записи ЭКГ
// @Description Разбирает сырой текст записи, нарезает на окна, классифицирует каждое окно и возвращает метки по убыванию частоты
// @Tags ecg
// @Accept json
// @Produce json
// @Param request body models.ProcessRequest true "Сырой текст записи ЭКГ"
// @Success 200 {object} models.VerdictSummary "Итог классификации"
// @Failure 400 {object} models.ErrorResponse "Неверный запрос"
// @Failure 500 {object} models.ErrorResponse "Ошибка обработки"
// @Router /process_ecg [post]
func (h *ECGHandler) ProcessECG(c *gin.Context) {
	var req models.ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request",
			"details": err.Error(),
		})
		return
	}

	verdict, err := h.processor.Process(req.EcgData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "ecg processing error",
			"details": err.Error(),
		})
		return
	}

	// Сохранение — бухгалтерия, а не результат: при недоступной БД
	// вердикт всё равно возвращается клиенту
	if h.analysisService != nil {
		if _, err := h.analysisService.Save("", "api", verdict); err != nil {
			log.Printf("⚠️ Не удалось сохранить анализ: %v", err)
		}
	}

	c.JSON(http.StatusOK, verdict)
}

// ListAnalyses возвращает последние сохранённые анализы
// @Summary Список последних анализов
// @Description Возвращает сохранённые результаты анализа, новые первыми
// @Tags ecg
// @Produce json
// @Param limit query int false "Максимум записей (по умолчанию 20)"
// @Success 200 {array} handlers.AnalysisResponse "Сохранённые анализы"
// @Failure 500 {object} models.ErrorResponse "Внутренняя ошибка сервера"
// @Router /analyses [get]
func (h *ECGHandler) ListAnalyses(c *gin.Context) {
	if h.analysisService == nil {
		c.JSON(http.StatusOK, []AnalysisResponse{})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	analyses, err := h.analysisService.ListRecent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "analysis listing error",
			"details": err.Error(),
		})
		return
	}

	response := make([]AnalysisResponse, 0, len(analyses))
	for _, analysis := range analyses {
		verdict, err := analysis.GetVerdict()
		if err != nil {
			log.Printf("⚠️ Анализ %s пропущен: %v", analysis.ID, err)
			continue
		}
		response = append(response, AnalysisResponse{
			ID:        analysis.ID,
			DeviceID:  analysis.DeviceID,
			Source:    analysis.Source,
			CreatedAt: analysis.CreatedAt,
			Verdict:   verdict,
		})
	}

	c.JSON(http.StatusOK, response)
}

// Health проверяет состояние сервиса
// @Summary Проверка состояния сервиса
// @Description Возвращает статус работы сервиса анализа ЭКГ
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Сервис работает"
// @Router /health [get]
func (h *ECGHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}

// SetupRoutes настраивает роутер с CORS и маршрутами сервиса
func (h *ECGHandler) SetupRoutes() *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.POST("/process_ecg", h.ProcessECG)
	router.GET("/analyses", h.ListAnalyses)
	router.GET("/health", h.Health)

	return router
}
