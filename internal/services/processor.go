package services

import (
	"errors"
	"fmt"
	"sort"

	"ecg-service/internal/classifier"
	"ecg-service/internal/features"
	"ecg-service/internal/models"
	"ecg-service/internal/signal"
)

// ErrInsufficientData возвращается, когда запись короче одного окна анализа
var ErrInsufficientData = errors.New("недостаточно данных для анализа")

// Processor выполняет полный конвейер обработки записи ЭКГ:
// парсинг -> нарезка на окна -> признаки -> классификация -> агрегация
type Processor struct {
	gateway   classifier.Gateway
	chunkSize int
	overlap   int
}

// NewProcessor создает конвейер с заданными параметрами окна.
// Шлюз классификации инжектируется снаружи и переиспользуется
// между вызовами: модель загружается один раз на весь процесс.
func NewProcessor(gateway classifier.Gateway, chunkSize, overlap int) *Processor {
	return &Processor{
		gateway:   gateway,
		chunkSize: chunkSize,
		overlap:   overlap,
	}
}

// Process обрабатывает сырой текст записи и возвращает итоговый вердикт.
// Каждый вызов независим: ошибка одного запроса не влияет на остальные.
func (p *Processor) Process(rawText string) (*models.VerdictSummary, error) {
	samples := signal.Parse(rawText)
	chunks := signal.Chunk(samples, p.chunkSize, p.overlap)

	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: получено %d отсчётов, требуется минимум %d",
			ErrInsufficientData, len(samples), p.chunkSize)
	}

	// Окна классифицируются строго по порядку: порядок меток важен
	// для детерминированного разрешения ничьих при агрегации
	labels := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		vector := features.CalculateECGFeatures(chunk).Vector()

		scaled, err := p.gateway.Normalize(vector)
		if err != nil {
			return nil, fmt.Errorf("нормализация окна %d: %w", i, err)
		}

		label, err := p.gateway.Classify(scaled)
		if err != nil {
			return nil, fmt.Errorf("классификация окна %d: %w", i, err)
		}

		labels = append(labels, label)
	}

	return aggregate(labels), nil
}

// aggregate группирует метки окон и ранжирует их по убыванию частоты.
// При равенстве частот порядок определяется первым появлением метки:
// сортировка стабильна, а исходный срез упорядочен по первому вхождению.
func aggregate(labels []string) *models.VerdictSummary {
	counts := make(map[string]int, len(labels))
	order := make([]string, 0, len(labels))

	for _, label := range labels {
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	summary := &models.VerdictSummary{
		Labels:          order,
		Counts:          make([]int, len(order)),
		ChunksProcessed: len(labels),
	}
	for i, label := range order {
		summary.Counts[i] = counts[label]
	}

	return summary
}
