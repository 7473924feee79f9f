package classifier

import (
	"fmt"
)

// StandardScaler — аффинное преобразование признаков (x - mean) / scale
// с параметрами, подобранными при обучении (экспорт sklearn StandardScaler)
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Validate проверяет согласованность параметров масштабирования
func (s *StandardScaler) Validate(featureCount int) error {
	if len(s.Mean) != featureCount {
		return fmt.Errorf("scaler: ожидалось %d средних, получено %d", featureCount, len(s.Mean))
	}
	if len(s.Scale) != featureCount {
		return fmt.Errorf("scaler: ожидалось %d масштабов, получено %d", featureCount, len(s.Scale))
	}
	return nil
}

// Transform приводит вектор признаков к обучающему масштабу
func (s *StandardScaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.Mean) {
		return nil, fmt.Errorf("scaler: размерность вектора %d не совпадает с ожидаемой %d", len(features), len(s.Mean))
	}

	scaled := make([]float64, len(features))
	for i, v := range features {
		scale := s.Scale[i]
		if scale == 0 {
			// sklearn заменяет нулевой разброс единицей при обучении;
			// страхуемся на случай артефакта, собранного вручную
			scale = 1
		}
		scaled[i] = (v - s.Mean[i]) / scale
	}

	return scaled, nil
}
