package features

import (
	"ecg-service/pkg/utils"
)

// ECGFeatures статистические признаки одного окна ЭКГ
type ECGFeatures struct {
	Mean       float64 `json:"mean"`
	Std        float64 `json:"std"`
	Skewness   float64 `json:"skewness"`
	Kurtosis   float64 `json:"kurtosis"`
	PeakToPeak float64 `json:"peak_to_peak"`
}

// CalculateECGFeatures вычисляет признаки окна во временной области.
// NaN и Inf (вырожденные окна) заменяются нулями через SafeFloat,
// чтобы вектор оставался пригодным для масштабирования и модели.
func CalculateECGFeatures(window []float64) ECGFeatures {
	return ECGFeatures{
		Mean:       utils.SafeFloat(utils.Mean(window)),
		Std:        utils.SafeFloat(utils.Std(window)),
		Skewness:   utils.SafeFloat(utils.Skewness(window)),
		Kurtosis:   utils.SafeFloat(utils.Kurtosis(window)),
		PeakToPeak: utils.SafeFloat(utils.Ptp(window)),
	}
}

// Vector возвращает признаки в фиксированном порядке, ожидаемом моделью:
// [mean, std, skewness, kurtosis, peak_to_peak]
func (f ECGFeatures) Vector() []float64 {
	return []float64{
		f.Mean,
		f.Std,
		f.Skewness,
		f.Kurtosis,
		f.PeakToPeak,
	}
}

// FeatureCount возвращает размерность вектора признаков
func FeatureCount() int {
	return 5
}
