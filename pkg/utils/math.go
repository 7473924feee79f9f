package utils

import (
	"math"
)

// SafeFloat заменяет NaN и Inf на 0, чтобы не ломать сериализацию и модель
func SafeFloat(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0.0
	}
	return v
}

// Mean вычисляет среднее значение
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// Variance вычисляет дисперсию по генеральной совокупности (делитель N, как np.var)
func Variance(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	// Константный сигнал: среднее после округления может отличаться от
	// значения отсчётов, и сумма квадратов даёт шум вместо нуля
	if isConstant(data) {
		return 0
	}

	mean := Mean(data)
	sumSquares := 0.0

	for _, v := range data {
		diff := v - mean
		sumSquares += diff * diff
	}

	return sumSquares / float64(len(data))
}

// isConstant сообщает, что все отсчёты равны первому
func isConstant(data []float64) bool {
	for _, v := range data[1:] {
		if v != data[0] {
			return false
		}
	}
	return true
}

// Std вычисляет стандартное отклонение по генеральной совокупности (как np.std)
func Std(data []float64) float64 {
	return math.Sqrt(Variance(data))
}

// Skewness вычисляет асимметрию Фишера-Пирсона без поправки на смещение
// (третий стандартизованный момент, как scipy.stats.skew с bias=True)
func Skewness(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	// Вырожденное окно: момент m2 равен нулю лишь математически,
	// численно он может оказаться ошибкой округления
	if isConstant(data) {
		return math.NaN()
	}

	mean := Mean(data)
	m2 := 0.0
	m3 := 0.0

	for _, v := range data {
		diff := v - mean
		m2 += diff * diff
		m3 += diff * diff * diff
	}

	n := float64(len(data))
	m2 /= n
	m3 /= n

	// Для вырожденного окна (все значения равны) момент m2 равен нулю
	if m2 == 0 {
		return math.NaN()
	}

	return m3 / math.Pow(m2, 1.5)
}

// Kurtosis вычисляет избыточный куртозис без поправки на смещение
// (четвёртый стандартизованный момент минус 3, как scipy.stats.kurtosis)
func Kurtosis(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	if isConstant(data) {
		return math.NaN()
	}

	mean := Mean(data)
	m2 := 0.0
	m4 := 0.0

	for _, v := range data {
		diff := v - mean
		sq := diff * diff
		m2 += sq
		m4 += sq * sq
	}

	n := float64(len(data))
	m2 /= n
	m4 /= n

	if m2 == 0 {
		return math.NaN()
	}

	return m4/(m2*m2) - 3.0
}

// Min находит минимальное значение
func Min(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	min := data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max находит максимальное значение
func Max(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	max := data[0]
	for _, v := range data[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Ptp вычисляет размах сигнала (max - min, как np.ptp)
func Ptp(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	return Max(data) - Min(data)
}
