package classifier

// Gateway — граница внешней модели классификации.
//
// Конвейер не знает, чем реализована модель: ему нужны ровно две
// способности — привести вектор признаков к обучающему масштабу и
// получить метку. Обе функции детерминированы, их состояние — параметры,
// зафиксированные при обучении и загруженные один раз на старте процесса.
// Реализации должны быть безопасны для конкурентного чтения.
type Gateway interface {
	// Normalize применяет зафиксированное при обучении преобразование признаков
	Normalize(features []float64) ([]float64, error)

	// Classify возвращает метку для нормализованного вектора признаков
	Classify(features []float64) (string, error)
}
