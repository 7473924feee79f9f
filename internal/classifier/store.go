package classifier

import (
	"encoding/json"
	"fmt"
	"os"

	"ecg-service/internal/features"
)

// LocalGateway — классификация на месте: лес и scaler из JSON-артефактов.
// Артефакты загружаются один раз на старте процесса и далее только
// читаются, поэтому шлюз безопасен для конкурентных запросов.
type LocalGateway struct {
	scaler *StandardScaler
	forest *Forest
}

// Load читает артефакты модели и масштабирования с диска.
// Вызывается один раз при запуске сервиса.
func Load(forestPath, scalerPath string) (*LocalGateway, error) {
	scaler := &StandardScaler{}
	if err := readArtifact(scalerPath, scaler); err != nil {
		return nil, fmt.Errorf("загрузка scaler: %w", err)
	}
	if err := scaler.Validate(features.FeatureCount()); err != nil {
		return nil, fmt.Errorf("загрузка scaler: %w", err)
	}

	forest := &Forest{}
	if err := readArtifact(forestPath, forest); err != nil {
		return nil, fmt.Errorf("загрузка модели: %w", err)
	}
	if err := forest.Validate(features.FeatureCount()); err != nil {
		return nil, fmt.Errorf("загрузка модели: %w", err)
	}

	return &LocalGateway{scaler: scaler, forest: forest}, nil
}

// readArtifact читает и разбирает JSON-артефакт
func readArtifact(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("чтение артефакта %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("разбор артефакта %s: %w", path, err)
	}
	return nil
}

// Normalize приводит вектор признаков к обучающему масштабу
func (g *LocalGateway) Normalize(featureVec []float64) ([]float64, error) {
	return g.scaler.Transform(featureVec)
}

// Classify возвращает метку для нормализованного вектора признаков
func (g *LocalGateway) Classify(featureVec []float64) (string, error) {
	if len(featureVec) != features.FeatureCount() {
		return "", fmt.Errorf("forest: размерность вектора %d не совпадает с ожидаемой %d", len(featureVec), features.FeatureCount())
	}
	return g.forest.Predict(featureVec)
}
