package classifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RemoteGateway — классификация внешним ML сервисом по HTTP.
// Используется, когда модель живёт в отдельном Python-сервисе:
// нормализацию он выполняет сам, поэтому Normalize здесь — тождество.
type RemoteGateway struct {
	url        string
	httpClient *http.Client
}

// NewRemoteGateway создает шлюз к внешнему сервису классификации
func NewRemoteGateway(url string) *RemoteGateway {
	return &RemoteGateway{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// classifyRequest тело запроса к внешнему сервису
type classifyRequest struct {
	Features []float64 `json:"features"`
}

// classifyResponse тело ответа внешнего сервиса
type classifyResponse struct {
	Label string `json:"label"`
}

// Normalize возвращает вектор без изменений: масштабирование на стороне сервиса
func (g *RemoteGateway) Normalize(features []float64) ([]float64, error) {
	return features, nil
}

// Classify отправляет вектор признаков внешнему сервису и возвращает метку
func (g *RemoteGateway) Classify(features []float64) (string, error) {
	requestBody, err := json.Marshal(classifyRequest{Features: features})
	if err != nil {
		return "", fmt.Errorf("сериализация запроса: %w", err)
	}

	url := fmt.Sprintf("%s/classify", g.url)

	httpReq, err := http.NewRequest("POST", url, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("создание запроса: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("выполнение запроса: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("сервис классификации вернул ошибку %d: %s", resp.StatusCode, string(body))
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("чтение ответа: %w", err)
	}

	var response classifyResponse
	if err := json.Unmarshal(responseBody, &response); err != nil {
		return "", fmt.Errorf("десериализация ответа: %w", err)
	}

	if response.Label == "" {
		return "", fmt.Errorf("сервис классификации вернул пустую метку")
	}

	return response.Label, nil
}
