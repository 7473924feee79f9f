package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port     string
	Database DatabaseConfig
	Pipeline PipelineConfig
	Model    ModelConfig
	MQTT     MQTTConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// PipelineConfig параметры нарезки сигнала на окна
type PipelineConfig struct {
	ChunkSize int // размер окна анализа в отсчётах
	Overlap   int // перекрытие соседних окон в отсчётах
}

// ModelConfig пути к артефактам обученной модели
type ModelConfig struct {
	ForestPath string // JSON-артефакт случайного леса
	ScalerPath string // JSON-артефакт StandardScaler
	RemoteURL  string // если задан, классификация выполняется внешним сервисом
}

type MQTTConfig struct {
	Broker   string
	ClientID string
	Username string
	Password string
	QoS      int
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Port: getEnv("HTTP_PORT", "8000"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "ecg_db"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Pipeline: PipelineConfig{
			ChunkSize: getEnvAsInt("ECG_CHUNK_SIZE", 5000),
			Overlap:   getEnvAsInt("ECG_CHUNK_OVERLAP", 0),
		},
		Model: ModelConfig{
			ForestPath: getEnv("MODEL_FOREST_PATH", "assets/model_assets/random_forest.json"),
			ScalerPath: getEnv("MODEL_SCALER_PATH", "assets/model_assets/scaler.json"),
			RemoteURL:  getEnv("CLASSIFIER_URL", ""),
		},
		MQTT: MQTTConfig{
			Broker:   getEnv("MQTT_BROKER", ""),
			ClientID: getEnv("MQTT_CLIENT_ID", "ecg_service"),
			Username: getEnv("MQTT_USERNAME", ""),
			Password: getEnv("MQTT_PASSWORD", ""),
			QoS:      getEnvAsInt("MQTT_QOS", 1),
		},
	}
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt получает переменную окружения как int
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
