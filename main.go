package main

import (
	"log"
	"net/http"

	"ecg-service/config"
	"ecg-service/internal/classifier"
	"ecg-service/internal/database"
	"ecg-service/internal/handlers"
	"ecg-service/internal/mqtt"
	"ecg-service/internal/services"
)

func main() {
	// Загрузка конфигурации
	cfg := config.Load()

	// Загрузка модели — один раз на весь процесс
	gateway, err := buildGateway(cfg)
	if err != nil {
		log.Fatalf("Ошибка загрузки модели: %v", err)
	}

	// Подключение к БД: персистентность — дополнение, без неё сервис
	// продолжает отвечать на запросы анализа
	var analysisService *services.AnalysisService
	db, err := database.Connect(cfg)
	if err != nil {
		log.Printf("⚠️ БД недоступна, работаем без сохранения анализов: %v", err)
	} else {
		if err := database.RunMigrations(db); err != nil {
			log.Fatalf("Ошибка миграций: %v", err)
		}
		analysisService = services.NewAnalysisService(db)
	}

	// Инициализация конвейера обработки
	processor := services.NewProcessor(gateway, cfg.Pipeline.ChunkSize, cfg.Pipeline.Overlap)

	// Потоковый приём записей по MQTT (если настроен брокер)
	if cfg.MQTT.Broker != "" {
		streamProcessor := mqtt.NewStreamProcessor(processor, analysisService)
		mqttClient, err := mqtt.InitClient(cfg.MQTT, streamProcessor)
		if err != nil {
			log.Fatalf("Ошибка MQTT: %v", err)
		}
		defer mqttClient.Disconnect(250)
		defer streamProcessor.Stop()
	}

	// Настройка роутера
	ecgHandler := handlers.NewECGHandler(processor, analysisService)
	router := ecgHandler.SetupRoutes()

	log.Printf("Запуск сервиса анализа ЭКГ на порту %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}

// buildGateway выбирает способ классификации: внешний сервис или
// локальные артефакты модели
func buildGateway(cfg *config.Config) (classifier.Gateway, error) {
	if cfg.Model.RemoteURL != "" {
		log.Printf("Классификация внешним сервисом: %s", cfg.Model.RemoteURL)
		return classifier.NewRemoteGateway(cfg.Model.RemoteURL), nil
	}

	log.Printf("Классификация локальной моделью: %s", cfg.Model.ForestPath)
	return classifier.Load(cfg.Model.ForestPath, cfg.Model.ScalerPath)
}
