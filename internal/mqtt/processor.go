package mqtt

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"ecg-service/internal/services"
)

// recording одна запись ЭКГ, принятая по MQTT
type recording struct {
	deviceID string
	rawText  string
}

// StreamProcessor обрабатывает записи ЭКГ, поступающие по MQTT.
// Устройство публикует полный текст записи в топик medical/ecg/{deviceID};
// каждая запись проходит тот же конвейер, что и HTTP запросы.
type StreamProcessor struct {
	processor       *services.Processor
	analysisService *services.AnalysisService // nil, если персистентность отключена

	dataChannel chan *recording

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewStreamProcessor создает процессор потоковых записей и запускает воркер
func NewStreamProcessor(processor *services.Processor, analysisService *services.AnalysisService) *StreamProcessor {
	ctx, cancel := context.WithCancel(context.Background())

	p := &StreamProcessor{
		processor:       processor,
		analysisService: analysisService,
		dataChannel:     make(chan *recording, 100),
		ctx:             ctx,
		cancel:          cancel,
	}

	p.wg.Add(1)
	go p.worker()

	log.Println("🚀 MQTT Stream Processor запущен")
	return p
}

// HandleIncoming главный обработчик MQTT сообщений.
// Топик: medical/ecg/{deviceID}, payload — сырой текст записи.
func (p *StreamProcessor) HandleIncoming(topic string, payload []byte) {
	deviceID, ok := parseTopic(topic)
	if !ok {
		log.Printf("⚠️ Неверный формат топика: %s", topic)
		return
	}

	select {
	case p.dataChannel <- &recording{deviceID: deviceID, rawText: string(payload)}:
	default:
		log.Printf("⚠️ Канал данных переполнен, пропускаем запись от %s", deviceID)
	}
}

// parseTopic извлекает deviceID из топика medical/ecg/{deviceID}
func parseTopic(topic string) (string, bool) {
	parts := strings.Split(topic, "/")
	if len(parts) != 3 || parts[0] != "medical" || parts[1] != "ecg" || parts[2] == "" {
		return "", false
	}
	return parts[2], true
}

// worker обрабатывает записи из канала
func (p *StreamProcessor) worker() {
	defer p.wg.Done()

	for {
		select {
		case rec := <-p.dataChannel:
			p.processRecording(rec)
		case <-p.ctx.Done():
			log.Println("🛑 MQTT worker остановлен")
			return
		}
	}
}

// processRecording прогоняет одну запись через конвейер анализа
func (p *StreamProcessor) processRecording(rec *recording) {
	verdict, err := p.processor.Process(rec.rawText)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientData) {
			log.Printf("⚠️ Запись от %s слишком короткая: %v", rec.deviceID, err)
		} else {
			log.Printf("❌ Ошибка обработки записи от %s: %v", rec.deviceID, err)
		}
		return
	}

	log.Printf("Запись от %s: %d окон, верхняя метка %s",
		rec.deviceID, verdict.ChunksProcessed, verdict.Labels[0])

	if p.analysisService != nil {
		if _, err := p.analysisService.Save(rec.deviceID, "mqtt", verdict); err != nil {
			log.Printf("⚠️ Не удалось сохранить анализ от %s: %v", rec.deviceID, err)
		}
	}
}

// Stop останавливает обработку и дожидается воркера
func (p *StreamProcessor) Stop() {
	p.cancel()
	p.wg.Wait()
}
