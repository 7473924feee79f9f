package mqtt

import (
	"fmt"
	"log"

	"ecg-service/config"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Topic шаблон подписки: все устройства ЭКГ
const Topic = "medical/ecg/+"

// InitClient инициализирует MQTT клиент и подписывает процессор на записи
func InitClient(cfg config.MQTTConfig, processor *StreamProcessor) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)

	if cfg.Username != "" && cfg.Password != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
		log.Printf("MQTT аутентификация: пользователь %s", cfg.Username)
	}

	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.OnConnect = func(c mqtt.Client) {
		log.Println("MQTT подключен")
	}
	opts.OnConnectionLost = func(c mqtt.Client, err error) {
		log.Printf("MQTT соединение потеряно: %v", err)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("MQTT подключение не удалось: %w", token.Error())
	}

	messageHandler := func(c mqtt.Client, msg mqtt.Message) {
		processor.HandleIncoming(msg.Topic(), msg.Payload())
	}

	if token := client.Subscribe(Topic, byte(cfg.QoS), messageHandler); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("ошибка подписки MQTT: %w", token.Error())
	}

	log.Printf("MQTT клиент подключён к %s, топик: %s", cfg.Broker, Topic)
	return client, nil
}
