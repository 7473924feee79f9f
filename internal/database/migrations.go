package database

import (
	"fmt"
	"log"

	"ecg-service/internal/models"

	"gorm.io/gorm"
)

// RunMigrations выполняет миграции базы данных
func RunMigrations(db *gorm.DB) error {
	log.Println("🔄 Запуск миграций базы данных...")

	err := db.AutoMigrate(
		&models.EcgAnalysis{},
	)

	if err != nil {
		return fmt.Errorf("ошибка миграции: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("ошибка создания индексов: %w", err)
	}

	log.Println("✅ Миграции выполнены успешно")
	return nil
}

// createIndexes создает дополнительные индексы
func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_ecg_analyses_created_desc ON ecg_analyses(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_ecg_analyses_device_created ON ecg_analyses(device_id, created_at DESC)",
	}

	for _, indexSQL := range indexes {
		if err := db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Не удалось создать индекс: %s, ошибка: %v", indexSQL, err)
		}
	}

	return nil
}
