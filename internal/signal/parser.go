package signal

import (
	"strconv"
	"strings"
)

// Parse превращает сырой текст записи ЭКГ в последовательность отсчётов.
//
// Входной файл обычно начинается с заголовка устройства произвольного
// формата, поэтому парсер работает в два этапа:
//   - пропуск заголовка: строки пропускаются до первого числа в диапазоне
//     [-1, 1] включительно (нормированные данные); это число становится
//     первым отсчётом. Числа вне диапазона в заголовке отбрасываются;
//   - данные: каждая последующая числовая строка добавляется как отсчёт
//     независимо от величины.
//
// Запятые по краям строки обрезаются (экспорт в CSV-подобном виде).
// Некорректные строки молча пропускаются на обоих этапах. Функция
// детерминирована и никогда не возвращает ошибку: мусор на входе
// означает меньше отсчётов, а не отказ.
func Parse(raw string) []float64 {
	lines := strings.Split(raw, "\n")
	values := make([]float64, 0, len(lines))
	dataStarted := false

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		token := strings.TrimSpace(strings.Trim(line, ","))
		num, err := strconv.ParseFloat(token, 64)
		if err != nil {
			continue
		}

		if !dataStarted {
			// Граница данных: первое число в диапазоне [-1, 1].
			// Проверка в утвердительной форме: для NaN оба сравнения
			// ложны, и такая строка остаётся частью заголовка
			if !(num >= -1 && num <= 1) {
				continue
			}
			dataStarted = true
		}

		values = append(values, num)
	}

	return values
}
