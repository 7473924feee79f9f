package signal

// Chunk нарезает последовательность отсчётов на окна фиксированного размера.
//
// Окна начинаются со смещений 0, step, 2*step, ..., где step = size - overlap.
// Эмитируются только полные окна: неполный хвост отбрасывается. Каждое окно —
// независимая копия, изменение окна не затрагивает исходный срез.
// Если отсчётов меньше одного окна или параметры некорректны
// (size <= 0 либо overlap вне [0, size)), результат пуст.
func Chunk(samples []float64, size, overlap int) [][]float64 {
	if size <= 0 || overlap < 0 || overlap >= size {
		return nil
	}

	step := size - overlap
	chunks := make([][]float64, 0, len(samples)/step)

	for i := 0; i+size <= len(samples); i += step {
		window := make([]float64, size)
		copy(window, samples[i:i+size])
		chunks = append(chunks, window)
	}

	return chunks
}
