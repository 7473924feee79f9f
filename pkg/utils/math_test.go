package utils

import (
	"math"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestMeanAndStd(t *testing.T) {
	data := []float64{1, 2, 3, 4}

	if got := Mean(data); !almostEqual(got, 2.5) {
		t.Errorf("Mean = %v, ожидалось 2.5", got)
	}

	// Дисперсия по генеральной совокупности: делитель N, а не N-1
	if got := Variance(data); !almostEqual(got, 1.25) {
		t.Errorf("Variance = %v, ожидалось 1.25", got)
	}
	if got := Std(data); !almostEqual(got, math.Sqrt(1.25)) {
		t.Errorf("Std = %v, ожидалось %v", got, math.Sqrt(1.25))
	}
}

func TestSkewnessKnownValue(t *testing.T) {
	// scipy.stats.skew([0,0,0,1]) без поправки на смещение = 2/sqrt(3)
	got := Skewness([]float64{0, 0, 0, 1})
	want := 2.0 / math.Sqrt(3.0)

	if !almostEqual(got, want) {
		t.Fatalf("Skewness = %v, ожидалось %v", got, want)
	}
}

func TestSkewnessSymmetric(t *testing.T) {
	if got := Skewness([]float64{-1, 0, 1}); !almostEqual(got, 0) {
		t.Fatalf("Skewness симметричных данных = %v, ожидалось 0", got)
	}
}

func TestKurtosisKnownValue(t *testing.T) {
	// scipy.stats.kurtosis([0,0,0,1]) = m4/m2^2 - 3 = -2/3
	got := Kurtosis([]float64{0, 0, 0, 1})
	want := -2.0 / 3.0

	if !almostEqual(got, want) {
		t.Fatalf("Kurtosis = %v, ожидалось %v", got, want)
	}
}

func TestDegenerateWindow(t *testing.T) {
	constant := []float64{0.7, 0.7, 0.7}

	if got := Std(constant); got != 0 {
		t.Errorf("Std константы = %v, ожидалось 0", got)
	}
	if got := Ptp(constant); got != 0 {
		t.Errorf("Ptp константы = %v, ожидалось 0", got)
	}

	// Моменты вырожденного окна не определены
	if got := Skewness(constant); !math.IsNaN(got) {
		t.Errorf("Skewness константы = %v, ожидалось NaN", got)
	}
	if got := Kurtosis(constant); !math.IsNaN(got) {
		t.Errorf("Kurtosis константы = %v, ожидалось NaN", got)
	}
}

func TestDegenerateWindowLong(t *testing.T) {
	// На длинном окне среднее 0.7 накапливает ошибку округления
	// (sum/n != 0.7), и сумма квадратов отклонений перестаёт быть нулём
	constant := make([]float64, 5000)
	for i := range constant {
		constant[i] = 0.7
	}

	if got := Variance(constant); got != 0 {
		t.Errorf("Variance длинной константы = %v, ожидалось ровно 0", got)
	}
	if got := Std(constant); got != 0 {
		t.Errorf("Std длинной константы = %v, ожидалось ровно 0", got)
	}
	if got := Skewness(constant); !math.IsNaN(got) {
		t.Errorf("Skewness длинной константы = %v, ожидалось NaN", got)
	}
	if got := Kurtosis(constant); !math.IsNaN(got) {
		t.Errorf("Kurtosis длинной константы = %v, ожидалось NaN", got)
	}
}

func TestPtp(t *testing.T) {
	if got := Ptp([]float64{-0.5, 0.1, 0.9, 0.3}); !almostEqual(got, 1.4) {
		t.Fatalf("Ptp = %v, ожидалось 1.4", got)
	}
}

func TestSafeFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
		{0.42, 0.42},
	}

	for _, tc := range cases {
		if got := SafeFloat(tc.in); got != tc.want {
			t.Errorf("SafeFloat(%v) = %v, ожидалось %v", tc.in, got, tc.want)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	for name, fn := range map[string]func([]float64) float64{
		"Mean":     Mean,
		"Std":      Std,
		"Skewness": Skewness,
		"Kurtosis": Kurtosis,
		"Min":      Min,
		"Max":      Max,
		"Ptp":      Ptp,
	} {
		if got := fn(nil); !math.IsNaN(got) {
			t.Errorf("%s(nil) = %v, ожидалось NaN", name, got)
		}
	}
}
