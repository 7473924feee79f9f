package classifier

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScalerTransform(t *testing.T) {
	scaler := &StandardScaler{
		Mean:  []float64{1, 2, 3, 4, 5},
		Scale: []float64{1, 2, 1, 2, 1},
	}

	got, err := scaler.Transform([]float64{2, 6, 3, 0, 4})
	if err != nil {
		t.Fatalf("Transform вернул ошибку: %v", err)
	}

	want := []float64{1, 2, 0, -2, -1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("компонента %d = %v, ожидалось %v", i, got[i], want[i])
		}
	}
}

func TestScalerShapeMismatch(t *testing.T) {
	scaler := &StandardScaler{
		Mean:  []float64{0, 0},
		Scale: []float64{1, 1},
	}

	if _, err := scaler.Transform([]float64{1, 2, 3}); err == nil {
		t.Fatal("ожидалась ошибка несовпадения размерности")
	}
}

func TestScalerZeroScale(t *testing.T) {
	// Нулевой масштаб трактуется как единичный, деления на ноль нет
	scaler := &StandardScaler{
		Mean:  []float64{1},
		Scale: []float64{0},
	}

	got, err := scaler.Transform([]float64{3})
	if err != nil {
		t.Fatalf("Transform вернул ошибку: %v", err)
	}
	if got[0] != 2 {
		t.Fatalf("получено %v, ожидалось 2", got[0])
	}
}

// testTree дерево из одного сплита: признак 0 <= 0.5 -> класс 0, иначе класс 1
func testTree() Tree {
	return Tree{
		ChildrenLeft:  []int{1, -1, -1},
		ChildrenRight: []int{2, -1, -1},
		Feature:       []int{0, 0, 0},
		Threshold:     []float64{0.5, 0, 0},
		LeafClass:     []int{0, 0, 1},
	}
}

func TestForestPredict(t *testing.T) {
	forest := &Forest{
		Classes: []string{"calm", "stressed"},
		Trees:   []Tree{testTree(), testTree(), testTree()},
	}
	if err := forest.Validate(5); err != nil {
		t.Fatalf("Validate вернул ошибку: %v", err)
	}

	cases := []struct {
		vector []float64
		want   string
	}{
		{[]float64{0.2, 0, 0, 0, 0}, "calm"},
		{[]float64{0.9, 0, 0, 0, 0}, "stressed"},
	}

	for _, tc := range cases {
		got, err := forest.Predict(tc.vector)
		if err != nil {
			t.Fatalf("Predict вернул ошибку: %v", err)
		}
		if got != tc.want {
			t.Errorf("Predict(%v) = %q, ожидалось %q", tc.vector, got, tc.want)
		}
	}
}

func TestForestTieBreaksByLowerClassIndex(t *testing.T) {
	// Два дерева голосуют за разные классы: побеждает меньший индекс
	constantLeaf := func(class int) Tree {
		return Tree{
			ChildrenLeft:  []int{-1},
			ChildrenRight: []int{-1},
			Feature:       []int{0},
			Threshold:     []float64{0},
			LeafClass:     []int{class},
		}
	}

	forest := &Forest{
		Classes: []string{"calm", "stressed"},
		Trees:   []Tree{constantLeaf(1), constantLeaf(0)},
	}

	got, err := forest.Predict([]float64{0, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("Predict вернул ошибку: %v", err)
	}
	if got != "calm" {
		t.Fatalf("при равенстве голосов ожидался класс calm, получено %q", got)
	}
}

func TestForestValidateRejectsBrokenArtifacts(t *testing.T) {
	cases := []struct {
		name   string
		forest Forest
	}{
		{"нет классов", Forest{Trees: []Tree{testTree()}}},
		{"нет деревьев", Forest{Classes: []string{"a"}}},
		{
			"несогласованные массивы",
			Forest{
				Classes: []string{"a"},
				Trees: []Tree{{
					ChildrenLeft:  []int{-1},
					ChildrenRight: []int{-1, -1},
					Feature:       []int{0},
					Threshold:     []float64{0},
					LeafClass:     []int{0},
				}},
			},
		},
		{
			"класс листа вне диапазона",
			Forest{
				Classes: []string{"a"},
				Trees: []Tree{{
					ChildrenLeft:  []int{-1},
					ChildrenRight: []int{-1},
					Feature:       []int{0},
					Threshold:     []float64{0},
					LeafClass:     []int{5},
				}},
			},
		},
		{
			"признак вне вектора",
			Forest{
				Classes: []string{"a", "b"},
				Trees: []Tree{{
					ChildrenLeft:  []int{1, -1, -1},
					ChildrenRight: []int{2, -1, -1},
					Feature:       []int{9, 0, 0},
					Threshold:     []float64{0.5, 0, 0},
					LeafClass:     []int{0, 0, 1},
				}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.forest.Validate(5); err == nil {
				t.Fatal("ожидалась ошибка валидации")
			}
		})
	}
}

func writeArtifact(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("не удалось записать артефакт: %v", err)
	}
	return path
}

func TestLoadAndClassify(t *testing.T) {
	dir := t.TempDir()

	scalerPath := writeArtifact(t, dir, "scaler.json",
		`{"mean": [0, 0, 0, 0, 0], "scale": [1, 1, 1, 1, 1]}`)
	forestPath := writeArtifact(t, dir, "forest.json", `{
		"classes": ["calm", "stressed"],
		"trees": [{
			"children_left": [1, -1, -1],
			"children_right": [2, -1, -1],
			"feature": [0, 0, 0],
			"threshold": [0.5, 0, 0],
			"leaf_class": [0, 0, 1]
		}]
	}`)

	gateway, err := Load(forestPath, scalerPath)
	if err != nil {
		t.Fatalf("Load вернул ошибку: %v", err)
	}

	scaled, err := gateway.Normalize([]float64{0.2, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("Normalize вернул ошибку: %v", err)
	}

	label, err := gateway.Classify(scaled)
	if err != nil {
		t.Fatalf("Classify вернул ошибку: %v", err)
	}
	if label != "calm" {
		t.Fatalf("получена метка %q, ожидалась calm", label)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	goodScaler := writeArtifact(t, dir, "scaler.json",
		`{"mean": [0, 0, 0, 0, 0], "scale": [1, 1, 1, 1, 1]}`)

	t.Run("отсутствующий файл", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "nope.json"), goodScaler); err == nil {
			t.Fatal("ожидалась ошибка чтения артефакта")
		}
	})

	t.Run("битый JSON", func(t *testing.T) {
		broken := writeArtifact(t, dir, "broken.json", "{not json")
		if _, err := Load(broken, goodScaler); err == nil {
			t.Fatal("ожидалась ошибка разбора артефакта")
		}
	})

	t.Run("scaler неверной размерности", func(t *testing.T) {
		badScaler := writeArtifact(t, dir, "bad_scaler.json",
			`{"mean": [0, 0], "scale": [1, 1]}`)
		forest := writeArtifact(t, dir, "forest.json", `{
			"classes": ["a"],
			"trees": [{
				"children_left": [-1],
				"children_right": [-1],
				"feature": [0],
				"threshold": [0],
				"leaf_class": [0]
			}]
		}`)
		_, err := Load(forest, badScaler)
		if err == nil || !strings.Contains(err.Error(), "scaler") {
			t.Fatalf("ожидалась ошибка валидации scaler, получено: %v", err)
		}
	})
}

func TestClassifyShapeMismatch(t *testing.T) {
	gateway := &LocalGateway{
		scaler: &StandardScaler{Mean: make([]float64, 5), Scale: []float64{1, 1, 1, 1, 1}},
		forest: &Forest{Classes: []string{"a"}, Trees: []Tree{testTree()}},
	}

	if _, err := gateway.Classify([]float64{1, 2}); err == nil {
		t.Fatal("ожидалась ошибка несовпадения размерности")
	}
}
