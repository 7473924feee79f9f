package classifier

import (
	"fmt"
)

// Tree — одно дерево решений в виде плоских массивов узлов
// (формат экспорта sklearn: children_left[i] == -1 означает лист)
type Tree struct {
	ChildrenLeft  []int     `json:"children_left"`
	ChildrenRight []int     `json:"children_right"`
	Feature       []int     `json:"feature"`
	Threshold     []float64 `json:"threshold"`
	LeafClass     []int     `json:"leaf_class"`
}

// Forest — случайный лес, восстановленный из JSON-артефакта обучения
type Forest struct {
	Classes []string `json:"classes"`
	Trees   []Tree   `json:"trees"`
}

// Validate проверяет структурную целостность артефакта леса
func (f *Forest) Validate(featureCount int) error {
	if len(f.Classes) == 0 {
		return fmt.Errorf("forest: артефакт не содержит классов")
	}
	if len(f.Trees) == 0 {
		return fmt.Errorf("forest: артефакт не содержит деревьев")
	}

	for ti, tree := range f.Trees {
		n := len(tree.ChildrenLeft)
		if len(tree.ChildrenRight) != n || len(tree.Feature) != n ||
			len(tree.Threshold) != n || len(tree.LeafClass) != n {
			return fmt.Errorf("forest: дерево %d имеет несогласованные массивы узлов", ti)
		}
		if n == 0 {
			return fmt.Errorf("forest: дерево %d пустое", ti)
		}
		for node := 0; node < n; node++ {
			left, right := tree.ChildrenLeft[node], tree.ChildrenRight[node]
			if left == -1 {
				if cls := tree.LeafClass[node]; cls < 0 || cls >= len(f.Classes) {
					return fmt.Errorf("forest: дерево %d, лист %d ссылается на несуществующий класс %d", ti, node, cls)
				}
				continue
			}
			if left < 0 || left >= n || right < 0 || right >= n {
				return fmt.Errorf("forest: дерево %d, узел %d ссылается за пределы дерева", ti, node)
			}
			if feat := tree.Feature[node]; feat < 0 || feat >= featureCount {
				return fmt.Errorf("forest: дерево %d, узел %d использует признак %d вне вектора из %d", ti, node, feat, featureCount)
			}
		}
	}

	return nil
}

// predict спускается от корня до листа; возвращает индекс класса
func (t *Tree) predict(features []float64) int {
	node := 0
	for t.ChildrenLeft[node] != -1 {
		if features[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return t.LeafClass[node]
}

// Predict возвращает метку по мажоритарному голосованию деревьев.
// При равенстве голосов побеждает класс с меньшим индексом (как в sklearn).
func (f *Forest) Predict(features []float64) (string, error) {
	if len(f.Trees) == 0 {
		return "", fmt.Errorf("forest: модель не загружена")
	}

	votes := make([]int, len(f.Classes))
	for i := range f.Trees {
		votes[f.Trees[i].predict(features)]++
	}

	best := 0
	for i := 1; i < len(votes); i++ {
		if votes[i] > votes[best] {
			best = i
		}
	}

	return f.Classes[best], nil
}
