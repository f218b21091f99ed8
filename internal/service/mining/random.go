package mining

import (
	"cmp"
	"maps"
	"slices"
)

// Rand Источник случайных чисел в [0, 1)
type Rand interface {
	Float64() float64
}

// PickWeighted Взвешенный выбор ключа.
// Ключи обходятся по возрастанию, поэтому при одинаковом сиде результат повторяется.
func PickWeighted[K cmp.Ordered](rng Rand, weights map[K]float64) (K, error) {
	var zero K

	keys := slices.Sorted(maps.Keys(weights))

	var total float64
	for _, k := range keys {
		if w := weights[k]; w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return zero, ErrEmptyWeights
	}

	draw := rng.Float64() * total

	var (
		cumulative float64
		last       K
	)
	for _, k := range keys {
		w := weights[k]
		if w <= 0 {
			continue
		}
		cumulative += w
		last = k
		if draw < cumulative {
			return k, nil
		}
	}

	// Погрешность float64 на последнем шаге
	return last, nil
}
