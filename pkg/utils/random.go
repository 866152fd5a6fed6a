package utils

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// NewRng создает детерминированный генератор от сида.
func NewRng(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed выводит сид подсистемы (DM, уровень) из мастер-сида.
// Одинаковые входы всегда дают одинаковый сид, поэтому уровень
// воспроизводим независимо от порядка создания.
func DeriveSeed(master int64, name string, level int) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d/%s/%d", master, name, level)
	return int64(h.Sum64() >> 1)
}

// GenerateDeterministicID создает ID из переданного генератора,
// чтобы прогон с тем же сидом давал те же идентификаторы.
func GenerateDeterministicID(rng *rand.Rand, prefix string) string {
	return fmt.Sprintf("%s%08x", prefix, rng.Uint32())
}
