package sampler

import (
	"slices"

	"rollcall-draw/models"
)

// MaxPoolSize bounds the roster Prepare synthesizes from an empty seed
const MaxPoolSize = 1 << 20

// Prepare shapes a candidate list for a draw of quantity students.
//
// When quantity is below the number of candidates they are used as they
// are. Otherwise an empty seed becomes the roster 1..quantity, while a
// non-empty seed keeps only its own entries (non-positive entries count as
// absent), since nothing can be synthesized past a known list. A
// synthesized roster never exceeds MaxPoolSize students.
func Prepare(candidates []models.Student, quantity int) []models.Student {
	if quantity < len(candidates) {
		return candidates
	}

	if len(candidates) == 0 {
		size := min(quantity, MaxPoolSize)
		pool := make([]models.Student, 0, size)
		for i := 0; i < size; i++ {
			pool = append(pool, i+1)
		}
		return pool
	}

	pool := make([]models.Student, 0, len(candidates))
	for _, s := range candidates {
		if s > 0 {
			pool = append(pool, s)
		}
	}
	return pool
}

// Draw picks quantity distinct students from pool, ascending.
//
// If the pool is shorter than quantity the first limit entries are
// returned instead. Otherwise indexes are drawn from src and repeats are
// rejected until quantity distinct students are held. Retries are not
// capped; the loop terminates because a pool with fewer distinct students
// than quantity is returned whole.
func Draw(src IndexSource, pool []models.Student, limit, quantity int) []models.Student {
	if quantity <= 0 {
		return []models.Student{}
	}

	if len(pool) < quantity {
		limit = max(0, min(limit, len(pool)))
		return sortedUnique(pool[:limit])
	}

	if distinct := sortedUnique(pool); len(distinct) <= quantity {
		return distinct
	}

	chosen := make(map[models.Student]struct{}, quantity)
	drawn := make([]models.Student, 0, quantity)
	for len(drawn) < quantity {
		s := pool[src.IntN(len(pool))]
		if _, ok := chosen[s]; ok {
			continue
		}
		chosen[s] = struct{}{}
		drawn = append(drawn, s)
	}

	slices.Sort(drawn)
	return drawn
}

func sortedUnique(students []models.Student) []models.Student {
	out := slices.Clone(students)
	if out == nil {
		out = []models.Student{}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
