package booking

import (
	"sort"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// SelectTable applies the best-fit policy over the eligible-and-free
// candidates: prefer a table whose capacity exactly equals partySize;
// otherwise take the smallest sufficient capacity. Capacity ties keep the
// candidates' original relative order (stable sort), so the outcome is
// deterministic. The caller is expected to have resolved availability
// first; an empty candidate list returns ErrNoCandidateTables.
func SelectTable(candidates []model.Table, partySize int) (model.Table, error) {
	if len(candidates) == 0 {
		return model.Table{}, ErrNoCandidateTables
	}
	sorted := make([]model.Table, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Capacity < sorted[j].Capacity
	})
	for _, t := range sorted {
		if t.Capacity == partySize {
			return t, nil
		}
	}
	return sorted[0], nil
}
