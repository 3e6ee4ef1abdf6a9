package database

import "github.com/luishram/tablero/internal/models"

// posRow is the id/position pair used for sibling ordering decisions.
type posRow struct {
	id       int
	position int
}

// positionBetween returns an integer strictly between lo and hi.
// ok is false when no integer gap remains and siblings need renumbering.
func positionBetween(lo, hi int) (pos int, ok bool) {
	if hi-lo < 2 {
		return 0, false
	}
	return lo + (hi-lo)/2, true
}

// slotFor computes the position for an item dropped at index among
// siblings (which must be ordered ascending and exclude the moved item
// itself). ok is false when the neighboring gap is exhausted; callers
// then renumber every sibling at multiples of models.PositionSpacing.
func slotFor(siblings []posRow, index int) (pos int, ok bool) {
	if len(siblings) == 0 {
		return models.PositionSpacing, true
	}
	if index <= 0 {
		return positionBetween(0, siblings[0].position)
	}
	if index >= len(siblings) {
		return siblings[len(siblings)-1].position + models.PositionSpacing, true
	}
	return positionBetween(siblings[index-1].position, siblings[index].position)
}

// clampIndex bounds a requested drop index to the valid range for n siblings.
func clampIndex(index, n int) int {
	if index < 0 {
		return 0
	}
	if index > n {
		return n
	}
	return index
}
