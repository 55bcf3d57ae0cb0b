package usecase

import (
	"sort"
	"strings"

	"github.com/roadmate/roadmate/internal/pkg/models"
)

// FilterAndSort derives the rendered sequence from a marker collection and
// a free-text query. It is pure: the input slice is never mutated.
//
// A blank query passes everything through. Otherwise the query is split on
// whitespace into lowercase tokens and an entity survives only if its
// searchable text contains every token (AND semantics, case-insensitive).
// The result is sorted ascending by distance; entities without a known
// distance sort last; ties keep their relative input order.
func FilterAndSort(entities []models.Entity, query string) []models.Entity {
	tokens := strings.Fields(strings.ToLower(query))

	result := make([]models.Entity, 0, len(entities))
	for _, e := range entities {
		if matchesAllTokens(&e, tokens) {
			result = append(result, e)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		di, dj := result[i].DistanceKm, result[j].DistanceKm
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return *di < *dj
	})

	return result
}

func matchesAllTokens(e *models.Entity, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}

	text := e.SearchText()
	for _, token := range tokens {
		if !strings.Contains(text, token) {
			return false
		}
	}
	return true
}
