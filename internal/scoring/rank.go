package scoring

import (
	"sort"

	"github.com/pageza/ahara/backend/internal/models"
)

// Scored pairs a catalog food with its score for one profile.
type Scored struct {
	Food   *models.Food
	Result Result
}

// Rank scores every food, orders them by score descending and returns at most
// limit entries. Equal scores keep catalog order. A limit <= 0 keeps everything.
func (e *Engine) Rank(foods []models.Food, profile *models.HealthProfile, limit int) []Scored {
	scored := make([]Scored, 0, len(foods))
	for i := range foods {
		food := &foods[i]
		scored = append(scored, Scored{Food: food, Result: e.Score(food, profile)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Result.Score > scored[j].Result.Score
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
