package scoring

import (
	"fmt"
	"testing"

	"github.com/pageza/ahara/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankOrdersByScoreDescending(t *testing.T) {
	foods := []models.Food{
		newFood("plain", foodOpts{}),
		newFood("matching", foodOpts{benefits: []string{"diabetes"}}),
		newFood("allergen", foodOpts{ingredients: []string{"Peanut oil"}}),
		newFood("vegetarian", foodOpts{diets: []string{models.DietVegetarian}}),
	}
	profile := newProfile("diabetes")
	profile.Allergies = []string{"peanut"}

	ranked := NewEngine().Rank(foods, profile, 8)

	require.Len(t, ranked, 4)
	names := make([]string, 0, len(ranked))
	for _, r := range ranked {
		names = append(names, r.Food.NameEnglish)
	}
	assert.Equal(t, []string{"matching", "vegetarian", "plain", "allergen"}, names)
	assert.Equal(t, 70, ranked[0].Result.Score)
}

func TestRankIsStableForEqualScores(t *testing.T) {
	var foods []models.Food
	for i := 0; i < 12; i++ {
		foods = append(foods, newFood(fmt.Sprintf("food-%02d", i), foodOpts{}))
	}
	foods = append(foods, newFood("winner", foodOpts{diets: []string{models.DietVegetarian}}))

	ranked := NewEngine().Rank(foods, newProfile(), 8)

	require.Len(t, ranked, 8)
	assert.Equal(t, "winner", ranked[0].Food.NameEnglish)
	for i := 1; i < 8; i++ {
		assert.Equal(t, fmt.Sprintf("food-%02d", i-1), ranked[i].Food.NameEnglish)
	}
}

func TestRankIsDeterministic(t *testing.T) {
	var foods []models.Food
	for i := 0; i < 20; i++ {
		o := foodOpts{protein: float64(i % 8), fiber: float64(i % 6)}
		if i%3 == 0 {
			o.benefits = []string{"diabetes"}
		}
		if i%4 == 0 {
			o.season = []string{"winter"}
		}
		foods = append(foods, newFood(fmt.Sprintf("f%d", i), o))
	}
	profile := newProfile("diabetes")
	e := NewEngine()

	first := e.Rank(foods, profile, 8)
	second := e.Rank(foods, profile, 8)

	require.Len(t, first, 8)
	for i := range first {
		assert.Equal(t, first[i].Food.ID, second[i].Food.ID)
		assert.Equal(t, first[i].Result, second[i].Result)
	}
}

func TestRankReturnsAllWhenFewerThanLimit(t *testing.T) {
	foods := []models.Food{newFood("a", foodOpts{}), newFood("b", foodOpts{ingredients: []string{"nuts"}})}
	profile := newProfile()
	profile.Allergies = []string{"nuts"}

	ranked := NewEngine().Rank(foods, profile, 8)
	assert.Len(t, ranked, 2)

	assert.Empty(t, NewEngine().Rank(nil, profile, 8))
	assert.Len(t, NewEngine().Rank(foods, profile, 0), 2)
}

func TestRankPointsIntoCatalogSlice(t *testing.T) {
	foods := []models.Food{newFood("a", foodOpts{})}
	ranked := NewEngine().Rank(foods, newProfile(), 1)
	assert.Same(t, &foods[0], ranked[0].Food)
}
