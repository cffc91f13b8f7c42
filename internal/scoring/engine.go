package scoring

import (
	"strings"

	"github.com/pageza/ahara/backend/internal/models"
)

const (
	BaseScore = 50
	MinScore  = 0
	MaxScore  = 100

	HealthMatchPoints  = 20
	DietaryPoints      = 15
	ConstitutionPoints = 10
	ActivityPoints     = 5
	SeasonPoints       = 5
	AllergenPenalty    = 30
)

const (
	activeProteinFloor = 6.0
	proteinReasonFloor = 5.0
	fiberReasonFloor   = 3.0
)

// DefaultSeason is the season every food is compared against. It is a fixed
// setting, not derived from the current date.
const DefaultSeason = "winter"

// Result is the outcome of scoring one food for one profile.
type Result struct {
	Score       int      `json:"score"`
	HealthMatch []string `json:"health_match"`
	Reason      string   `json:"reason"`
}

// Engine scores foods against profiles.
type Engine struct {
	season string
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeason overrides the season used for the season bonus.
func WithSeason(season string) Option {
	return func(e *Engine) {
		if s := strings.TrimSpace(season); s != "" {
			e.season = strings.ToLower(s)
		}
	}
}

// NewEngine creates an Engine using DefaultSeason unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{season: DefaultSeason}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Season returns the season the engine compares against.
func (e *Engine) Season() string {
	return e.season
}

// Score computes the score, matched benefits and reason for food under profile.
// Missing data counts as absent; Score never panics on nil input.
func (e *Engine) Score(food *models.Food, profile *models.HealthProfile) Result {
	if food == nil {
		food = &models.Food{}
	}
	if profile == nil {
		profile = &models.HealthProfile{}
	}

	score := BaseScore

	matches := healthMatches(food.HealthBenefits, profile.DiseaseNames())
	score += HealthMatchPoints * len(matches)

	dietOK := contains(food.DietaryCompatibility, profile.DietaryHabit)
	if dietOK {
		score += DietaryPoints
	}

	doshas := food.DoshaBalance()
	constitutionOK := profile.AyurvedicConstitution != "" && contains(doshas, profile.AyurvedicConstitution)
	if constitutionOK || contains(doshas, models.DoshaTridosha) {
		score += ConstitutionPoints
	}

	nutrition := food.Nutrition()
	if profile.ActivityLevel == models.ActivityActive && nutrition.Protein > activeProteinFloor {
		score += ActivityPoints
	}

	if contains(food.Season, e.season) || contains(food.Season, models.SeasonAll) {
		score += SeasonPoints
	}

	if hasAllergen(profile.Allergies, food.Ingredients) {
		score -= AllergenPenalty
	}

	return Result{
		Score:       clamp(score),
		HealthMatch: matches,
		Reason:      buildReason(profile, matches, constitutionOK, dietOK, nutrition),
	}
}

// healthMatches keeps, in food order, the benefits that name one of the diseases.
func healthMatches(benefits, diseases []string) []string {
	matches := make([]string, 0)
	if len(benefits) == 0 || len(diseases) == 0 {
		return matches
	}
	for _, b := range benefits {
		if contains(diseases, b) {
			matches = append(matches, b)
		}
	}
	return matches
}

// hasAllergen reports whether any allergy is a case-insensitive substring of
// any ingredient name. Blank allergy entries never match.
func hasAllergen(allergies []string, ingredients []models.Ingredient) bool {
	for _, allergy := range allergies {
		needle := strings.ToLower(strings.TrimSpace(allergy))
		if needle == "" {
			continue
		}
		for _, ing := range ingredients {
			if strings.Contains(strings.ToLower(ing.Name), needle) {
				return true
			}
		}
	}
	return false
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
