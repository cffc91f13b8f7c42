package scoring

import (
	"fmt"
	"strings"

	"github.com/pageza/ahara/backend/internal/models"
)

// ReasonPrefix starts every reason, including ones with no clauses.
const ReasonPrefix = "Recommended because: "

func buildReason(profile *models.HealthProfile, matches []string, constitutionOK, dietOK bool, n models.NutritionalValues) string {
	clauses := make([]string, 0, 5)

	if len(matches) > 0 {
		clauses = append(clauses, "helps with "+strings.Join(matches, ", "))
	}
	if constitutionOK {
		clauses = append(clauses, fmt.Sprintf("balances your %s constitution", profile.AyurvedicConstitution))
	}
	if dietOK {
		clauses = append(clauses, fmt.Sprintf("matches your %s diet", profile.DietaryHabit))
	}
	if n.Fiber > fiberReasonFloor {
		clauses = append(clauses, "rich in fiber")
	}
	if n.Protein > proteinReasonFloor {
		clauses = append(clauses, "good protein source")
	}

	return ReasonPrefix + strings.Join(clauses, ", ")
}
