package fields

import (
	"strconv"

	"github.com/jonathan/admissions-parser/internal/types"
)

// ValidValue reports whether a candidate value round-trips into the field's
// validation range. The fallback merge uses this so an out-of-range value
// from the extraction service never reaches updates.
func ValidValue(field types.ProfileField, value string) bool {
	switch field {
	case types.FieldGPAWeighted, types.FieldGPAUnweighted:
		return validGPA(value)
	case types.FieldSAT:
		return intInRange(SATMin, SATMax)(value)
	case types.FieldACT:
		return intInRange(ACTMin, ACTMax)(value)
	case types.FieldClassSize:
		return intInRange(ClassSizeMin, ClassSizeMax)(value)
	case types.FieldClassRankPercentile:
		return intInRange(1, 99)(value)
	case types.FieldAPCount, types.FieldHonorsCount:
		return intInRange(0, 40)(value)
	case types.FieldExtracurricular, types.FieldLeadership, types.FieldAwards,
		types.FieldPassionProjects, types.FieldBusinessVentures,
		types.FieldVolunteerWork, types.FieldResearch, types.FieldPortfolio,
		types.FieldHSReputation, types.FieldRecommendations, types.FieldEssayStrength:
		// Factor scores live on the even 2-10 scale.
		n, err := strconv.Atoi(value)
		return err == nil && n >= 2 && n <= 10 && n%2 == 0
	default:
		return false
	}
}
