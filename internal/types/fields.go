// Package types defines the shared data structures for the admissions
// application parsing pipeline.
package types

// ProfileField identifies one key in the fixed profile taxonomy.
type ProfileField string

const (
	FieldGPAUnweighted       ProfileField = "gpa_unweighted"
	FieldGPAWeighted         ProfileField = "gpa_weighted"
	FieldSAT                 ProfileField = "sat"
	FieldACT                 ProfileField = "act"
	FieldAPCount             ProfileField = "ap_count"
	FieldHonorsCount         ProfileField = "honors_count"
	FieldClassRankPercentile ProfileField = "class_rank_percentile"
	FieldClassSize           ProfileField = "class_size"
	FieldExtracurricular     ProfileField = "extracurricular_depth"
	FieldLeadership          ProfileField = "leadership_positions"
	FieldAwards              ProfileField = "awards_publications"
	FieldPassionProjects     ProfileField = "passion_projects"
	FieldBusinessVentures    ProfileField = "business_ventures"
	FieldVolunteerWork       ProfileField = "volunteer_work"
	FieldResearch            ProfileField = "research_experience"
	FieldPortfolio           ProfileField = "portfolio_audition"
	FieldHSReputation        ProfileField = "hs_reputation"
	FieldRecommendations     ProfileField = "recommendations"
	FieldEssayStrength       ProfileField = "essay_strength"
)

// fieldLabels maps each taxonomy key to its human-readable label.
var fieldLabels = map[ProfileField]string{
	FieldGPAUnweighted:       "Unweighted GPA",
	FieldGPAWeighted:         "Weighted GPA",
	FieldSAT:                 "SAT Score",
	FieldACT:                 "ACT Score",
	FieldAPCount:             "AP Courses",
	FieldHonorsCount:         "Honors Courses",
	FieldClassRankPercentile: "Class Rank Percentile",
	FieldClassSize:           "Class Size",
	FieldExtracurricular:     "Extracurricular Depth",
	FieldLeadership:          "Leadership Positions",
	FieldAwards:              "Awards & Publications",
	FieldPassionProjects:     "Passion Projects",
	FieldBusinessVentures:    "Business Ventures",
	FieldVolunteerWork:       "Volunteer Work",
	FieldResearch:            "Research Experience",
	FieldPortfolio:           "Portfolio / Audition",
	FieldHSReputation:        "High School Reputation",
	FieldRecommendations:     "Recommendations",
	FieldEssayStrength:       "Essay Strength",
}

// AllFields returns every taxonomy key in a fixed, stable order.
func AllFields() []ProfileField {
	return []ProfileField{
		FieldGPAUnweighted, FieldGPAWeighted, FieldSAT, FieldACT,
		FieldAPCount, FieldHonorsCount, FieldClassRankPercentile, FieldClassSize,
		FieldExtracurricular, FieldLeadership, FieldAwards, FieldPassionProjects,
		FieldBusinessVentures, FieldVolunteerWork, FieldResearch, FieldPortfolio,
		FieldHSReputation, FieldRecommendations, FieldEssayStrength,
	}
}

// Label returns the human-readable label for a field, or the raw key if the
// field is not part of the taxonomy.
func (f ProfileField) Label() string {
	if label, ok := fieldLabels[f]; ok {
		return label
	}
	return string(f)
}

// Valid reports whether f is one of the taxonomy keys.
func (f ProfileField) Valid() bool {
	_, ok := fieldLabels[f]
	return ok
}
