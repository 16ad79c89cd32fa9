package rating

import (
	"math"

	"fundi/models"
	"fundi/utils"
)

// criterionWeights is the relative importance of each rating criterion.
// The weights sum to 1.0 across the full set.
var criterionWeights = map[string]float64{
	models.CriterionQuality:     0.20,
	models.CriterionEfficiency:  0.15,
	models.CriterionReliability: 0.25,
	models.CriterionKnowledge:   0.20,
	models.CriterionValue:       0.20,
}

// CalculateOverallRating reduces per-criterion scores to a single weighted
// score. When some criteria are missing, their weight is redistributed evenly
// across the criteria that are present, so a partial rating still uses the
// full weight budget. The result is rounded to two decimal places.
func CalculateOverallRating(ratings map[string]models.IndividualRating) (float64, error) {
	present := make([]string, 0, len(criterionWeights))
	missingWeight := 0.0
	for name, weight := range criterionWeights {
		if _, ok := ratings[name]; ok {
			present = append(present, name)
		} else {
			missingWeight += weight
		}
	}
	if len(present) == 0 {
		return 0, &utils.ValidationError{Field: "ratings", Reason: "must score at least one known criterion"}
	}

	bonus := missingWeight / float64(len(present))
	weightedSum := 0.0
	totalWeight := 0.0
	for _, name := range present {
		weight := criterionWeights[name] + bonus
		weightedSum += ratings[name].Rating * weight
		totalWeight += weight
	}
	return math.Round(weightedSum/totalWeight*100) / 100, nil
}
