package rating

import (
	"testing"

	"fundi/models"
	"fundi/utils"
)

func TestCalculateOverallRatingFullSet(t *testing.T) {
	ratings := map[string]models.IndividualRating{
		models.CriterionQuality:     {Rating: 4},
		models.CriterionEfficiency:  {Rating: 3},
		models.CriterionReliability: {Rating: 5},
		models.CriterionKnowledge:   {Rating: 4},
		models.CriterionValue:       {Rating: 5},
	}
	got, err := CalculateOverallRating(ratings)
	if err != nil {
		t.Fatalf("CalculateOverallRating: %v", err)
	}
	// 4*.20 + 3*.15 + 5*.25 + 4*.20 + 5*.20 = 4.30
	if got != 4.30 {
		t.Errorf("overall = %v, want 4.30", got)
	}
}

func TestCalculateOverallRatingRedistributesMissingWeight(t *testing.T) {
	// Only quality and value are scored; the missing 0.60 weight is split
	// between them, lifting both to 0.50, so the result is their plain mean.
	ratings := map[string]models.IndividualRating{
		models.CriterionQuality: {Rating: 4},
		models.CriterionValue:   {Rating: 2},
	}
	got, err := CalculateOverallRating(ratings)
	if err != nil {
		t.Fatalf("CalculateOverallRating: %v", err)
	}
	if got != 3.00 {
		t.Errorf("overall = %v, want 3.00", got)
	}
}

func TestCalculateOverallRatingSingleCriterion(t *testing.T) {
	got, err := CalculateOverallRating(map[string]models.IndividualRating{
		models.CriterionValue: {Rating: 3.5},
	})
	if err != nil {
		t.Fatalf("CalculateOverallRating: %v", err)
	}
	if got != 3.5 {
		t.Errorf("overall = %v, want 3.5 when only one criterion is scored", got)
	}
}

func TestCalculateOverallRatingNoKnownCriteria(t *testing.T) {
	_, err := CalculateOverallRating(map[string]models.IndividualRating{})
	if !utils.IsValidation(err) {
		t.Fatalf("err = %v, want validation error for empty ratings", err)
	}

	_, err = CalculateOverallRating(map[string]models.IndividualRating{
		"punctuality": {Rating: 5},
	})
	if !utils.IsValidation(err) {
		t.Fatalf("err = %v, want validation error for unknown-only criteria", err)
	}
}
