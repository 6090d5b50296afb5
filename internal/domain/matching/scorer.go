package matching

import "math"

// Scorer turns one opening and one candidate into a MatchResult. The bool
// result is false when the candidate's total is zero and should be dropped.
type Scorer interface {
	Model() ScoringModel
	Score(opening Opening, c Candidate) (MatchResult, bool, error)
}

func NewScorer(model ScoringModel) Scorer {
	if model == ModelWeighted {
		return WeightedScorer{}
	}
	return AveragedScorer{}
}

// AveragedScorer gives every required skill the same weight and credits
// partial proficiency continuously. Sub-scores mirror the total.
type AveragedScorer struct{}

func (AveragedScorer) Model() ScoringModel { return ModelAveraged }

func (AveragedScorer) Score(opening Opening, c Candidate) (MatchResult, bool, error) {
	if err := Validate(opening, []Candidate{c}); err != nil {
		return MatchResult{}, false, err
	}

	res := newResult(c)
	if len(opening.Requirements) == 0 {
		return fullMatch(res), true, nil
	}

	held := IndexHeld(c.Skills)
	sum := 0
	for _, req := range opening.Requirements {
		d := Evaluate(req, held)
		res.SkillDetails = append(res.SkillDetails, d)
		if d.Held {
			res.MatchedSkills = append(res.MatchedSkills, d.SkillName)
		} else {
			res.MissingSkills = append(res.MissingSkills, d.SkillName)
		}
		sum += d.Percentage
	}

	total := round1(float64(sum) / float64(len(opening.Requirements)))
	res.TotalPercentage = total
	res.TechnicalScore = total
	res.SoftScore = total
	res.SeniorityScore = total

	return res, total > 0, nil
}

// WeightedScorer is the legacy composite: 70% technical presence ratio,
// 20% seniority bonus over technical skills, 10% soft presence ratio.
type WeightedScorer struct{}

const (
	technicalWeight = 0.7
	seniorityWeight = 0.2
	softWeight      = 0.1
)

type categoryTally struct {
	required  int
	matched   int
	seniority float64
	present   []string
	absent    []string
}

func (t categoryTally) ratio() float64 {
	if t.required == 0 {
		return 100
	}
	return float64(t.matched) / float64(t.required) * 100
}

func (WeightedScorer) Model() ScoringModel { return ModelWeighted }

func (WeightedScorer) Score(opening Opening, c Candidate) (MatchResult, bool, error) {
	if err := Validate(opening, []Candidate{c}); err != nil {
		return MatchResult{}, false, err
	}

	res := newResult(c)
	if len(opening.Requirements) == 0 {
		return fullMatch(res), true, nil
	}

	held := IndexHeld(c.Skills)
	for _, req := range opening.Requirements {
		res.SkillDetails = append(res.SkillDetails, Evaluate(req, held))
	}

	technical := tallyCategory(res.SkillDetails, CategoryTechnical)
	soft := tallyCategory(res.SkillDetails, CategorySoft)

	seniority := technical.seniority
	if technical.required == 0 {
		seniority = 100
	}

	techScore := technical.ratio()
	softScore := soft.ratio()
	total := techScore*technicalWeight + seniority*seniorityWeight + softScore*softWeight

	res.TotalPercentage = round1(total)
	res.TechnicalScore = round1(techScore)
	res.SoftScore = round1(softScore)
	res.SeniorityScore = round1(seniority)
	res.MatchedSkills = append(append(res.MatchedSkills, technical.present...), soft.present...)
	res.MissingSkills = append(append(res.MissingSkills, technical.absent...), soft.absent...)

	return res, res.TotalPercentage > 0, nil
}

// tallyCategory folds the details of one category. The seniority bonus
// accrues 100/required for every skill held at or above the required rank.
func tallyCategory(details []SkillMatchDetail, cat Category) categoryTally {
	var t categoryTally
	for _, d := range details {
		if categoryOf(d.Category) != cat {
			continue
		}
		t.required++
	}
	for _, d := range details {
		if categoryOf(d.Category) != cat {
			continue
		}
		if !d.Held {
			t.absent = append(t.absent, d.SkillName)
			continue
		}
		t.matched++
		t.present = append(t.present, d.SkillName)
		if d.MeetsLevel {
			t.seniority += 100.0 / float64(t.required)
		}
	}
	return t
}

func categoryOf(c Category) Category {
	switch c {
	case CategorySoft:
		return CategorySoft
	default:
		return CategoryTechnical
	}
}

func newResult(c Candidate) MatchResult {
	return MatchResult{
		CandidateID:   c.ID,
		DisplayName:   c.DisplayName,
		Email:         c.Email,
		CurrentRole:   c.CurrentRole,
		MatchedSkills: make([]string, 0),
		MissingSkills: make([]string, 0),
		SkillDetails:  make([]SkillMatchDetail, 0),
	}
}

func fullMatch(res MatchResult) MatchResult {
	res.TotalPercentage = 100
	res.TechnicalScore = 100
	res.SoftScore = 100
	res.SeniorityScore = 100
	return res
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
