package matching

import (
	"errors"

	"github.com/google/uuid"
)

var ErrDataIntegrity = errors.New("data integrity error")

const NoLevelName = "None"

type Category string

const (
	CategoryTechnical Category = "Technical"
	CategorySoft      Category = "Soft"
)

type Severity string

const (
	SeverityRed    Severity = "red"
	SeverityOrange Severity = "orange"
	SeverityGreen  Severity = "green"
)

type ScoringModel string

const (
	ModelAveraged ScoringModel = "averaged"
	ModelWeighted ScoringModel = "weighted"
)

type Skill struct {
	ID       uuid.UUID
	Name     string
	Category Category
}

// Level is a proficiency tier. Two levels are compared by Rank only.
type Level struct {
	ID   uuid.UUID
	Name string
	Rank int
}

type RequiredSkill struct {
	Skill Skill
	Level Level
}

type HeldSkill struct {
	Skill Skill
	Level Level
}

type Opening struct {
	ID           uuid.UUID
	Title        string
	Requirements []RequiredSkill
}

type Candidate struct {
	ID          uuid.UUID
	DisplayName string
	Email       string
	CurrentRole string
	Skills      []HeldSkill
}

type SkillMatchDetail struct {
	SkillName     string   `json:"skill_name"`
	Category      Category `json:"category"`
	RequiredLevel string   `json:"required_level"`
	HeldLevel     string   `json:"held_level"`
	Percentage    int      `json:"percentage"`
	Severity      Severity `json:"severity"`

	Held       bool `json:"-"`
	MeetsLevel bool `json:"-"`
}

type MatchResult struct {
	CandidateID     uuid.UUID          `json:"candidate_id"`
	DisplayName     string             `json:"display_name"`
	Email           string             `json:"email"`
	CurrentRole     string             `json:"current_role"`
	TotalPercentage float64            `json:"total_percentage"`
	TechnicalScore  float64            `json:"technical_score"`
	SoftScore       float64            `json:"soft_score"`
	SeniorityScore  float64            `json:"seniority_score"`
	MatchedSkills   []string           `json:"matched_skills"`
	MissingSkills   []string           `json:"missing_skills"`
	SkillDetails    []SkillMatchDetail `json:"skill_details"`
}

func ParseScoringModel(s string) (ScoringModel, error) {
	switch ScoringModel(s) {
	case ModelAveraged, "":
		return ModelAveraged, nil
	case ModelWeighted:
		return ModelWeighted, nil
	default:
		return "", errors.New("unknown scoring model: " + s)
	}
}
