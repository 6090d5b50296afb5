package dto

import (
	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
)

type RankingResponse struct {
	OpeningID    uuid.UUID              `json:"opening_id"`
	OpeningTitle string                 `json:"opening_title"`
	ScoringModel matching.ScoringModel  `json:"scoring_model"`
	Total        int                    `json:"total"`
	Limit        int                    `json:"limit"`
	Offset       int                    `json:"offset"`
	Cached       bool                   `json:"cached"`
	Candidates   []matching.MatchResult `json:"candidates"`
}
