package ws

import (
	"encoding/json"
	"time"

	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const EventRankingComputed = "ranking_computed"

type RankingComputedEvent struct {
	Type         string                `json:"type"`
	OpeningID    uuid.UUID             `json:"opening_id"`
	ScoringModel matching.ScoringModel `json:"scoring_model"`
	Candidates   int                   `json:"candidates"`
	Timestamp    string                `json:"timestamp"`
}

// RankingComputed announces a freshly computed ranking to every subscriber.
func (h *Hub) RankingComputed(openingID uuid.UUID, model matching.ScoringModel, candidates int) {
	if h == nil {
		return
	}
	evt := RankingComputedEvent{
		Type:         EventRankingComputed,
		OpeningID:    openingID,
		ScoringModel: model,
		Candidates:   candidates,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error("ws encode event", zap.Error(err))
		return
	}
	h.Broadcast(b)
}
