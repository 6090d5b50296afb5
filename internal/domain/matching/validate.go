package matching

import (
	"fmt"

	"github.com/google/uuid"
)

type levelRegistry struct {
	rankByLevel map[string]int
	levelByRank map[int]string
}

func newLevelRegistry() *levelRegistry {
	return &levelRegistry{
		rankByLevel: map[string]int{},
		levelByRank: map[int]string{},
	}
}

func levelKey(l Level) string {
	if l.ID != uuid.Nil {
		return l.ID.String()
	}
	return "name:" + l.Name
}

func (r *levelRegistry) add(l Level) error {
	if l.Rank <= 0 {
		return fmt.Errorf("%w: level %q has non-positive rank %d", ErrDataIntegrity, l.Name, l.Rank)
	}

	key := levelKey(l)
	if prev, ok := r.rankByLevel[key]; ok && prev != l.Rank {
		return fmt.Errorf("%w: level %q seen with ranks %d and %d", ErrDataIntegrity, l.Name, prev, l.Rank)
	}
	if other, ok := r.levelByRank[l.Rank]; ok && other != key {
		return fmt.Errorf("%w: rank %d shared by more than one level (%q)", ErrDataIntegrity, l.Rank, l.Name)
	}

	r.rankByLevel[key] = l.Rank
	r.levelByRank[l.Rank] = key
	return nil
}

// Validate checks that every level referenced by the opening and the pool
// carries a positive rank and that ranks form a strict order.
func Validate(opening Opening, pool []Candidate) error {
	reg := newLevelRegistry()
	for _, req := range opening.Requirements {
		if err := reg.add(req.Level); err != nil {
			return fmt.Errorf("opening %s: %w", opening.ID, err)
		}
	}
	for _, c := range pool {
		for _, hs := range c.Skills {
			if err := reg.add(hs.Level); err != nil {
				return fmt.Errorf("candidate %s: %w", c.ID, err)
			}
		}
	}
	return nil
}
