package matching

import (
	"math"

	"github.com/google/uuid"
)

const (
	greenThreshold  = 66
	orangeThreshold = 33
)

// IndexHeld keys a candidate's held skills by skill ID. A later duplicate
// replaces an earlier one, mirroring the update-in-place rule of the store.
func IndexHeld(skills []HeldSkill) map[uuid.UUID]HeldSkill {
	out := make(map[uuid.UUID]HeldSkill, len(skills))
	for _, hs := range skills {
		if hs.Skill.ID == uuid.Nil {
			continue
		}
		out[hs.Skill.ID] = hs
	}
	return out
}

// Evaluate compares one required skill against the candidate's held skills.
func Evaluate(req RequiredSkill, held map[uuid.UUID]HeldSkill) SkillMatchDetail {
	d := SkillMatchDetail{
		SkillName:     req.Skill.Name,
		Category:      req.Skill.Category,
		RequiredLevel: req.Level.Name,
		HeldLevel:     NoLevelName,
		Percentage:    0,
		Severity:      SeverityRed,
	}

	hs, ok := held[req.Skill.ID]
	if !ok {
		return d
	}

	d.Held = true
	d.HeldLevel = hs.Level.Name

	if hs.Level.Rank >= req.Level.Rank {
		d.Percentage = 100
		d.Severity = SeverityGreen
		d.MeetsLevel = true
		return d
	}

	d.Percentage = rankPercentage(hs.Level.Rank, req.Level.Rank)
	d.Severity = severityFor(d.Percentage)
	return d
}

func rankPercentage(held, required int) int {
	if required <= 0 || held <= 0 {
		return 0
	}
	p := int(math.Round(float64(held*100) / float64(required)))
	return clampInt(p, 0, 100)
}

func severityFor(pct int) Severity {
	switch {
	case pct >= greenThreshold:
		return SeverityGreen
	case pct >= orangeThreshold:
		return SeverityOrange
	default:
		return SeverityRed
	}
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
