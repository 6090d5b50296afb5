package repository

import (
	"context"
	"database/sql"

	"talent-match/internal/database"
	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/user"

	"github.com/google/uuid"
)

const unknownJobTitle = "N/A"

type CandidateRepository interface {
	// ListEligible returns collaborators that are open to work, each with
	// the full set of skills they hold.
	ListEligible(ctx context.Context) ([]matching.Candidate, error)
}

type PostgresCandidateRepository struct {
	db database.Querier
}

func NewPostgresCandidateRepository(db database.Querier) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) ListEligible(ctx context.Context) ([]matching.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT u.id, u.first_name, u.last_name, u.email, COALESCE(NULLIF(u.job_title, ''), $2),
		        s.id, s.name, s.category, l.id, l.name, l.rank
		 FROM users u
		 JOIN roles ro ON ro.id = u.role_id
		 LEFT JOIN user_skills us ON us.user_id = u.id
		 LEFT JOIN skills s ON s.id = us.skill_id
		 LEFT JOIN proficiency_levels l ON l.id = us.level_id
		 WHERE ro.name = $1 AND u.open_to_work
		 ORDER BY u.id ASC, s.name ASC`,
		user.RoleCollaborator, unknownJobTitle,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.Candidate, 0)
	index := map[uuid.UUID]int{}
	for rows.Next() {
		var (
			id                  uuid.UUID
			first, last         string
			email, jobTitle     string
			skillID, levelID    uuid.NullUUID
			skillName, category sql.NullString
			levelName           sql.NullString
			rank                sql.NullInt32
		)
		if err := rows.Scan(&id, &first, &last, &email, &jobTitle,
			&skillID, &skillName, &category, &levelID, &levelName, &rank); err != nil {
			return nil, err
		}

		i, ok := index[id]
		if !ok {
			u := user.User{FirstName: first, LastName: last}
			out = append(out, matching.Candidate{
				ID:          id,
				DisplayName: u.DisplayName(),
				Email:       email,
				CurrentRole: jobTitle,
				Skills:      make([]matching.HeldSkill, 0),
			})
			i = len(out) - 1
			index[id] = i
		}

		// A collaborator without skills yields one row of NULLs.
		if !skillID.Valid || !levelID.Valid {
			continue
		}
		out[i].Skills = append(out[i].Skills, matching.HeldSkill{
			Skill: matching.Skill{ID: skillID.UUID, Name: skillName.String, Category: matching.Category(category.String)},
			Level: matching.Level{ID: levelID.UUID, Name: levelName.String, Rank: int(rank.Int32)},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
