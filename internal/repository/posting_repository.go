package repository

import (
	"context"
	"time"

	"placement-portal/internal/database"
	"placement-portal/internal/domain/matching"
)

// PostingFilter narrows the open-posting catalog. DeadlineAfter is always
// applied; CreatedAfter is the optional trailing-window bound used by the
// trending aggregation.
type PostingFilter struct {
	DeadlineAfter time.Time
	CreatedAfter  *time.Time
}

type PostingRepository interface {
	ListOpen(ctx context.Context, filter PostingFilter) ([]matching.Posting, error)
}

type PostgresPostingRepository struct {
	db database.DB
}

func NewPostgresPostingRepository(db database.DB) *PostgresPostingRepository {
	return &PostgresPostingRepository{db: db}
}

func (r *PostgresPostingRepository) ListOpen(ctx context.Context, filter PostingFilter) ([]matching.Posting, error) {
	query := `SELECT id,
	                 COALESCE(title, ''),
	                 COALESCE(company, ''),
	                 COALESCE(required_skills, '{}'::text[]),
	                 min_cgpa,
	                 COALESCE(graduation_years, '{}'::int[]),
	                 COALESCE(departments, '{}'::text[]),
	                 COALESCE(job_type, 'internship'),
	                 created_at,
	                 application_deadline
	          FROM job_postings
	          WHERE status = 'open' AND application_deadline >= $1`
	args := []any{filter.DeadlineAfter}

	if filter.CreatedAfter != nil {
		query += ` AND created_at >= $2`
		args = append(args, *filter.CreatedAfter)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.Posting, 0)
	for rows.Next() {
		var (
			p        matching.Posting
			minCGPA  *float64
			years    []int
			depts    []string
			jobType  string
		)
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Company,
			&p.RequiredSkills,
			&minCGPA,
			&years,
			&depts,
			&jobType,
			&p.CreatedAt,
			&p.Deadline,
		); err != nil {
			return nil, err
		}

		if minCGPA != nil || len(years) > 0 || len(depts) > 0 {
			p.Eligibility = &matching.EligibilityRules{
				MinCGPA:         minCGPA,
				GraduationYears: years,
				Departments:     depts,
			}
		}
		p.JobType = matching.JobType(jobType)

		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
