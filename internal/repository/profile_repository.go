package repository

import (
	"context"
	"database/sql"
	"errors"

	"placement-portal/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
)

// CandidateProfile is the profile row with the verification fields from the
// identity record joined on. Read-only to the recommendation core.
type CandidateProfile struct {
	UserID             uuid.UUID
	Skills             []string
	CGPA               *float64
	GraduationYear     int
	Department         string
	IsComplete         bool
	IsVerified         bool
	VerificationStatus string
}

type CandidateProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (CandidateProfile, error)
}

type PostgresCandidateProfileRepository struct {
	db database.DB
}

func NewPostgresCandidateProfileRepository(db database.DB) *PostgresCandidateProfileRepository {
	return &PostgresCandidateProfileRepository{db: db}
}

func (r *PostgresCandidateProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (CandidateProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT p.user_id,
		        COALESCE(p.skills, '{}'::text[]),
		        p.cgpa,
		        COALESCE(p.graduation_year, 0),
		        COALESCE(u.department, ''),
		        COALESCE(p.is_complete, false),
		        COALESCE(u.is_verified, false),
		        COALESCE(u.verification_status, 'pending')
		 FROM student_profiles p
		 JOIN users u ON u.id = p.user_id
		 WHERE p.user_id = $1`,
		userID,
	)

	var p CandidateProfile
	err := row.Scan(
		&p.UserID,
		&p.Skills,
		&p.CGPA,
		&p.GraduationYear,
		&p.Department,
		&p.IsComplete,
		&p.IsVerified,
		&p.VerificationStatus,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return CandidateProfile{}, ErrProfileNotFound
		}
		return CandidateProfile{}, err
	}
	return p, nil
}
