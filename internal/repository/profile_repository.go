package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"devconnect/internal/models"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// profileRow carries the profile columns plus the owning user's public
// fields pulled in by the join.
type profileRow struct {
	models.Profile
	UserName   string `db:"user_name"`
	UserAvatar string `db:"user_avatar"`
}

func (row *profileRow) toProfile() models.Profile {
	profile := row.Profile
	profile.User = &models.ProfileUser{
		UserID: profile.UserID,
		Name:   row.UserName,
		Avatar: row.UserAvatar,
	}
	return profile
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	profile.ProfileID = uuid.New().String()

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	query := `INSERT INTO profiles (profile_id, user_id, company, website, location, bio, status, github_username, skills, social, experience, created_at, updated_at) VALUES (:profile_id, :user_id, :company, :website, :location, :bio, :status, :github_username, :skills, :social, :experience, :created_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, profile)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	query := `SELECT p.*, u.name AS user_name, u.avatar AS user_avatar FROM profiles p JOIN users u ON u.user_id = p.user_id WHERE p.user_id = $1`

	var row profileRow
	err := r.db.GetContext(ctx, &row, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile := row.toProfile()
	return &profile, nil
}

func (r *profileRepository) GetAll(ctx context.Context) ([]models.Profile, error) {
	query := `SELECT p.*, u.name AS user_name, u.avatar AS user_avatar FROM profiles p JOIN users u ON u.user_id = p.user_id ORDER BY p.created_at DESC`

	var rows []profileRow
	err := r.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]models.Profile, 0, len(rows))
	for i := range rows {
		profiles = append(profiles, rows[i].toProfile())
	}

	return profiles, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	profile.UpdatedAt = time.Now()

	query := `UPDATE profiles SET company = :company, website = :website, location = :location, bio = :bio, status = :status, github_username = :github_username, skills = :skills, social = :social, experience = :experience, updated_at = :updated_at WHERE user_id = :user_id`

	result, err := r.db.NamedExecContext(ctx, query, profile)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *profileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	query := `DELETE FROM profiles WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return nil
}
