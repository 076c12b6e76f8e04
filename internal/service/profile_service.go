package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// ProfileInput carries the mutable profile fields. Skills arrive as a
// comma separated string and are split into an ordered list.
type ProfileInput struct {
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string
	GithubUsername string
	Skills         string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

type ProfileService interface {
	UpsertProfile(ctx context.Context, userID string, input ProfileInput) (*models.Profile, error)
	AddExperience(ctx context.Context, userID string, input ExperienceInput) (*models.Profile, error)
	DeleteExperience(ctx context.Context, userID, experienceID string) (*models.Profile, error)
	DeleteAccount(ctx context.Context, userID string) error
}

type profileService struct {
	profileRepo repository.ProfileRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

func NewProfileService(profileRepo repository.ProfileRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// UpsertProfile updates the caller's profile if one exists, otherwise
// creates it. Only provided fields are replaced; the social links
// object is always rebuilt from the request. Repeating the same
// submission is idempotent.
func (s *profileService) UpsertProfile(ctx context.Context, userID string, input ProfileInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		profile = &models.Profile{UserID: userID}
	}

	applyProfileInput(profile, input)

	if profile.ProfileID == "" {
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	} else {
		if err := s.profileRepo.Update(ctx, profile); err != nil {
			return nil, err
		}
	}

	return s.profileRepo.GetByUserID(ctx, userID)
}

func applyProfileInput(profile *models.Profile, input ProfileInput) {
	if input.Company != "" {
		profile.Company = input.Company
	}
	if input.Website != "" {
		profile.Website = input.Website
	}
	if input.Location != "" {
		profile.Location = input.Location
	}
	if input.Bio != "" {
		profile.Bio = input.Bio
	}
	if input.Status != "" {
		profile.Status = input.Status
	}
	if input.GithubUsername != "" {
		profile.GithubUsername = input.GithubUsername
	}
	if input.Skills != "" {
		profile.Skills = SplitSkills(input.Skills)
	}

	// The social object is replaced as a whole on every submission.
	profile.Social = models.Social{
		Youtube:   input.Youtube,
		Twitter:   input.Twitter,
		Facebook:  input.Facebook,
		Linkedin:  input.Linkedin,
		Instagram: input.Instagram,
	}
}

// SplitSkills turns "Go, SQL,Docker" into ["Go", "SQL", "Docker"].
func SplitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (s *profileService) AddExperience(ctx context.Context, userID string, input ExperienceInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	experience := models.Experience{
		ExperienceID: uuid.New().String(),
		Title:        input.Title,
		Company:      input.Company,
		Location:     input.Location,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	}

	// Newest entry first.
	profile.Experience = append(models.ExperienceList{experience}, profile.Experience...)

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *profileService) DeleteExperience(ctx context.Context, userID, experienceID string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := make(models.ExperienceList, 0, len(profile.Experience))
	for _, experience := range profile.Experience {
		if experience.ExperienceID != experienceID {
			kept = append(kept, experience)
		}
	}
	profile.Experience = kept

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// DeleteAccount removes the caller's profile, their posts and finally
// the user row. Posts are cascaded so no orphaned author references
// remain.
func (s *profileService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}

	if err := s.postRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	return nil
}
