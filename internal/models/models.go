package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Avatar       string    `json:"avatar" db:"avatar"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// ProfileUser is the slice of the owning user attached to profile
// responses: public fields only.
type ProfileUser struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Social struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type Experience struct {
	ExperienceID string `json:"experienceId"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Location     string `json:"location,omitempty"`
	From         string `json:"from"`
	To           string `json:"to,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

type ExperienceList []Experience

type Profile struct {
	ProfileID      string         `json:"profileId" db:"profile_id"`
	UserID         string         `json:"userId" db:"user_id"`
	Company        string         `json:"company,omitempty" db:"company"`
	Website        string         `json:"website,omitempty" db:"website"`
	Location       string         `json:"location,omitempty" db:"location"`
	Bio            string         `json:"bio,omitempty" db:"bio"`
	Status         string         `json:"status" db:"status"`
	GithubUsername string         `json:"githubUsername,omitempty" db:"github_username"`
	Skills         pq.StringArray `json:"skills" db:"skills"`
	Social         Social         `json:"social" db:"social"`
	Experience     ExperienceList `json:"experience" db:"experience"`
	User           *ProfileUser   `json:"user,omitempty" db:"-"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time      `json:"updatedAt" db:"updated_at"`
}

type Like struct {
	UserID string `json:"userId"`
}

type LikeList []Like

type Comment struct {
	CommentID string    `json:"commentId"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommentList []Comment

type Post struct {
	PostID string `json:"postId" db:"post_id"`
	UserID string `json:"userId" db:"user_id"`
	// Name and Avatar are a snapshot of the author at creation time
	// and are deliberately never refreshed.
	Name      string      `json:"name" db:"name"`
	Avatar    string      `json:"avatar" db:"avatar"`
	Text      string      `json:"text" db:"text"`
	Likes     LikeList    `json:"likes" db:"likes"`
	Comments  CommentList `json:"comments" db:"comments"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
}

// HasLike reports whether the post is already liked by the given user.
// The likes list holds at most one entry per user.
func (p *Post) HasLike(userID string) bool {
	for _, like := range p.Likes {
		if like.UserID == userID {
			return true
		}
	}
	return false
}

// The sub-collection lists live in JSONB columns and are read and
// written as whole values, so they implement the driver contracts.

func jsonbValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func jsonbScan(dest interface{}, src interface{}) error {
	if src == nil {
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into jsonb value", src)
	}
	return json.Unmarshal(data, dest)
}

func (s Social) Value() (driver.Value, error) { return jsonbValue(s) }
func (s *Social) Scan(src interface{}) error  { return jsonbScan(s, src) }

func (l ExperienceList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *ExperienceList) Scan(src interface{}) error  { return jsonbScan(l, src) }

func (l LikeList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *LikeList) Scan(src interface{}) error  { return jsonbScan(l, src) }

func (l CommentList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *CommentList) Scan(src interface{}) error  { return jsonbScan(l, src) }
