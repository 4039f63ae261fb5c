package model

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Username  string    `json:"username" gorm:"not null;uniqueIndex"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Post struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url,omitempty"`
	VideoURL  string    `json:"video_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostView records a single view of a post by a viewer.
type PostView struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"type:uuid;not null;index"`
	ViewerID  string    `json:"viewer_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}

// Quiz is one catalog question. The correct answer set is never serialized
// in API responses so quiz-taking clients cannot see it.
type Quiz struct {
	ID            string                     `json:"id" gorm:"primaryKey"`
	Question      string                     `json:"question" gorm:"not null"`
	Options       datatypes.JSONSlice[string] `json:"options"`
	CorrectAnswer datatypes.JSONSlice[string] `json:"-"`
	Category      string                     `json:"category" gorm:"not null"`
	Points        int                        `json:"points" gorm:"not null"`
}

// SkillAssessment is one completed, scored quiz attempt. Records are
// append-only and never updated in place.
type SkillAssessment struct {
	ID             string                               `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         string                               `json:"user_id" gorm:"not null;index"`
	Scores         datatypes.JSONType[map[string]int]   `json:"scores"`
	TopSkills      datatypes.JSONSlice[string]          `json:"top_skills"`
	TotalScore     int                                  `json:"total_score"`
	CorrectAnswers int                                  `json:"correct_answers"`
	WrongAnswers   int                                  `json:"wrong_answers"`
	CompletedAt    time.Time                            `json:"completed_at" gorm:"index"`
}

// SkillReport tracks a generated PDF summary for an assessment.
type SkillReport struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       string    `json:"user_id" gorm:"not null;index"`
	AssessmentID string    `json:"assessment_id" gorm:"type:uuid;not null;uniqueIndex"`
	FileName     string    `json:"file_name" gorm:"not null"`
	DownloadURL  string    `json:"download_url"`
	GeneratedAt  time.Time `json:"generated_at"`
}
