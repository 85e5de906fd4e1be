package models

import (
	"time"

	"github.com/lib/pq"
)

type AdminAccount struct {
	ID           string    `json:"id" db:"id"`
	DisplayName  string    `json:"displayName" db:"display_name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

type Article struct {
	ID                 string    `json:"id" db:"id"`
	Title              string    `json:"title" db:"title"`
	AuthorName         string    `json:"authorName" db:"author_name"`
	BodyHeading        string    `json:"bodyHeading" db:"body_heading"`
	BodyText           string    `json:"bodyText" db:"body_text"`
	CodeSnippet        string    `json:"codeSnippet,omitempty" db:"code_snippet"`
	CommandLineSnippet string    `json:"commandLineSnippet,omitempty" db:"command_line_snippet"`
	ImageURL           string    `json:"imageUrl" db:"image_url"`
	ImageAssetID       string    `json:"imageAssetId" db:"image_asset_id"`
	Status             bool      `json:"status" db:"status"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`
}

type Project struct {
	ID                 string         `json:"id" db:"id"`
	Name               string         `json:"name" db:"name"`
	Author             string         `json:"author" db:"author"`
	Type               string         `json:"type" db:"type"`
	Owner              string         `json:"owner,omitempty" db:"owner"`
	Description        string         `json:"description" db:"description"`
	LogoURL            string         `json:"logoUrl" db:"logo_url"`
	LogoAssetID        string         `json:"logoAssetId" db:"logo_asset_id"`
	FirstPageImageURL  string         `json:"firstPageImageUrl" db:"first_page_image_url"`
	FirstPageAssetID   string         `json:"firstPageAssetId" db:"first_page_asset_id"`
	SecondPageImageURL string         `json:"secondPageImageUrl" db:"second_page_image_url"`
	SecondPageAssetID  string         `json:"secondPageAssetId" db:"second_page_asset_id"`
	ThirdPageImageURL  string         `json:"thirdPageImageUrl" db:"third_page_image_url"`
	ThirdPageAssetID   string         `json:"thirdPageAssetId" db:"third_page_asset_id"`
	LiveURL            string         `json:"liveUrl" db:"live_url"`
	RepoURL            string         `json:"repoUrl" db:"repo_url"`
	Technologies       pq.StringArray `json:"technologies" db:"technologies"`
	Status             bool           `json:"status" db:"status"`
	CreatedAt          time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time      `json:"updatedAt" db:"updated_at"`
}

type Resume struct {
	ID          string    `json:"id" db:"id"`
	FileURL     string    `json:"fileUrl" db:"file_url"`
	FileAssetID string    `json:"fileAssetId" db:"file_asset_id"`
	Status      bool      `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type ContactSubmission struct {
	ID        string    `json:"id" db:"id"`
	UserName  string    `json:"userName" db:"user_name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Message   string    `json:"message" db:"message"`
	Status    bool      `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Review struct {
	ID           string        `json:"id" db:"id"`
	UserName     string        `json:"userName" db:"user_name"`
	Organization string        `json:"organization" db:"organization"`
	Gender       string        `json:"gender" db:"gender"`
	Content      string        `json:"content" db:"content"`
	Ratings      pq.Int64Array `json:"ratings" db:"ratings"`
	SubmittedAt  time.Time     `json:"submittedAt" db:"submitted_at"`
	Status       bool          `json:"status" db:"status"`
}
