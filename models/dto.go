package models

import "time"

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateAdminUserRequest struct {
	Username string    `json:"username" validate:"required,min=3,max=50"`
	Email    string    `json:"email" validate:"required,email"`
	Password string    `json:"password" validate:"required,min=8"`
	Role     AdminRole `json:"role" validate:"omitempty,oneof=admin superadmin"`
}

type UpdateAdminUserRequest struct {
	Password *string    `json:"password" validate:"omitempty,min=8"`
	Role     *AdminRole `json:"role" validate:"omitempty,oneof=admin superadmin"`
	Active   *bool      `json:"active"`
}

type CreateNewsArticleRequest struct {
	Title         string     `json:"title" validate:"required,min=5,max=255"`
	Summary       string     `json:"summary" validate:"required,min=10"`
	Content       string     `json:"content" validate:"required,min=50"`
	Category      string     `json:"category" validate:"required"`
	Author        string     `json:"author" validate:"required"`
	ImageURLs     []string   `json:"image_urls" validate:"omitempty,dive,url"`
	IsPublished   *bool      `json:"is_published"`
	PublishedDate *time.Time `json:"published_date"`
}

// UpdateNewsArticleRequest carries partial updates: nil fields keep
// their stored values.
type UpdateNewsArticleRequest struct {
	Title         *string    `json:"title" validate:"omitempty,min=5,max=255"`
	Summary       *string    `json:"summary" validate:"omitempty,min=10"`
	Content       *string    `json:"content" validate:"omitempty,min=50"`
	Category      *string    `json:"category" validate:"omitempty,min=1"`
	Author        *string    `json:"author" validate:"omitempty,min=1"`
	ImageURLs     []string   `json:"image_urls" validate:"omitempty,dive,url"`
	IsPublished   *bool      `json:"is_published"`
	PublishedDate *time.Time `json:"published_date"`
}

type DemoRequestRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company" validate:"required"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type NewsListParams struct {
	Category string `form:"category"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
}
