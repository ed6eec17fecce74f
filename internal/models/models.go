package models

import (
	"time"
)

type User struct {
	UserID                  string     `json:"user_id" db:"user_id"`
	Email                   string     `json:"email" db:"email"`
	Username                string     `json:"username" db:"username"`
	PasswordHash            string     `json:"-" db:"password_hash"`
	DeclaredRole            string     `json:"declared_role" db:"declared_role"`
	VerifiedRole            string     `json:"verified_role" db:"verified_role"`
	BadgeStatus             string     `json:"badge_status" db:"badge_status"`
	IsVerified              bool       `json:"is_verified" db:"is_verified"`
	VerificationDocuments   string     `json:"verification_documents,omitempty" db:"verification_documents"`
	VerificationDescription string     `json:"verification_description,omitempty" db:"verification_description"`
	SubmittedAt             *time.Time `json:"submitted_at,omitempty" db:"submitted_at"`
	VerifiedAt              *time.Time `json:"verified_at,omitempty" db:"verified_at"`
	VerifiedBy              *string    `json:"verified_by,omitempty" db:"verified_by"`
	RejectedAt              *time.Time `json:"rejected_at,omitempty" db:"rejected_at"`
	RejectedBy              *string    `json:"rejected_by,omitempty" db:"rejected_by"`
	RejectionReason         string     `json:"rejection_reason,omitempty" db:"rejection_reason"`
	CreatedAt               time.Time  `json:"created_at" db:"created_at"`
}

type Content struct {
	ContentID     string    `json:"id" db:"content_id"`
	UserID        string    `json:"user_id" db:"user_id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description,omitempty" db:"description"`
	ContentType   string    `json:"content_type" db:"content_type"`
	AudioData     string    `json:"audio_data,omitempty" db:"audio_data"`
	VideoData     string    `json:"video_data,omitempty" db:"video_data"`
	CoverImage    string    `json:"cover_image,omitempty" db:"cover_image"`
	Duration      *float64  `json:"duration,omitempty" db:"duration"`
	LikesCount    int       `json:"likes_count" db:"likes_count"`
	CommentsCount int       `json:"comments_count" db:"comments_count"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

type Comment struct {
	CommentID string    `json:"id" db:"comment_id"`
	ContentID string    `json:"content_id" db:"content_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Like и SavedContent - toggle-связи пользователь<->контент. Существование
// строки и есть факт лайка/сохранения, уникальность пары гарантирует БД.
type Like struct {
	UserID    string    `json:"user_id" db:"user_id"`
	ContentID string    `json:"content_id" db:"content_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type SavedContent struct {
	UserID    string    `json:"user_id" db:"user_id"`
	ContentID string    `json:"content_id" db:"content_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type BadgeRequest struct {
	RequestID string    `json:"id" db:"request_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Reason    string    `json:"reason" db:"reason"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type LabelRequest struct {
	RequestID   string    `json:"id" db:"request_id"`
	UserID      string    `json:"user_id" db:"user_id"`
	LabelName   string    `json:"label_name" db:"label_name"`
	Description string    `json:"description" db:"description"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// AdminStats - агрегаты для панели администратора.
type AdminStats struct {
	TotalUsers            int            `json:"total_users"`
	TotalContents         int            `json:"total_contents"`
	PendingExpertRequests int            `json:"pending_expert_requests"`
	PendingLabelRequests  int            `json:"pending_label_requests"`
	UsersByRole           map[string]int `json:"users_by_role"`
	RecentRegistrations   int            `json:"recent_registrations"`
}
