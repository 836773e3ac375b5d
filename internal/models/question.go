package models

import "time"

// Состояния модерации вопроса.
const (
	ModerationPending  = "pending"
	ModerationApproved = "approved"
	ModerationRejected = "rejected"
)

// MaxQuestionTags предельное число тегов у вопроса.
const MaxQuestionTags = 5

// MaxTitleLen предельная длина заголовков и тем в символах, как у VARCHAR(255).
const MaxTitleLen = 255

// Question вопрос пользователя.
type Question struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	Title        string     `json:"title"`
	Details      string     `json:"details"`
	Tags         []string   `json:"tags"`
	IsApproved   bool       `json:"is_approved"`
	IsRejected   bool       `json:"is_reject"`
	RejectReason *string    `json:"reject_reason,omitempty"`
	IsDeleted    bool       `json:"is_deleted"`
	PostedAt     time.Time  `json:"posted_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// Status трёхзначное состояние модерации, выведенное из флагов.
func (q Question) Status() string {
	switch {
	case q.IsApproved:
		return ModerationApproved
	case q.IsRejected:
		return ModerationRejected
	default:
		return ModerationPending
	}
}

// QuestionListItem вопрос в списках с автором и счётчиками активности.
type QuestionListItem struct {
	Question
	Status        string `json:"status"`
	AuthorName    string `json:"author_name"`
	TotalLikes    int    `json:"total_likes"`
	TotalViews    int    `json:"total_views"`
	TotalComments int    `json:"total_comments"`
}

// Comment комментарий к вопросу.
type Comment struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"question_id"`
	UserID     int64     `json:"user_id"`
	Username   string    `json:"username,omitempty"`
	FullName   string    `json:"full_name,omitempty"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// Likes список пользователей, отметивших вопрос или комментарий.
type Likes struct {
	TotalLikes int       `json:"totalLikes"`
	Users      []UserRef `json:"users"`
}

// ModerationNotification уведомление автору о решении модерации.
type ModerationNotification struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	QuestionID int64     `json:"question_id"`
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReportedComment жалоба на комментарий.
type ReportedComment struct {
	ID           int64     `json:"id"`
	CommentID    int64     `json:"comment_id"`
	Comment      string    `json:"comment"`
	ReportedBy   int64     `json:"reported_by"`
	ReporterName string    `json:"reporter_name"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"created_at"`
}
