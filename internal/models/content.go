package models

import "time"

// Уровни доступа к шаблонам.
const (
	AccessFree = "free"
	AccessPro  = "pro"
)

// Ad рекламный баннер.
type Ad struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Subtitle   string     `json:"subtitle"`
	ButtonText string     `json:"button_text"`
	ButtonURL  string     `json:"button_url"`
	ImageURL   string     `json:"image_url"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    time.Time  `json:"end_date"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// AdPatch частичное обновление баннера: nil означает "не менять".
type AdPatch struct {
	Title      *string
	Subtitle   *string
	ButtonText *string
	ButtonURL  *string
	ImageURL   *string
	StartDate  *time.Time
	EndDate    *time.Time
}

// Empty сообщает, что в патче нет ни одного поля.
func (p AdPatch) Empty() bool {
	return p.Title == nil && p.Subtitle == nil && p.ButtonText == nil && p.ButtonURL == nil &&
		p.ImageURL == nil && p.StartDate == nil && p.EndDate == nil
}

// MentorProgram программа наставничества.
type MentorProgram struct {
	ID                int64      `json:"id"`
	Title             string     `json:"title"`
	Subtitle          string     `json:"subtitle"`
	Icon              *string    `json:"icons"`
	AccessType        string     `json:"access_type"`
	Status            string     `json:"status"`
	SkillTiers        string     `json:"skill_tiers"`
	Modules           string     `json:"modules"`
	NewContentMonthly bool       `json:"new_content_monthly"`
	IsHidden          bool       `json:"is_hidden"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

// Calculator карточка калькулятора.
type Calculator struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Subtitle   string     `json:"subtitle"`
	Icon       *string    `json:"icon"`
	ComingSoon bool       `json:"coming_soon"`
	IsHidden   bool       `json:"is_hidden"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// TemplatePdf загружаемый шаблон (pdf или медиа).
type TemplatePdf struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Access     string    `json:"access"`
	FilePath   string    `json:"file_path"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// EducationContent обучающий материал, который можно добавить в закладки.
type EducationContent struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuestionBookmark вопрос в закладках пользователя.
type QuestionBookmark struct {
	QuestionID int64     `json:"question_id"`
	Title      string    `json:"title"`
	Details    string    `json:"details"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"bookmarked_at"`
}

// ContentBookmark обучающий материал в закладках пользователя.
type ContentBookmark struct {
	EducationContentID int64     `json:"education_content_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	CreatedAt          time.Time `json:"bookmarked_at"`
}
