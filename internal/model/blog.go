package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogStatus is the publication workflow state of a post.
type BlogStatus string

const (
	BlogDraft       BlogStatus = "draft"
	BlogPublished   BlogStatus = "published"
	BlogUnpublished BlogStatus = "unpublished"
)

func (s BlogStatus) Valid() bool {
	switch s {
	case BlogDraft, BlogPublished, BlogUnpublished:
		return true
	}
	return false
}

// Toggle flips a post between published and unpublished. Drafts must go
// through an explicit publish first.
func (s BlogStatus) Toggle() (BlogStatus, bool) {
	switch s {
	case BlogPublished:
		return BlogUnpublished, true
	case BlogUnpublished:
		return BlogPublished, true
	}
	return s, false
}

type Blog struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string     `gorm:"size:200;not null" json:"title"`
	ThumbnailURL *string    `gorm:"type:text" json:"thumbnail_url,omitempty"`
	Content      string     `gorm:"type:text;not null" json:"content"`
	AuthorID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"author_id"`
	Author       User       `gorm:"foreignKey:AuthorID" json:"author"`
	AuthorName   string     `gorm:"size:100;not null" json:"author_name"`
	Status       BlogStatus `gorm:"size:20;not null;default:draft;index" json:"status"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
