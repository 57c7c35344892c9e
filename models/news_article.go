package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores a slice of URLs as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		if len(v) == 0 {
			*l = nil
			return nil
		}
		return json.Unmarshal(v, l)
	case string:
		if v == "" {
			*l = nil
			return nil
		}
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

// NewsArticle is either a draft (IsPublished false) or published.
// PublishedDate carries editorial intent and may differ from CreatedAt.
type NewsArticle struct {
	ID            uint       `json:"id" gorm:"primarykey"`
	Title         string     `json:"title" gorm:"not null"`
	Summary       string     `json:"summary" gorm:"type:text"`
	Content       string     `json:"content" gorm:"type:text"`
	Category      string     `json:"category" gorm:"index;not null"`
	Author        string     `json:"author" gorm:"not null"`
	ImageURLs     StringList `json:"image_urls" gorm:"type:text"`
	IsPublished   bool       `json:"is_published" gorm:"default:false;index"`
	PublishedDate *time.Time `json:"published_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (NewsArticle) TableName() string {
	return "news_articles"
}
