package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Hero is the singleton headline block at the top of the page.
type Hero struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Stat is a single hero statistic ("15+ Projects Completed").
type Stat struct {
	ID        int       `json:"id"`
	Number    string    `json:"number"`
	Label     string    `json:"label"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// About is the singleton about-me block.
type About struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Project struct {
	ID             int       `json:"id"`
	Category       string    `json:"category"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Technologies   []string  `json:"technologies"`
	Link           string    `json:"link"`
	LinkText       string    `json:"link_text"`
	IsCurrentStudy bool      `json:"is_current_study"`
	SortOrder      int       `json:"sort_order"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Skill struct {
	ID        int       `json:"id"`
	Category  string    `json:"category"`
	Name      string    `json:"name"`
	Level     string    `json:"level"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

type EducationEntry struct {
	ID          int       `json:"id"`
	DateRange   string    `json:"date_range"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Contact struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	LinkedIn  string    `json:"linkedin"`
	GitHub    string    `json:"github"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// DecodeTechnologies normalizes the stored technologies column into an
// ordered list of tag strings. Legacy rows persisted the column in two
// shapes: a JSON array, or a JSON string holding a comma-delimited list.
// This is a compatibility shim for those rows, not a contract for new
// writes: new writes always store a JSON array. Anything else yields an
// empty list rather than failing the whole read.
func DecodeTechnologies(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var tags []string
	if err := json.Unmarshal(raw, &tags); err == nil {
		return normalizeTags(tags)
	}

	var delimited string
	if err := json.Unmarshal(raw, &delimited); err == nil {
		return splitTags(delimited)
	}

	return []string{}
}

func splitTags(s string) []string {
	return normalizeTags(strings.Split(s, ","))
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// EncodeTechnologies serializes a tag list for storage as a JSON array.
func EncodeTechnologies(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}
