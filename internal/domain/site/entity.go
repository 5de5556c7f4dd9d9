package site

import "time"

// Site is a work location attendance can be recorded against.
type Site struct {
	ID        string
	UserID    string
	Name      string
	Location  *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
