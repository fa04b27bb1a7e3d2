// Package models defines the core data structures shared between the
// bookpal client and the local companion server.
package models

import "time"

// SoftwareBackground describes the reader's self-reported software experience.
type SoftwareBackground string

const (
	// SoftwareBeginner marks a reader new to programming.
	SoftwareBeginner SoftwareBackground = "Beginner"
	// SoftwareIntermediate marks a reader with some programming experience.
	SoftwareIntermediate SoftwareBackground = "Intermediate"
	// SoftwareAdvanced marks an experienced programmer.
	SoftwareAdvanced SoftwareBackground = "Advanced"
)

// HardwareBackground describes the reader's self-reported hardware experience.
type HardwareBackground string

const (
	// HardwareNone marks a reader with no hardware experience.
	HardwareNone HardwareBackground = "None"
	// HardwareBasic marks a reader with basic hardware experience.
	HardwareBasic HardwareBackground = "Basic"
	// HardwareAdvanced marks an experienced hardware tinkerer.
	HardwareAdvanced HardwareBackground = "Advanced"
)

// UserMetadata holds optional profile fields collected at signup.
type UserMetadata struct {
	SoftwareBackground SoftwareBackground `json:"softwareBackground,omitempty"`
	HardwareBackground HardwareBackground `json:"hardwareBackground,omitempty"`
}

// Merge returns a copy of m with the non-empty fields of other applied on
// top. Supplied keys win; omitted keys keep their current values.
func (m UserMetadata) Merge(other UserMetadata) UserMetadata {
	out := m
	if other.SoftwareBackground != "" {
		out.SoftwareBackground = other.SoftwareBackground
	}
	if other.HardwareBackground != "" {
		out.HardwareBackground = other.HardwareBackground
	}
	return out
}

// User represents a reader identity.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// Email is the login email, always present.
	Email string `json:"email"`
	// Name is an optional display name (derived from the email local part
	// for password logins, supplied by the provider for OAuth logins).
	Name string `json:"name,omitempty"`
	// PhotoURL is an optional avatar URL for OAuth users.
	PhotoURL string `json:"photoUrl,omitempty"`
	// Metadata holds optional profile fields.
	Metadata *UserMetadata `json:"metadata,omitempty"`
}

// ActivityEvent is a single tracked user action, sent fire-and-forget
// to the activity endpoint.
type ActivityEvent struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Action     string `json:"action"`
	ResourceID string `json:"resource_id"`
}

// ActivityLog is a stored activity row, as returned by the server.
type ActivityLog struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Action     string    `json:"action"`
	ResourceID string    `json:"resource_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Note is a reader note attached to the book.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Progress records how far a reader is through one week of the book.
type Progress struct {
	ID                string `json:"id"`
	UserID            string `json:"user_id,omitempty"`
	WeekNumber        int    `json:"week_number"`
	CompletionPercent int    `json:"completion_percent"`
}
