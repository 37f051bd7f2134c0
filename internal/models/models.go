package models

import (
	"strings"
	"time"
)

type User struct {
	ID           string     `json:"id" db:"id"`
	FirstName    string     `json:"first_name" db:"first_name"`
	MiddleName   *string    `json:"middle_name" db:"middle_name"`
	LastName     string     `json:"last_name" db:"last_name"`
	City         string     `json:"city" db:"city"`
	PhoneNumber  string     `json:"phone_number" db:"phone_number"`
	GovIDType    string     `json:"gov_id_type" db:"gov_id_type"`
	GovIDNumber  string     `json:"gov_id_number" db:"gov_id_number"`
	PasswordHash string     `json:"-" db:"password_hash"`
	PhotoURL     *string    `json:"photo_url" db:"photo_url"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at" db:"updated_at"`
}

// FullName is the denormalized name stored on posts, alerts and safe records.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

type Incident struct {
	ID          string         `json:"id" db:"id"`
	UserID      string         `json:"user_id" db:"user_id"`
	Type        IncidentType   `json:"incident_type" db:"incident_type"`
	Description string         `json:"description" db:"description"`
	Location    string         `json:"location" db:"location"`
	Latitude    *float64       `json:"latitude" db:"latitude"`
	Longitude   *float64       `json:"longitude" db:"longitude"`
	PhotoURL    *string        `json:"photo_url" db:"photo_url"`
	Status      IncidentStatus `json:"status" db:"status"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time     `json:"updated_at" db:"updated_at"`
}

type MissingPerson struct {
	ID               string              `json:"id" db:"id"`
	UserID           string              `json:"user_id" db:"user_id"`
	Name             string              `json:"name" db:"name"`
	Age              int                 `json:"age" db:"age"`
	LastSeenLocation string              `json:"last_seen_location" db:"last_seen_location"`
	Description      string              `json:"description" db:"description"`
	ReporterContact  string              `json:"reporter_contact" db:"reporter_contact"`
	PhotoURL         *string             `json:"photo_url" db:"photo_url"`
	Status           MissingPersonStatus `json:"status" db:"status"`
	CreatedAt        time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt        *time.Time          `json:"updated_at" db:"updated_at"`
}

type CommunityPost struct {
	ID        string       `json:"id" db:"id"`
	UserID    string       `json:"user_id" db:"user_id"`
	UserName  string       `json:"user_name" db:"user_name"`
	Category  PostCategory `json:"category" db:"category"`
	Message   string       `json:"message" db:"message"`
	Location  *string      `json:"location" db:"location"`
	ImageURL  *string      `json:"image_url" db:"image_url"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time   `json:"updated_at" db:"updated_at"`
}

type SOSAlert struct {
	ID                  string     `json:"id" db:"id"`
	UserID              string     `json:"user_id" db:"user_id"`
	UserName            string     `json:"user_name" db:"user_name"`
	Latitude            float64    `json:"latitude" db:"latitude"`
	Longitude           float64    `json:"longitude" db:"longitude"`
	LocationDescription *string    `json:"location_description" db:"location_description"`
	EmergencyType       *string    `json:"emergency_type" db:"emergency_type"`
	Status              SOSStatus  `json:"status" db:"status"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           *time.Time `json:"updated_at" db:"updated_at"`
}

// SafeStatus is an append-only record written each time a user marks safe.
type SafeStatus struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	UserName  string    `json:"user_name" db:"user_name"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

const (
	PostTypeCommunity = "community"
	PostTypeIncident  = "incident"
)

// FeedItem is one entry of the community feed: either a community post or an
// incident reshaped to look like one.
type FeedItem struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id,omitempty"`
	UserName     string     `json:"user_name"`
	Category     string     `json:"category"`
	Message      string     `json:"message"`
	Location     *string    `json:"location"`
	ImageURL     *string    `json:"image_url"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
	PostType     string     `json:"post_type"`
	IncidentType string     `json:"incident_type,omitempty"`
	Status       string     `json:"status,omitempty"`
}
