// Package domain defines the persistence models for books and users. These
// types are mapped with GORM and form the core data layer of the API.
package domain

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"gorm.io/gorm"
)

// idBytes is the number of random bytes in a record identifier. Hex-encoded
// this yields the fixed 24-character id format the API validates against.
const idBytes = 12

// NewID returns a new random record identifier: 24 lowercase hex characters.
func NewID() string {
	b := make([]byte, idBytes)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand failure means the process cannot run safely
	}
	return hex.EncodeToString(b)
}

// Book represents a single book record.
//
// Fields:
//   - ID: fixed-length hex primary key (char(24)).
//   - Name / Author / Genre / PublishYear: required attributes.
//   - Description: optional free text.
//   - CreatorID: optional reference to the user that created the record
//     (resolved from the X-API-Key header on creation).
type Book struct {
	ID          string         `json:"id"          gorm:"type:char(24);primaryKey"`
	Name        string         `json:"name"        gorm:"type:varchar(255);not null"`
	Author      string         `json:"author"      gorm:"type:varchar(255);not null"`
	Genre       string         `json:"genre"       gorm:"type:varchar(128);not null"`
	PublishYear int            `json:"publishYear" gorm:"not null"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	CreatorID   *string        `json:"creator,omitempty" gorm:"type:char(24);index"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Creator is the owning user, when known.
	Creator *User `json:"-" gorm:"foreignKey:CreatorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// TableName returns the database table name for Book.
func (Book) TableName() string { return "books" }

// BookData carries the accepted attributes for creating or patching a book.
// Pointer fields distinguish "absent" from "zero" on partial updates.
type BookData struct {
	Name        *string
	Author      *string
	Genre       *string
	PublishYear *int
	Description *string
}

// User represents a registered account. The password hash never leaves the
// server: it is excluded from JSON entirely and handlers expose users
// through PublicView.
//
// Users are deleted outright, never soft-deleted: the unique username must
// become available again after the account is removed.
type User struct {
	ID        string    `json:"id"        gorm:"type:char(24);primaryKey"`
	Username  string    `json:"username"  gorm:"type:varchar(64);not null;uniqueIndex"`
	Hash      string    `json:"-"         gorm:"type:varchar(128);not null"`
	FirstName string    `json:"firstName" gorm:"type:varchar(128);not null"`
	LastName  string    `json:"lastName"  gorm:"type:varchar(128);not null"`
	APIKey    string    `json:"-"         gorm:"column:api_key;type:char(36);not null;uniqueIndex"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// UserView is the client-facing projection of a User. It is what the
// credentials endpoint returns: the API key is included because that call is
// how a client obtains it, but the hash never is.
type UserView struct {
	Username  string `json:"username"  example:"fherbert"`
	FirstName string `json:"firstName" example:"Frank"`
	LastName  string `json:"lastName"  example:"Herbert"`
	APIKey    string `json:"apiKey"    example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

// PublicView returns the JSON projection of the user.
func (u *User) PublicView() UserView {
	return UserView{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		APIKey:    u.APIKey,
	}
}
