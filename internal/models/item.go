// Package models defines the data records persisted in the campusfind store.
// JSON field names match the serialized collection layout, so records decode
// symmetrically to how they were written.
package models

import "time"

// ItemStatus is the lifecycle state of a reported found item.
type ItemStatus string

const (
	// StatusAvailable is the initial state: the item is waiting to be claimed.
	StatusAvailable ItemStatus = "available"
	// StatusClaimed means a claimant answered the security question correctly.
	StatusClaimed ItemStatus = "claimed"
	// StatusContacted means the finder confirmed reaching out to the claimant.
	StatusContacted ItemStatus = "contacted"
)

// FoundItem is one reported found item.
//
// Identity and provenance fields are immutable after creation. ClaimedBy and
// ClaimedAt are unset until the item transitions to StatusClaimed and are
// immutable afterwards.
type FoundItem struct {
	// ID is an opaque unique identifier assigned at creation.
	ID string `json:"id"`

	// Photo is the item image encoded as a self-contained data URL.
	Photo string `json:"photo"`

	// Location is free text describing where the item was found.
	Location string `json:"location"`

	// Date and Time record when the item was found, as entered by the finder.
	Date string `json:"date"`
	Time string `json:"time"`

	// Category is the id of one of the fixed categories (see Categories).
	Category string `json:"category"`

	// SecurityQuestion and SecurityAnswer gate release of contact details.
	// The answer is matched case- and surrounding-whitespace-insensitively.
	SecurityQuestion string `json:"securityQuestion"`
	SecurityAnswer   string `json:"securityAnswer"`

	// FinderEmail and FinderName identify the reporting user.
	FinderEmail string `json:"finderEmail"`
	FinderName  string `json:"finderName"`

	Status ItemStatus `json:"status"`

	// ClaimedBy is the claimant's contact email, set on the claimed transition.
	ClaimedBy string     `json:"claimedBy,omitempty"`
	ClaimedAt *time.Time `json:"claimedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
