package models

import "time"

// NotificationType enumerates the kinds of messages a user can receive.
type NotificationType string

const (
	// NotificationItemClaimed is delivered to the finder when a claimant
	// answers the security question correctly.
	NotificationItemClaimed NotificationType = "item_claimed"
	// NotificationItemFound is delivered to the claimant when the finder
	// confirms they have reached out.
	NotificationItemFound NotificationType = "item_found"
	// NotificationContactRequest is delivered to the finder when a visitor
	// asks about an item without claiming it.
	NotificationContactRequest NotificationType = "contact_request"
)

// Notification is one message delivered to a specific recipient. ItemID is a
// weak reference to the triggering item, not an ownership link. Read is the
// only mutable field.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	ItemID    string           `json:"itemId"`
	FromUser  string           `json:"fromUser"`
	ToUser    string           `json:"toUser"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}
