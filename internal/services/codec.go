package services

import (
	"encoding/json"
	"fmt"

	"github.com/campusfind/campusfind/internal/models"
)

// The gateway stores each collection as one serialized list. These helpers
// decode/encode them; an absent key (nil data) decodes to an empty list.

func decodeItems(data []byte) ([]models.FoundItem, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var items []models.FoundItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, nil
}

func encodeItems(items []models.FoundItem) ([]byte, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode items: %w", err)
	}
	return data, nil
}

func decodeUsers(data []byte) ([]models.User, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func encodeUsers(users []models.User) ([]byte, error) {
	data, err := json.Marshal(users)
	if err != nil {
		return nil, fmt.Errorf("failed to encode users: %w", err)
	}
	return data, nil
}

func decodeNotifications(data []byte) ([]models.Notification, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var ns []models.Notification
	if err := json.Unmarshal(data, &ns); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return ns, nil
}

func encodeNotifications(ns []models.Notification) ([]byte, error) {
	data, err := json.Marshal(ns)
	if err != nil {
		return nil, fmt.Errorf("failed to encode notifications: %w", err)
	}
	return data, nil
}
