package services

import (
	"context"

	"github.com/campusfind/campusfind/internal/common"
	"github.com/campusfind/campusfind/internal/models"
	"github.com/campusfind/campusfind/internal/storage"
)

// MailboxService is the per-recipient notification log.
//
// Contract:
//   - Deliver: append the notification and persist.
//   - Inbox: all notifications addressed to email, in storage order.
//   - MarkRead: set read=true; already-read is a no-op, an unknown id yields
//     common.ErrNotFound.
//   - UnreadCount: derived count of unread inbox entries, never stored.
type MailboxService interface {
	Deliver(ctx context.Context, n models.Notification) error
	Inbox(ctx context.Context, email string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
	UnreadCount(ctx context.Context, email string) (int, error)
}

type mailboxService struct {
	store storage.Gateway
}

// NewMailboxService constructs a MailboxService bound to the given gateway.
func NewMailboxService(store storage.Gateway) MailboxService {
	return &mailboxService{store: store}
}

func (s *mailboxService) Deliver(ctx context.Context, n models.Notification) error {
	return storage.Update(ctx, s.store, storage.KeyNotifications, func(data []byte) ([]byte, error) {
		ns, err := decodeNotifications(data)
		if err != nil {
			return nil, err
		}
		return encodeNotifications(append(ns, n))
	})
}

func (s *mailboxService) Inbox(ctx context.Context, email string) ([]models.Notification, error) {
	c, err := s.store.Read(ctx, storage.KeyNotifications)
	if err != nil {
		return nil, err
	}
	ns, err := decodeNotifications(c.Data)
	if err != nil {
		return nil, err
	}

	var out []models.Notification
	for _, n := range ns {
		if n.ToUser == email {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *mailboxService) MarkRead(ctx context.Context, id string) error {
	return storage.Update(ctx, s.store, storage.KeyNotifications, func(data []byte) ([]byte, error) {
		ns, err := decodeNotifications(data)
		if err != nil {
			return nil, err
		}
		for i := range ns {
			if ns[i].ID == id {
				ns[i].Read = true
				return encodeNotifications(ns)
			}
		}
		return nil, common.ErrNotFound
	})
}

func (s *mailboxService) UnreadCount(ctx context.Context, email string) (int, error) {
	inbox, err := s.Inbox(ctx, email)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range inbox {
		if !n.Read {
			count++
		}
	}
	return count, nil
}
