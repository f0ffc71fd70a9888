package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/campusfind/campusfind/internal/common"
	"github.com/campusfind/campusfind/internal/models"
	"github.com/google/uuid"
)

// ClaimService is the claim verification flow: it decides whether a
// claimant's answer matches an item's security question, performs the
// associated status transition through the catalog, and fans out the
// notification to the people involved.
//
// Contract:
//   - Verify: correct answer → item claimed + item_claimed notification to
//     the finder, returns true; wrong answer → no mutation, returns false.
//     Retries are unlimited. Claiming a non-available item yields
//     common.ErrItemAlreadyClaimed.
//   - RequestContact: asks the finder about an available item without
//     claiming it (contact_request notification, no state change).
//   - ConfirmContact: the finder confirms reaching out to the claimant
//     (claimed → contacted, item_found notification to the claimant).
type ClaimService interface {
	Verify(ctx context.Context, itemID, answer, claimantEmail string) (bool, error)
	RequestContact(ctx context.Context, itemID, fromEmail string) error
	ConfirmContact(ctx context.Context, itemID, finderEmail string) error
}

type claimService struct {
	catalog CatalogService
	mailbox MailboxService
}

// NewClaimService constructs a ClaimService over the given catalog and mailbox.
func NewClaimService(catalog CatalogService, mailbox MailboxService) ClaimService {
	return &claimService{catalog: catalog, mailbox: mailbox}
}

// normalizeAnswer prepares a security answer for comparison: surrounding
// whitespace and letter case are not significant.
func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (s *claimService) Verify(ctx context.Context, itemID, answer, claimantEmail string) (bool, error) {
	claimantEmail = strings.TrimSpace(claimantEmail)
	if claimantEmail == "" {
		return false, fmt.Errorf("%w: claimant email is required", common.ErrValidation)
	}

	item, err := s.catalog.Get(ctx, itemID)
	if err != nil {
		return false, err
	}

	if normalizeAnswer(answer) != normalizeAnswer(item.SecurityAnswer) {
		return false, nil
	}

	now := time.Now().UTC()
	if err := s.catalog.MarkClaimed(ctx, itemID, claimantEmail, now); err != nil {
		return false, err
	}

	n := models.Notification{
		ID:    uuid.NewString(),
		Type:  models.NotificationItemClaimed,
		Title: "Your found item has been claimed!",
		Message: fmt.Sprintf(
			"Great news! Someone has successfully claimed the %s you found at %s. "+
				"The owner answered your security question correctly and provided their contact: %s",
			models.CategoryName(item.Category), item.Location, claimantEmail),
		ItemID:    item.ID,
		FromUser:  claimantEmail,
		ToUser:    item.FinderEmail,
		CreatedAt: now,
	}
	if err := s.mailbox.Deliver(ctx, n); err != nil {
		return false, err
	}
	return true, nil
}

func (s *claimService) RequestContact(ctx context.Context, itemID, fromEmail string) error {
	fromEmail = strings.TrimSpace(fromEmail)
	if fromEmail == "" {
		return fmt.Errorf("%w: sender email is required", common.ErrValidation)
	}

	item, err := s.catalog.Get(ctx, itemID)
	if err != nil {
		return err
	}
	if item.Status != models.StatusAvailable {
		return common.ErrItemAlreadyClaimed
	}

	n := models.Notification{
		ID:    uuid.NewString(),
		Type:  models.NotificationContactRequest,
		Title: "Someone is asking about your found item",
		Message: fmt.Sprintf(
			"A visitor thinks the %s you found at %s might be theirs and would like "+
				"to get in touch. You can reach them at: %s",
			models.CategoryName(item.Category), item.Location, fromEmail),
		ItemID:    item.ID,
		FromUser:  fromEmail,
		ToUser:    item.FinderEmail,
		CreatedAt: time.Now().UTC(),
	}
	return s.mailbox.Deliver(ctx, n)
}

func (s *claimService) ConfirmContact(ctx context.Context, itemID, finderEmail string) error {
	item, err := s.catalog.Get(ctx, itemID)
	if err != nil {
		return err
	}
	if item.FinderEmail != finderEmail {
		return common.ErrNotItemFinder
	}

	if err := s.catalog.MarkContacted(ctx, itemID); err != nil {
		return err
	}

	n := models.Notification{
		ID:    uuid.NewString(),
		Type:  models.NotificationItemFound,
		Title: "Your item is on its way back",
		Message: fmt.Sprintf(
			"The finder of the %s from %s has your contact details and will reach "+
				"out to arrange pickup.",
			models.CategoryName(item.Category), item.Location),
		ItemID:    item.ID,
		FromUser:  finderEmail,
		ToUser:    item.ClaimedBy,
		CreatedAt: time.Now().UTC(),
	}
	return s.mailbox.Deliver(ctx, n)
}
