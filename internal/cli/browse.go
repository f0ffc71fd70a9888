package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/campusfind/campusfind/internal/common"
	"github.com/campusfind/campusfind/internal/models"
	"github.com/campusfind/campusfind/internal/services"
)

func printItem(it models.FoundItem) {
	cat, _ := models.CategoryByID(it.Category)
	fmt.Printf("%s  %s %s at %s, found %s %s [%s]\n",
		it.ID, cat.Icon, cat.Name, it.Location, it.Date, it.Time, it.Status)
}

// Browse lists available items, optionally narrowed by a search text
// (location or date) and a category id.
func (a *App) Browse(ctx context.Context, search, category string) error {
	items, err := a.catalog.ListAvailable(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	items = services.FilterItems(items, search, category)
	if len(items) == 0 {
		fmt.Println("No items found.")
		return nil
	}
	for _, it := range items {
		printItem(it)
	}
	return nil
}

// Mine lists every item the logged-in user has reported, any status.
func (a *App) Mine(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	items, err := a.catalog.ListByFinder(ctx, a.currentUser.Email)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if len(items) == 0 {
		fmt.Println("You have not reported any items yet.")
		return nil
	}
	for _, it := range items {
		printItem(it)
		if it.ClaimedBy != "" {
			fmt.Printf("    claimed by %s\n", it.ClaimedBy)
		}
	}
	return nil
}

// Claim runs the claim flow for one item: show the security question, read
// the answer and the claimant's contact email, and verify. A wrong answer
// leaves the item untouched and can be retried.
func (a *App) Claim(ctx context.Context, id string) error {
	item, err := a.catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Println("No such item.")
		} else {
			fmt.Println(err.Error())
		}
		return err
	}
	if item.Status != models.StatusAvailable {
		fmt.Println("This item has already been claimed.")
		return common.ErrItemAlreadyClaimed
	}

	fmt.Printf("Security question: %s\n", item.SecurityQuestion)
	answer, err := getSimpleText(a.reader, "Your answer", os.Stdout)
	if err != nil {
		return err
	}

	email := ""
	if a.currentUser != nil {
		email = a.currentUser.Email
	} else {
		email, err = getSimpleText(a.reader, "Your contact email", os.Stdout)
		if err != nil {
			return err
		}
	}

	ok, err := a.claims.Verify(ctx, id, answer, email)
	if err != nil {
		if errors.Is(err, common.ErrItemAlreadyClaimed) {
			fmt.Println("Someone else claimed this item first.")
		} else {
			fmt.Println(err.Error())
		}
		return err
	}
	if !ok {
		fmt.Println("That answer does not match. You can try again.")
		return nil
	}

	fmt.Println("Verified! The finder has been notified and will contact you at", email)
	return nil
}

// Ask sends a contact request about an available item to its finder without
// attempting a claim.
func (a *App) Ask(ctx context.Context, id string) error {
	email := ""
	var err error
	if a.currentUser != nil {
		email = a.currentUser.Email
	} else {
		email, err = getSimpleText(a.reader, "Your contact email", os.Stdout)
		if err != nil {
			return err
		}
	}

	if err := a.claims.RequestContact(ctx, id, email); err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			fmt.Println("No such item.")
		case errors.Is(err, common.ErrItemAlreadyClaimed):
			fmt.Println("This item has already been claimed.")
		default:
			fmt.Println(err.Error())
		}
		return err
	}

	fmt.Println("The finder has been notified.")
	return nil
}

// Confirm lets the finder record that they reached out to the claimant of
// one of their claimed items.
func (a *App) Confirm(ctx context.Context, id string) error {
	if !a.requireLogin() {
		return nil
	}

	if err := a.claims.ConfirmContact(ctx, id, a.currentUser.Email); err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			fmt.Println("No such item.")
		case errors.Is(err, common.ErrNotItemFinder):
			fmt.Println("Only the finder of this item can confirm contact.")
		case errors.Is(err, common.ErrItemNotClaimed):
			fmt.Println("This item has not been claimed yet.")
		case errors.Is(err, common.ErrItemAlreadyContacted):
			fmt.Println("Contact was already confirmed for this item.")
		default:
			fmt.Println(err.Error())
		}
		return err
	}

	fmt.Println("Confirmed. The claimant has been notified.")
	return nil
}
