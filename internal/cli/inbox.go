package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusfind/campusfind/internal/common"
	"github.com/campusfind/campusfind/internal/models"
)

// Inbox prints the logged-in user's notifications, unread ones first marked
// with a dot.
func (a *App) Inbox(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	inbox, err := a.mailbox.Inbox(ctx, a.currentUser.Email)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if len(inbox) == 0 {
		fmt.Println("Your inbox is empty.")
		return nil
	}

	for _, n := range inbox {
		marker := " "
		if !n.Read {
			marker = "●"
		}
		fmt.Printf("%s %s  %s\n    %s\n    %s\n",
			marker, n.ID, n.CreatedAt.Format("2006-01-02 15:04"), n.Title, n.Message)
	}

	unread, err := a.mailbox.UnreadCount(ctx, a.currentUser.Email)
	if err != nil {
		return err
	}
	fmt.Printf("%d unread. Use 'read <id>' to mark one as read.\n", unread)
	return nil
}

// Read marks one notification as read.
func (a *App) Read(ctx context.Context, id string) error {
	if !a.requireLogin() {
		return nil
	}

	if err := a.mailbox.MarkRead(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Println("No such notification.")
		} else {
			fmt.Println(err.Error())
		}
		return err
	}
	fmt.Println("Marked as read.")
	return nil
}

// Theme shows the current theme when called without a name, or switches it.
func (a *App) Theme(ctx context.Context, name string) error {
	if name == "" {
		theme, err := a.prefs.Theme(ctx)
		if err != nil {
			fmt.Println(err.Error())
			return err
		}
		fmt.Printf("Current theme: %s\n", theme)
		return nil
	}

	if err := a.prefs.SetTheme(ctx, models.Theme(name)); err != nil {
		if errors.Is(err, common.ErrValidation) {
			fmt.Println("Unknown theme. Use 'light' or 'dark'.")
		} else {
			fmt.Println(err.Error())
		}
		return err
	}
	fmt.Printf("Theme set to %s.\n", name)
	return nil
}
