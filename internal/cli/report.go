package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/campusfind/campusfind/internal/models"
	"github.com/campusfind/campusfind/internal/services"
)

// encodePhotoFile is an indirection over EncodePhotoFile for tests.
var encodePhotoFile = EncodePhotoFile

// Report walks the logged-in user through reporting a found item: photo,
// where and when it was found, category, and the security question only the
// owner should be able to answer.
func (a *App) Report(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	photoPath, err := getSimpleText(a.reader, "Path to a photo of the item", os.Stdout)
	if err != nil {
		return err
	}
	photo, err := encodePhotoFile(photoPath)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	location, err := getSimpleText(a.reader, "Where did you find it?", os.Stdout)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "Date found (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	timeOfDay, err := getSimpleText(a.reader, "Time found (HH:MM)", os.Stdout)
	if err != nil {
		return err
	}

	fmt.Println("Categories:")
	for _, c := range models.Categories {
		fmt.Printf("  %s %s — %s\n", c.Icon, c.ID, c.Name)
	}
	category, err := getSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		return err
	}

	question, err := getSimpleText(a.reader, "Security question for the owner (e.g. 'What color is the case?')", os.Stdout)
	if err != nil {
		return err
	}
	answer, err := getSimpleText(a.reader, "Expected answer", os.Stdout)
	if err != nil {
		return err
	}

	item, err := a.catalog.Report(ctx, services.ReportInput{
		Photo:            photo,
		Location:         location,
		Date:             date,
		Time:             timeOfDay,
		Category:         category,
		SecurityQuestion: question,
		SecurityAnswer:   answer,
		FinderEmail:      a.currentUser.Email,
		FinderName:       a.currentUser.Name,
	})
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Reported. Item id: %s\n", item.ID)
	return nil
}
