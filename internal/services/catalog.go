package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/campusfind/campusfind/internal/common"
	"github.com/campusfind/campusfind/internal/models"
	"github.com/campusfind/campusfind/internal/storage"
	"github.com/google/uuid"
)

// ReportInput carries the fields of a new found-item report. All fields are
// required; FinderEmail/FinderName come from the reporting user's session.
type ReportInput struct {
	Photo            string
	Location         string
	Date             string
	Time             string
	Category         string
	SecurityQuestion string
	SecurityAnswer   string
	FinderEmail      string
	FinderName       string
}

// CatalogService owns the collection of reported found items: creation,
// lookups, and the status transitions of the item lifecycle.
//
// Contract:
//   - Report: validates all required fields (common.ErrValidation), assigns
//     id/status/createdAt, appends and persists.
//   - ListAvailable: items with status available, in storage order.
//   - ListByFinder: all items reported by the given email, any status.
//   - Get: single item by id, common.ErrNotFound when absent.
//   - MarkClaimed: available → claimed exactly once; re-claiming yields
//     common.ErrItemAlreadyClaimed.
//   - MarkContacted: claimed → contacted exactly once.
type CatalogService interface {
	Report(ctx context.Context, in ReportInput) (*models.FoundItem, error)
	ListAvailable(ctx context.Context) ([]models.FoundItem, error)
	ListByFinder(ctx context.Context, email string) ([]models.FoundItem, error)
	Get(ctx context.Context, id string) (*models.FoundItem, error)
	MarkClaimed(ctx context.Context, itemID, claimantEmail string, now time.Time) error
	MarkContacted(ctx context.Context, itemID string) error
}

type catalogService struct {
	store storage.Gateway
}

// NewCatalogService constructs a CatalogService bound to the given gateway.
func NewCatalogService(store storage.Gateway) CatalogService {
	return &catalogService{store: store}
}

func (s *catalogService) Report(ctx context.Context, in ReportInput) (*models.FoundItem, error) {
	required := []struct {
		name  string
		value string
	}{
		{"photo", in.Photo},
		{"location", in.Location},
		{"date", in.Date},
		{"time", in.Time},
		{"category", in.Category},
		{"security question", in.SecurityQuestion},
		{"security answer", in.SecurityAnswer},
		{"finder email", in.FinderEmail},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, fmt.Errorf("%w: %s is required", common.ErrValidation, f.name)
		}
	}
	if _, ok := models.CategoryByID(in.Category); !ok {
		return nil, fmt.Errorf("%w: unknown category %q", common.ErrValidation, in.Category)
	}

	item := models.FoundItem{
		ID:               uuid.NewString(),
		Photo:            in.Photo,
		Location:         strings.TrimSpace(in.Location),
		Date:             strings.TrimSpace(in.Date),
		Time:             strings.TrimSpace(in.Time),
		Category:         in.Category,
		SecurityQuestion: strings.TrimSpace(in.SecurityQuestion),
		SecurityAnswer:   in.SecurityAnswer,
		FinderEmail:      in.FinderEmail,
		FinderName:       in.FinderName,
		Status:           models.StatusAvailable,
		CreatedAt:        time.Now().UTC(),
	}

	err := storage.Update(ctx, s.store, storage.KeyItems, func(data []byte) ([]byte, error) {
		items, err := decodeItems(data)
		if err != nil {
			return nil, err
		}
		return encodeItems(append(items, item))
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *catalogService) ListAvailable(ctx context.Context) ([]models.FoundItem, error) {
	items, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}

	var out []models.FoundItem
	for _, it := range items {
		if it.Status == models.StatusAvailable {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *catalogService) ListByFinder(ctx context.Context, email string) ([]models.FoundItem, error) {
	items, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}

	var out []models.FoundItem
	for _, it := range items {
		if it.FinderEmail == email {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *catalogService) Get(ctx context.Context, id string) (*models.FoundItem, error) {
	items, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, common.ErrNotFound
}

// MarkClaimed transitions an available item to claimed and records the
// claimant. The status check runs inside the same compare-and-swap write as
// the transition, so two racing claimants cannot both win.
func (s *catalogService) MarkClaimed(ctx context.Context, itemID, claimantEmail string, now time.Time) error {
	return s.mutateItem(ctx, itemID, func(it *models.FoundItem) error {
		if it.Status != models.StatusAvailable {
			return common.ErrItemAlreadyClaimed
		}
		it.Status = models.StatusClaimed
		it.ClaimedBy = claimantEmail
		it.ClaimedAt = &now
		return nil
	})
}

// MarkContacted transitions a claimed item to contacted, once.
func (s *catalogService) MarkContacted(ctx context.Context, itemID string) error {
	return s.mutateItem(ctx, itemID, func(it *models.FoundItem) error {
		switch it.Status {
		case models.StatusClaimed:
			it.Status = models.StatusContacted
			return nil
		case models.StatusContacted:
			return common.ErrItemAlreadyContacted
		default:
			return common.ErrItemNotClaimed
		}
	})
}

func (s *catalogService) readAll(ctx context.Context) ([]models.FoundItem, error) {
	c, err := s.store.Read(ctx, storage.KeyItems)
	if err != nil {
		return nil, err
	}
	return decodeItems(c.Data)
}

func (s *catalogService) mutateItem(ctx context.Context, itemID string, mutate func(*models.FoundItem) error) error {
	return storage.Update(ctx, s.store, storage.KeyItems, func(data []byte) ([]byte, error) {
		items, err := decodeItems(data)
		if err != nil {
			return nil, err
		}
		for i := range items {
			if items[i].ID != itemID {
				continue
			}
			if err := mutate(&items[i]); err != nil {
				return nil, err
			}
			return encodeItems(items)
		}
		return nil, common.ErrNotFound
	})
}

// FilterItems returns the subset of items matching both predicates: search
// (case-insensitive substring of location or date; empty matches everything)
// and categoryID (exact category match; empty matches everything). Input
// order is preserved.
func FilterItems(items []models.FoundItem, search, categoryID string) []models.FoundItem {
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]models.FoundItem, 0, len(items))
	for _, it := range items {
		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(it.Location), search) ||
			strings.Contains(strings.ToLower(it.Date), search)
		matchesCategory := categoryID == "" || it.Category == categoryID

		if matchesSearch && matchesCategory {
			out = append(out, it)
		}
	}
	return out
}
