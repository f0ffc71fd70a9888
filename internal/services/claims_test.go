package services

import (
	"context"
	"testing"

	"github.com/campusfind/campusfind/internal/common"
	"github.com/campusfind/campusfind/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type claimFixture struct {
	catalog CatalogService
	mailbox MailboxService
	claims  ClaimService
}

func newClaimFixture(t *testing.T) *claimFixture {
	t.Helper()
	g := newGateway(t)
	catalog := NewCatalogService(g)
	mailbox := NewMailboxService(g)
	return &claimFixture{
		catalog: catalog,
		mailbox: mailbox,
		claims:  NewClaimService(catalog, mailbox),
	}
}

func TestVerify_CorrectAnswerClaimsAndNotifiesFinder(t *testing.T) {
	f := newClaimFixture(t)
	ctx := context.Background()

	// the stored answer is "Red"; the claimant types lowercase
	item := reportLibraryItem(t, ctx, f.catalog)

	ok, err := f.claims.Verify(ctx, item.ID, "red", "c@x.com")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := f.catalog.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusClaimed, got.Status)
	assert.Equal(t, "c@x.com", got.ClaimedBy)
	require.NotNil(t, got.ClaimedAt)

	inbox, err := f.mailbox.Inbox(ctx, "f@x.com")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, models.NotificationItemClaimed, inbox[0].Type)
	assert.Equal(t, item.ID, inbox[0].ItemID)
	assert.Equal(t, "c@x.com", inbox[0].FromUser)
	assert.Contains(t, inbox[0].Message, "Library")
	assert.Contains(t, inbox[0].Message, "c@x.com")
	assert.False(t, inbox[0].Read)
}

func TestVerify_AnswerComparisonIgnoresWhitespace(t *testing.T) {
	f := newClaimFixture(t)
	ctx := context.Background()

	item := reportLibraryItem(t, ctx, f.catalog)

	ok, err := f.claims.Verify(ctx, item.ID, "  RED  ", "c@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_WrongAnswerLeavesItemUntouched(t *testing.T) {
	f := newClaimFixture(t)
	ctx := context.Background()

	item := reportLibraryItem(t, ctx, f.catalog)

	ok, err := f.claims.Verify(ctx, item.ID, "Blue", "c@x.com")
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := f.catalog.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, got.Status)
	assert.Empty(t, got.ClaimedBy)

	inbox, err := f.mailbox.Inbox(ctx, "f@x.com")
	require.NoError(t, err)
	assert.Empty(t, inbox)

	// a failed attempt must not lock the item
	ok, err = f.claims.Verify(ctx, item.ID, "red", "c@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_RequiresClaimantEmail(t *testing.T) {
	f := newClaimFixture(t)
	ctx := context.Background()

	item := reportLibraryItem(t, ctx, f.catalog)

	_, err := f.claims.Verify(ctx, item.ID, "red", "   ")
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestVerify_ClaimedItemConflictsEvenWithCorrectAnswer(t *testing.T) {
	f := newClaimFixture(t)
	ctx := context.Background()

	item := reportLibraryItem(t, ctx, f.catalog)

	ok, err := f.claims.Verify(ctx, item.ID, "red", "first@x.com")
	require.NoError(t, err)
	require.True(t, ok)

	_, err = f.claims.Verify(ctx, item.ID, "red", "second@x.com")
	require.ErrorIs(t, err, common.ErrItemAlreadyClaimed)
}

func TestVerify_UnknownItemReturnsNotFound(t *testing.T) {
	f := newClaimFixture(t)

	_, err := f.claims.Verify(context.Background(), "no-such-id", "red", "c@x.com")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestRequestContact_NotifiesFinderWithoutClaiming(t *testing.T) {
	f := newClaimFixture(t)
	ctx := context.Background()

	item := reportLibraryItem(t, ctx, f.catalog)

	require.NoError(t, f.claims.RequestContact(ctx, item.ID, "visitor@x.com"))

	got, err := f.catalog.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, got.Status)

	inbox, err := f.mailbox.Inbox(ctx, "f@x.com")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, models.NotificationContactRequest, inbox[0].Type)
	assert.Contains(t, inbox[0].Message, "visitor@x.com")
}

func TestRequestContact_RejectedOnClaimedItem(t *testing.T) {
	f := newClaimFixture(t)
	ctx := context.Background()

	item := reportLibraryItem(t, ctx, f.catalog)
	ok, err := f.claims.Verify(ctx, item.ID, "red", "c@x.com")
	require.NoError(t, err)
	require.True(t, ok)

	err = f.claims.RequestContact(ctx, item.ID, "visitor@x.com")
	require.ErrorIs(t, err, common.ErrItemAlreadyClaimed)
}

func TestConfirmContact_FinderMarksContactedAndNotifiesClaimant(t *testing.T) {
	f := newClaimFixture(t)
	ctx := context.Background()

	item := reportLibraryItem(t, ctx, f.catalog)
	ok, err := f.claims.Verify(ctx, item.ID, "red", "c@x.com")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, f.claims.ConfirmContact(ctx, item.ID, "f@x.com"))

	got, err := f.catalog.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusContacted, got.Status)

	inbox, err := f.mailbox.Inbox(ctx, "c@x.com")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, models.NotificationItemFound, inbox[0].Type)
	assert.Equal(t, "f@x.com", inbox[0].FromUser)
}

func TestConfirmContact_OnlyTheFinderMay(t *testing.T) {
	f := newClaimFixture(t)
	ctx := context.Background()

	item := reportLibraryItem(t, ctx, f.catalog)
	ok, err := f.claims.Verify(ctx, item.ID, "red", "c@x.com")
	require.NoError(t, err)
	require.True(t, ok)

	err = f.claims.ConfirmContact(ctx, item.ID, "stranger@x.com")
	require.ErrorIs(t, err, common.ErrNotItemFinder)
}

func TestConfirmContact_TwiceConflicts(t *testing.T) {
	f := newClaimFixture(t)
	ctx := context.Background()

	item := reportLibraryItem(t, ctx, f.catalog)
	ok, err := f.claims.Verify(ctx, item.ID, "red", "c@x.com")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, f.claims.ConfirmContact(ctx, item.ID, "f@x.com"))
	err = f.claims.ConfirmContact(ctx, item.ID, "f@x.com")
	require.ErrorIs(t, err, common.ErrItemAlreadyContacted)
}
