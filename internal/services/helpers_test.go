package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/campusfind/campusfind/internal/models"
	"github.com/campusfind/campusfind/internal/storage"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func newGateway(t *testing.T) storage.Gateway {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE collections (
  key      TEXT PRIMARY KEY,
  value    BLOB NOT NULL,
  revision INTEGER NOT NULL DEFAULT 0
);`)
	require.NoError(t, err)
	return storage.NewSQLiteGateway(db)
}

func libraryReport(finderEmail, finderName string) ReportInput {
	return ReportInput{
		Photo:            "data:image/png;base64,aW1nMQ==",
		Location:         "Library",
		Date:             "2024-01-10",
		Time:             "14:00",
		Category:         "electronics",
		SecurityQuestion: "color?",
		SecurityAnswer:   "Red",
		FinderEmail:      finderEmail,
		FinderName:       finderName,
	}
}

func reportLibraryItem(t *testing.T, ctx context.Context, catalog CatalogService) *models.FoundItem {
	t.Helper()
	item, err := catalog.Report(ctx, libraryReport("f@x.com", "Fiona"))
	require.NoError(t, err)
	return item
}
