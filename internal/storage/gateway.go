// Package storage implements the persistence gateway: a uniform
// read/modify/write wrapper over keyed collections in a local sqlite store.
// Every collection is stored whole, as one serialized list per key, together
// with a revision counter so concurrent writers are detected instead of
// silently losing updates.
package storage

import (
	"context"
	"errors"

	"github.com/campusfind/campusfind/internal/common"
)

// Collection keys. Each holds one whole serialized list (or single record).
const (
	KeyItems         = "lost-found-items"
	KeyUsers         = "lost-found-users"
	KeyNotifications = "lost-found-notifications"
	KeySession       = "lost-found-current-user"
	KeyTheme         = "lost-found-theme"
)

// Collection is one keyed value read from the store. An absent key reads as
// empty Data with Revision 0.
type Collection struct {
	Data     []byte
	Revision uint64
}

// Gateway is the storage port every service receives by injection. It is the
// sole source of truth; callers must not cache state across operations.
//
// Write is a compare-and-swap: it succeeds only if the key's current revision
// equals expectedRevision (0 for an absent key), otherwise it returns
// common.ErrRevisionConflict. Delete is unconditional.
type Gateway interface {
	Read(ctx context.Context, key string) (Collection, error)
	Write(ctx context.Context, key string, data []byte, expectedRevision uint64) error
	Delete(ctx context.Context, key string) error
}

// maxUpdateRetries bounds the reread/reapply loop in Update.
const maxUpdateRetries = 3

// Update performs a read-modify-write cycle on key. fn receives the current
// serialized value (nil when absent) and returns the replacement. On a
// revision conflict the current value is reread and fn reapplied, up to
// maxUpdateRetries times, after which common.ErrRevisionConflict surfaces.
func Update(ctx context.Context, g Gateway, key string, fn func(data []byte) ([]byte, error)) error {
	var err error
	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		var cur Collection
		cur, err = g.Read(ctx, key)
		if err != nil {
			return err
		}

		var next []byte
		next, err = fn(cur.Data)
		if err != nil {
			return err
		}

		err = g.Write(ctx, key, next, cur.Revision)
		if !errors.Is(err, common.ErrRevisionConflict) {
			return err
		}
	}
	return err
}
