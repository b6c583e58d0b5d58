package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trevin-livele/doll-wigs/apperrors"
)

// Every cart mutation must refuse an unauthenticated caller before touching
// the database. The nil DB here guarantees the guard fires first.
func TestCartStoreRequiresSession(t *testing.T) {
	store := NewCartStore(nil)
	ctx := context.Background()

	_, err := store.Add(ctx, "", "p-1")
	assert.ErrorIs(t, err, apperrors.ErrAuthRequired)

	err = store.UpdateQuantity(ctx, "", "ci-1", 3)
	assert.ErrorIs(t, err, apperrors.ErrAuthRequired)

	err = store.Remove(ctx, "", "ci-1")
	assert.ErrorIs(t, err, apperrors.ErrAuthRequired)

	err = store.Clear(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrAuthRequired)

	_, err = store.List(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrAuthRequired)
}

func TestWishlistStoreRequiresSession(t *testing.T) {
	store := NewWishlistStore(nil)
	ctx := context.Background()

	_, err := store.Toggle(ctx, "", "p-1")
	assert.ErrorIs(t, err, apperrors.ErrAuthRequired)

	_, err = store.List(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrAuthRequired)
}
