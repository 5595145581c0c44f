package entity_test

import (
	"testing"
	"time"

	"github.com/campusmatch/campusmatch/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetSlot_FirstPhotoBecomesMain(t *testing.T) {
	u := entity.User{MainSlot: 1}

	prev, err := u.SetSlot(3, "https://cdn/p3.jpg", "profile-photos/1/slot-3.jpg", time.Now())
	require.NoError(t, err)
	assert.True(t, prev.Empty())
	assert.Equal(t, 3, u.MainSlot)
	assert.Equal(t, 1, u.PhotoCount())
	assert.Equal(t, "https://cdn/p3.jpg", u.MainPhotoURL())

	// a second photo does not steal the main slot
	_, err = u.SetSlot(1, "https://cdn/p1.jpg", "profile-photos/1/slot-1.jpg", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 3, u.MainSlot)
}

func TestSetSlot_OverwriteReturnsPrevious(t *testing.T) {
	u := entity.User{MainSlot: 1}
	_, err := u.SetSlot(2, "https://cdn/old.jpg", "old-key", time.Now())
	require.NoError(t, err)

	prev, err := u.SetSlot(2, "https://cdn/new.jpg", "new-key", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "old-key", prev.Key)

	slot, err := u.Slot(2)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/new.jpg", slot.URL)
	assert.Equal(t, 1, u.PhotoCount())
}

func TestSetSlot_InvalidIndex(t *testing.T) {
	u := entity.User{}
	for _, slot := range []int{0, -1, 6, 100} {
		_, err := u.SetSlot(slot, "url", "key", time.Now())
		assert.ErrorIs(t, err, entity.ErrInvalidSlot, "slot %d", slot)
	}
}

func TestClearSlot_ReassignsMainToLowestOccupied(t *testing.T) {
	u := entity.User{MainSlot: 1}
	now := time.Now()
	_, _ = u.SetSlot(2, "u2", "k2", now)
	_, _ = u.SetSlot(4, "u4", "k4", now)
	require.Equal(t, 2, u.MainSlot)

	removed, err := u.ClearSlot(2)
	require.NoError(t, err)
	assert.Equal(t, "k2", removed.Key)
	assert.Equal(t, 4, u.MainSlot)
	assert.Equal(t, 1, u.PhotoCount())
}

func TestClearSlot_LastPhotoResetsMain(t *testing.T) {
	u := entity.User{MainSlot: 1}
	_, _ = u.SetSlot(5, "u5", "k5", time.Now())
	require.Equal(t, 5, u.MainSlot)

	_, err := u.ClearSlot(5)
	require.NoError(t, err)
	assert.Equal(t, 1, u.MainSlot)
	assert.Equal(t, 0, u.PhotoCount())
	assert.Equal(t, "", u.MainPhotoURL())
}

func TestClearSlot_EmptySlot(t *testing.T) {
	u := entity.User{MainSlot: 1}
	_, err := u.ClearSlot(3)
	assert.ErrorIs(t, err, entity.ErrEmptySlot)
}

func TestSetMain(t *testing.T) {
	u := entity.User{MainSlot: 1}
	_, _ = u.SetSlot(1, "u1", "k1", time.Now())
	_, _ = u.SetSlot(3, "u3", "k3", time.Now())

	require.NoError(t, u.SetMain(3))
	assert.Equal(t, 3, u.MainSlot)
	assert.Equal(t, "u3", u.MainPhotoURL())

	assert.ErrorIs(t, u.SetMain(2), entity.ErrEmptySlot)
	assert.ErrorIs(t, u.SetMain(0), entity.ErrInvalidSlot)
}

func TestNextAvailableSlot(t *testing.T) {
	u := entity.User{MainSlot: 1}
	assert.Equal(t, 1, u.NextAvailableSlot())

	now := time.Now()
	_, _ = u.SetSlot(1, "u1", "k1", now)
	_, _ = u.SetSlot(2, "u2", "k2", now)
	assert.Equal(t, 3, u.NextAvailableSlot())

	for slot := 3; slot <= entity.SlotCount; slot++ {
		_, _ = u.SetSlot(slot, "u", "k", now)
	}
	assert.Equal(t, 0, u.NextAvailableSlot())
}
