package entity

import (
	"database/sql/driver"
	"time"
)

// SlotCount is the fixed number of photo positions on a profile.
const SlotCount = 5

// PhotoSlot is one of the five fixed photo positions. A slot is empty when
// URL is blank. Key is the object storage key backing the URL; the slot
// arithmetic never touches storage itself, callers release objects.
type PhotoSlot struct {
	URL        string     `json:"url,omitempty"`
	Key        string     `json:"key,omitempty"`
	UploadedAt *time.Time `json:"uploaded_at,omitempty"`
}

// Empty reports whether the slot has no photo.
func (s PhotoSlot) Empty() bool { return s.URL == "" }

// PhotoSlots is the fixed five-slot photo array. Slots are addressed 1-5
// everywhere outside this type; index 0 of the backing array is slot 1.
type PhotoSlots [SlotCount]PhotoSlot

func (p PhotoSlots) Value() (driver.Value, error) { return jsonValue(p) }
func (p *PhotoSlots) Scan(src any) error          { return jsonScan(src, p) }

func validSlot(slot int) bool { return slot >= 1 && slot <= SlotCount }

// Slot returns the slot at the given 1-based index.
func (u *User) Slot(slot int) (PhotoSlot, error) {
	if !validSlot(slot) {
		return PhotoSlot{}, ErrInvalidSlot
	}
	return u.Photos[slot-1], nil
}

// SetSlot places a photo into the given slot, overwriting any occupant.
// The first photo on an otherwise empty profile becomes the main photo.
// Returns the previous occupant so the caller can release its storage
// object.
func (u *User) SetSlot(slot int, url, key string, uploadedAt time.Time) (prev PhotoSlot, err error) {
	if !validSlot(slot) {
		return PhotoSlot{}, ErrInvalidSlot
	}
	wasEmpty := u.PhotoCount() == 0
	prev = u.Photos[slot-1]
	u.Photos[slot-1] = PhotoSlot{URL: url, Key: key, UploadedAt: &uploadedAt}
	if wasEmpty {
		u.MainSlot = slot
	}
	return prev, nil
}

// ClearSlot empties the given slot and returns the removed photo. Clearing
// the current main slot reassigns MainSlot to the lowest occupied slot, or
// back to 1 when no photos remain. Clearing an already empty slot returns
// ErrEmptySlot; callers may treat that as a no-op.
func (u *User) ClearSlot(slot int) (removed PhotoSlot, err error) {
	if !validSlot(slot) {
		return PhotoSlot{}, ErrInvalidSlot
	}
	removed = u.Photos[slot-1]
	if removed.Empty() {
		return PhotoSlot{}, ErrEmptySlot
	}
	u.Photos[slot-1] = PhotoSlot{}
	if u.MainSlot == slot {
		u.MainSlot = 1
		for i, s := range u.Photos {
			if !s.Empty() {
				u.MainSlot = i + 1
				break
			}
		}
	}
	return removed, nil
}

// SetMain designates an occupied slot as the main photo.
func (u *User) SetMain(slot int) error {
	if !validSlot(slot) {
		return ErrInvalidSlot
	}
	if u.Photos[slot-1].Empty() {
		return ErrEmptySlot
	}
	u.MainSlot = slot
	return nil
}

// PhotoCount returns the number of occupied slots.
func (u *User) PhotoCount() int {
	n := 0
	for _, s := range u.Photos {
		if !s.Empty() {
			n++
		}
	}
	return n
}

// MainPhotoURL returns the URL of the main photo, or "" when the main slot
// is unoccupied.
func (u *User) MainPhotoURL() string {
	if !validSlot(u.MainSlot) {
		return ""
	}
	return u.Photos[u.MainSlot-1].URL
}

// NextAvailableSlot returns the lowest unoccupied slot, or 0 when all five
// are full.
func (u *User) NextAvailableSlot() int {
	for i, s := range u.Photos {
		if s.Empty() {
			return i + 1
		}
	}
	return 0
}
