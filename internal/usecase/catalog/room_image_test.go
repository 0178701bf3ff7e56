package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
	"github.com/BruksfildServices01/cat-hotel/internal/infra/repository/memory"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

type imageFixture struct {
	store *memory.Store
	repo  *memory.CatalogRepository
}

func newImageFixture(t *testing.T) *imageFixture {
	t.Helper()
	store := memory.NewStore()
	store.AddRoomType(models.RoomType{ID: 20, Name: "Deluxe", PricePerDay: 100})
	store.AddRoomType(models.RoomType{ID: 21, Name: "Suite", PricePerDay: 180})
	return &imageFixture{store: store, repo: memory.NewCatalogRepository(store)}
}

func (f *imageFixture) add(t *testing.T, typeID uint, url string, primary bool) *models.RoomImage {
	t.Helper()
	img, err := NewAddRoomImage(f.repo).Execute(context.Background(), AddRoomImageInput{
		RoomTypeID: typeID,
		ImageURL:   url,
		StorageKey: "room-types/" + url,
		Primary:    primary,
	})
	if err != nil {
		t.Fatalf("add %s: %v", url, err)
	}
	return img
}

// assertPrimary checks that exactly want is flagged and mirrored on the type.
func (f *imageFixture) assertPrimary(t *testing.T, typeID uint, want string) {
	t.Helper()

	var primaries []string
	for _, img := range f.store.RoomImages(typeID) {
		if img.IsPrimary {
			primaries = append(primaries, img.ImageURL)
		}
	}

	switch {
	case want == "" && len(primaries) != 0:
		t.Fatalf("want no primary image, got %v", primaries)
	case want != "" && (len(primaries) != 1 || primaries[0] != want):
		t.Fatalf("want single primary %q, got %v", want, primaries)
	}

	rt, _ := f.store.RoomType(typeID)
	if rt.ImageURL != want {
		t.Fatalf("room type image_url = %q, want %q", rt.ImageURL, want)
	}
}

func TestAddRoomImageFirstBecomesPrimary(t *testing.T) {
	f := newImageFixture(t)

	first := f.add(t, 20, "a.webp", false)
	if !first.IsPrimary {
		t.Fatal("first image should be primary")
	}
	second := f.add(t, 20, "b.webp", false)
	if second.IsPrimary {
		t.Fatal("second image should not be primary")
	}
	f.assertPrimary(t, 20, "a.webp")

	f.add(t, 20, "c.webp", true)
	f.assertPrimary(t, 20, "c.webp")

	// other types are untouched
	f.add(t, 21, "suite.webp", false)
	f.assertPrimary(t, 21, "suite.webp")
	f.assertPrimary(t, 20, "c.webp")
}

func TestAddRoomImageUnknownType(t *testing.T) {
	f := newImageFixture(t)

	_, err := NewAddRoomImage(f.repo).Execute(context.Background(), AddRoomImageInput{RoomTypeID: 99, ImageURL: "x.webp"})
	if !httperr.IsBusiness(err, "room_type_not_found") {
		t.Fatalf("want room_type_not_found, got %v", err)
	}
	if len(f.store.RoomImages(99)) != 0 {
		t.Fatal("image stored for unknown type")
	}
}

func TestSetPrimaryImageKeepsOnePrimary(t *testing.T) {
	f := newImageFixture(t)
	f.add(t, 20, "a.webp", false)
	b := f.add(t, 20, "b.webp", false)
	f.add(t, 20, "c.webp", false)

	img, err := NewSetPrimaryImage(f.repo).Execute(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("set primary: %v", err)
	}
	if !img.IsPrimary {
		t.Fatal("returned image not flagged")
	}
	f.assertPrimary(t, 20, "b.webp")

	// repeating is harmless
	if _, err := NewSetPrimaryImage(f.repo).Execute(context.Background(), b.ID); err != nil {
		t.Fatalf("set primary again: %v", err)
	}
	f.assertPrimary(t, 20, "b.webp")

	if _, err := NewSetPrimaryImage(f.repo).Execute(context.Background(), 999); !httperr.IsBusiness(err, "room_image_not_found") {
		t.Fatalf("want room_image_not_found, got %v", err)
	}
}

func TestRemoveRoomImagePromotesOldest(t *testing.T) {
	f := newImageFixture(t)
	a := f.add(t, 20, "a.webp", false)
	b := f.add(t, 20, "b.webp", false)
	c := f.add(t, 20, "c.webp", true)

	removed, err := NewRemoveRoomImage(f.repo).Execute(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("remove primary: %v", err)
	}
	if removed.StorageKey != "room-types/c.webp" {
		t.Fatalf("removed image key = %q", removed.StorageKey)
	}
	f.assertPrimary(t, 20, "a.webp")

	// removing a non-primary image leaves the primary alone
	if _, err := NewRemoveRoomImage(f.repo).Execute(context.Background(), b.ID); err != nil {
		t.Fatalf("remove secondary: %v", err)
	}
	f.assertPrimary(t, 20, "a.webp")

	if _, err := NewRemoveRoomImage(f.repo).Execute(context.Background(), a.ID); err != nil {
		t.Fatalf("remove last: %v", err)
	}
	f.assertPrimary(t, 20, "")
	if n := len(f.store.RoomImages(20)); n != 0 {
		t.Fatalf("want no images left, got %d", n)
	}
}

func TestRemoveRoomImageRollsBack(t *testing.T) {
	f := newImageFixture(t)
	a := f.add(t, 20, "a.webp", false)
	f.add(t, 20, "b.webp", false)
	f.store.FailOn("SetPrimaryImage", errors.New("db down"))

	if _, err := NewRemoveRoomImage(f.repo).Execute(context.Background(), a.ID); err == nil {
		t.Fatal("want error")
	}
	f.store.FailOn("SetPrimaryImage", nil)

	if n := len(f.store.RoomImages(20)); n != 2 {
		t.Fatalf("want both images restored, got %d", n)
	}
	f.assertPrimary(t, 20, "a.webp")
}
