package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cat-hotel/internal/infra/repository/memory"
	"github.com/BruksfildServices01/cat-hotel/internal/middleware"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
	"github.com/BruksfildServices01/cat-hotel/internal/storage"
	uccatalog "github.com/BruksfildServices01/cat-hotel/internal/usecase/catalog"
)

func newCatalogServer(t *testing.T) *testServer {
	t.Helper()

	store := memory.NewStore()
	repo := memory.NewCatalogRepository(store)

	local, err := storage.NewLocalStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("local store: %v", err)
	}
	uploader := storage.NewUploader(local, 800)

	catalog := NewCatalogHandler(nil, nil, uploader,
		uccatalog.NewDeleteService(repo),
		uccatalog.NewDeleteFood(repo),
	)
	images := NewRoomImageHandler(nil, nil, uploader,
		uccatalog.NewAddRoomImage(repo),
		uccatalog.NewRemoveRoomImage(repo),
		uccatalog.NewSetPrimaryImage(repo),
	)

	r := gin.New()
	adm := r.Group("/api/admin", asUser(), middleware.RequireAdmin())
	adm.DELETE("/services/:id", catalog.DeleteService)
	adm.DELETE("/foods/:id", catalog.DeleteFood)
	adm.DELETE("/room-images/:id", images.Delete)
	adm.PUT("/room-images/:id/set-primary", images.SetPrimary)

	return &testServer{router: r, store: store}
}

func TestDeleteExtrasInUse(t *testing.T) {
	s := newCatalogServer(t)
	s.store.AddService(models.Service{ID: 30, Name: "Grooming", Price: 20})
	s.store.AddFood(models.Food{ID: 40, Name: "Salmon", Price: 10})
	s.store.AddBookingService(models.BookingService{BookingID: 1, ServiceID: 30, Quantity: 1, Price: 20})
	s.store.AddBookingFood(models.BookingFood{BookingID: 1, FoodID: 40, Quantity: 1, Price: 10})

	tests := []struct {
		path string
		code string
	}{
		{"/api/admin/services/30", "service_in_use"},
		{"/api/admin/foods/40", "food_in_use"},
		{"/api/admin/services/99", "service_not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			code, env := s.do(t, http.MethodDelete, tt.path, 3, models.RoleAdmin, nil)
			want := http.StatusBadRequest
			if tt.code == "service_not_found" {
				want = http.StatusNotFound
			}
			if code != want || env.ErrorCode != tt.code {
				t.Fatalf("got %d %q, want %d %q", code, env.ErrorCode, want, tt.code)
			}
		})
	}

	if !s.store.HasService(30) || !s.store.HasFood(40) {
		t.Fatal("referenced extras were deleted")
	}

	code, _ := s.do(t, http.MethodDelete, "/api/admin/services/30", 1, models.RoleCustomer, nil)
	if code != http.StatusForbidden {
		t.Fatalf("customer delete: got %d", code)
	}
}

func TestRoomImagePrimaryEndpoints(t *testing.T) {
	s := newCatalogServer(t)
	s.store.AddRoomType(models.RoomType{ID: 20, Name: "Deluxe", PricePerDay: 100, ImageURL: "/uploads/a.webp"})
	a := s.store.AddRoomImage(models.RoomImage{RoomTypeID: 20, ImageURL: "/uploads/a.webp", StorageKey: "a.webp", IsPrimary: true})
	b := s.store.AddRoomImage(models.RoomImage{RoomTypeID: 20, ImageURL: "/uploads/b.webp", StorageKey: "b.webp"})
	s.store.AddRoomImage(models.RoomImage{RoomTypeID: 20, ImageURL: "/uploads/c.webp", StorageKey: "c.webp"})

	primaries := func() []uint {
		var ids []uint
		for _, img := range s.store.RoomImages(20) {
			if img.IsPrimary {
				ids = append(ids, img.ID)
			}
		}
		return ids
	}

	code, env := s.do(t, http.MethodPut, fmt.Sprintf("/api/admin/room-images/%d/set-primary", b.ID), 3, models.RoleAdmin, nil)
	if code != http.StatusOK {
		t.Fatalf("set primary: %d %s", code, env.ErrorCode)
	}
	var img models.RoomImage
	if err := json.Unmarshal(env.Data, &img); err != nil || !img.IsPrimary {
		t.Fatalf("set primary body: %s (%v)", env.Data, err)
	}
	if got := primaries(); len(got) != 1 || got[0] != b.ID {
		t.Fatalf("after set-primary: primaries %v", got)
	}

	code, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/room-images/%d", b.ID), 3, models.RoleAdmin, nil)
	if code != http.StatusOK {
		t.Fatalf("delete primary: %d", code)
	}
	if got := primaries(); len(got) != 1 || got[0] != a.ID {
		t.Fatalf("after deleting primary: primaries %v", got)
	}
	if rt, _ := s.store.RoomType(20); rt.ImageURL != "/uploads/a.webp" {
		t.Fatalf("room type image_url = %q", rt.ImageURL)
	}

	code, env = s.do(t, http.MethodDelete, "/api/admin/room-images/999", 3, models.RoleAdmin, nil)
	if code != http.StatusNotFound || env.ErrorCode != "room_image_not_found" {
		t.Fatalf("missing image: %d %q", code, env.ErrorCode)
	}
}
