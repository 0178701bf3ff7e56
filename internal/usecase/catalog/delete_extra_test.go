package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
	"github.com/BruksfildServices01/cat-hotel/internal/infra/repository/memory"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

func TestDeleteServiceBlockedWhileBooked(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewCatalogRepository(store)
	store.AddService(models.Service{ID: 30, Name: "Grooming", Price: 20})
	store.AddService(models.Service{ID: 31, Name: "Play", Price: 5})
	store.AddBookingService(models.BookingService{BookingID: 1, ServiceID: 30, Quantity: 1, Price: 20})

	uc := NewDeleteService(repo)

	_, err := uc.Execute(context.Background(), 30)
	if !httperr.IsBusiness(err, "service_in_use") {
		t.Fatalf("want service_in_use, got %v", err)
	}
	if kind, _ := httperr.KindOf(err); kind != httperr.KindConflict {
		t.Fatalf("want conflict kind, got %v", kind)
	}
	if !store.HasService(30) {
		t.Fatal("booked service was deleted")
	}

	s, err := uc.Execute(context.Background(), 31)
	if err != nil {
		t.Fatalf("delete unused service: %v", err)
	}
	if s.Name != "Play" || store.HasService(31) {
		t.Fatalf("unused service not deleted: %+v", s)
	}

	if _, err := uc.Execute(context.Background(), 99); !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("want service_not_found, got %v", err)
	}
}

func TestDeleteFoodBlockedWhileBooked(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewCatalogRepository(store)
	store.AddFood(models.Food{ID: 40, Name: "Salmon", Price: 10})
	store.AddFood(models.Food{ID: 41, Name: "Tuna", Price: 8})
	store.AddBookingFood(models.BookingFood{BookingID: 1, FoodID: 40, Quantity: 2, Price: 10})

	uc := NewDeleteFood(repo)

	if _, err := uc.Execute(context.Background(), 40); !httperr.IsBusiness(err, "food_in_use") {
		t.Fatalf("want food_in_use, got %v", err)
	}
	if !store.HasFood(40) {
		t.Fatal("booked food was deleted")
	}

	if _, err := uc.Execute(context.Background(), 41); err != nil {
		t.Fatalf("delete unused food: %v", err)
	}
	if store.HasFood(41) {
		t.Fatal("unused food still present")
	}

	if _, err := uc.Execute(context.Background(), 99); !httperr.IsBusiness(err, "food_not_found") {
		t.Fatalf("want food_not_found, got %v", err)
	}
}

func TestDeleteFoodRollsBackOnFailure(t *testing.T) {
	store := memory.NewStore()
	store.AddFood(models.Food{ID: 41, Name: "Tuna", Price: 8})
	store.FailOn("CountFoodUsage", errors.New("db down"))

	if _, err := NewDeleteFood(memory.NewCatalogRepository(store)).Execute(context.Background(), 41); err == nil {
		t.Fatal("want error")
	}
	if !store.HasFood(41) {
		t.Fatal("food deleted despite failure")
	}
}
