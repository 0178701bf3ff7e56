package booking

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/cat-hotel/internal/audit"
	domain "github.com/BruksfildServices01/cat-hotel/internal/domain/booking"
	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID uint
	RoomID uint
	CatID  uint

	CheckInDate  string
	CheckOutDate string

	SpecialRequests string

	ServiceIDs []uint
	FoodIDs    []uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Dates
	// --------------------------------------------------
	stay, err := parseStay(in.CheckInDate, in.CheckOutDate)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Cat ownership
	// --------------------------------------------------
	cat, err := uc.repo.GetCat(ctx, in.CatID)
	if err != nil {
		return nil, notFoundAs(err, "cat_not_found")
	}
	if cat.UserID != in.UserID {
		return nil, httperr.ErrForbidden("forbidden")
	}

	// --------------------------------------------------
	// 3️⃣ Room
	// --------------------------------------------------
	room, err := uc.repo.GetRoom(ctx, in.RoomID)
	if err != nil {
		return nil, notFoundAs(err, "room_not_found")
	}
	if room.Status != string(domain.RoomAvailable) {
		return nil, httperr.ErrConflict("room_not_available")
	}

	// --------------------------------------------------
	// 4️⃣ Availability
	// --------------------------------------------------
	busy, err := uc.repo.HasOverlappingBooking(ctx, in.RoomID, stay)
	if err != nil {
		return nil, err
	}
	if busy {
		return nil, httperr.ErrConflict("room_not_available")
	}

	// --------------------------------------------------
	// 5️⃣ Booking + line items, all or nothing
	// --------------------------------------------------
	services := selectIDs(in.ServiceIDs)
	foods := selectIDs(in.FoodIDs)

	var bookingID uint
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		// the room lock serializes concurrent bookings of one room,
		// so the overlap check below cannot race another insert
		locked, err := tx.LockRoom(ctx, in.RoomID)
		if err != nil {
			return notFoundAs(err, "room_not_found")
		}
		if locked.Status != string(domain.RoomAvailable) {
			return httperr.ErrConflict("room_not_available")
		}
		if locked.RoomType == nil {
			return fmt.Errorf("room %d has no room type", locked.ID)
		}

		busy, err := tx.HasOverlappingBooking(ctx, in.RoomID, stay)
		if err != nil {
			return err
		}
		if busy {
			return httperr.ErrConflict("room_not_available")
		}

		catalogServices, err := tx.FindServices(ctx, services.ids)
		if err != nil {
			return err
		}
		if len(catalogServices) != len(services.ids) {
			return httperr.ErrNotFound("service_not_found")
		}

		catalogFoods, err := tx.FindFoods(ctx, foods.ids)
		if err != nil {
			return err
		}
		if len(catalogFoods) != len(foods.ids) {
			return httperr.ErrNotFound("food_not_found")
		}

		var (
			serviceItems []models.BookingService
			foodItems    []models.BookingFood
			servicePrice []domain.LineItem
			foodPrice    []domain.LineItem
		)
		for _, s := range catalogServices {
			qty := services.qty[s.ID]
			serviceItems = append(serviceItems, models.BookingService{
				ServiceID: s.ID,
				Quantity:  qty,
				Price:     s.Price,
			})
			servicePrice = append(servicePrice, domain.LineItem{Price: s.Price, Quantity: qty})
		}
		for _, f := range catalogFoods {
			qty := foods.qty[f.ID]
			foodItems = append(foodItems, models.BookingFood{
				FoodID:   f.ID,
				Quantity: qty,
				Price:    f.Price,
			})
			foodPrice = append(foodPrice, domain.LineItem{Price: f.Price, Quantity: qty})
		}

		quote := domain.Price(stay, locked.RoomType.PricePerDay, servicePrice, foodPrice)

		b := &models.Booking{
			UserID:          in.UserID,
			RoomID:          in.RoomID,
			CatID:           in.CatID,
			CheckInDate:     stay.CheckIn,
			CheckOutDate:    stay.CheckOut,
			Status:          string(domain.InitialStatus()),
			TotalPrice:      quote.Total,
			SpecialRequests: in.SpecialRequests,
		}
		if err := tx.CreateBooking(ctx, b); err != nil {
			return err
		}

		for i := range serviceItems {
			serviceItems[i].BookingID = b.ID
		}
		for i := range foodItems {
			foodItems[i].BookingID = b.ID
		}

		if err := tx.CreateBookingServices(ctx, serviceItems); err != nil {
			return err
		}
		if err := tx.CreateBookingFoods(ctx, foodItems); err != nil {
			return err
		}

		bookingID = b.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	created, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Events
	// --------------------------------------------------
	uc.audit.Dispatch(bookingEvent(created, in.UserID, "booking_created", ""))

	return created, nil
}
