package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint  `gorm:"index;not null" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user,omitempty"`

	RoomID uint  `gorm:"index;not null" json:"room_id"`
	Room   *Room `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"room,omitempty"`

	CatID uint `gorm:"index;not null" json:"cat_id"`
	Cat   *Cat `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"cat,omitempty"`

	CheckInDate  time.Time `gorm:"type:date;not null" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"type:date;not null" json:"check_out_date"`

	Status          string  `gorm:"size:20;default:'pending';not null;index" json:"status"`
	TotalPrice      float64 `gorm:"type:numeric(10,2);not null" json:"total_price"`
	SpecialRequests string  `gorm:"type:text" json:"special_requests"`

	Services []BookingService `gorm:"foreignKey:BookingID" json:"services,omitempty"`
	Foods    []BookingFood    `gorm:"foreignKey:BookingID" json:"foods,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingService keeps the service price as it was when the booking was made.
type BookingService struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	BookingID uint     `gorm:"index;not null" json:"booking_id"`
	ServiceID uint     `gorm:"index;not null" json:"service_id"`
	Service   *Service `gorm:"constraint:OnDelete:RESTRICT;" json:"service,omitempty"`
	Quantity  int      `gorm:"default:1;not null" json:"quantity"`
	Price     float64  `gorm:"type:numeric(10,2);not null" json:"price"`
}

type BookingFood struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	BookingID uint    `gorm:"index;not null" json:"booking_id"`
	FoodID    uint    `gorm:"index;not null" json:"food_id"`
	Food      *Food   `gorm:"constraint:OnDelete:RESTRICT;" json:"food,omitempty"`
	Quantity  int     `gorm:"default:1;not null" json:"quantity"`
	Price     float64 `gorm:"type:numeric(10,2);not null" json:"price"`
}

// CatStatus rows are append-only.
type CatStatus struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookingID uint      `gorm:"index;not null" json:"booking_id"`
	Status    string    `gorm:"size:20;not null" json:"status"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
