package models

import "time"

type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	PricePerDay float64 `gorm:"type:numeric(10,2);not null" json:"price_per_day"`
	Capacity    int     `gorm:"default:1" json:"capacity"`
	ImageURL    string  `gorm:"size:255" json:"image_url"`

	Images []RoomImage `gorm:"foreignKey:RoomTypeID;constraint:OnDelete:CASCADE;" json:"images,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoomImage is stored as webp under StorageKey; at most one per room type
// has IsPrimary set.
type RoomImage struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	RoomTypeID uint   `gorm:"index;not null" json:"room_type_id"`
	ImageURL   string `gorm:"size:255;not null" json:"image_url"`
	StorageKey string `gorm:"size:255" json:"-"`
	IsPrimary  bool   `gorm:"default:false" json:"is_primary"`

	CreatedAt time.Time `json:"created_at"`
}

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomNumber  string    `gorm:"size:20;uniqueIndex;not null" json:"room_number"`
	RoomTypeID  uint      `gorm:"index;not null" json:"room_type_id"`
	RoomType    *RoomType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"room_type,omitempty"`
	Status      string    `gorm:"size:20;default:'available';not null" json:"status"`
	Description string    `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
