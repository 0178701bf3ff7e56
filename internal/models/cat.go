package models

import "time"

type Cat struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint  `gorm:"index;not null" json:"user_id"`
	Owner  *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"owner,omitempty"`

	Name      string     `gorm:"size:100;not null" json:"name"`
	Breed     string     `gorm:"size:100" json:"breed"`
	Weight    *float64   `gorm:"type:numeric(5,2)" json:"weight"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date"`
	Gender    string     `gorm:"size:10;default:'unknown'" json:"gender"`
	Notes     string     `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
