package models

import (
	"time"

	"github.com/Dastan7k/gig-track-system/pkg/uuid"
)

type ServiceArea struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type DeliveryPlatform struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"` // e.g. "food", "grocery", "parcel"
	CreatedAt time.Time `json:"created_at"`
}
