package dto

import "time"

// CapacityDTO capacidad física (metadato cosmético).
type CapacityDTO struct {
	TotalSqft int64 `json:"total_sqft"`
	UsedSqft  int64 `json:"used_sqft"`
}

// ContactInfoDTO contacto de la bodega.
type ContactInfoDTO struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Manager string `json:"manager,omitempty"`
}

// LocationDTO coordenadas de la bodega.
type LocationDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Code        string          `json:"code,omitempty"`
	Address     string          `json:"address,omitempty"`
	Capacity    *CapacityDTO    `json:"capacity,omitempty"`
	ContactInfo *ContactInfoDTO `json:"contactInfo,omitempty"`
	Location    *LocationDTO    `json:"location,omitempty"`
	IsActive    *bool           `json:"isActive,omitempty"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Code        string          `json:"code,omitempty"`
	Address     string          `json:"address,omitempty"`
	Capacity    CapacityDTO     `json:"capacity"`
	ContactInfo *ContactInfoDTO `json:"contactInfo,omitempty"`
	Location    *LocationDTO    `json:"location,omitempty"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
}
