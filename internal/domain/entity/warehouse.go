package entity

import "time"

// Capacity capacidad física de la bodega (metadato cosmético, el motor no lo usa).
type Capacity struct {
	TotalSqft int64
	UsedSqft  int64
}

// ContactInfo datos de contacto de la bodega.
type ContactInfo struct {
	Phone   string
	Email   string
	Manager string
}

// GeoPoint coordenadas de la bodega.
type GeoPoint struct {
	Lat float64
	Lng float64
}

// Warehouse representa una bodega donde se almacena inventario.
// Inmutable una vez creada salvo el flag IsActive; nunca se borra físicamente.
type Warehouse struct {
	ID          string
	Name        string
	Code        string
	Address     string
	Capacity    Capacity
	ContactInfo *ContactInfo
	Location    *GeoPoint
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
