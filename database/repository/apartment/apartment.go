package apartmentRepo

import "stayhaven/models"

// ApartmentRepository gives the booking engine read access to listings.
// Listing CRUD itself lives in the owner dashboard service; the engine never
// writes apartments.
type ApartmentRepository interface {
	GetByID(id string) (*models.Apartment, error)
	GetBySlug(slug string) (*models.Apartment, error)
	GetAllActive() ([]models.Apartment, error)
}
