package services

import (
	"time"

	"github.com/interpark/realty-api/models"
	"gorm.io/gorm"
)

// FavoritesService manages the properties a client has saved. Favorites hang off the
// client profile, so every operation starts by resolving the user to a client.
type FavoritesService struct {
	DB         *gorm.DB
	Accounts   *AccountsService
	Properties *PropertiesService
}

// Add saves a property to the user's favorites
func (s *FavoritesService) Add(userID, propertyID string) (*models.Favorite, error) {

	if userID == "" || propertyID == "" {
		return nil, NewValidationError("userId and propertyId are required")
	}

	// Resolve the client profile for the user
	client, err := s.Accounts.GetClientProfile(userID)
	if err != nil {
		return nil, err
	}

	// The property has to exist to be saved
	property, err := s.Properties.GetByID(propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	// Create the favorite entry
	favorite := models.Favorite{
		ClientID:    client.ID,
		PropertyID:  propertyID,
		CreatedDate: time.Now().UTC(),
	}
	if err := s.DB.Create(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil

}

// Remove deletes a property from the user's favorites
func (s *FavoritesService) Remove(userID, propertyID string) error {

	if userID == "" || propertyID == "" {
		return NewValidationError("userId and propertyId are required")
	}

	// Resolve the client profile for the user
	client, err := s.Accounts.GetClientProfile(userID)
	if err != nil {
		return err
	}

	// Delete the matching favorite rows
	result := s.DB.
		Where("client_id = ?", client.ID).
		Where("property_id = ?", propertyID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil

}

// ListForUser gets the user's favorites with the full property details attached
func (s *FavoritesService) ListForUser(userID string) ([]*models.Favorite, error) {

	if userID == "" {
		return nil, NewValidationError("userId is required")
	}

	// Resolve the client profile for the user
	client, err := s.Accounts.GetClientProfile(userID)
	if err != nil {
		return nil, err
	}

	favorites := []*models.Favorite{}
	err = s.DB.
		Preload("Property").
		Where("client_id = ?", client.ID).
		Find(&favorites).
		Error
	if err != nil {
		return nil, err
	}
	return favorites, nil

}
