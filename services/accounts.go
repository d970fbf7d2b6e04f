package services

import (
	"errors"
	"time"

	"github.com/interpark/realty-api/models"
	"gorm.io/gorm"
)

// AccountsService manages platform user accounts and their role profiles
type AccountsService struct {
	DB *gorm.DB
}

// RegisterInfo is the data needed to create a new account
type RegisterInfo struct {
	Username string
	Email    string
	Password string
	Role     string
	Avatar   string
}

// Register creates a new user account with a hashed password, plus the role profile
// matching the requested role
func (s *AccountsService) Register(info *RegisterInfo) (*models.User, error) {

	// All of the core fields are required
	if info.Username == "" || info.Email == "" || info.Password == "" || info.Role == "" {
		return nil, NewValidationError("username, email, password and role are required")
	}
	if info.Role != models.RoleAgentLandlord && info.Role != models.RoleClient {
		return nil, NewValidationError("role must be %s or %s", models.RoleAgentLandlord, models.RoleClient)
	}

	// Reject duplicate email or username up front
	existing, err := s.findByUsernameOrEmail(info.Username, info.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewValidationError("user with this email or username already exists")
	}

	// Create the user with the hashed password
	user := models.User{
		Username:    info.Username,
		Email:       info.Email,
		Role:        info.Role,
		Avatar:      info.Avatar,
		CreatedDate: time.Now().UTC(),
	}
	if err := user.SetPassword(info.Password); err != nil {
		return nil, err
	}

	// Create the user and its role profile together
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		switch info.Role {
		case models.RoleAgentLandlord:
			return tx.Create(&models.AgentProfile{
				UserID:      user.ID,
				CreatedDate: time.Now().UTC(),
			}).Error
		case models.RoleClient:
			return tx.Create(&models.ClientProfile{
				UserID:      user.ID,
				CreatedDate: time.Now().UTC(),
			}).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil

}

// FindByLogin finds the account matching the provided credentials. The login name may
// be either the username or the email address. Returns nil when the credentials don't
// match any account.
func (s *AccountsService) FindByLogin(login, password string) (*models.User, error) {

	if login == "" || password == "" {
		return nil, NewValidationError("username and password are required")
	}

	// Find the user by username or email
	user, err := s.findByUsernameOrEmail(login, login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	// Verify the password
	if !user.VerifyPassword(password) {
		return nil, nil
	}
	return user, nil

}

// GetByID gets a user by id, or nil if no such user exists
func (s *AccountsService) GetByID(userID string) (*models.User, error) {
	var user models.User
	err := s.DB.
		Where("deleted_date IS NULL").
		Where("id = ?", userID).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetAgentProfile gets the agent/landlord profile for a user
func (s *AccountsService) GetAgentProfile(userID string) (*models.AgentProfile, error) {
	var profile models.AgentProfile
	err := s.DB.
		Preload("User").
		Where("user_id = ?", userID).
		First(&profile).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAgentNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateAgentProfile updates the contact details on an agent/landlord profile
func (s *AccountsService) UpdateAgentProfile(userID, phoneNumber, nationalID, agentNumber string) (*models.AgentProfile, error) {
	profile, err := s.GetAgentProfile(userID)
	if err != nil {
		return nil, err
	}
	profile.PhoneNumber = phoneNumber
	profile.NationalIDOrPassport = nationalID
	profile.AgentNumber = agentNumber
	if err := s.DB.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// GetClientProfile gets the client profile for a user
func (s *AccountsService) GetClientProfile(userID string) (*models.ClientProfile, error) {
	var profile models.ClientProfile
	err := s.DB.
		Preload("User").
		Where("user_id = ?", userID).
		First(&profile).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// SetAvatar stores the avatar URL for a user
func (s *AccountsService) SetAvatar(userID, avatarURL string) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.DB.
		Model(user).
		Update("avatar", avatarURL).
		Error
}

// SetPushToken registers (or replaces) the push-notification token for a user. Delivery
// of push notifications happens elsewhere; this only records where to deliver them.
func (s *AccountsService) SetPushToken(userID, token string) (*models.User, error) {
	if userID == "" || token == "" {
		return nil, NewValidationError("userId and token are required")
	}
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err := s.DB.Model(user).Update("push_token", token).Error; err != nil {
		return nil, err
	}
	user.PushToken = token
	return user, nil
}

// findByUsernameOrEmail finds a user matching either value, or nil
func (s *AccountsService) findByUsernameOrEmail(username, email string) (*models.User, error) {
	var user models.User
	err := s.DB.
		Where("deleted_date IS NULL").
		Where(
			s.DB.Where("username = ?", username).Or("email = ?", email),
		).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
