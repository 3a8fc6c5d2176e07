package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/db/models"
)

// CreateUserDTO carries the fields needed to provision a staff account.
type CreateUserDTO struct {
	Email        string
	FullName     string
	PasswordHash string
}

// ToModel converts the DTO into a persistable user model.
func (d CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Email:        d.Email,
		FullName:     d.FullName,
		PasswordHash: d.PasswordHash,
	}
}

// UserView is the representation returned to API clients.
type UserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// FromModel maps a persisted user onto its API view.
func FromModel(user *models.User) UserView {
	return UserView{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		LastLoginAt: user.LastLoginAt,
	}
}
