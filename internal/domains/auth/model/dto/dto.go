package dto

import (
	"hostel/infras/jwt"
	studentDto "hostel/internal/domains/student/model/dto"
	userModel "hostel/internal/domains/user/model"
	"hostel/shared/constant"
	gModel "hostel/shared/model"
	"time"

	"github.com/google/uuid"
)

// RegisterRequest creates a student account together with its profile.
type RegisterRequest struct {
	Username string `json:"username"  validate:"required,alphanum,min=3,max=50"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,notblank,max=100"`
	studentDto.Profile
}

func (r *RegisterRequest) ToUserModel(hashedPassword string, now time.Time) userModel.User {
	id := uuid.NewString()

	return userModel.User{
		ID:       id,
		Username: r.Username,
		Email:    r.Email,
		Password: hashedPassword,
		FullName: r.FullName,
		Level:    constant.RoleStudent,
		Active:   true,
		Metadata: gModel.NewMetadata(id, now),
	}
}

type RegisterResponse struct {
	UserID    string `json:"user_id"`
	StudentID string `json:"student_id"`
	Username  string `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Role         string `json:"role"`
}

func (r *TokenResponse) FromTokenPair(tokenPair *jwt.TokenPair, role string) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.TokenType = tokenPair.TokenType
	r.ExpiresIn = tokenPair.ExpiresIn
	r.Role = role
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72,nefield=CurrentPassword"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password"`
}
