package dto

import (
	"hostel/internal/domains/user/model"
	"hostel/shared"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	gModel "hostel/shared/model"
	"hostel/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Username string `json:"username"  validate:"required,alphanum,min=3,max=50"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,notblank,max=100"`
	Level    string `json:"level"     validate:"omitempty,oneof=staff student"`
}

func (r *CreateUserRequest) ToModel(createdBy string, hashedPassword string) model.User {
	level := r.Level
	if level == "" {
		level = constant.RoleStudent
	}

	return model.User{
		ID:       uuid.NewString(),
		Username: r.Username,
		Email:    r.Email,
		Password: hashedPassword,
		FullName: r.FullName,
		Level:    level,
		Active:   true,
		Metadata: gModel.NewMetadata(createdBy, timezone.Now()),
	}
}

type UpdateUserRequest struct {
	FullName string `db:"full_name" json:"full_name,omitempty" validate:"omitempty,notblank,max=100"`
	Level    string `db:"level"     json:"level,omitempty"     validate:"omitempty,oneof=staff student"`
	Active   *bool  `db:"active"    json:"active,omitempty"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Level     string `json:"level"`
	Active    bool   `json:"active"`
	LastLogin string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Username = model.Username
	r.Email = model.Email
	r.FullName = model.FullName
	r.Level = model.Level
	r.Active = model.Active

	if model.LastLogin != nil {
		r.LastLogin = timezone.Format(*model.LastLogin, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
