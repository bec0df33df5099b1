package dto

import (
	"time"

	"kra.app/feedback/internal/model"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
	TeamID   *int64 `json:"team_id,string,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID        int64      `json:"id,string"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	TeamID    *int64     `json:"team_id,string,omitempty"`
	TeamName  *string    `json:"team_name,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func ToUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		TeamID:    u.TeamID,
		TeamName:  u.TeamName,
		CreatedAt: u.CreatedAt,
	}
}

func ToUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *ToUserResponse(&users[i]))
	}
	return out
}

type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdateTeamRequest clears the team when team_id is null.
type UpdateTeamRequest struct {
	TeamID *int64 `json:"team_id,string"`
}
