package model

import "time"

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	TeamID       *int64    `json:"team_id,omitempty"`
	TeamName     *string   `json:"team_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// InTeam reports whether the user belongs to the given team. A nil team matches nobody.
func (u *User) InTeam(teamID *int64) bool {
	return u.TeamID != nil && teamID != nil && *u.TeamID == *teamID
}
