package response

import (
	"time"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	UserType  string    `json:"user_type"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		UserType:  string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

type UserWithProfileResponse struct {
	User    UserResponse     `json:"user"`
	Profile entities.Profile `json:"profile"`
}

func FromUserWithProfile(u entities.UserWithProfile) UserWithProfileResponse {
	return UserWithProfileResponse{User: FromUser(u.User), Profile: u.Profile}
}

func FromUsersWithProfile(us []entities.UserWithProfile) []UserWithProfileResponse {
	out := make([]UserWithProfileResponse, 0, len(us))
	for _, u := range us {
		out = append(out, FromUserWithProfile(u))
	}
	return out
}

// LoginResponse carries the token for API clients that send it as a
// Bearer credential; browsers use the cookie set alongside.
type LoginResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

func FromLogin(r usecase.LoginResult) LoginResponse {
	return LoginResponse{User: FromUser(r.User), Token: r.Session.Token, ExpiresAt: r.Session.ExpiresAt}
}
