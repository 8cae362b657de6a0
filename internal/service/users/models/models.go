package models

import (
	"time"

	"github.com/xarena/XArena-BookingService/internal/domain"
)

// UserResponse is one account in a listing
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserListResponse is a role-filtered account listing
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// FromDomainUsers converts accounts into a listing response
func FromDomainUsers(users []*domain.User) *UserListResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Role:      string(user.Role),
			CreatedAt: user.CreatedAt,
		})
	}
	return &UserListResponse{
		Users: responses,
		Total: len(responses),
	}
}
