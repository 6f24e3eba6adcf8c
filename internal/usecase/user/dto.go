package user

import "time"

// CreateUserRequest represents the request payload for creating a new
// user. Name and email are required but otherwise unconstrained;
// uniqueness of the email is a storage concern, not a format one.
type CreateUserRequest struct {
	Name  string `validate:"required"`
	Email string `validate:"required"`
}

// GetUserRequest represents the request payload for retrieving a user.
type GetUserRequest struct {
	ID int64
}

// DeleteUserRequest represents the request payload for deleting a user.
type DeleteUserRequest struct {
	ID int64
}

// DeleteUserResponse represents the response payload after deleting a user.
type DeleteUserResponse struct {
	ID int64
}

// ListUsersRequest represents the request payload for listing users.
// Skip/Limit offset pagination, ordered by id.
type ListUsersRequest struct {
	Skip  int64
	Limit int64
}

// User represents a user DTO for API responses.
type User struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}

// ListUsersResponse represents the response payload for user listing.
type ListUsersResponse struct {
	Users []User
}
