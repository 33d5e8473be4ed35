package model

// CreateUserRequest represents the admin request to create a participant.
type CreateUserRequest struct {
	Name      string `json:"name"              binding:"required"`
	AccessKey string `json:"unique_access_key" binding:"required"`
}

// CreateUserResponse represents the response after creating a participant.
type CreateUserResponse struct {
	User User `json:"user"`
}

// ListUsersResponse represents the admin listing of all participants.
type ListUsersResponse struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}

// SetIsActiveRequest represents the request to update a participant's active flag.
// Deactivation is a soft delete: predictions and scores stay in place.
type SetIsActiveRequest struct {
	UserID   string `json:"user_id"   binding:"required"`
	IsActive *bool  `json:"is_active" binding:"required"`
}

// SetIsActiveResponse represents the response after updating the active flag.
type SetIsActiveResponse struct {
	User User `json:"user"`
}

// GetByAccessKeyResponse represents the response for token authentication.
type GetByAccessKeyResponse struct {
	User User `json:"user"`
}
