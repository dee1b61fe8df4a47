package dto

type UsernameRequest struct {
	Username string `json:"username"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
