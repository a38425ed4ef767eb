package dto

// LoginRequest carries the shared access password. There are no per-user
// accounts; the check gates the whole API.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}
