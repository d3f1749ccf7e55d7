package types

import "Giftspin/models"

// UpdateUserRequest PATCH /me, nil fields are left untouched.
type UpdateUserRequest struct {
	Username         *string `json:"username" binding:"omitempty,min=2,max=64"`
	Email            *string `json:"email" binding:"omitempty,email"`
	Avatar           *string `json:"avatar" binding:"omitempty,max=512"`
	FarcasterID      *string `json:"farcaster_id" binding:"omitempty,max=64"`
	BitrefillID      *string `json:"bitrefill_id" binding:"omitempty,max=64"`
	FavoriteCategory *string `json:"favorite_category" binding:"omitempty,max=64"`
}

type MeResponse struct {
	User      *models.User     `json:"user"`
	Stats     *models.Stats    `json:"stats"`
	Streak    *models.Streak   `json:"streak"`
	SpinLimit *SpinLimitView   `json:"spin_limit"`
	Wallets   []*models.Wallet `json:"wallets,omitempty"`
}
