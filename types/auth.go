package types

import "Giftspin/models"

type WalletLoginRequest struct {
	Address string `json:"address" binding:"required"`
}

type WalletLoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int          `json:"expires_in"`
	IsNew       bool         `json:"is_new"`
	User        *models.User `json:"user"`
}
