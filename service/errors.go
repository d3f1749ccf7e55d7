package service

import "errors"

var (
	ErrNoSpinsLeft          = errors.New("no spins left today")
	ErrNotClaimable         = errors.New("reward is not claimable")
	ErrDuplicateOrder       = errors.New("order already recorded")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrInvalidAddress       = errors.New("invalid wallet address")
	ErrUserNotFound         = errors.New("user not found")
	ErrRewardNotFound       = errors.New("reward not found")
	ErrCatalogNotConfigured = errors.New("gift card catalog is not configured")
	ErrInvalidStatus        = errors.New("invalid reward status")
)
