package server

import (
	"Giftspin/handler"
)

type Handlers struct {
	Auth     *handler.Auth
	User     *handler.User
	Purchase *handler.Purchase
	Spin     *handler.Spin
	Streak   *handler.Streak
	Reward   *handler.Reward
	Stats    *handler.Stats
	Catalog  *handler.Catalog
	Dev      *handler.Dev
}
