package types

import "Giftspin/models"

type ListRewardsResponse struct {
	Items []*models.Reward `json:"items"`
}
