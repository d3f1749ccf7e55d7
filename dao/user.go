package dao

import (
	"Giftspin/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

func (u *Users) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return u.FindByWhere(ctx, "id = ?", id)
}

// UpdateById 更新用户资料
func (u *Users) UpdateById(ctx context.Context, id int64, data map[string]any) error {
	if id <= 0 {
		return gorm.ErrRecordNotFound
	}
	if len(data) == 0 {
		return nil
	}
	res := u.Model(ctx).Where("id = ?", id).Updates(data)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Usernames 批量查询用户名, keyed by user id.
func (u *Users) Usernames(ctx context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []models.User
	if err := u.DB(ctx).Select("id", "username").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.ID] = r.Username
	}
	return out, nil
}
