package service

import (
	"Giftspin/dao"
	"Giftspin/models"
	"Giftspin/pkg/log"
	"Giftspin/pkg/utils"
	"Giftspin/types"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// NormalizeAddress 校验并转为小写
func NormalizeAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !addressPattern.MatchString(address) {
		return "", ErrInvalidAddress
	}
	return strings.ToLower(address), nil
}

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	GetByWallet(ctx context.Context, address string) (*models.User, error)
	CreateWithWallet(ctx context.Context, address string) (*models.User, error)
	GetOrCreateByWallet(ctx context.Context, address string) (*models.User, bool, error)
	Update(ctx context.Context, userID int64, req *types.UpdateUserRequest) (*models.User, error)
	Wallets(ctx context.Context, userID int64) ([]*models.Wallet, error)
}

type UserService struct {
	DB          *gorm.DB
	UsersRepo   *dao.Users
	WalletsRepo *dao.Wallets
	StatsRepo   *dao.StatsDAO
	StreakRepo  *dao.StreakDAO
}

func (s *UserService) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.UsersRepo.GetByID(ctx, userID)
	if dao.IsNotFound(err) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// GetByWallet 未找到时返回 nil, nil
func (s *UserService) GetByWallet(ctx context.Context, address string) (*models.User, error) {
	address, err := NormalizeAddress(address)
	if err != nil {
		return nil, err
	}
	wallet, err := s.WalletsRepo.FindByAddress(ctx, address)
	if dao.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find wallet: %w", err)
	}
	user, err := s.UsersRepo.GetByID(ctx, wallet.UserID)
	if dao.IsNotFound(err) {
		return nil, nil
	}
	return user, err
}

// CreateWithWallet 新用户及其钱包、统计、连胜记录在同一事务中创建
func (s *UserService) CreateWithWallet(ctx context.Context, address string) (*models.User, error) {
	address, err := NormalizeAddress(address)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  "user_" + utils.RandomBase36(7),
		Connected: true,
	}
	err = dao.Transaction(ctx, s.DB, func(ctx context.Context) error {
		if err := s.UsersRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		wallet := &models.Wallet{
			UserID:    user.ID,
			Address:   address,
			Chain:     models.ChainEthereum,
			Verified:  true,
			IsPrimary: true,
		}
		if err := s.WalletsRepo.Create(ctx, wallet); err != nil {
			return fmt.Errorf("create wallet: %w", err)
		}
		if err := s.StatsRepo.Create(ctx, models.NewStats(user.ID)); err != nil {
			return fmt.Errorf("create stats: %w", err)
		}
		if err := s.StreakRepo.Create(ctx, models.NewStreak(user.ID)); err != nil {
			return fmt.Errorf("create streak: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.L.Info("user created", zap.Int64("user_id", user.ID), zap.String("address", address))
	return user, nil
}

// GetOrCreateByWallet 第二个返回值表示是否新建
func (s *UserService) GetOrCreateByWallet(ctx context.Context, address string) (*models.User, bool, error) {
	user, err := s.GetByWallet(ctx, address)
	if err != nil {
		return nil, false, err
	}
	if user != nil {
		return user, false, nil
	}

	user, err = s.CreateWithWallet(ctx, address)
	if err == nil {
		return user, true, nil
	}
	// 并发连接同一个钱包
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		user, err = s.GetByWallet(ctx, address)
		if err == nil && user != nil {
			return user, false, nil
		}
	}
	return nil, false, err
}

func (s *UserService) Update(ctx context.Context, userID int64, req *types.UpdateUserRequest) (*models.User, error) {
	data := make(map[string]any)
	if req.Username != nil {
		data["username"] = strings.TrimSpace(*req.Username)
	}
	if req.Email != nil {
		data["email"] = *req.Email
	}
	if req.Avatar != nil {
		data["avatar"] = *req.Avatar
	}
	if req.FarcasterID != nil {
		data["farcaster_id"] = *req.FarcasterID
	}
	if req.BitrefillID != nil {
		data["bitrefill_id"] = *req.BitrefillID
	}

	err := dao.Transaction(ctx, s.DB, func(ctx context.Context) error {
		if err := s.UsersRepo.UpdateById(ctx, userID, data); err != nil {
			if dao.IsNotFound(err) {
				return ErrUserNotFound
			}
			return fmt.Errorf("update user: %w", err)
		}
		if req.FavoriteCategory != nil {
			stats, err := s.StatsRepo.GetForUpdate(ctx, userID)
			if err != nil {
				return fmt.Errorf("load stats: %w", err)
			}
			stats.FavoriteCategory = req.FavoriteCategory
			return s.StatsRepo.Save(ctx, stats)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, userID)
}

func (s *UserService) Wallets(ctx context.Context, userID int64) ([]*models.Wallet, error) {
	return s.WalletsRepo.ListByUser(ctx, userID)
}
