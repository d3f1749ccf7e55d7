package service

import (
	"Giftspin/config"
	"Giftspin/dao/cache"
	"Giftspin/pkg/bitrefill"
	"Giftspin/pkg/log"
	"context"
	"errors"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

var _ ICatalogService = (*CatalogService)(nil)

type ICatalogService interface {
	Search(ctx context.Context, query string, limit int) (*bitrefill.Response, error)
	ByCategory(ctx context.Context, category string) (*bitrefill.Response, error)
	AllGaming(ctx context.Context) (map[string]*bitrefill.Response, error)
}

// CatalogService 礼品卡目录, Bitrefill responses cached in redis.
type CatalogService struct {
	Config *config.Bitrefill
	Client *bitrefill.Client
	Cache  *cache.CatalogStorage
}

func (s *CatalogService) Search(ctx context.Context, query string, limit int) (*bitrefill.Response, error) {
	if !s.Client.Configured() {
		return nil, ErrCatalogNotConfigured
	}
	query = strings.TrimSpace(query)
	if limit <= 0 {
		limit = bitrefill.DefaultLimit
	}

	var cached bitrefill.Response
	hit, err := s.Cache.Get(ctx, query, limit, &cached)
	if err != nil {
		log.L.Warn("catalog cache read failed", zap.String("query", query), zap.Error(err))
	}
	if hit {
		return &cached, nil
	}

	resp, err := s.Client.Search(ctx, query, limit)
	if err != nil {
		if errors.Is(err, bitrefill.ErrNotConfigured) {
			return nil, ErrCatalogNotConfigured
		}
		return nil, err
	}
	if err := s.Cache.Set(ctx, query, limit, resp, s.Config.CacheTTL); err != nil {
		log.L.Warn("catalog cache write failed", zap.String("query", query), zap.Error(err))
	}
	return resp, nil
}

func (s *CatalogService) ByCategory(ctx context.Context, category string) (*bitrefill.Response, error) {
	return s.Search(ctx, category, bitrefill.DefaultLimit)
}

type categoryResult struct {
	category string
	resp     *bitrefill.Response
}

// AllGaming 并发拉取所有游戏分类, the first error cancels the rest.
func (s *CatalogService) AllGaming(ctx context.Context) (map[string]*bitrefill.Response, error) {
	if !s.Client.Configured() {
		return nil, ErrCatalogNotConfigured
	}

	p := pool.NewWithResults[categoryResult]().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()
	for _, category := range bitrefill.GamingCategories {
		p.Go(func(ctx context.Context) (categoryResult, error) {
			resp, err := s.ByCategory(ctx, category)
			return categoryResult{category: category, resp: resp}, err
		})
	}
	results, err := p.Wait()
	if err != nil {
		return nil, err
	}

	out := make(map[string]*bitrefill.Response, len(results))
	for _, r := range results {
		out[r.category] = r.resp
	}
	return out, nil
}
