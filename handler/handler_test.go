package handler_test

import (
	"Giftspin/config"
	"Giftspin/dao"
	"Giftspin/dao/cache"
	"Giftspin/handler"
	"Giftspin/internal/testkit"
	"Giftspin/pkg/bitrefill"
	"Giftspin/pkg/clock"
	"Giftspin/pkg/server"
	"Giftspin/service"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
app:
  debug: true
jwt:
  secret: test-secret
  expires_in: 3600
`

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

type testServer struct {
	engine *gin.Engine
	clock  *clock.Clock
}

func newTestServer(t *testing.T, yaml string) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg, err := config.Parse([]byte(yaml))
	require.NoError(t, err)

	db := testkit.NewDB(t)
	_, rds := testkit.NewRedis(t)
	clk := clock.NewFixed(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	loyalty := cfg.Loyalty

	users := dao.NewUsers(db)
	wallets := dao.NewWallets(db)
	statsRepo := dao.NewStatsDAO(db)
	streakRepo := dao.NewStreakDAO(db)
	rewardRepo := dao.NewRewardDAO(db)
	purchaseRepo := dao.NewPurchaseDAO(db)
	spinLimitRepo := dao.NewSpinLimitDAO(db)

	userService := &service.UserService{DB: db, UsersRepo: users, WalletsRepo: wallets, StatsRepo: statsRepo, StreakRepo: streakRepo}
	leaderboard := &service.LeaderboardService{Config: loyalty, Storage: cache.NewLeaderboardStorage(rds), StatsRepo: statsRepo, UsersRepo: users}
	stats := &service.StatsService{DB: db, Config: loyalty, StatsRepo: statsRepo, Leaderboard: leaderboard}
	rewards := &service.RewardService{Config: loyalty, Clock: clk, RewardRepo: rewardRepo}
	streaks := &service.StreakService{DB: db, Config: loyalty, Clock: clk, StreakRepo: streakRepo, RewardRepo: rewardRepo, RewardService: rewards}
	purchases := &service.PurchaseService{
		DB: db, Config: loyalty, Clock: clk,
		PurchaseRepo: purchaseRepo, SpinLimitRepo: spinLimitRepo,
		Streaks: streaks, Stats: stats, Leaderboard: leaderboard,
	}
	spins := service.NewSpinService(db, loyalty, clk, purchases, rewards, stats).
		WithRand(func(int) int { return 0 })
	cleanup := &service.CleanupService{
		DB: db, UsersRepo: users, WalletsRepo: wallets, PurchaseRepo: purchaseRepo,
		RewardRepo: rewardRepo, SpinLimitRepo: spinLimitRepo, StatsRepo: statsRepo,
		StreakRepo: streakRepo, Leaderboard: leaderboard,
	}
	catalog := &service.CatalogService{
		Config: cfg.Bitrefill,
		Client: bitrefill.NewClient(cfg.Bitrefill),
		Cache:  cache.NewCatalogStorage(rds),
	}

	engine := server.NewGinEngine(cfg, &server.Handlers{
		Auth:     &handler.Auth{Config: cfg, UserService: userService},
		User:     &handler.User{Config: cfg, UserService: userService, StatsService: stats, StreakService: streaks, PurchaseService: purchases},
		Purchase: &handler.Purchase{Config: cfg, PurchaseService: purchases},
		Spin:     &handler.Spin{Config: cfg, SpinService: spins, PurchaseService: purchases},
		Streak:   &handler.Streak{Config: cfg, StreakService: streaks},
		Reward:   &handler.Reward{Config: cfg, RewardService: rewards},
		Stats:    &handler.Stats{Config: cfg, StatsService: stats, LeaderboardService: leaderboard},
		Catalog:  &handler.Catalog{CatalogService: catalog},
		Dev:      &handler.Dev{Config: cfg, Clock: clk, PurchaseService: purchases, CleanupService: cleanup},
	})
	return &testServer{engine: engine, clock: clk}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func (s *testServer) login(t *testing.T, address string) string {
	t.Helper()
	_, env := s.do(t, http.MethodPost, "/api/v1/auth/wallet", "", gin.H{"address": address})
	require.Zero(t, env.Code, env.Msg)
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

const wallet = "0xAbCdEf0123456789aBCDef0123456789ABCDEF01"

func TestWalletLogin(t *testing.T) {
	s := newTestServer(t, testConfig)

	_, env := s.do(t, http.MethodPost, "/api/v1/auth/wallet", "", gin.H{"address": wallet})
	require.Zero(t, env.Code)
	var first struct {
		IsNew bool `json:"is_new"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &first))
	assert.True(t, first.IsNew)

	_, env = s.do(t, http.MethodPost, "/api/v1/auth/wallet", "", gin.H{"address": wallet})
	var second struct {
		IsNew bool `json:"is_new"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &second))
	assert.False(t, second.IsNew)
	assert.Equal(t, first.User.ID, second.User.ID)

	_, env = s.do(t, http.MethodPost, "/api/v1/auth/wallet", "", gin.H{"address": "0x123"})
	assert.Equal(t, handler.CodeInvalidAddress, env.Code)

	_, env = s.do(t, http.MethodPost, "/api/v1/auth/wallet", "", gin.H{})
	assert.Equal(t, handler.CodeBadRequest, env.Code)
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t, testConfig)

	w, env := s.do(t, http.MethodGet, "/api/v1/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, http.StatusUnauthorized, env.Code)

	w, _ = s.do(t, http.MethodGet, "/api/v1/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPurchaseAndSpin(t *testing.T) {
	s := newTestServer(t, testConfig)
	token := s.login(t, wallet)

	_, env := s.do(t, http.MethodPost, "/api/v1/purchases", token, gin.H{"amount": "120.50", "category": "gaming", "order_id": "o-1"})
	require.Zero(t, env.Code, env.Msg)
	var purchase struct {
		Tickets   int `json:"tickets"`
		XPGained  int `json:"xp_gained"`
		SpinLimit struct {
			MaxSpins int `json:"max_spins"`
		} `json:"spin_limit"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &purchase))
	assert.Equal(t, 2, purchase.Tickets)
	assert.Equal(t, 120, purchase.XPGained)
	assert.Equal(t, 2, purchase.SpinLimit.MaxSpins)

	_, env = s.do(t, http.MethodPost, "/api/v1/purchases", token, gin.H{"amount": "10", "order_id": "o-1"})
	assert.Equal(t, handler.CodeDuplicateOrder, env.Code)

	_, env = s.do(t, http.MethodPost, "/api/v1/purchases", token, gin.H{"amount": "-3"})
	assert.Equal(t, handler.CodeInvalidAmount, env.Code)

	_, env = s.do(t, http.MethodPost, "/api/v1/spins", token, nil)
	require.Zero(t, env.Code, env.Msg)
	var spin struct {
		Win       bool   `json:"win"`
		Label     string `json:"label"`
		SpinLimit struct {
			Remaining int `json:"remaining"`
		} `json:"spin_limit"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &spin))
	assert.True(t, spin.Win)
	assert.Equal(t, "5% OFF", spin.Label)
	assert.Equal(t, 1, spin.SpinLimit.Remaining)

	_, env = s.do(t, http.MethodPost, "/api/v1/spins", token, nil)
	require.Zero(t, env.Code)
	_, env = s.do(t, http.MethodPost, "/api/v1/spins", token, nil)
	assert.Equal(t, handler.CodeNoSpinsLeft, env.Code)

	_, env = s.do(t, http.MethodGet, "/api/v1/rewards?status=claimable", token, nil)
	require.Zero(t, env.Code)
	var rewards struct {
		Items []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rewards))
	require.Len(t, rewards.Items, 2)

	_, env = s.do(t, http.MethodPost, "/api/v1/rewards/"+rewards.Items[0].ID+"/use", token, nil)
	require.Zero(t, env.Code, env.Msg)
	_, env = s.do(t, http.MethodPost, "/api/v1/rewards/"+rewards.Items[0].ID+"/use", token, nil)
	assert.Equal(t, handler.CodeNotClaimable, env.Code)

	_, env = s.do(t, http.MethodGet, "/api/v1/rewards?status=lost", token, nil)
	assert.Equal(t, handler.CodeInvalidStatus, env.Code)
}

func TestMe(t *testing.T) {
	s := newTestServer(t, testConfig)
	token := s.login(t, wallet)

	_, env := s.do(t, http.MethodPost, "/api/v1/purchases", token, gin.H{"amount": "60"})
	require.Zero(t, env.Code, env.Msg)

	_, env = s.do(t, http.MethodGet, "/api/v1/me", token, nil)
	require.Zero(t, env.Code, env.Msg)
	var me struct {
		Stats struct {
			XP    int `json:"xp"`
			Level int `json:"level"`
		} `json:"stats"`
		Streak struct {
			Current int `json:"current"`
		} `json:"streak"`
		SpinLimit struct {
			MaxSpins int  `json:"max_spins"`
			CanSpin  bool `json:"can_spin"`
		} `json:"spin_limit"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, 60, me.Stats.XP)
	assert.Equal(t, 1, me.Stats.Level)
	assert.Equal(t, 1, me.Streak.Current)
	assert.Equal(t, 1, me.SpinLimit.MaxSpins)
	assert.True(t, me.SpinLimit.CanSpin)

	_, env = s.do(t, http.MethodPatch, "/api/v1/me", token, gin.H{"username": "spinner"})
	require.Zero(t, env.Code, env.Msg)
	var user struct {
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "spinner", user.Username)
}

func TestStreakAcrossDays(t *testing.T) {
	s := newTestServer(t, testConfig)
	token := s.login(t, wallet)

	for day := 0; day < 3; day++ {
		_, env := s.do(t, http.MethodPost, "/api/v1/dev/purchase", token, gin.H{"amount": "20"})
		require.Zero(t, env.Code, env.Msg)
		_, env = s.do(t, http.MethodPost, "/api/v1/dev/time-travel", token, gin.H{"days": 1})
		require.Zero(t, env.Code, env.Msg)
	}

	_, env := s.do(t, http.MethodGet, "/api/v1/streak/rewards", token, nil)
	require.Zero(t, env.Code, env.Msg)
	var rewards struct {
		Items []struct {
			ID        string `json:"id"`
			Milestone int    `json:"milestone"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rewards))
	require.Len(t, rewards.Items, 1)
	assert.Equal(t, 3, rewards.Items[0].Milestone)
	id := rewards.Items[0].ID

	_, env = s.do(t, http.MethodPost, "/api/v1/streak/rewards/"+id+"/claim", token, nil)
	require.Zero(t, env.Code, env.Msg)
	_, env = s.do(t, http.MethodPost, "/api/v1/streak/rewards/"+id+"/claim", token, nil)
	assert.Equal(t, handler.CodeNotClaimable, env.Code)

	_, env = s.do(t, http.MethodDelete, "/api/v1/dev/time-travel", token, nil)
	require.Zero(t, env.Code)
	var state struct {
		OffsetSeconds int64  `json:"offset_seconds"`
		Today         string `json:"today"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.Zero(t, state.OffsetSeconds)
	assert.Equal(t, "2025-03-10", state.Today)
}

func TestPublicRoutes(t *testing.T) {
	s := newTestServer(t, testConfig)

	_, env := s.do(t, http.MethodGet, "/api/v1/spins/wheel", "", nil)
	require.Zero(t, env.Code)
	var wheel []struct {
		Label  string  `json:"label"`
		Chance float64 `json:"chance"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &wheel))
	assert.Len(t, wheel, 12)

	_, env = s.do(t, http.MethodGet, "/api/v1/catalog/search?q=steam", "", nil)
	assert.Equal(t, handler.CodeCatalogNotConfigured, env.Code)

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "giftspin_http_requests_total")
}

func TestDevRoutesHiddenOutsideDebug(t *testing.T) {
	s := newTestServer(t, "jwt:\n  secret: test-secret\n")
	token := s.login(t, wallet)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dev/reset", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
