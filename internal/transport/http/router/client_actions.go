package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"loyalty-club-backend/internal/core/cache"
	"loyalty-club-backend/internal/domain"
	"loyalty-club-backend/internal/service"
	httpez "loyalty-club-backend/internal/transport/http/ez"
)

// catalog is what the client dashboard renders: redeemable rewards plus the
// tier benefit table.
type catalog struct {
	Rewards []domain.Reward                    `json:"rewards"`
	Tiers   map[domain.Tier]domain.TierBenefit `json:"tiers"`
	Order   []domain.Tier                      `json:"tierOrder"`
}

func mountClientActions(authed *gin.RouterGroup, svc *service.AccountService, ch *cache.Cache) {
	ez := httpez.New(authed)

	// GET /me — live copy of the caller's record.
	httpez.RegisterAction[struct{}, *domain.User](ez, httpez.Action[struct{}, *domain.User]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			u, err := svc.Get(c.GetString("userId"))
			if err != nil {
				return nil, httpez.Internal("lookup failed", err)
			}
			if u == nil {
				return nil, httpez.NotFound("user not found")
			}
			return u, nil
		},
	})

	// GET /me/history — the append-only ledger, oldest first.
	httpez.RegisterAction[struct{}, []domain.Transaction](ez, httpez.Action[struct{}, []domain.Transaction]{
		Method: http.MethodGet,
		Path:   "/me/history",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Transaction, error) {
			u, err := svc.Get(c.GetString("userId"))
			if err != nil {
				return nil, httpez.Internal("lookup failed", err)
			}
			if u == nil {
				return nil, httpez.NotFound("user not found")
			}
			if u.History == nil {
				return []domain.Transaction{}, nil
			}
			return u.History, nil
		},
	})

	// GET /catalog — rewards and tier table. Static today, served through the
	// cache so a future DB-backed catalog keeps the same read path.
	httpez.RegisterAction[struct{}, *catalog](ez, httpez.Action[struct{}, *catalog]{
		Method: http.MethodGet,
		Path:   "/catalog",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (*catalog, error) {
			load := func(ctx context.Context) (*catalog, error) {
				return &catalog{
					Rewards: domain.RewardCatalog,
					Tiers:   domain.TierTable,
					Order:   domain.TierOrder,
				}, nil
			}
			if ch == nil {
				return load(c.Request.Context())
			}
			out, err := cache.GetOrLoadJSON[catalog](ch, c.Request.Context(), "loyalty:catalog", 5*time.Minute, load)
			if err != nil {
				return nil, httpez.Internal("catalog load failed", err)
			}
			return out, nil
		},
	})

	// POST /me/tier — request a tier change; takes effect only after an admin
	// approves it.
	type tierIn struct {
		Tier domain.Tier `json:"tier" binding:"required"`
	}
	httpez.RegisterAction[tierIn, *domain.User](ez, httpez.Action[tierIn, *domain.User]{
		Method: http.MethodPost,
		Path:   "/me/tier",
		Binder: httpez.BindJSON,
		Auth:   true,
		Roles:  []string{string(domain.RoleClient)},
		Handler: func(c *gin.Context, in *tierIn) (*domain.User, error) {
			u, err := svc.RequestTierChange(c.GetString("userId"), in.Tier)
			return u, httpez.FromDomain(err)
		},
	})

	// POST /me/purchase — flag a purchase for admin confirmation.
	httpez.RegisterAction[struct{}, *domain.User](ez, httpez.Action[struct{}, *domain.User]{
		Method: http.MethodPost,
		Path:   "/me/purchase",
		Binder: httpez.BindNone,
		Auth:   true,
		Roles:  []string{string(domain.RoleClient)},
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			u, err := svc.RequestPurchase(c.GetString("userId"))
			return u, httpez.FromDomain(err)
		},
	})

	// POST /me/referrals — submit a referral for approval.
	type referralIn struct {
		Name  string `json:"name" binding:"required"`
		Phone string `json:"phone"`
	}
	httpez.RegisterAction[referralIn, *domain.User](ez, httpez.Action[referralIn, *domain.User]{
		Method: http.MethodPost,
		Path:   "/me/referrals",
		Binder: httpez.BindJSON,
		Auth:   true,
		Roles:  []string{string(domain.RoleClient)},
		Handler: func(c *gin.Context, in *referralIn) (*domain.User, error) {
			u, err := svc.SubmitReferral(c.GetString("userId"), in.Name, in.Phone)
			return u, httpez.FromDomain(err)
		},
	})

	// POST /me/redeem — immediate spend, guarded against a negative balance.
	type redeemIn struct {
		Cost  int    `json:"cost" binding:"required,gt=0"`
		Title string `json:"title" binding:"required"`
	}
	httpez.RegisterAction[redeemIn, *domain.User](ez, httpez.Action[redeemIn, *domain.User]{
		Method: http.MethodPost,
		Path:   "/me/redeem",
		Binder: httpez.BindJSON,
		Auth:   true,
		Roles:  []string{string(domain.RoleClient)},
		Handler: func(c *gin.Context, in *redeemIn) (*domain.User, error) {
			u, err := svc.Redeem(c.GetString("userId"), in.Cost, in.Title)
			return u, httpez.FromDomain(err)
		},
	})
}
