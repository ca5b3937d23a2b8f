package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loyalty-club-backend/internal/domain"
	"loyalty-club-backend/internal/service"
	httpez "loyalty-club-backend/internal/transport/http/ez"
)

// MountAdminActions registers the back-office surface: user listing plus the
// PENDING→{COMMITTED,REJECTED} transitions of every approval workflow.
func MountAdminActions(admin *gin.RouterGroup, svc *service.AccountService) {
	ez := httpez.New(admin)

	// --- GET /admin/v1/users  full roster, insertion order ---
	type listOut struct {
		Total int           `json:"total"`
		Items []domain.User `json:"items"`
	}
	httpez.RegisterAction[struct{}, listOut](ez, httpez.Action[struct{}, listOut]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (listOut, error) {
			users, err := svc.ListAll()
			if err != nil {
				return listOut{}, httpez.Internal("list users failed", err)
			}
			return listOut{Total: len(users), Items: users}, nil
		},
	})

	// --- GET /admin/v1/users/:id ---
	httpez.RegisterAction[struct{}, *domain.User](ez, httpez.Action[struct{}, *domain.User]{
		Method: http.MethodGet,
		Path:   "/users/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			u, err := svc.Get(c.Param("id"))
			if err != nil {
				return nil, httpez.Internal("lookup failed", err)
			}
			if u == nil {
				return nil, httpez.NotFound("user not found")
			}
			return u, nil
		},
	})

	// --- tier approval ---
	httpez.RegisterAction[struct{}, *domain.User](ez, httpez.Action[struct{}, *domain.User]{
		Method: http.MethodPost,
		Path:   "/users/:id/tier/approve",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			u, err := svc.ResolveTier(c.Param("id"), true)
			return u, httpez.FromDomain(err)
		},
	})
	httpez.RegisterAction[struct{}, *domain.User](ez, httpez.Action[struct{}, *domain.User]{
		Method: http.MethodPost,
		Path:   "/users/:id/tier/reject",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			u, err := svc.ResolveTier(c.Param("id"), false)
			return u, httpez.FromDomain(err)
		},
	})

	// --- purchase confirmation ---
	type purchaseIn struct {
		BasePoints int `json:"basePoints" binding:"required,gt=0"`
	}
	httpez.RegisterAction[purchaseIn, *domain.User](ez, httpez.Action[purchaseIn, *domain.User]{
		Method: http.MethodPost,
		Path:   "/users/:id/purchase/approve",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *purchaseIn) (*domain.User, error) {
			u, err := svc.ResolvePurchase(c.Param("id"), true, in.BasePoints)
			return u, httpez.FromDomain(err)
		},
	})
	httpez.RegisterAction[struct{}, *domain.User](ez, httpez.Action[struct{}, *domain.User]{
		Method: http.MethodPost,
		Path:   "/users/:id/purchase/reject",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			u, err := svc.ResolvePurchase(c.Param("id"), false, 0)
			return u, httpez.FromDomain(err)
		},
	})

	// --- referral approval ---
	httpez.RegisterAction[struct{}, *domain.User](ez, httpez.Action[struct{}, *domain.User]{
		Method: http.MethodPost,
		Path:   "/users/:id/referrals/:rid/approve",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			u, err := svc.ResolveReferral(c.Param("id"), c.Param("rid"), true)
			return u, httpez.FromDomain(err)
		},
	})
	httpez.RegisterAction[struct{}, *domain.User](ez, httpez.Action[struct{}, *domain.User]{
		Method: http.MethodPost,
		Path:   "/users/:id/referrals/:rid/reject",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			u, err := svc.ResolveReferral(c.Param("id"), c.Param("rid"), false)
			return u, httpez.FromDomain(err)
		},
	})

	// --- manual bonus ---
	type bonusIn struct {
		BasePoints  int    `json:"basePoints" binding:"required,gt=0"`
		Description string `json:"description"`
	}
	httpez.RegisterAction[bonusIn, *domain.User](ez, httpez.Action[bonusIn, *domain.User]{
		Method: http.MethodPost,
		Path:   "/users/:id/bonus",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *bonusIn) (*domain.User, error) {
			u, err := svc.AwardBonus(c.Param("id"), in.BasePoints, in.Description)
			return u, httpez.FromDomain(err)
		},
	})
}
