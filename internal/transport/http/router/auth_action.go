package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loyalty-club-backend/internal/core/auth"
	"loyalty-club-backend/internal/domain"
	"loyalty-club-backend/internal/service"
	httpez "loyalty-club-backend/internal/transport/http/ez"
)

type addressIn struct {
	Street     string `json:"street" binding:"required"`
	Number     string `json:"number" binding:"required"`
	Complement string `json:"complement"`
	District   string `json:"district" binding:"required"`
	City       string `json:"city" binding:"required"`
	UF         string `json:"uf" binding:"required,len=2"`
	CEP        string `json:"cep" binding:"required"`
}

func mountAuthActions(api, authed *gin.RouterGroup, svc *service.AccountService, jwter *auth.JWTer) {
	ezPublic := httpez.New(api)

	// POST /auth/register — creates the account; the SPA logs in right after.
	type registerIn struct {
		Username string    `json:"username" binding:"required"`
		Password string    `json:"password" binding:"required,min=4"`
		CPF      string    `json:"cpf"      binding:"required"`
		FullName string    `json:"fullName" binding:"required"`
		Email    string    `json:"email"    binding:"required,email"`
		Phone    string    `json:"phone"`
		Address  addressIn `json:"address"  binding:"required"`
	}
	httpez.RegisterAction[registerIn, *domain.User](ezPublic, httpez.Action[registerIn, *domain.User]{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *registerIn) (*domain.User, error) {
			u, err := svc.Register(service.RegisterInput{
				Username: in.Username,
				Password: in.Password,
				CPF:      in.CPF,
				FullName: in.FullName,
				Email:    in.Email,
				Phone:    in.Phone,
				Address: domain.Address{
					Street:     in.Address.Street,
					Number:     in.Address.Number,
					Complement: in.Address.Complement,
					District:   in.Address.District,
					City:       in.Address.City,
					UF:         in.Address.UF,
					CEP:        in.Address.CEP,
				},
			})
			if err != nil {
				return nil, httpez.FromDomain(err)
			}
			return u, nil
		},
	})

	// POST /auth/login — uniform failure: unknown user and wrong password are
	// indistinguishable to the caller.
	type loginIn struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	type loginOut struct {
		Token string       `json:"token"`
		User  *domain.User `json:"user"`
	}
	httpez.RegisterAction[loginIn, loginOut](ezPublic, httpez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (loginOut, error) {
			u, err := svc.Login(c.Request.Context(), in.Username, in.Password)
			if err != nil {
				return loginOut{}, httpez.Internal("login failed", err)
			}
			if u == nil {
				return loginOut{}, httpez.Unauthorized("invalid credentials")
			}
			tok, err := jwter.Issue(u.ID, string(u.Role))
			if err != nil || tok == "" {
				return loginOut{}, httpez.Internal("issue token failed", err)
			}
			return loginOut{Token: tok, User: u}, nil
		},
	})

	// POST /auth/forgot — password-recovery simulation: a pure lookup that
	// echoes the registered contacts. Nothing is sent anywhere.
	type forgotIn struct {
		Identifier string `json:"identifier" binding:"required"`
	}
	type forgotOut struct {
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	httpez.RegisterAction[forgotIn, forgotOut](ezPublic, httpez.Action[forgotIn, forgotOut]{
		Method: http.MethodPost,
		Path:   "/auth/forgot",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *forgotIn) (forgotOut, error) {
			u, err := svc.FindByIdentifier(in.Identifier)
			if err != nil {
				return forgotOut{}, httpez.Internal("lookup failed", err)
			}
			if u == nil {
				return forgotOut{}, httpez.NotFound("no user with this email or username")
			}
			return forgotOut{Email: u.Email, Phone: u.Phone}, nil
		},
	})

	// GET /auth/session — the persisted session marker, resolved to a live
	// record.
	type sessionOut struct {
		Active bool         `json:"active"`
		User   *domain.User `json:"user,omitempty"`
	}
	httpez.RegisterAction[struct{}, sessionOut](ezPublic, httpez.Action[struct{}, sessionOut]{
		Method: http.MethodGet,
		Path:   "/auth/session",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (sessionOut, error) {
			u, err := svc.CurrentSession(c.Request.Context())
			if err != nil {
				return sessionOut{}, httpez.Internal("session lookup failed", err)
			}
			return sessionOut{Active: u != nil, User: u}, nil
		},
	})

	ezAuth := httpez.New(authed)

	// POST /auth/logout — idempotent.
	httpez.RegisterAction[struct{}, gin.H](ezAuth, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/auth/logout",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			if err := svc.Logout(c.Request.Context()); err != nil {
				return nil, httpez.Internal("logout failed", err)
			}
			return gin.H{"ok": 1}, nil
		},
	})
}
