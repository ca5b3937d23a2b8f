package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"loyalty-club-backend/internal/core/auth"
	"loyalty-club-backend/internal/domain"
	"loyalty-club-backend/internal/repo"
	"loyalty-club-backend/internal/service"
)

type memSessions struct{ id string }

func (m *memSessions) Put(_ context.Context, id string) error { m.id = id; return nil }
func (m *memSessions) Get(_ context.Context) (string, error)  { return m.id, nil }
func (m *memSessions) Clear(_ context.Context) error          { m.id = ""; return nil }

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func setupEngines(t *testing.T) (api, admin *gin.Engine, svc *service.AccountService, jwter *auth.JWTer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc = service.NewAccountService(repo.NewMemoryAccountRepo(), &memSessions{}, zap.NewNop(), service.Options{
		AdminUsername:      "admin",
		AdminPassword:      "secret",
		ReferralBasePoints: 50,
	})
	require.NoError(t, svc.Initialize())

	jwter = &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour}
	api = NewAPIEngine(zap.NewNop(), svc, jwter, nil)
	admin = NewAdminEngine(zap.NewNop(), svc, jwter)
	return api, admin, svc, jwter
}

func httpDo(t *testing.T, r *gin.Engine, method, path, token string, body any) envelope {
	t.Helper()
	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

var registerBody = map[string]any{
	"username": "maria",
	"password": "pass1234",
	"cpf":      "529.982.247-25",
	"fullName": "Maria Oliveira",
	"email":    "maria@example.com",
	"phone":    "11 99999-0000",
	"address": map[string]any{
		"street": "Rua das Flores", "number": "100", "district": "Centro",
		"city": "São Paulo", "uf": "SP", "cep": "01000-000",
	},
}

func TestRegisterLoginAndMe(t *testing.T) {
	api, _, _, _ := setupEngines(t)

	env := httpDo(t, api, "POST", "/api/v1/auth/register", "", registerBody)
	require.Zero(t, env.Code, env.Msg)

	env = httpDo(t, api, "POST", "/api/v1/auth/login", "", map[string]any{
		"username": "maria", "password": "wrong",
	})
	require.Equal(t, 401, env.Code)

	env = httpDo(t, api, "POST", "/api/v1/auth/login", "", map[string]any{
		"username": "maria", "password": "pass1234",
	})
	require.Zero(t, env.Code, env.Msg)
	var login struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.Token)
	require.Equal(t, domain.TierFree, login.User.Tier)

	env = httpDo(t, api, "GET", "/api/v1/me", login.Token, nil)
	require.Zero(t, env.Code, env.Msg)
	var me domain.User
	require.NoError(t, json.Unmarshal(env.Data, &me))
	require.Equal(t, "maria", me.Username)

	// no token -> unauthorized
	env = httpDo(t, api, "GET", "/api/v1/me", "", nil)
	require.Equal(t, 401, env.Code)
}

func TestTierUpgradeThroughAdmin(t *testing.T) {
	api, admin, svc, jwter := setupEngines(t)

	httpDo(t, api, "POST", "/api/v1/auth/register", "", registerBody)
	env := httpDo(t, api, "POST", "/api/v1/auth/login", "", map[string]any{
		"username": "maria", "password": "pass1234",
	})
	var login struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))

	env = httpDo(t, api, "POST", "/api/v1/me/tier", login.Token, map[string]any{"tier": "BRONZE"})
	require.Zero(t, env.Code, env.Msg)
	var pending domain.User
	require.NoError(t, json.Unmarshal(env.Data, &pending))
	require.Equal(t, domain.TierFree, pending.Tier)
	require.NotNil(t, pending.PendingTier)

	// client tokens are rejected on the admin surface
	env = httpDo(t, admin, "POST", "/admin/v1/users/"+login.User.ID+"/tier/approve", login.Token, nil)
	require.Equal(t, 403, env.Code)

	adm, err := svc.FindByIdentifier("admin")
	require.NoError(t, err)
	admToken, err := jwter.Issue(adm.ID, string(domain.RoleAdmin))
	require.NoError(t, err)

	env = httpDo(t, admin, "POST", "/admin/v1/users/"+login.User.ID+"/tier/approve", admToken, nil)
	require.Zero(t, env.Code, env.Msg)
	var committed domain.User
	require.NoError(t, json.Unmarshal(env.Data, &committed))
	require.Equal(t, domain.TierBronze, committed.Tier)
	require.Nil(t, committed.PendingTier)

	// approving again fails: nothing pending anymore
	env = httpDo(t, admin, "POST", "/admin/v1/users/"+login.User.ID+"/tier/approve", admToken, nil)
	require.Equal(t, 400, env.Code)
}

func TestPurchaseAndBonusThroughAdmin(t *testing.T) {
	api, admin, svc, jwter := setupEngines(t)

	httpDo(t, api, "POST", "/api/v1/auth/register", "", registerBody)
	env := httpDo(t, api, "POST", "/api/v1/auth/login", "", map[string]any{
		"username": "maria", "password": "pass1234",
	})
	var login struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))

	adm, err := svc.FindByIdentifier("admin")
	require.NoError(t, err)
	admToken, err := jwter.Issue(adm.ID, string(domain.RoleAdmin))
	require.NoError(t, err)

	env = httpDo(t, api, "POST", "/api/v1/me/purchase", login.Token, nil)
	require.Zero(t, env.Code, env.Msg)

	env = httpDo(t, admin, "POST", "/admin/v1/users/"+login.User.ID+"/purchase/approve", admToken,
		map[string]any{"basePoints": 100})
	require.Zero(t, env.Code, env.Msg)
	var confirmed domain.User
	require.NoError(t, json.Unmarshal(env.Data, &confirmed))
	require.Equal(t, 100, confirmed.Points) // FREE tier, no bonus
	require.False(t, confirmed.PendingPurchase)

	env = httpDo(t, admin, "POST", "/admin/v1/users/"+login.User.ID+"/bonus", admToken,
		map[string]any{"basePoints": 50, "description": "promoção"})
	require.Zero(t, env.Code, env.Msg)

	env = httpDo(t, api, "GET", "/api/v1/me/history", login.Token, nil)
	require.Zero(t, env.Code, env.Msg)
	var history []domain.Transaction
	require.NoError(t, json.Unmarshal(env.Data, &history))
	require.Len(t, history, 2)
	require.Equal(t, domain.TxPurchase, history[0].Type)
	require.Equal(t, domain.TxBonus, history[1].Type)
}

func TestForgotPasswordSimulation(t *testing.T) {
	api, _, _, _ := setupEngines(t)
	httpDo(t, api, "POST", "/api/v1/auth/register", "", registerBody)

	env := httpDo(t, api, "POST", "/api/v1/auth/forgot", "", map[string]any{"identifier": "maria@example.com"})
	require.Zero(t, env.Code, env.Msg)
	var out struct {
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.Equal(t, "maria@example.com", out.Email)
	require.Equal(t, "11 99999-0000", out.Phone)

	env = httpDo(t, api, "POST", "/api/v1/auth/forgot", "", map[string]any{"identifier": "nobody@example.com"})
	require.Equal(t, 404, env.Code)
}

func TestSessionEndpoint(t *testing.T) {
	api, _, _, _ := setupEngines(t)
	httpDo(t, api, "POST", "/api/v1/auth/register", "", registerBody)

	env := httpDo(t, api, "GET", "/api/v1/auth/session", "", nil)
	require.Zero(t, env.Code)
	var sess struct {
		Active bool         `json:"active"`
		User   *domain.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	require.False(t, sess.Active)

	envLogin := httpDo(t, api, "POST", "/api/v1/auth/login", "", map[string]any{
		"username": "maria", "password": "pass1234",
	})
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(envLogin.Data, &login))

	env = httpDo(t, api, "GET", "/api/v1/auth/session", "", nil)
	sess.User = nil
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	require.True(t, sess.Active)
	require.NotNil(t, sess.User)
	require.Equal(t, "maria", sess.User.Username)

	env = httpDo(t, api, "POST", "/api/v1/auth/logout", login.Token, nil)
	require.Zero(t, env.Code)

	env = httpDo(t, api, "GET", "/api/v1/auth/session", "", nil)
	sess.User = nil
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	require.False(t, sess.Active)
}

func TestCatalogEndpoint(t *testing.T) {
	api, _, _, _ := setupEngines(t)
	httpDo(t, api, "POST", "/api/v1/auth/register", "", registerBody)
	env := httpDo(t, api, "POST", "/api/v1/auth/login", "", map[string]any{
		"username": "maria", "password": "pass1234",
	})
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))

	env = httpDo(t, api, "GET", "/api/v1/catalog", login.Token, nil)
	require.Zero(t, env.Code, env.Msg)
	var cat struct {
		Rewards []domain.Reward                    `json:"rewards"`
		Tiers   map[domain.Tier]domain.TierBenefit `json:"tiers"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cat))
	require.Len(t, cat.Rewards, 5)
	require.Equal(t, 10, cat.Tiers[domain.TierBronze].BonusPercent)
}
