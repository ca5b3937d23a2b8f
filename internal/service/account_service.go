package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"loyalty-club-backend/internal/domain"
	"loyalty-club-backend/pkg/utils"
)

// AccountService is the single source of truth for accounts and the
// tier/points bookkeeping. Every pending item follows the same lifecycle:
// a client moves it NONE→PENDING, only an admin moves it PENDING→COMMITTED
// or PENDING→REJECTED. Committing applies the side effect together with
// clearing the marker; rejecting just clears it.
type AccountService struct {
	repo     domain.AccountRepository
	sessions domain.SessionStore
	log      *zap.Logger

	adminUsername string
	adminPassword string
	referralBase  int
}

type Options struct {
	AdminUsername      string
	AdminPassword      string
	ReferralBasePoints int
}

func NewAccountService(repo domain.AccountRepository, sessions domain.SessionStore, log *zap.Logger, opt Options) *AccountService {
	if opt.AdminUsername == "" {
		opt.AdminUsername = "admin"
	}
	if opt.AdminPassword == "" {
		opt.AdminPassword = "admin"
	}
	if opt.ReferralBasePoints <= 0 {
		opt.ReferralBasePoints = 50
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AccountService{
		repo:          repo,
		sessions:      sessions,
		log:           log,
		adminUsername: opt.AdminUsername,
		adminPassword: opt.AdminPassword,
		referralBase:  opt.ReferralBasePoints,
	}
}

// Initialize seeds the singleton admin account if no ADMIN exists yet.
// Idempotent, called on every start.
func (s *AccountService) Initialize() error {
	users, err := s.repo.List()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Role == domain.RoleAdmin {
			return nil
		}
	}
	admin := &domain.User{
		ID:       utils.NewID(),
		Username: s.adminUsername,
		Password: s.adminPassword,
		Role:     domain.RoleAdmin,
		Tier:     domain.TierFree,
		FullName: "Administrador",
		JoinDate: time.Now(),
	}
	if err := s.repo.Create(admin); err != nil {
		return err
	}
	s.log.Info("admin account seeded", zap.String("username", admin.Username))
	return nil
}

type RegisterInput struct {
	Username string
	Password string
	CPF      string
	FullName string
	Email    string
	Phone    string
	Address  domain.Address
}

// Register creates a CLIENT account at tier FREE with zero points and an
// empty history. It does not log the new user in.
func (s *AccountService) Register(in RegisterInput) (*domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Password == "" || in.FullName == "" || in.Email == "" {
		return nil, domain.ErrInvalidField
	}
	if !utils.ValidCPF(in.CPF) {
		return nil, domain.ErrInvalidField
	}
	if u, err := s.repo.FindByUsername(in.Username); err != nil {
		return nil, err
	} else if u != nil {
		return nil, domain.ErrDuplicateUsername
	}
	if u, err := s.repo.FindByCPF(in.CPF); err != nil {
		return nil, err
	} else if u != nil {
		return nil, domain.ErrDuplicateCPF
	}
	if u, err := s.repo.FindByEmail(in.Email); err != nil {
		return nil, err
	} else if u != nil {
		return nil, domain.ErrDuplicateEmail
	}

	u := &domain.User{
		ID:       utils.NewID(),
		Username: in.Username,
		Password: in.Password,
		Role:     domain.RoleClient,
		Points:   0,
		Tier:     domain.TierFree,
		CPF:      in.CPF,
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Address:  in.Address,
		JoinDate: time.Now(),
	}
	if err := s.repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login returns the user only on an exact username+password match and marks
// the session. Any mismatch yields (nil, nil): callers cannot tell an unknown
// username from a wrong password.
func (s *AccountService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	u, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Password != password {
		return nil, nil
	}
	if err := s.sessions.Put(ctx, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

// CurrentSession returns the logged-in user as a live copy of the persisted
// record, or nil when no session is active.
func (s *AccountService) CurrentSession(ctx context.Context) (*domain.User, error) {
	id, err := s.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, nil
	}
	return s.repo.FindByID(id)
}

func (s *AccountService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// FindByIdentifier resolves a case-sensitive exact username or email match.
// Used by the password-recovery simulation only; it mutates nothing.
func (s *AccountService) FindByIdentifier(identifier string) (*domain.User, error) {
	u, err := s.repo.FindByUsername(identifier)
	if err != nil || u != nil {
		return u, err
	}
	return s.repo.FindByEmail(identifier)
}

// Update replaces the stored record wholesale. Uniqueness is not re-validated
// here; the caller owns that contract.
func (s *AccountService) Update(u *domain.User) error {
	return s.repo.Update(u)
}

func (s *AccountService) ListAll() ([]domain.User, error) {
	return s.repo.List()
}

func (s *AccountService) Get(id string) (*domain.User, error) {
	return s.repo.FindByID(id)
}

// RequestTierChange moves the user's tier request into PENDING. The tier
// field itself is untouched until an admin resolves the request.
func (s *AccountService) RequestTierChange(userID string, tier domain.Tier) (*domain.User, error) {
	u, err := s.client(userID)
	if err != nil {
		return nil, err
	}
	if !tier.Valid() || tier == u.Tier {
		return nil, domain.ErrInvalidField
	}
	if u.PendingTier != nil {
		return nil, domain.ErrPendingExists
	}
	u.PendingTier = &tier
	return u, s.repo.Update(u)
}

// ResolveTier commits or rejects a pending tier change. Approval swaps the
// tier and clears the marker in one update.
func (s *AccountService) ResolveTier(userID string, approve bool) (*domain.User, error) {
	u, err := s.must(userID)
	if err != nil {
		return nil, err
	}
	if u.PendingTier == nil {
		return nil, domain.ErrNothingPending
	}
	if approve {
		u.Tier = *u.PendingTier
	}
	u.PendingTier = nil
	if err := s.repo.Update(u); err != nil {
		return nil, err
	}
	s.log.Info("tier request resolved",
		zap.String("user", u.Username), zap.Bool("approved", approve), zap.String("tier", string(u.Tier)))
	return u, nil
}

// RequestPurchase flags a purchase awaiting admin confirmation. At most one
// may be outstanding.
func (s *AccountService) RequestPurchase(userID string) (*domain.User, error) {
	u, err := s.client(userID)
	if err != nil {
		return nil, err
	}
	if u.PendingPurchase {
		return nil, domain.ErrPendingExists
	}
	u.PendingPurchase = true
	return u, s.repo.Update(u)
}

// ResolvePurchase clears the purchase flag. On approval basePoints, grown by
// the user's tier bonus, is credited and a PURCHASE entry appended.
func (s *AccountService) ResolvePurchase(userID string, approve bool, basePoints int) (*domain.User, error) {
	u, err := s.must(userID)
	if err != nil {
		return nil, err
	}
	if !u.PendingPurchase {
		return nil, domain.ErrNothingPending
	}
	if approve {
		if basePoints <= 0 {
			return nil, domain.ErrInvalidField
		}
		delta := u.Tier.ApplyBonus(basePoints)
		s.credit(u, delta, domain.TxPurchase, "Compra confirmada")
	}
	u.PendingPurchase = false
	return u, s.repo.Update(u)
}

// SubmitReferral records a referral awaiting approval. Multiple referrals may
// be pending at once; each is resolved individually.
func (s *AccountService) SubmitReferral(userID, name, phone string) (*domain.User, error) {
	u, err := s.client(userID)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidField
	}
	u.PendingReferrals = append(u.PendingReferrals, domain.PendingReferral{
		ID:    utils.NewID(),
		Name:  name,
		Phone: phone,
		Date:  time.Now(),
	})
	return u, s.repo.Update(u)
}

// ResolveReferral removes the pending entry; on approval the referrer is
// credited the referral base grown by their tier bonus, in the same update.
func (s *AccountService) ResolveReferral(userID, referralID string, approve bool) (*domain.User, error) {
	u, err := s.must(userID)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range u.PendingReferrals {
		if u.PendingReferrals[i].ID == referralID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNothingPending
	}
	ref := u.PendingReferrals[idx]
	u.PendingReferrals = append(u.PendingReferrals[:idx], u.PendingReferrals[idx+1:]...)
	if approve {
		delta := u.Tier.ApplyBonus(s.referralBase)
		s.credit(u, delta, domain.TxReferral, fmt.Sprintf("Indicação aprovada: %s", ref.Name))
	}
	return u, s.repo.Update(u)
}

// Redeem spends points immediately; it is the only client-driven balance
// change and is guarded so points never go negative. On rejection nothing is
// recorded.
func (s *AccountService) Redeem(userID string, cost int, title string) (*domain.User, error) {
	u, err := s.client(userID)
	if err != nil {
		return nil, err
	}
	if cost <= 0 {
		return nil, domain.ErrInvalidField
	}
	if u.Points < cost {
		return nil, domain.ErrInsufficientPoints
	}
	s.credit(u, -cost, domain.TxRedeem, fmt.Sprintf("Resgate: %s", title))
	return u, s.repo.Update(u)
}

// AwardBonus is an admin-driven BONUS commit: base grown by the user's tier
// bonus, appended and credited at once.
func (s *AccountService) AwardBonus(userID string, base int, description string) (*domain.User, error) {
	u, err := s.must(userID)
	if err != nil {
		return nil, err
	}
	if base <= 0 {
		return nil, domain.ErrInvalidField
	}
	if description == "" {
		description = "Bônus"
	}
	delta := u.Tier.ApplyBonus(base)
	s.credit(u, delta, domain.TxBonus, description)
	return u, s.repo.Update(u)
}

func (s *AccountService) credit(u *domain.User, delta int, typ domain.TransactionType, desc string) {
	u.Points += delta
	u.History = append(u.History, domain.Transaction{
		ID:          utils.NewID(),
		Date:        time.Now(),
		Points:      delta,
		Type:        typ,
		Description: desc,
	})
}

func (s *AccountService) must(id string) (*domain.User, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (s *AccountService) client(id string) (*domain.User, error) {
	u, err := s.must(id)
	if err != nil {
		return nil, err
	}
	if u.Role != domain.RoleClient {
		return nil, domain.ErrNotClient
	}
	return u, nil
}
