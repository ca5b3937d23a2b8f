package repo

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"loyalty-club-backend/internal/core/database"
	"loyalty-club-backend/internal/domain"
)

// Per-test in-memory database to avoid cross-test interference.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.NewGorm(database.Opts{Driver: "sqlite", DSN: dsn, LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func sampleUser(n int) *domain.User {
	bronze := domain.TierBronze
	return &domain.User{
		ID:       fmt.Sprintf("user-%04d", n),
		Username: fmt.Sprintf("user%d", n),
		Password: "pass1234",
		Role:     domain.RoleClient,
		Points:   100,
		Tier:     domain.TierFree,
		PendingTier: &bronze,
		CPF:      fmt.Sprintf("000.000.%03d-00", n),
		FullName: fmt.Sprintf("Usuário %d", n),
		Email:    fmt.Sprintf("user%d@example.com", n),
		Phone:    "11 99999-0000",
		Address: domain.Address{
			Street: "Rua das Flores", Number: "100", District: "Centro",
			City: "São Paulo", UF: "SP", CEP: "01000-000",
		},
		History: []domain.Transaction{
			{ID: fmt.Sprintf("tx-%d-1", n), Date: time.Now(), Points: 100, Type: domain.TxBonus, Description: "saldo inicial"},
		},
		PendingReferrals: []domain.PendingReferral{
			{ID: fmt.Sprintf("ref-%d-1", n), Name: "Maria Silva", Phone: "11 97777-0001", Date: time.Now()},
		},
		JoinDate: time.Now(),
	}
}

func TestCreateAndLookups(t *testing.T) {
	r := NewAccountRepo(setupDB(t))
	u := sampleUser(1)
	require.NoError(t, r.Create(u))

	for _, got := range []func() (*domain.User, error){
		func() (*domain.User, error) { return r.FindByID(u.ID) },
		func() (*domain.User, error) { return r.FindByUsername(u.Username) },
		func() (*domain.User, error) { return r.FindByEmail(u.Email) },
		func() (*domain.User, error) { return r.FindByCPF(u.CPF) },
	} {
		found, err := got()
		require.NoError(t, err)
		require.NotNil(t, found)
		require.Equal(t, u.ID, found.ID)
		require.Equal(t, u.Username, found.Username)
		require.Equal(t, u.Points, found.Points)
		require.NotNil(t, found.PendingTier)
		require.Equal(t, domain.TierBronze, *found.PendingTier)
		require.Len(t, found.History, 1)
		require.Len(t, found.PendingReferrals, 1)
	}

	miss, err := r.FindByUsername("ghost")
	require.NoError(t, err)
	require.Nil(t, miss)
}

func TestUpdateReplacesRecord(t *testing.T) {
	r := NewAccountRepo(setupDB(t))
	u := sampleUser(1)
	require.NoError(t, r.Create(u))

	// commit the pending tier, spend points, resolve the referral
	u.Tier = domain.TierBronze
	u.PendingTier = nil
	u.Points = 0
	u.History = append(u.History, domain.Transaction{
		ID: "tx-1-2", Date: time.Now(), Points: -100, Type: domain.TxRedeem, Description: "Resgate: Película de Brinde",
	})
	u.PendingReferrals = nil
	require.NoError(t, r.Update(u))

	got, err := r.FindByID(u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, domain.TierBronze, got.Tier)
	require.Nil(t, got.PendingTier)
	require.Zero(t, got.Points)
	require.Empty(t, got.PendingReferrals)

	// history kept insertion order and both entries survived
	require.Len(t, got.History, 2)
	require.Equal(t, "tx-1-1", got.History[0].ID)
	require.Equal(t, "tx-1-2", got.History[1].ID)
	require.Equal(t, -100, got.History[1].Points)
}

func TestUpdateUnknownID(t *testing.T) {
	r := NewAccountRepo(setupDB(t))
	err := r.Update(sampleUser(9))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListInsertionOrder(t *testing.T) {
	r := NewAccountRepo(setupDB(t))
	for i := 1; i <= 3; i++ {
		u := sampleUser(i)
		u.PendingReferrals = nil
		require.NoError(t, r.Create(u))
	}

	users, err := r.List()
	require.NoError(t, err)
	require.Len(t, users, 3)
	for i := 1; i <= 3; i++ {
		require.Equal(t, fmt.Sprintf("user%d", i), users[i-1].Username)
	}
}

func TestDuplicateUsernameRejectedByIndex(t *testing.T) {
	r := NewAccountRepo(setupDB(t))
	u := sampleUser(1)
	u.PendingReferrals = nil
	u.History = nil
	require.NoError(t, r.Create(u))

	dup := sampleUser(2)
	dup.Username = u.Username
	dup.PendingReferrals = nil
	dup.History = nil
	require.Error(t, r.Create(dup))
}
