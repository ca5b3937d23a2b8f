package repo

import (
	"errors"

	"gorm.io/gorm"

	"loyalty-club-backend/internal/domain"
	"loyalty-club-backend/internal/feature/account"
)

type AccountRepo struct{ db *gorm.DB }

func NewAccountRepo(db *gorm.DB) *AccountRepo { return &AccountRepo{db: db} }

// Migrate creates the account tables. Safe to call on every start.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&account.AccountModel{},
		&account.TransactionModel{},
		&account.ReferralModel{},
	)
}

func (r *AccountRepo) Create(u *domain.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account.FromDomain(u)).Error; err != nil {
			return err
		}
		return appendHistory(tx, u.ID, u.History, nil)
	})
}

func (r *AccountRepo) FindByID(id string) (*domain.User, error) {
	return r.findOne("id = ?", id)
}

func (r *AccountRepo) FindByUsername(username string) (*domain.User, error) {
	return r.findOne("username = ?", username)
}

func (r *AccountRepo) FindByEmail(email string) (*domain.User, error) {
	return r.findOne("email = ?", email)
}

func (r *AccountRepo) FindByCPF(cpf string) (*domain.User, error) {
	return r.findOne("cpf = ?", cpf)
}

func (r *AccountRepo) findOne(query string, arg any) (*domain.User, error) {
	var m account.AccountModel
	err := r.db.First(&m, query, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.hydrate(&m)
}

// List returns every account in insertion order.
func (r *AccountRepo) List() ([]domain.User, error) {
	var ms []account.AccountModel
	if err := r.db.Order("created_at asc, id asc").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(ms))
	for i := range ms {
		u, err := r.hydrate(&ms[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, nil
}

// Update replaces the stored record wholesale. History rows are append-only:
// entries already persisted are left untouched, new tail entries are inserted.
// The pending-referral set is rewritten to match the supplied value.
func (r *AccountRepo) Update(u *domain.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		m := account.FromDomain(u)
		res := tx.Model(&account.AccountModel{}).Where("id = ?", u.ID).Updates(map[string]any{
			"username":         m.Username,
			"password":         m.Password,
			"role":             m.Role,
			"points":           m.Points,
			"tier":             m.Tier,
			"pending_tier":     m.PendingTier,
			"pending_purchase": m.PendingPurchase,
			"cpf":              m.CPF,
			"full_name":        m.FullName,
			"email":            m.Email,
			"phone":            m.Phone,
			"street":           m.Street,
			"number":           m.Number,
			"complement":       m.Complement,
			"district":         m.District,
			"city":             m.City,
			"uf":               m.UF,
			"cep":              m.CEP,
			"join_date":        m.JoinDate,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		var existing []string
		if err := tx.Model(&account.TransactionModel{}).
			Where("account_id = ?", u.ID).Pluck("tx_id", &existing).Error; err != nil {
			return err
		}
		seen := make(map[string]struct{}, len(existing))
		for _, id := range existing {
			seen[id] = struct{}{}
		}
		if err := appendHistory(tx, u.ID, u.History, seen); err != nil {
			return err
		}

		if err := tx.Where("account_id = ?", u.ID).Delete(&account.ReferralModel{}).Error; err != nil {
			return err
		}
		for _, ref := range u.PendingReferrals {
			row := account.ReferralModel{
				RefID:     ref.ID,
				AccountID: u.ID,
				Name:      ref.Name,
				Phone:     ref.Phone,
				Date:      ref.Date,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *AccountRepo) hydrate(m *account.AccountModel) (*domain.User, error) {
	var txs []account.TransactionModel
	if err := r.db.Where("account_id = ?", m.ID).Order("seq asc").Find(&txs).Error; err != nil {
		return nil, err
	}
	var refs []account.ReferralModel
	if err := r.db.Where("account_id = ?", m.ID).Order("seq asc").Find(&refs).Error; err != nil {
		return nil, err
	}
	return m.ToDomain(txs, refs), nil
}

func appendHistory(tx *gorm.DB, accountID string, history []domain.Transaction, seen map[string]struct{}) error {
	for _, t := range history {
		if seen != nil {
			if _, ok := seen[t.ID]; ok {
				continue
			}
		}
		row := account.TransactionModel{
			TxID:        t.ID,
			AccountID:   accountID,
			Date:        t.Date,
			Points:      t.Points,
			Type:        string(t.Type),
			Description: t.Description,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
