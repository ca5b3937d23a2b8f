package account

import (
	"time"

	"loyalty-club-backend/internal/domain"
)

// AccountModel is the persisted shape of domain.User. The address is
// flattened into columns; history and referrals live in their own tables.
type AccountModel struct {
	ID       string `gorm:"primaryKey;type:varchar(32)"`
	Username string `gorm:"uniqueIndex;size:64;not null"`
	Password string `gorm:"size:100;not null"`
	Role     string `gorm:"size:16;not null;default:CLIENT"`

	Points          int     `gorm:"not null;default:0"`
	Tier            string  `gorm:"size:16;not null;default:FREE"`
	PendingTier     *string `gorm:"size:16"`
	PendingPurchase bool    `gorm:"not null;default:false"`

	CPF      string `gorm:"column:cpf;uniqueIndex;size:14;not null"`
	FullName string `gorm:"size:128;not null"`
	Email    string `gorm:"uniqueIndex;size:191;not null"`
	Phone    string `gorm:"size:32"`

	Street     string `gorm:"size:128"`
	Number     string `gorm:"size:16"`
	Complement string `gorm:"size:64"`
	District   string `gorm:"size:64"`
	City       string `gorm:"size:64"`
	UF         string `gorm:"column:uf;size:2"`
	CEP        string `gorm:"column:cep;size:9"`

	JoinDate  time.Time
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (AccountModel) TableName() string { return "accounts" }

// TransactionModel rows are append-only; Seq preserves insertion order.
type TransactionModel struct {
	Seq         uint   `gorm:"primaryKey;autoIncrement"`
	TxID        string `gorm:"column:tx_id;uniqueIndex;type:varchar(32)"`
	AccountID   string `gorm:"index;type:varchar(32);not null"`
	Date        time.Time
	Points      int    `gorm:"not null"`
	Type        string `gorm:"size:16;not null"`
	Description string `gorm:"size:255"`
}

func (TransactionModel) TableName() string { return "transactions" }

type ReferralModel struct {
	Seq       uint   `gorm:"primaryKey;autoIncrement"`
	RefID     string `gorm:"column:ref_id;uniqueIndex;type:varchar(32)"`
	AccountID string `gorm:"index;type:varchar(32);not null"`
	Name      string `gorm:"size:128;not null"`
	Phone     string `gorm:"size:32"`
	Date      time.Time
}

func (ReferralModel) TableName() string { return "pending_referrals" }

func FromDomain(u *domain.User) *AccountModel {
	m := &AccountModel{
		ID:              u.ID,
		Username:        u.Username,
		Password:        u.Password,
		Role:            string(u.Role),
		Points:          u.Points,
		Tier:            string(u.Tier),
		PendingPurchase: u.PendingPurchase,
		CPF:             u.CPF,
		FullName:        u.FullName,
		Email:           u.Email,
		Phone:           u.Phone,
		Street:          u.Address.Street,
		Number:          u.Address.Number,
		Complement:      u.Address.Complement,
		District:        u.Address.District,
		City:            u.Address.City,
		UF:              u.Address.UF,
		CEP:             u.Address.CEP,
		JoinDate:        u.JoinDate,
	}
	if u.PendingTier != nil {
		t := string(*u.PendingTier)
		m.PendingTier = &t
	}
	return m
}

func (m *AccountModel) ToDomain(history []TransactionModel, referrals []ReferralModel) *domain.User {
	u := &domain.User{
		ID:              m.ID,
		Username:        m.Username,
		Password:        m.Password,
		Role:            domain.Role(m.Role),
		Points:          m.Points,
		Tier:            domain.Tier(m.Tier),
		PendingPurchase: m.PendingPurchase,
		CPF:             m.CPF,
		FullName:        m.FullName,
		Email:           m.Email,
		Phone:           m.Phone,
		Address: domain.Address{
			Street:     m.Street,
			Number:     m.Number,
			Complement: m.Complement,
			District:   m.District,
			City:       m.City,
			UF:         m.UF,
			CEP:        m.CEP,
		},
		JoinDate: m.JoinDate,
	}
	if m.PendingTier != nil {
		t := domain.Tier(*m.PendingTier)
		u.PendingTier = &t
	}
	for _, tx := range history {
		u.History = append(u.History, domain.Transaction{
			ID:          tx.TxID,
			Date:        tx.Date,
			Points:      tx.Points,
			Type:        domain.TransactionType(tx.Type),
			Description: tx.Description,
		})
	}
	for _, r := range referrals {
		u.PendingReferrals = append(u.PendingReferrals, domain.PendingReferral{
			ID:    r.RefID,
			Name:  r.Name,
			Phone: r.Phone,
			Date:  r.Date,
		})
	}
	return u
}
