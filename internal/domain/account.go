package domain

import "time"

type Role string

const (
	RoleClient Role = "CLIENT"
	RoleAdmin  Role = "ADMIN"
)

type TransactionType string

const (
	TxPurchase TransactionType = "PURCHASE"
	TxRedeem   TransactionType = "REDEEM"
	TxBonus    TransactionType = "BONUS"
	TxReferral TransactionType = "REFERRAL"
)

// Transaction is one entry of a user's point ledger. Entries are append-only:
// once recorded they are never mutated or removed.
type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Points      int             `json:"points"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
}

// PendingReferral is a referral submitted by a client, awaiting an admin
// decision. Approval credits the referrer and removes the entry; rejection
// just removes it.
type PendingReferral struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
	Date  time.Time `json:"date"`
}

type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
	UF         string `json:"uf"`
	CEP        string `json:"cep"`
}

// User is the aggregate the whole program revolves around. Points never go
// negative, and Tier only changes through the pending-approval flow: a client
// sets PendingTier, an admin commits or discards it.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Role     Role   `json:"role"`

	Points           int               `json:"points"`
	Tier             Tier              `json:"tier"`
	PendingTier      *Tier             `json:"pendingTier,omitempty"`
	PendingPurchase  bool              `json:"pendingPurchase,omitempty"`
	PendingReferrals []PendingReferral `json:"pendingReferrals,omitempty"`

	CPF      string  `json:"cpf"`
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Address  Address `json:"address"`

	History  []Transaction `json:"history"`
	JoinDate time.Time     `json:"joinDate"`
}

// AccountRepository is the persistence boundary for User aggregates. Lookups
// return (nil, nil) when nothing matches. Update replaces the stored record
// wholesale and performs no uniqueness re-validation; that contract belongs to
// the service layer.
type AccountRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByUsername(username string) (*User, error)
	FindByEmail(email string) (*User, error)
	FindByCPF(cpf string) (*User, error)
	List() ([]User, error)
	Update(u *User) error
}
