package repo

import (
	"loyalty-club-backend/internal/domain"
)

// MemoryAccountRepo is an in-process AccountRepository with the same lookup
// and insertion-order semantics as the gorm implementation. It backs unit
// tests, where a database would only add noise.
type MemoryAccountRepo struct {
	order []string
	byID  map[string]*domain.User
}

func NewMemoryAccountRepo() *MemoryAccountRepo {
	return &MemoryAccountRepo{byID: make(map[string]*domain.User)}
}

func (r *MemoryAccountRepo) Create(u *domain.User) error {
	cp := cloneUser(u)
	r.byID[u.ID] = cp
	r.order = append(r.order, u.ID)
	return nil
}

func (r *MemoryAccountRepo) FindByID(id string) (*domain.User, error) {
	if u, ok := r.byID[id]; ok {
		return cloneUser(u), nil
	}
	return nil, nil
}

func (r *MemoryAccountRepo) FindByUsername(username string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Username == username })
}

func (r *MemoryAccountRepo) FindByEmail(email string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Email == email })
}

func (r *MemoryAccountRepo) FindByCPF(cpf string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.CPF == cpf })
}

func (r *MemoryAccountRepo) find(match func(*domain.User) bool) (*domain.User, error) {
	for _, id := range r.order {
		if u := r.byID[id]; match(u) {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *MemoryAccountRepo) List() ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *cloneUser(r.byID[id]))
	}
	return out, nil
}

func (r *MemoryAccountRepo) Update(u *domain.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[u.ID] = cloneUser(u)
	return nil
}

func cloneUser(u *domain.User) *domain.User {
	cp := *u
	if u.PendingTier != nil {
		t := *u.PendingTier
		cp.PendingTier = &t
	}
	cp.History = append([]domain.Transaction(nil), u.History...)
	cp.PendingReferrals = append([]domain.PendingReferral(nil), u.PendingReferrals...)
	return &cp
}
