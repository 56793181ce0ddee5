package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase/interfaces"
)

type UserRepository struct {
	s *Store
}

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func (r *UserRepository) CreateWithProfile(_ context.Context, u entities.User, p entities.Profile) (entities.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	email := strings.ToLower(u.Email)
	if _, taken := r.s.emails[email]; taken {
		return entities.User{}, interfaces.ErrDuplicate
	}
	if _, taken := r.s.users[u.ID]; taken {
		return entities.User{}, interfaces.ErrDuplicate
	}
	p.UserID = u.ID
	r.s.users[u.ID] = u
	r.s.emails[email] = u.ID
	r.s.profiles[u.ID] = cloneProfile(p)
	return u, nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.users[id], nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.emails[strings.ToLower(email)]
	if !ok {
		return entities.User{}, nil
	}
	return r.s.users[id], nil
}

func (r *UserRepository) ListByRole(_ context.Context, role entities.Role, activeOnly bool) ([]entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.User, 0)
	for _, u := range r.s.users {
		if u.Role != role || (activeOnly && !u.Active) {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *UserRepository) CountByRole(_ context.Context, role entities.Role) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, u := range r.s.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *UserRepository) SetActive(_ context.Context, id string, active bool) (entities.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return entities.User{}, nil
	}
	u.Active = active
	u.UpdatedAt = time.Now().UTC()
	r.s.users[id] = u
	return u, nil
}

func (r *UserRepository) GetProfile(_ context.Context, id string) (entities.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.profiles[id]
	if !ok {
		return entities.Profile{}, nil
	}
	return cloneProfile(p), nil
}

func (r *UserRepository) UpdateVendorVerification(_ context.Context, id string, status entities.VerificationStatus) (entities.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[id]
	if !ok || p.Vendor == nil {
		return entities.Profile{}, nil
	}
	p = cloneProfile(p)
	p.Vendor.VerificationStatus = status
	r.s.profiles[id] = p
	return cloneProfile(p), nil
}

func cloneProfile(p entities.Profile) entities.Profile {
	out := entities.Profile{UserID: p.UserID}
	if p.Customer != nil {
		c := *p.Customer
		out.Customer = &c
	}
	if p.Vendor != nil {
		v := *p.Vendor
		out.Vendor = &v
	}
	if p.Admin != nil {
		a := *p.Admin
		out.Admin = &a
	}
	return out
}
