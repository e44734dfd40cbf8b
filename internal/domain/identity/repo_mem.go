package identity

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// UserRepoMem is the in-process user store: one map keyed by id, guarded by
// a RWMutex. Records are copied on the way in and out, so callers never
// hold memory the store also writes.
type UserRepoMem struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewUserRepoMem() *UserRepoMem {
	return &UserRepoMem{users: make(map[string]*User)}
}

func (r *UserRepoMem) Create(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	c := *u
	r.users[u.ID] = &c
	return nil
}

func (r *UserRepoMem) GetByID(_ context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *u
	return &c, nil
}

func (r *UserRepoMem) GetByUsername(_ context.Context, username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *UserRepoMem) ListByRole(_ context.Context, roles ...Role) ([]*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*User{}
	for _, u := range r.users {
		for _, role := range roles {
			if u.Role == role {
				c := *u
				out = append(out, &c)
				break
			}
		}
	}
	return out, nil
}
