package memory

import (
	"github.com/planora/planora-backend/internal/models"
	"github.com/planora/planora-backend/pkg/apperr"
)

type UserRepository struct {
	store *Store
}

func (r *UserRepository) Create(user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Email == user.Email {
			return apperr.Conflict("User already exists")
		}
	}

	user.ID = newID()
	user.CreatedAt = now()
	r.store.users[user.ID] = cloneUser(user)
	return nil
}

func (r *UserRepository) GetByID(id string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	return cloneUser(user), nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, apperr.NotFound("User not found")
}
