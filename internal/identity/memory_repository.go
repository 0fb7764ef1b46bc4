package identity

import (
	"context"
	"sync"
	"time"
)

type memoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]User
}

// NewMemoryRepository builds an in-memory user store for tests and local development.
func NewMemoryRepository() Repository {
	return &memoryRepository{users: make(map[int64]User)}
}

func (r *memoryRepository) Create(_ context.Context, user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return User{}, ErrEmailTaken
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.DateOfCreation = time.Now().UTC().Truncate(time.Second)
	r.users[user.ID] = user
	return user, nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *memoryRepository) UpdateProfile(_ context.Context, id int64, upd ProfileUpdate) error {
	fields := upd.assignments()
	if len(fields) == 0 {
		return ErrNoFieldsProvided
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	for _, f := range fields {
		switch f.column {
		case "firstname":
			user.Firstname = f.value
		case "lastname":
			user.Lastname = f.value
		case "email":
			for otherID, other := range r.users {
				if otherID != id && other.Email == f.value {
					return ErrEmailTaken
				}
			}
			user.Email = f.value
		case "address":
			user.Address = f.value
		case "mobile":
			user.Mobile = f.value
		}
	}
	r.users[id] = user
	return nil
}
