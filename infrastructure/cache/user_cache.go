package cache

import (
	"sync"

	"savor/models"
)

// UserCache stores users by username.
type UserCache struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserCache() *UserCache {
	return &UserCache{users: make(map[string]models.User)}
}

func (c *UserCache) Add(username string, u models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users[username] = u
}

func (c *UserCache) Get(username string) (models.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	u, ok := c.users[username]
	return u, ok
}

func (c *UserCache) Delete(username string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.users, username)
}
