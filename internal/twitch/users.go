package twitch

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// UserCache remembers the Twitch user ID behind each login seen in chat.
// Moderator commands address users by @login, but storage is keyed by ID.
type UserCache struct {
	lru *expirable.LRU[string, string]
}

// NewUserCache creates a cache holding at most size logins for ttl each
func NewUserCache(size int, ttl time.Duration) *UserCache {
	return &UserCache{lru: expirable.NewLRU[string, string](size, nil, ttl)}
}

// Remember records the ID for a login
func (c *UserCache) Remember(login, userID string) {
	if login == "" || userID == "" {
		return
	}
	c.lru.Add(strings.ToLower(login), userID)
}

// Lookup returns the ID for a login, case-insensitively
func (c *UserCache) Lookup(login string) (string, bool) {
	return c.lru.Get(strings.ToLower(strings.TrimPrefix(login, "@")))
}

// Len returns the number of cached logins
func (c *UserCache) Len() int {
	return c.lru.Len()
}
