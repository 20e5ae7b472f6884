package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"github.com/autismo-mochis/clinic-service/internal/domain"
	"github.com/autismo-mochis/clinic-service/internal/repository"
)

const roleCacheTTL = 5 * time.Minute

// RoleCache resolves role names by id through Redis, falling back to the
// role repository on a miss. A nil or unreachable Redis client degrades to
// direct repository reads.
type RoleCache struct {
	client *redis.Client
	roles  repository.RoleRepository
}

// NewRoleCache builds a cache over the given repository.
func NewRoleCache(client *redis.Client, roles repository.RoleRepository) *RoleCache {
	return &RoleCache{client: client, roles: roles}
}

// NameByID returns the role name for the id, caching positive lookups.
func (c *RoleCache) NameByID(ctx context.Context, id int64) (domain.RoleName, error) {
	key := fmt.Sprintf("role:name:%d", id)

	if c.client != nil {
		if cached, err := c.client.Get(ctx, key).Result(); err == nil {
			return domain.RoleName(cached), nil
		}
	}

	role, err := c.roles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", pgx.ErrNoRows
		}
		return "", err
	}

	if c.client != nil {
		_ = c.client.Set(ctx, key, string(role.Name), roleCacheTTL).Err()
	}
	return role.Name, nil
}

// Invalidate drops the cached name for a role id after role mutations.
func (c *RoleCache) Invalidate(ctx context.Context, id int64) {
	if c.client == nil {
		return
	}
	_ = c.client.Del(ctx, fmt.Sprintf("role:name:%d", id)).Err()
}
