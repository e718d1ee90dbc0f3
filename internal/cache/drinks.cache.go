package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

const (
	menuKeyPrefix  = "drinks:menu:"
	menuVersionKey = "drinks:menu-version"
)

var (
	defaultExpire = 10 * time.Minute
)

func menuKey(version int64) string {
	return fmt.Sprintf("%s%d", menuKeyPrefix, version)
}

// MenuVersion returns the current menu generation. It is 0 until the first
// invalidation.
func (c *Cache) MenuVersion(ctx context.Context) (int64, error) {
	res, err := c.client.Get(ctx, menuVersionKey)
	if err != nil {
		return 0, err
	}
	if res.IsNil() {
		return 0, nil
	}

	version, err := strconv.ParseInt(res.Value(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid menu version %q: %w", res.Value(), err)
	}

	return version, nil
}

// SetMenu stores the serialized public drinks list built for the given
// generation and returns its key. A menu stored for an outdated generation is
// never read.
func (c *Cache) SetMenu(ctx context.Context, version int64, menu string) (string, error) {
	key := menuKey(version)
	if _, err := c.client.Set(ctx, key, menu); err != nil {
		return key, err
	}
	if _, err := c.client.Expire(ctx, key, defaultExpire); err != nil {
		return key, err
	}

	return key, nil
}

// GetMenu returns the cached drinks list of the given generation, or an empty
// string on a miss.
func (c *Cache) GetMenu(ctx context.Context, version int64) (string, error) {
	res, err := c.client.Get(ctx, menuKey(version))
	if err != nil {
		return "", err
	}
	if res.IsNil() {
		return "", nil
	}

	return res.Value(), nil
}

// InvalidateMenu starts a new menu generation and drops the previous menu.
// Returns the new generation.
func (c *Cache) InvalidateMenu(ctx context.Context) (int64, error) {
	version, err := c.client.Incr(ctx, menuVersionKey)
	if err != nil {
		return 0, err
	}

	if _, err := c.client.Del(ctx, []string{menuKey(version - 1)}); err != nil {
		return version, err
	}

	return version, nil
}
