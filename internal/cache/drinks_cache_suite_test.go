package cache

import (
	"context"
	"io"
	"testing"

	"github.com/rousage/coffeeshop/internal/testhelpers"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

type DrinksCacheTestSuite struct {
	suite.Suite
	container *testhelpers.ValkeyContainer
	cache     *Cache
	ctx       context.Context
}

func (suite *DrinksCacheTestSuite) SetupSuite() {
	suite.ctx = context.Background()

	// Create a new cache container for the whole test suite
	valkeyContainer, err := testhelpers.CreateValkeyContainer(suite.ctx)
	suite.Require().NoError(err, "could not start cache container")

	suite.container = valkeyContainer

	logger := zerolog.New(io.Discard)
	suite.cache = New(Connect(logger, suite.container.CacheConfig))
}

func (suite *DrinksCacheTestSuite) TearDownSuite() {
	suite.cache.client.Close()
	err := suite.container.Terminate(suite.ctx)
	suite.Require().NoError(err, "error terminating cache container")
}

func (suite *DrinksCacheTestSuite) TearDownTest() {
	// Clean the cache after each test
	resp, err := suite.cache.client.FlushAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal("OK", resp)
}

func (suite *DrinksCacheTestSuite) TestSetMenu() {
	expectedTTL := int64(defaultExpire.Seconds())

	key, err := suite.cache.SetMenu(suite.ctx, 0, `[{"id":1}]`)
	suite.NoError(err)
	suite.Equal("drinks:menu:0", key)

	ttl, err := suite.cache.client.TTL(suite.ctx, key)
	suite.NoError(err)
	suite.GreaterOrEqual(ttl, expectedTTL-1, "incorrect TTL (too low)")
	suite.LessOrEqual(ttl, expectedTTL, "incorrect TTL (too high)")

	// Overwriting resets the TTL
	_, err = suite.cache.SetMenu(suite.ctx, 0, `[{"id":1},{"id":2}]`)
	suite.NoError(err)
	ttl, err = suite.cache.client.TTL(suite.ctx, key)
	suite.NoError(err)
	suite.GreaterOrEqual(ttl, expectedTTL-1, "incorrect TTL (too low)")
}

func (suite *DrinksCacheTestSuite) TestGetMenu() {
	menu, err := suite.cache.GetMenu(suite.ctx, 0)
	suite.NoError(err)
	suite.Empty(menu, "menu is not empty for non-existing cache entry")

	_, err = suite.cache.SetMenu(suite.ctx, 0, `[{"id":1}]`)
	suite.NoError(err)

	menu, err = suite.cache.GetMenu(suite.ctx, 0)
	suite.NoError(err)
	suite.Equal(`[{"id":1}]`, menu)

	menu, err = suite.cache.GetMenu(suite.ctx, 1)
	suite.NoError(err)
	suite.Empty(menu, "menu of another generation should not be returned")
}

func (suite *DrinksCacheTestSuite) TestMenuVersion() {
	version, err := suite.cache.MenuVersion(suite.ctx)
	suite.NoError(err)
	suite.Zero(version, "version should start at 0")

	for expected := int64(1); expected <= 3; expected++ {
		next, err := suite.cache.InvalidateMenu(suite.ctx)
		suite.NoError(err)
		suite.Equal(expected, next)

		version, err = suite.cache.MenuVersion(suite.ctx)
		suite.NoError(err)
		suite.Equal(expected, version)
	}
}

func (suite *DrinksCacheTestSuite) TestInvalidateMenu() {
	_, err := suite.cache.SetMenu(suite.ctx, 0, `[]`)
	suite.NoError(err)

	version, err := suite.cache.InvalidateMenu(suite.ctx)
	suite.NoError(err)
	suite.Equal(int64(1), version)

	menu, err := suite.cache.GetMenu(suite.ctx, version)
	suite.NoError(err)
	suite.Empty(menu)

	exists, err := suite.cache.client.Exists(suite.ctx, []string{"drinks:menu:0"})
	suite.NoError(err)
	suite.Zero(exists, "previous generation should be removed")
}

func (suite *DrinksCacheTestSuite) TestInvalidateMenu_ConcurrentReader() {
	// A reader picks the generation, then a write lands before it stores
	readerVersion, err := suite.cache.MenuVersion(suite.ctx)
	suite.NoError(err)

	_, err = suite.cache.InvalidateMenu(suite.ctx)
	suite.NoError(err)

	_, err = suite.cache.SetMenu(suite.ctx, readerVersion, `[{"id":1}]`)
	suite.NoError(err)

	current, err := suite.cache.MenuVersion(suite.ctx)
	suite.NoError(err)
	menu, err := suite.cache.GetMenu(suite.ctx, current)
	suite.NoError(err)
	suite.Empty(menu, "menu stored by the slow reader must not be served")
}

func (suite *DrinksCacheTestSuite) TestPing() {
	suite.NoError(suite.cache.Ping(suite.ctx))
}

func TestDrinksCacheTestSuite(t *testing.T) {
	suite.Run(t, new(DrinksCacheTestSuite))
}
