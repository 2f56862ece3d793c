package repomanager

import (
	"testing"

	"github.com/dmitrijs2005/vaccx/internal/server/kv"
	"github.com/dmitrijs2005/vaccx/internal/server/repositories/feed"
	"github.com/dmitrijs2005/vaccx/internal/server/repositories/stocks"
	"github.com/dmitrijs2005/vaccx/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/vaccx/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
)

func TestKVRepositoryManager_Types(t *testing.T) {
	m := NewKVRepositoryManager()
	c := kv.NewMemoryStore()

	assert.IsType(t, &users.KVRepository{}, m.Users(c))
	assert.IsType(t, &tokens.KVRepository{}, m.Tokens(c))
	assert.IsType(t, &stocks.KVRepository{}, m.Stocks(c))
	assert.IsType(t, &feed.KVRepository{}, m.Feed(c))
}

var _ RepositoryManager = (*KVRepositoryManager)(nil)
