// Package repomanager vends repositories bound to one scoped storage
// handle, so a service can run several repository calls over the same
// connection.
package repomanager

import (
	"github.com/dmitrijs2005/vaccx/internal/server/kv"
	"github.com/dmitrijs2005/vaccx/internal/server/repositories/feed"
	"github.com/dmitrijs2005/vaccx/internal/server/repositories/stocks"
	"github.com/dmitrijs2005/vaccx/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/vaccx/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users(c kv.Conn) users.Repository
	Tokens(c kv.Conn) tokens.Repository
	Stocks(c kv.Conn) stocks.Repository
	Feed(c kv.Conn) feed.Repository
}

// KVRepositoryManager vends the kv-backed repositories.
type KVRepositoryManager struct{}

func NewKVRepositoryManager() *KVRepositoryManager {
	return &KVRepositoryManager{}
}

func (m *KVRepositoryManager) Users(c kv.Conn) users.Repository {
	return users.NewKVRepository(c)
}

func (m *KVRepositoryManager) Tokens(c kv.Conn) tokens.Repository {
	return tokens.NewKVRepository(c)
}

func (m *KVRepositoryManager) Stocks(c kv.Conn) stocks.Repository {
	return stocks.NewKVRepository(c)
}

func (m *KVRepositoryManager) Feed(c kv.Conn) feed.Repository {
	return feed.NewKVRepository(c)
}
