package db

import (
	"context"
	"fmt"
	"sync"

	"github.com/euscan/euscanwww/config"
	"github.com/go-pg/pg/v10"
	log "github.com/sirupsen/logrus"
)

type ConnectionProvider interface {
	GetConnection() *pg.DB
	Close() error
}

type connectionProviderImpl struct {
	creds config.DatabaseConfig
	db    *pg.DB
	once  sync.Once
}

func NewConnectionProvider(creds config.DatabaseConfig) ConnectionProvider {
	return &connectionProviderImpl{creds: creds}
}

func (c *connectionProviderImpl) GetConnection() *pg.DB {
	c.once.Do(func() {
		poolSize := c.creds.PoolSize
		if poolSize == 0 {
			poolSize = 20
		}
		c.db = pg.Connect(&pg.Options{
			Addr:       fmt.Sprintf("%s:%d", c.creds.Host, c.creds.Port),
			User:       c.creds.Username,
			Password:   c.creds.Password,
			Database:   c.creds.Name,
			PoolSize:   poolSize,
			MaxRetries: 5,
		})
		c.db.AddQueryHook(dbLogger{})
	})
	return c.db
}

func (c *connectionProviderImpl) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

type dbLogger struct{}

func (d dbLogger) BeforeQuery(ctx context.Context, q *pg.QueryEvent) (context.Context, error) {
	return ctx, nil
}

func (d dbLogger) AfterQuery(ctx context.Context, q *pg.QueryEvent) error {
	if !log.IsLevelEnabled(log.TraceLevel) {
		return nil
	}
	query, err := q.FormattedQuery()
	if err != nil {
		return nil
	}
	log.Tracef("DB query: %s", string(query))
	return nil
}
