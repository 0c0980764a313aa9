package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DanRulev/quizmeon/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const schema = `
CREATE TABLE IF NOT EXISTS quizzes (
	id         UUID PRIMARY KEY,
	title      TEXT NOT NULL,
	difficulty TEXT NOT NULL CHECK (difficulty IN ('Easy', 'Intermediate', 'Hard')),
	questions  JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type OpenFunc func(ctx context.Context) (*sqlx.DB, error)

// Connector hands out one shared pool, opened on first use. Concurrent first
// callers wait on the same attempt; a failed attempt is not cached.
type Connector struct {
	open  OpenFunc
	log   *zap.Logger
	group singleflight.Group

	mu sync.RWMutex
	db *sqlx.DB
}

func NewConnector(cfg config.DBConfig, log *zap.Logger) *Connector {
	return NewConnectorWithOpener(func(ctx context.Context) (*sqlx.DB, error) {
		return InitDB(ctx, cfg)
	}, log)
}

func NewConnectorWithOpener(open OpenFunc, log *zap.Logger) *Connector {
	return &Connector{
		open: open,
		log:  log,
	}
}

func (c *Connector) Conn(ctx context.Context) (*sqlx.DB, error) {
	if db := c.cached(); db != nil {
		return db, nil
	}

	ch := c.group.DoChan("connect", func() (interface{}, error) {
		if db := c.cached(); db != nil {
			return db, nil
		}

		// detached from the first caller so its cancellation does not fail the other waiters
		openCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := c.open(openCtx)
		if err != nil {
			c.log.Error("failed to connect to database", zap.Error(err))
			return nil, err
		}

		c.mu.Lock()
		c.db = db
		c.mu.Unlock()

		c.log.Info("database connection established")
		return db, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*sqlx.DB), nil
	}
}

func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

func (c *Connector) cached() *sqlx.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

func InitDB(ctx context.Context, cfg config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed ensure schema: %w", err)
	}

	return db, nil
}
