package main

import (
	"context"
	"fmt"

	"github.com/aretw0/dfa"
	"github.com/aretw0/dfa/internal/config"
	"github.com/aretw0/dfa/pkg/adapters/file"
	"github.com/aretw0/dfa/pkg/adapters/loam"
	"github.com/aretw0/dfa/pkg/adapters/memory"
	"github.com/aretw0/dfa/pkg/adapters/redis"
	"github.com/aretw0/dfa/pkg/automaton"
	"github.com/aretw0/dfa/pkg/ports"
)

// loadEngine builds the automaton described by a definition file.
func loadEngine(path string, strict bool) (*automaton.Engine, error) {
	opts := []dfa.Option{dfa.WithLogger(logger)}
	if strict {
		opts = append(opts, dfa.WithStrict())
	}
	return dfa.Load(path, opts...)
}

func noClose() error { return nil }

// openLoader builds the definition source selected by c.Store.Backend. The
// returned func releases backend connections.
func openLoader(ctx context.Context, c config.Config) (ports.DefinitionLoader, func() error, error) {
	switch c.Store.Backend {
	case config.BackendFile:
		return file.NewStore(c.Store.Dir), noClose, nil

	case config.BackendLoam:
		l, err := loam.Open(c.Store.Dir)
		if err != nil {
			return nil, noClose, err
		}
		return l, noClose, nil

	case config.BackendMemory:
		// Seeded once from the definitions directory; writes are lost on exit.
		store := memory.NewStore()
		seed := file.NewStore(c.Store.Dir)
		names, err := seed.List(ctx)
		if err != nil {
			return nil, noClose, fmt.Errorf("failed to seed memory store: %w", err)
		}
		for _, name := range names {
			def, err := seed.Get(ctx, name)
			if err != nil {
				return nil, noClose, fmt.Errorf("failed to seed memory store: %w", err)
			}
			if err := store.Save(ctx, def); err != nil {
				return nil, noClose, err
			}
		}
		logger.Debug("memory store seeded", "dir", c.Store.Dir, "count", len(names))
		return store, noClose, nil

	case config.BackendRedis:
		store := redis.New(c.Redis.Addr, c.Redis.Password, c.Redis.DB,
			redis.WithPrefix(c.Redis.Prefix),
			redis.WithTTL(c.Redis.TTL),
		)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, noClose, fmt.Errorf("failed to reach redis at %s: %w", c.Redis.Addr, err)
		}
		return store, store.Close, nil

	default:
		return nil, noClose, fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
}
