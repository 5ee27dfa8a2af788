// Package backend is the data-access layer. It fronts the remote API with
// a tagged cache and keeps offline snapshots and the selected team in the
// local database.
package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/esportlab/elab/pkg/api"
	"github.com/esportlab/elab/pkg/cache"
	"github.com/esportlab/elab/pkg/cache/lru"
	"github.com/esportlab/elab/pkg/config"
	"github.com/esportlab/elab/pkg/credential"
	"github.com/esportlab/elab/pkg/db"
	"github.com/esportlab/elab/pkg/proto"
)

// Cache invalidation tags. Mutations invalidate exactly the tags they
// affect.
const (
	tagAvailability = "availability"
	tagProfile      = "profile"
)

func tagTeam(teamID int64) string {
	return fmt.Sprintf("team:%d", teamID)
}

// Backend is the client's data-access layer.
type Backend struct {
	cfg    *config.Config
	client *api.Client
	cache  cache.Cache
	creds  credential.Store
	db     *db.DB
	logger *log.Logger
}

// New returns a new Backend.
func New(ctx context.Context, cfg *config.Config, client *api.Client, creds credential.Store, database *db.DB) (*Backend, error) {
	var opts []cache.Option
	if cfg.Cache.Driver == "lru" {
		opts = append(opts,
			lru.WithSize(cfg.Cache.Size),
			lru.WithTTL(cfg.Cache.TTL.Duration()),
		)
	}

	c, err := cache.New(cfg.Cache.Driver, ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("new cache: %w", err)
	}

	return &Backend{
		cfg:    cfg,
		client: client,
		cache:  c,
		creds:  creds,
		db:     database,
		logger: log.FromContext(ctx).WithPrefix("backend"),
	}, nil
}

// Client returns the underlying API client.
func (b *Backend) Client() *api.Client {
	return b.client
}

// Credentials returns the credential store.
func (b *Backend) Credentials() credential.Store {
	return b.creds
}

// wrapAuth clears stored credentials when the backend rejects the session
// token, so the next invocation prompts a fresh login instead of retrying
// a dead token.
func (b *Backend) wrapAuth(err error) error {
	if errors.Is(err, proto.ErrUnauthorized) {
		if cerr := b.creds.Clear(); cerr != nil {
			b.logger.Error("clear credentials", "err", cerr)
		}
	}
	return err
}
