// Package app composes the data layer: one explicit instance of every store,
// wired together and torn down through fx.
package app

import (
	"context"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"basking/internal/bus"
	"basking/internal/chat"
	"basking/internal/config"
	"basking/internal/feed"
	"basking/internal/fstore"
	"basking/internal/home"
	"basking/internal/journal"
	"basking/internal/lock"
	"basking/internal/logging"
	"basking/internal/profile"
	"basking/internal/seed"
	"basking/internal/settings"
	"basking/internal/wallet"
)

// Params holds the resolved home directory and configuration.
type Params struct {
	Home   string
	Config *config.Config
}

// Stores bundles the constructed data layer for fx.Populate callers.
type Stores struct {
	fx.In

	Bus      *bus.Bus
	Settings *settings.DB
	Files    *fstore.Store
	Profiles *profile.Store
	Feed     *feed.Repository
	Chat     *chat.Store
	Wallet   *wallet.Wallet
	Logger   *zap.Logger
}

// Module returns the fx module composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("basking",
		fx.Supply(p),
		fx.Provide(
			provideLogger,
			provideBus,
			provideJournal,
			provideLock,
			provideSettings,
			provideFileStore,
			provideProfileStore,
			provideFeedRepository,
			provideChatStore,
			provideWallet,
		),
		fx.Invoke(seedConversations),
		fx.Invoke(registerLifecycle),
	)
}

func provideLogger(p Params) (*zap.Logger, error) {
	if err := home.EnsureDirs(p.Home); err != nil {
		return nil, err
	}
	return logging.New(home.LogPath(p.Home))
}

func provideBus() *bus.Bus {
	return bus.New()
}

// provideJournal mirrors bus events to the on-disk journal so `basking watch`
// in another process can follow activity without holding the data lock.
func provideJournal(p Params, b *bus.Bus, logger *zap.Logger) (*journal.Writer, error) {
	return journal.NewWriter(home.EventsPath(p.Home), b, logger)
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	l, err := lock.Acquire(home.LockDir(p.Home))
	if err != nil {
		return nil, err
	}
	logger.Info("data lock acquired", zap.String("home", p.Home))
	return l, nil
}

func provideSettings(p Params, _ *lock.Lock, logger *zap.Logger) (*settings.DB, error) {
	db, err := settings.Open(home.SettingsDBPath(p.Home))
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if result.Changed {
		logger.Info("settings migrations applied", zap.Uint("version", result.Version))
	}
	return db, nil
}

func provideFileStore(p Params, _ *lock.Lock, logger *zap.Logger) (*fstore.Store, error) {
	dir := p.Config.DataDir
	if dir == "" {
		dir = home.DataDir(p.Home)
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	logger.Info("file store initialized", zap.String("dir", dir))
	return fstore.New(dir, logger), nil
}

func provideProfileStore(files *fstore.Store, st *settings.DB, b *bus.Bus, logger *zap.Logger) *profile.Store {
	return profile.NewStore(files, st, b, logger)
}

func provideFeedRepository(p Params, files *fstore.Store, profiles *profile.Store, b *bus.Bus, logger *zap.Logger) *feed.Repository {
	var seeds []feed.Post
	if p.Config.SeedDemoData {
		seeds = seed.Posts()
	}
	return feed.NewRepository(files, profiles, b, logger, seeds)
}

func provideChatStore(files *fstore.Store, b *bus.Bus, logger *zap.Logger) *chat.Store {
	return chat.NewStore(files, b, logger)
}

// The journal dependency orders construction: the wallet publishes the
// first-open bonus, which must land in the journal.
func provideWallet(p Params, st *settings.DB, b *bus.Bus, logger *zap.Logger, _ *journal.Writer) *wallet.Wallet {
	return wallet.New(st, b, logger, p.Config.InitialCoins)
}

// seedConversations installs the canned conversations on first launch, when
// no index file exists yet and a profile is already current.
func seedConversations(p Params, store *chat.Store, profiles *profile.Store, logger *zap.Logger) {
	if !p.Config.SeedDemoData || store.Loaded() {
		return
	}
	current := profiles.Current()
	if current == nil {
		return
	}
	store.SeedIndex(current.ID, seed.Conversations())
	logger.Info("seeded sample conversations", zap.String("owner", current.ID))
}

func registerLifecycle(lc fx.Lifecycle, lk *lock.Lock, st *settings.DB, jw *journal.Writer, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if err := jw.Close(); err != nil {
				logger.Warn("error closing event journal", zap.Error(err))
			}
			if err := st.Close(); err != nil {
				logger.Warn("error closing settings db", zap.Error(err))
			}
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			_ = logger.Sync()
			return nil
		},
	})
}
