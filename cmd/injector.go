package cmd

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/core/constants"
	"github.com/gaze-network/inscriber/internal/config"
	"github.com/gaze-network/inscriber/internal/postgres"
	"github.com/gaze-network/inscriber/modules/brc20"
	"github.com/gaze-network/inscriber/modules/inscription"
	"github.com/gaze-network/inscriber/modules/inscription/datagateway"
	inscriptionpostgres "github.com/gaze-network/inscriber/modules/inscription/repository/postgres"
	"github.com/gaze-network/inscriber/pkg/httpclient"
	"github.com/gaze-network/inscriber/pkg/inscriptionapi"
	"github.com/gaze-network/inscriber/pkg/logger"
	"github.com/gaze-network/inscriber/pkg/logger/slogx"
	"github.com/gaze-network/inscriber/pkg/session"
	"github.com/gaze-network/inscriber/pkg/wallet"
	"github.com/gaze-network/inscriber/pkg/wallet/bitcoind"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/do/v2"
)

// historyPool lets the injector close the pool on shutdown.
type historyPool struct {
	*pgxpool.Pool
}

func (p historyPool) Shutdown() {
	p.Close()
}

// bitcoindWallet releases the RPC client on shutdown.
type bitcoindWallet struct {
	*bitcoind.Wallet
	shutdown func()
}

func (w bitcoindWallet) Shutdown() {
	w.shutdown()
}

func newInjector(ctx context.Context, conf config.Config) do.Injector {
	injector := do.New()
	do.ProvideValue(injector, conf)
	do.ProvideValue(injector, ctx)

	// Auth token
	do.Provide(injector, func(i do.Injector) (*session.Session, error) {
		conf := do.MustInvoke[config.Config](i)
		var store session.Store = session.NewMemoryStore()
		if conf.Auth.TokenFile != "" {
			store = session.NewFileStore(conf.Auth.TokenFile)
		}
		sess := session.New(store)
		if conf.Auth.Token != "" || conf.Auth.TokenFile == "" {
			if err := sess.Initialize(ctx, conf.Auth.Token); err != nil {
				return nil, errors.WithStack(err)
			}
		}
		return sess, nil
	})

	// Inscription API
	do.Provide(injector, func(i do.Injector) (*inscriptionapi.Client, error) {
		conf := do.MustInvoke[config.Config](i)
		sess := do.MustInvoke[*session.Session](i)
		client, err := httpclient.New(conf.API.BaseURL, httpclient.Config{
			Debug:     conf.API.Debug,
			Headers:   map[string]string{"User-Agent": constants.UserAgent},
			Auth:      sess,
			Timeout:   conf.API.Timeout,
			RateLimit: conf.API.RateLimit,
		})
		if err != nil {
			return nil, errors.Wrap(err, "invalid inscription api configuration")
		}
		return inscriptionapi.New(client), nil
	})

	// Wallet
	do.Provide(injector, func(i do.Injector) (*wallet.Session, error) {
		conf := do.MustInvoke[config.Config](i)
		if conf.Wallet.Bitcoind.Host == "" {
			return wallet.NewSession(nil), nil
		}
		if !conf.Network.IsSupported() {
			return nil, errors.Wrapf(errs.Unsupported, "%q network is not supported", conf.Network.String())
		}
		w, err := do.Invoke[bitcoindWallet](i)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return wallet.NewSession(w), nil
	})
	do.Provide(injector, func(i do.Injector) (bitcoindWallet, error) {
		conf := do.MustInvoke[config.Config](i)
		w, shutdown, err := bitcoind.New(conf.Wallet.Bitcoind, conf.Network.ChainParams())
		if err != nil {
			return bitcoindWallet{}, errors.Wrap(err, "can't create bitcoind wallet")
		}
		return bitcoindWallet{Wallet: w, shutdown: shutdown}, nil
	})

	// Attempt history
	do.Provide(injector, func(i do.Injector) (historyPool, error) {
		conf := do.MustInvoke[config.Config](i)
		start := time.Now()
		pool, err := postgres.NewPool(ctx, conf.History.Postgres)
		if err != nil {
			return historyPool{}, errors.Wrap(err, "can't connect to history database")
		}
		logger.DebugContext(ctx, "Connected to history database", slogx.Duration("latency", time.Since(start)))
		return historyPool{Pool: pool}, nil
	})
	do.Provide(injector, func(i do.Injector) (datagateway.HistoryDataGateway, error) {
		pool, err := do.Invoke[historyPool](i)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return inscriptionpostgres.NewRepository(pool), nil
	})

	// Orchestrators
	do.Provide(injector, func(i do.Injector) (*inscription.Inscriber, error) {
		conf := do.MustInvoke[config.Config](i)
		api := do.MustInvoke[*inscriptionapi.Client](i)
		w, err := do.Invoke[*wallet.Session](i)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return inscription.New(conf.Inscription, conf.Network, api, w, historyRecorder(i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*brc20.BRC20, error) {
		conf := do.MustInvoke[config.Config](i)
		api := do.MustInvoke[*inscriptionapi.Client](i)
		w, err := do.Invoke[*wallet.Session](i)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return brc20.New(conf.BRC20, conf.Network, api, w, historyRecorder(i)), nil
	})

	return injector
}

// historyRecorder returns the history journal when enabled. An unreachable database
// disables the journal instead of failing the command.
func historyRecorder(i do.Injector) datagateway.HistoryDataGateway {
	conf := do.MustInvoke[config.Config](i)
	if !conf.History.Enabled {
		return nil
	}
	history, err := do.Invoke[datagateway.HistoryDataGateway](i)
	if err != nil {
		logger.Warn("Attempt history is disabled, can't open database", slogx.Error(err))
		return nil
	}
	return history
}

func shutdown(ctx context.Context, injector do.Injector) {
	if err := injector.Shutdown(); err != nil {
		logger.WarnContext(ctx, "Failed while gracefully shutting down", slogx.Error(err))
	}
}
