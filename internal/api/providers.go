package api

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github/chapool/pouch-wallet/internal/config"
	"github/chapool/pouch-wallet/internal/metrics"
	"github/chapool/pouch-wallet/internal/store"
	boltstore "github/chapool/pouch-wallet/internal/store/bolt"
	pgstore "github/chapool/pouch-wallet/internal/store/postgres"
	"github/chapool/pouch-wallet/internal/wallet"
	"github/chapool/pouch-wallet/internal/wallet/cipher"
	"github/chapool/pouch-wallet/internal/wallet/keystore"
)

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirement for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

const metadataNamespace = "metadata"

// NewStores opens the secure and the metadata store as configured. The
// secure store is never kept in postgres.
func NewStores(cfg config.Server) (*Stores, error) {
	if cfg.Store.Backend == config.StoreBackendMemory {
		return &Stores{
			Secure: store.NewMemory(),
			Meta:   store.NewMemory(),
		}, nil
	}

	opts := boltstore.Options{Timeout: cfg.Store.OpenTimeout}

	secure, err := boltstore.Open(cfg.Store.SecretPath(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open secret store")
	}

	var meta store.KV

	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		timeout := cfg.Store.OpenTimeout
		if timeout <= 0 {
			timeout = boltstore.DefaultOpenTimeout
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		meta, err = pgstore.Open(ctx, cfg.Store.PostgresDSN, metadataNamespace)
	default:
		if filepath.Clean(cfg.Store.MetadataPath()) == filepath.Clean(cfg.Store.SecretPath()) {
			err = errors.New("secret and metadata store must not share a file")
			break
		}

		meta, err = boltstore.Open(cfg.Store.MetadataPath(), opts)
	}

	if err != nil {
		_ = secure.Close()
		return nil, errors.Wrap(err, "failed to open metadata store")
	}

	return &Stores{
		Secure: secure,
		Meta:   meta,
	}, nil
}

//nolint:ireturn // Returning interface is intentional for dependency injection
func NewKeystore(stores *Stores) keystore.Service {
	return keystore.NewService(stores.Secure)
}

//nolint:ireturn // Returning interface is intentional for dependency injection
func NewCipher(cfg config.Server) (cipher.Cipher, error) {
	return cipher.NewSuite(cfg.Wallet.Cipher)
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewMetrics returns nil when metrics are disabled, which the wallet manager accepts.
func NewMetrics(cfg config.Server, reg *prometheus.Registry) (*metrics.Service, error) {
	if !cfg.Metrics.Enabled {
		return nil, nil
	}

	return metrics.New(reg)
}

func NewWalletManager(
	cfg config.Server,
	secrets keystore.Service,
	stores *Stores,
	c cipher.Cipher,
	m *metrics.Service,
) (*wallet.Manager, error) {
	return wallet.NewManager(context.Background(), secrets, stores.Meta, c, cfg.Wallet, m)
}
