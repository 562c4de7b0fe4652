//go:build wireinject

package api

import (
	"github.com/google/wire"
	"github/chapool/pouch-wallet/internal/config"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	NewKeystore,
	NewCipher,
	NewRegistry,
	NewMetrics,
	NewWalletManager,
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet, NewStores)
	return new(Server), nil
}

// InitNewServerWithStores returns a new Server instance with the given stores.
// All the other components are initialized via go wire according to the configuration.
func InitNewServerWithStores(
	_ config.Server,
	_ *Stores,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
