package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.CartRepository { return s.Carts() },
		func(s *Storage) repository.AddressRepository { return s.Addresses() },
		func(s *Storage) repository.PaymentMethodRepository { return s.PaymentMethods() },
		func(s *Storage) repository.ShippingOptionRepository { return s.ShippingOptions() },
		func(s *Storage) repository.CheckoutSessionRepository { return s.Sessions() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.ReturnRepository { return s.Returns() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
