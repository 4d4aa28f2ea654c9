package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/adapter/intake"
	"github.com/polkiloo/storefront/internal/app"
	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/repository"
	"github.com/polkiloo/storefront/internal/server/http/handlers"
	"github.com/polkiloo/storefront/internal/storage/postgres"
	"github.com/polkiloo/storefront/internal/test"
)

// The facade must keep satisfying the handler layer's contract.
var _ handlers.StorefrontFacade = (*app.StorefrontFacade)(nil)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:         ":0",
		DatabaseURI:        "postgres://stub",
		IntakeAddress:      "http://localhost",
		TokenSecret:        "secret",
		StatusPollInterval: time.Millisecond,
		WorkerPoolSize:     1,
		ShutdownTimeout:    time.Millisecond,
		RefreshBatchSize:   1,
		IntakeRateLimit:    1,
		CatalogCacheTTL:    time.Minute,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var facade *app.StorefrontFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(test.NewUserRepositoryStub())),
			fx.Replace(repository.CartRepository(&test.CartRepositoryStub{})),
			fx.Replace(repository.AddressRepository(&test.AddressRepositoryStub{})),
			fx.Replace(repository.PaymentMethodRepository(&test.PaymentMethodRepositoryStub{})),
			fx.Replace(repository.ShippingOptionRepository(&test.ShippingOptionRepositoryStub{})),
			fx.Replace(repository.CheckoutSessionRepository(test.NewSessionRepositoryStub())),
			fx.Replace(repository.OrderRepository(&test.OrderRepositoryStub{})),
			fx.Replace(repository.ReturnRepository(&test.ReturnRepositoryStub{})),
			fx.Replace(intake.Client(&test.IntakeClientStub{})),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected storefront facade instance")
	}
}
