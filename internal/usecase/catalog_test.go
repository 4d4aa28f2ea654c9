package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/model"
	testhelpers "github.com/polkiloo/storefront/internal/test"
)

func newCatalog(addresses *testhelpers.AddressRepositoryStub, methods *testhelpers.PaymentMethodRepositoryStub, options *testhelpers.ShippingOptionRepositoryStub) *CatalogUseCase {
	return NewCatalogUseCase(addresses, methods, options, &config.Config{CatalogCacheTTL: time.Minute})
}

func TestCatalogUseCaseShippingOptionsCached(t *testing.T) {
	options := &testhelpers.ShippingOptionRepositoryStub{Options: []model.ShippingOption{{ID: "std", Carrier: "dhl"}}}
	uc := newCatalog(&testhelpers.AddressRepositoryStub{}, &testhelpers.PaymentMethodRepositoryStub{}, options)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := uc.ShippingOptions(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "std" {
			t.Fatalf("unexpected options %+v", got)
		}
	}
	if options.Calls != 1 {
		t.Fatalf("expected one repository read, got %d", options.Calls)
	}
}

func TestCatalogUseCasePaymentMethodsCachedPerUser(t *testing.T) {
	methods := &testhelpers.PaymentMethodRepositoryStub{Methods: []model.PaymentMethod{{ID: "pm-1", Type: model.PaymentTypeCard}}}
	uc := newCatalog(&testhelpers.AddressRepositoryStub{}, methods, &testhelpers.ShippingOptionRepositoryStub{})
	ctx := context.Background()

	if _, err := uc.PaymentMethods(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.PaymentMethods(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if methods.Calls != 1 {
		t.Fatalf("expected one repository read, got %d", methods.Calls)
	}
	if _, err := uc.PaymentMethods(ctx, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if methods.Calls != 2 {
		t.Fatalf("expected a separate read per user, got %d", methods.Calls)
	}
}

func TestCatalogUseCaseAddressWritesInvalidateCache(t *testing.T) {
	reads := 0
	addresses := &testhelpers.AddressRepositoryStub{}
	addresses.ListFn = func(ctx context.Context, userID int64) ([]model.Address, error) {
		reads++
		var out []model.Address
		for _, a := range addresses.Book {
			if a.UserID == userID {
				out = append(out, a)
			}
		}
		return out, nil
	}
	uc := newCatalog(addresses, &testhelpers.PaymentMethodRepositoryStub{}, &testhelpers.ShippingOptionRepositoryStub{})
	ctx := context.Background()

	if _, err := uc.Addresses(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Addresses(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reads != 1 {
		t.Fatalf("expected cached second read, got %d reads", reads)
	}

	created, err := uc.CreateAddress(ctx, 1, model.Address{FullName: "Alice", Line1: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := uc.Addresses(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reads != 2 {
		t.Fatalf("expected cache invalidated after create, got %d reads", reads)
	}
	if len(got) != 1 || got[0].ID != created.ID {
		t.Fatalf("expected created address listed, got %+v", got)
	}

	if err := uc.DeleteAddress(ctx, 1, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err = uc.Addresses(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty book after delete, got %+v", got)
	}
}

func TestCatalogUseCaseCreateAddressStampsOwner(t *testing.T) {
	addresses := &testhelpers.AddressRepositoryStub{}
	uc := newCatalog(addresses, &testhelpers.PaymentMethodRepositoryStub{}, &testhelpers.ShippingOptionRepositoryStub{})

	created, err := uc.CreateAddress(context.Background(), 42, model.Address{FullName: "Bob", Line1: "2 Oak Ave", City: "Shelbyville", PostalCode: "54321", Country: "US"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 42 {
		t.Fatalf("expected owner 42, got %d", created.UserID)
	}
}
