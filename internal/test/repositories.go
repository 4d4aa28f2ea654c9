package test

import (
	"context"
	"fmt"
	"sync"

	"github.com/polkiloo/storefront/internal/checkout"
	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// CartRepositoryStub keeps cart lines in a slice and lets tests override
// any operation.
type CartRepositoryStub struct {
	ItemsFn   func(context.Context, int64) ([]model.CartItem, error)
	SummaryFn func(context.Context, int64) (*model.CartSummary, error)

	Lines       []model.CartItem
	CartSummary *model.CartSummary
	Promo       *model.PromoCode
	NextID      int
	Cleared     []int64
	Err         error
}

// Items returns the configured cart lines.
func (s *CartRepositoryStub) Items(ctx context.Context, userID int64) ([]model.CartItem, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Lines, nil
}

// Summary returns the configured totals or zeroes.
func (s *CartRepositoryStub) Summary(ctx context.Context, userID int64) (*model.CartSummary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.CartSummary != nil {
		return s.CartSummary, nil
	}
	return &model.CartSummary{Promo: s.Promo}, nil
}

// AddItem appends a line with a generated identifier.
func (s *CartRepositoryStub) AddItem(ctx context.Context, userID int64, item model.CartItem) (*model.CartItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.NextID++
	item.ID = fmt.Sprintf("line-%d", s.NextID)
	s.Lines = append(s.Lines, item)
	return &item, nil
}

// UpdateQuantity mutates the matching line or reports not found.
func (s *CartRepositoryStub) UpdateQuantity(ctx context.Context, userID int64, itemID string, quantity int) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Lines {
		if s.Lines[i].ID == itemID {
			s.Lines[i].Quantity = quantity
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// RemoveItem drops the matching line or reports not found.
func (s *CartRepositoryStub) RemoveItem(ctx context.Context, userID int64, itemID string) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Lines {
		if s.Lines[i].ID == itemID {
			s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ApplyPromo stores the promo code.
func (s *CartRepositoryStub) ApplyPromo(ctx context.Context, userID int64, promo model.PromoCode) error {
	if s.Err != nil {
		return s.Err
	}
	s.Promo = &promo
	return nil
}

// RemovePromo clears the promo code.
func (s *CartRepositoryStub) RemovePromo(ctx context.Context, userID int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.Promo = nil
	return nil
}

// Clear empties the cart and records the call.
func (s *CartRepositoryStub) Clear(ctx context.Context, userID int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.Lines = nil
	s.Promo = nil
	s.Cleared = append(s.Cleared, userID)
	return nil
}

// AddressRepositoryStub serves saved addresses from a slice.
type AddressRepositoryStub struct {
	ListFn func(context.Context, int64) ([]model.Address, error)

	Book    []model.Address
	Next    int
	Deleted []string
	Err     error
}

// ListByUser returns addresses belonging to the user.
func (s *AddressRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Address
	for _, a := range s.Book {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// GetByID returns the matching address respecting ownership.
func (s *AddressRepositoryStub) GetByID(ctx context.Context, userID int64, id string) (*model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, a := range s.Book {
		if a.ID == id && a.UserID == userID {
			addr := a
			return &addr, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Create stores the address with a generated identifier.
func (s *AddressRepositoryStub) Create(ctx context.Context, addr model.Address) (*model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Next++
	addr.ID = fmt.Sprintf("addr-%d", s.Next)
	s.Book = append(s.Book, addr)
	return &addr, nil
}

// Delete removes the matching address and records the call.
func (s *AddressRepositoryStub) Delete(ctx context.Context, userID int64, id string) error {
	if s.Err != nil {
		return s.Err
	}
	for i, a := range s.Book {
		if a.ID == id && a.UserID == userID {
			s.Book = append(s.Book[:i], s.Book[i+1:]...)
			s.Deleted = append(s.Deleted, id)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// PaymentMethodRepositoryStub serves saved payment methods.
type PaymentMethodRepositoryStub struct {
	Methods []model.PaymentMethod
	Err     error
	Calls   int
}

// ListByUser returns the configured methods.
func (s *PaymentMethodRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.PaymentMethod, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Methods, nil
}

// GetByID returns the matching method or not found.
func (s *PaymentMethodRepositoryStub) GetByID(ctx context.Context, userID int64, id string) (*model.PaymentMethod, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, m := range s.Methods {
		if m.ID == id {
			method := m
			return &method, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ShippingOptionRepositoryStub serves delivery methods and counts reads so
// cache tests can assert on them.
type ShippingOptionRepositoryStub struct {
	Options []model.ShippingOption
	Err     error
	Calls   int
}

// List returns every configured option.
func (s *ShippingOptionRepositoryStub) List(ctx context.Context) ([]model.ShippingOption, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Options, nil
}

// GetByID returns the matching option or not found.
func (s *ShippingOptionRepositoryStub) GetByID(ctx context.Context, id string) (*model.ShippingOption, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, o := range s.Options {
		if o.ID == id {
			option := o
			return &option, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// SessionRepositoryStub keeps checkout sessions per user.
type SessionRepositoryStub struct {
	Sessions map[int64]checkout.Session
	Deleted   []int64
	GetErr    error
	SaveErr   error
	DeleteErr error
}

// NewSessionRepositoryStub constructs the stub with an initialized map.
func NewSessionRepositoryStub() *SessionRepositoryStub {
	return &SessionRepositoryStub{Sessions: make(map[int64]checkout.Session)}
}

// Get returns the stored session or not found.
func (s *SessionRepositoryStub) Get(ctx context.Context, userID int64) (*checkout.Session, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	if sess, ok := s.Sessions[userID]; ok {
		return &sess, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Save stores the session value.
func (s *SessionRepositoryStub) Save(ctx context.Context, userID int64, session checkout.Session) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if s.Sessions == nil {
		s.Sessions = make(map[int64]checkout.Session)
	}
	s.Sessions[userID] = session
	return nil
}

// Delete removes the session and records the call.
func (s *SessionRepositoryStub) Delete(ctx context.Context, userID int64) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	delete(s.Sessions, userID)
	s.Deleted = append(s.Deleted, userID)
	return nil
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	UpsertFn                func(context.Context, model.Order) (*model.Order, error)
	GetByNumberFn           func(context.Context, int64, string) (*model.Order, error)
	ListByUserFn            func(context.Context, int64) ([]model.Order, error)
	SelectBatchForRefreshFn func(context.Context, int) ([]model.Order, error)
	ApplyUpdateFn           func(context.Context, model.OrderStatusUpdate) error

	mu       sync.Mutex
	Orders   []model.Order
	Pending  []model.Order
	Upserted []model.Order
	Updates  []model.OrderStatusUpdate
}

// Lock guards concurrent access from worker tests.
func (s *OrderRepositoryStub) Lock() { s.mu.Lock() }

// Unlock releases the guard.
func (s *OrderRepositoryStub) Unlock() { s.mu.Unlock() }

// Upsert records the order and returns it with an identifier.
func (s *OrderRepositoryStub) Upsert(ctx context.Context, order model.Order) (*model.Order, error) {
	if s.UpsertFn != nil {
		return s.UpsertFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order.ID = int64(len(s.Upserted) + 1)
	s.Upserted = append(s.Upserted, order)
	s.Orders = append(s.Orders, order)
	return &order, nil
}

// GetByNumber returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByNumber(ctx context.Context, userID int64, number string) (*model.Order, error) {
	if s.GetByNumberFn != nil {
		return s.GetByNumberFn(ctx, userID, number)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.Orders {
		if o.Number == number && o.UserID == userID {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns orders from configured slice.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Orders, nil
}

// SelectBatchForRefresh returns non-terminal orders queued for refresh.
func (s *OrderRepositoryStub) SelectBatchForRefresh(ctx context.Context, limit int) ([]model.Order, error) {
	if s.SelectBatchForRefreshFn != nil {
		return s.SelectBatchForRefreshFn(ctx, limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit > 0 && limit < len(s.Pending) {
		return s.Pending[:limit], nil
	}
	return s.Pending, nil
}

// ApplyUpdate records update invocations.
func (s *OrderRepositoryStub) ApplyUpdate(ctx context.Context, update model.OrderStatusUpdate) error {
	if s.ApplyUpdateFn != nil {
		return s.ApplyUpdateFn(ctx, update)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Updates = append(s.Updates, update)
	return nil
}

// ReturnRepositoryStub allows tests to customize return persistence.
type ReturnRepositoryStub struct {
	CreateFn                func(context.Context, model.ReturnRequest) (*model.ReturnRequest, error)
	SelectBatchForRefreshFn func(context.Context, int) ([]model.ReturnRequest, error)

	mu       sync.Mutex
	Requests []model.ReturnRequest
	Pending  []model.ReturnRequest
	Updates  []model.ReturnStatusUpdate
	Next     int
}

// Create stores the request with a generated identifier.
func (s *ReturnRepositoryStub) Create(ctx context.Context, req model.ReturnRequest) (*model.ReturnRequest, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, req)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Next++
	req.ID = fmt.Sprintf("ret-%d", s.Next)
	s.Requests = append(s.Requests, req)
	return &req, nil
}

// GetByID returns the matching request respecting ownership.
func (s *ReturnRepositoryStub) GetByID(ctx context.Context, userID int64, id string) (*model.ReturnRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.Requests {
		if r.ID == id && r.UserID == userID {
			req := r
			return &req, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns requests from the configured slice.
func (s *ReturnRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.ReturnRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.ReturnRequest
	for _, r := range s.Requests {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// SelectBatchForRefresh returns open requests queued for refresh.
func (s *ReturnRepositoryStub) SelectBatchForRefresh(ctx context.Context, limit int) ([]model.ReturnRequest, error) {
	if s.SelectBatchForRefreshFn != nil {
		return s.SelectBatchForRefreshFn(ctx, limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit > 0 && limit < len(s.Pending) {
		return s.Pending[:limit], nil
	}
	return s.Pending, nil
}

// ApplyUpdate records update invocations.
func (s *ReturnRepositoryStub) ApplyUpdate(ctx context.Context, update model.ReturnStatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Updates = append(s.Updates, update)
	return nil
}
