package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/polkiloo/storefront/internal/checkout"
	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// cartTaxRate is the flat rate applied to the discounted subtotal when the
// cart summary is computed. Shipping is priced at checkout, not here.
const cartTaxRate = 0.08

// dbPool is the subset of pgxpool.Pool the storage relies on.
type dbPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// newPgxPool is swapped out in tests to inject a mock pool.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (dbPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   dbPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type cartRepository struct {
	storage *Storage
}

type addressRepository struct {
	storage *Storage
}

type paymentMethodRepository struct {
	storage *Storage
}

type shippingOptionRepository struct {
	storage *Storage
}

type sessionRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type returnRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Carts() repository.CartRepository {
	return &cartRepository{storage: s}
}

func (s *Storage) Addresses() repository.AddressRepository {
	return &addressRepository{storage: s}
}

func (s *Storage) PaymentMethods() repository.PaymentMethodRepository {
	return &paymentMethodRepository{storage: s}
}

func (s *Storage) ShippingOptions() repository.ShippingOptionRepository {
	return &shippingOptionRepository{storage: s}
}

func (s *Storage) Sessions() repository.CheckoutSessionRepository {
	return &sessionRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Returns() repository.ReturnRepository {
	return &returnRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS addresses (
            id TEXT PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            full_name TEXT NOT NULL,
            line1 TEXT NOT NULL,
            line2 TEXT NOT NULL DEFAULT '',
            city TEXT NOT NULL,
            region TEXT NOT NULL DEFAULT '',
            postal_code TEXT NOT NULL,
            country TEXT NOT NULL,
            phone TEXT NOT NULL DEFAULT '',
            is_default BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS payment_methods (
            id TEXT PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            type TEXT NOT NULL,
            brand TEXT NOT NULL DEFAULT '',
            last4 TEXT NOT NULL DEFAULT '',
            exp_month INT NOT NULL DEFAULT 0,
            exp_year INT NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS shipping_options (
            id TEXT PRIMARY KEY,
            carrier TEXT NOT NULL,
            name TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            estimated_days INT NOT NULL,
            pickup_capable BOOLEAN NOT NULL DEFAULT FALSE
        )`,
		`CREATE TABLE IF NOT EXISTS cart_items (
            id TEXT PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            product_id TEXT NOT NULL,
            variant_id TEXT NOT NULL DEFAULT '',
            name TEXT NOT NULL,
            quantity INT NOT NULL,
            unit_price DOUBLE PRECISION NOT NULL,
            added_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (user_id, product_id, variant_id)
        )`,
		`CREATE TABLE IF NOT EXISTS cart_promos (
            user_id BIGINT PRIMARY KEY REFERENCES users(id),
            code TEXT NOT NULL,
            percent DOUBLE PRECISION NOT NULL DEFAULT 0,
            discount DOUBLE PRECISION NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS checkout_sessions (
            user_id BIGINT PRIMARY KEY REFERENCES users(id),
            state JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            number TEXT UNIQUE NOT NULL,
            status TEXT NOT NULL,
            carrier TEXT NOT NULL DEFAULT '',
            subtotal DOUBLE PRECISION NOT NULL DEFAULT 0,
            discount DOUBLE PRECISION NOT NULL DEFAULT 0,
            tax DOUBLE PRECISION NOT NULL DEFAULT 0,
            total DOUBLE PRECISION NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            cancelled_at TIMESTAMPTZ
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            product_id TEXT NOT NULL,
            variant_id TEXT NOT NULL DEFAULT '',
            name TEXT NOT NULL,
            quantity INT NOT NULL,
            unit_price DOUBLE PRECISION NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS returns (
            id TEXT PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            order_number TEXT NOT NULL,
            status TEXT NOT NULL,
            resolution TEXT NOT NULL,
            reason TEXT NOT NULL DEFAULT '',
            rejection_reason TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_addresses_user ON addresses(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_cart_items_user ON cart_items(user_id, added_at)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_returns_user ON returns(user_id, created_at DESC)`,
		`INSERT INTO shipping_options (id, carrier, name, price, estimated_days, pickup_capable) VALUES
            ('standard', 'PostNord', 'Standard delivery', 4.99, 5, FALSE),
            ('express', 'DHL', 'Express delivery', 12.99, 1, FALSE),
            ('pickup', 'PostNord', 'Pickup point', 2.99, 3, TRUE)
            ON CONFLICT (id) DO NOTHING`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Login = login
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, created_at FROM users WHERE login=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- CartRepository implementation ---

func (r *cartRepository) Items(ctx context.Context, userID int64) ([]model.CartItem, error) {
	const query = `SELECT id, product_id, variant_id, name, quantity, unit_price
                   FROM cart_items WHERE user_id=$1 ORDER BY added_at`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CartItem
	for rows.Next() {
		var item model.CartItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.VariantID, &item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *cartRepository) AddItem(ctx context.Context, userID int64, item model.CartItem) (*model.CartItem, error) {
	const query = `INSERT INTO cart_items (id, user_id, product_id, variant_id, name, quantity, unit_price)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   ON CONFLICT (user_id, product_id, variant_id) DO UPDATE
                   SET quantity = cart_items.quantity + EXCLUDED.quantity
                   RETURNING id, quantity`
	err := r.storage.pool.QueryRow(ctx, query,
		uuid.NewString(), userID, item.ProductID, item.VariantID, item.Name, item.Quantity, item.UnitPrice,
	).Scan(&item.ID, &item.Quantity)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, userID int64, itemID string, quantity int) error {
	const query = `UPDATE cart_items SET quantity=$1 WHERE id=$2 AND user_id=$3`
	tag, err := r.storage.pool.Exec(ctx, query, quantity, itemID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, userID int64, itemID string) error {
	const query = `DELETE FROM cart_items WHERE id=$1 AND user_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, itemID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) ApplyPromo(ctx context.Context, userID int64, promo model.PromoCode) error {
	const query = `INSERT INTO cart_promos (user_id, code, percent, discount)
                   VALUES ($1, $2, $3, $4)
                   ON CONFLICT (user_id) DO UPDATE
                   SET code = EXCLUDED.code,
                       percent = EXCLUDED.percent,
                       discount = EXCLUDED.discount`
	_, err := r.storage.pool.Exec(ctx, query, userID, promo.Code, promo.Percent, promo.Discount)
	return err
}

func (r *cartRepository) RemovePromo(ctx context.Context, userID int64) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM cart_promos WHERE user_id=$1`, userID)
	return err
}

func (r *cartRepository) Clear(ctx context.Context, userID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id=$1`, userID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM cart_promos WHERE user_id=$1`, userID); err != nil {
			return err
		}
		return nil
	})
}

// Summary recomputes cart totals from the stored lines and promo. Checkout
// copies these values into the submission payload without recomputing.
func (r *cartRepository) Summary(ctx context.Context, userID int64) (*model.CartSummary, error) {
	items, err := r.Items(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := model.CartSummary{}
	for _, item := range items {
		summary.Subtotal += float64(item.Quantity) * item.UnitPrice
	}
	summary.Subtotal = roundCents(summary.Subtotal)

	const promoQuery = `SELECT code, percent, discount FROM cart_promos WHERE user_id=$1`
	var promo model.PromoCode
	err = r.storage.pool.QueryRow(ctx, promoQuery, userID).Scan(&promo.Code, &promo.Percent, &promo.Discount)
	switch {
	case err == nil:
		if promo.Discount == 0 && promo.Percent > 0 {
			promo.Discount = roundCents(summary.Subtotal * promo.Percent / 100)
		}
		summary.Promo = &promo
		summary.Discount = promo.Discount
	case errors.Is(err, pgx.ErrNoRows):
	default:
		return nil, err
	}

	summary.Tax = roundCents((summary.Subtotal - summary.Discount) * cartTaxRate)
	summary.Total = roundCents(summary.Subtotal - summary.Discount + summary.Tax)
	return &summary, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// --- AddressRepository implementation ---

const addressColumns = `id, user_id, full_name, line1, line2, city, region, postal_code, country, phone, is_default, created_at`

func scanAddress(row pgx.Row) (*model.Address, error) {
	var a model.Address
	err := row.Scan(&a.ID, &a.UserID, &a.FullName, &a.Line1, &a.Line2, &a.City, &a.Region,
		&a.PostalCode, &a.Country, &a.Phone, &a.IsDefault, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *addressRepository) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Address
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *addressRepository) GetByID(ctx context.Context, userID int64, id string) (*model.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id=$1 AND user_id=$2`
	return scanAddress(r.storage.pool.QueryRow(ctx, query, id, userID))
}

func (r *addressRepository) Create(ctx context.Context, addr model.Address) (*model.Address, error) {
	addr.ID = uuid.NewString()
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if addr.IsDefault {
			if _, err := tx.Exec(ctx, `UPDATE addresses SET is_default=FALSE WHERE user_id=$1`, addr.UserID); err != nil {
				return err
			}
		}
		const query = `INSERT INTO addresses (id, user_id, full_name, line1, line2, city, region, postal_code, country, phone, is_default)
                       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
                       RETURNING created_at`
		return tx.QueryRow(ctx, query,
			addr.ID, addr.UserID, addr.FullName, addr.Line1, addr.Line2, addr.City,
			addr.Region, addr.PostalCode, addr.Country, addr.Phone, addr.IsDefault,
		).Scan(&addr.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func (r *addressRepository) Delete(ctx context.Context, userID int64, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM addresses WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- PaymentMethodRepository implementation ---

const paymentMethodColumns = `id, user_id, type, brand, last4, exp_month, exp_year, created_at`

func (r *paymentMethodRepository) ListByUser(ctx context.Context, userID int64) ([]model.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.PaymentMethod
	for rows.Next() {
		var m model.PaymentMethod
		if err := rows.Scan(&m.ID, &m.UserID, &m.Type, &m.Brand, &m.Last4, &m.ExpMonth, &m.ExpYear, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *paymentMethodRepository) GetByID(ctx context.Context, userID int64, id string) (*model.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE id=$1 AND user_id=$2`
	var m model.PaymentMethod
	err := r.storage.pool.QueryRow(ctx, query, id, userID).Scan(
		&m.ID, &m.UserID, &m.Type, &m.Brand, &m.Last4, &m.ExpMonth, &m.ExpYear, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// --- ShippingOptionRepository implementation ---

func (r *shippingOptionRepository) List(ctx context.Context) ([]model.ShippingOption, error) {
	const query = `SELECT id, carrier, name, price, estimated_days, pickup_capable
                   FROM shipping_options ORDER BY price`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ShippingOption
	for rows.Next() {
		var o model.ShippingOption
		if err := rows.Scan(&o.ID, &o.Carrier, &o.Name, &o.Price, &o.EstimatedDays, &o.PickupCapable); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *shippingOptionRepository) GetByID(ctx context.Context, id string) (*model.ShippingOption, error) {
	const query = `SELECT id, carrier, name, price, estimated_days, pickup_capable
                   FROM shipping_options WHERE id=$1`
	var o model.ShippingOption
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&o.ID, &o.Carrier, &o.Name, &o.Price, &o.EstimatedDays, &o.PickupCapable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// --- CheckoutSessionRepository implementation ---

func (r *sessionRepository) Get(ctx context.Context, userID int64) (*checkout.Session, error) {
	const query = `SELECT state FROM checkout_sessions WHERE user_id=$1`
	var state []byte
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&state)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	var session checkout.Session
	if err := json.Unmarshal(state, &session); err != nil {
		return nil, fmt.Errorf("decode checkout session: %w", err)
	}
	return &session, nil
}

func (r *sessionRepository) Save(ctx context.Context, userID int64, session checkout.Session) error {
	state, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode checkout session: %w", err)
	}

	const query = `INSERT INTO checkout_sessions (user_id, state)
                   VALUES ($1, $2)
                   ON CONFLICT (user_id) DO UPDATE
                   SET state = EXCLUDED.state, updated_at = NOW()`
	_, err = r.storage.pool.Exec(ctx, query, userID, state)
	return err
}

// Delete drops the session. Deleting an absent session is not an error so
// checkout cancellation stays idempotent.
func (r *sessionRepository) Delete(ctx context.Context, userID int64) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM checkout_sessions WHERE user_id=$1`, userID)
	return err
}

// --- OrderRepository implementation ---

const orderColumns = `id, user_id, number, status, carrier, subtotal, discount, tax, total, created_at, updated_at, cancelled_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.Number, &o.Status, &o.ShippingCarrier,
		&o.Subtotal, &o.Discount, &o.Tax, &o.Total, &o.CreatedAt, &o.UpdatedAt, &o.CancelledAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Upsert(ctx context.Context, order model.Order) (*model.Order, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `INSERT INTO orders (user_id, number, status, carrier, subtotal, discount, tax, total, created_at, updated_at, cancelled_at)
                       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
                       ON CONFLICT (number) DO UPDATE
                       SET status = EXCLUDED.status,
                           updated_at = EXCLUDED.updated_at,
                           cancelled_at = EXCLUDED.cancelled_at
                       RETURNING id`
		err := tx.QueryRow(ctx, query,
			order.UserID, order.Number, order.Status, order.ShippingCarrier,
			order.Subtotal, order.Discount, order.Tax, order.Total,
			order.CreatedAt, order.UpdatedAt, order.CancelledAt,
		).Scan(&order.ID)
		if err != nil {
			return err
		}

		// Items are immutable; rewrite them so retried submissions stay
		// consistent with the upstream document.
		if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id=$1`, order.ID); err != nil {
			return err
		}
		const insertItem = `INSERT INTO order_items (order_id, product_id, variant_id, name, quantity, unit_price)
                            VALUES ($1, $2, $3, $4, $5, $6)`
		for _, item := range order.Items {
			if _, err := tx.Exec(ctx, insertItem, order.ID, item.ProductID, item.VariantID, item.Name, item.Quantity, item.UnitPrice); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByNumber(ctx context.Context, userID int64, number string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE number=$1 AND user_id=$2`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, number, userID))
	if err != nil {
		return nil, err
	}

	items, err := r.itemsFor(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *orderRepository) itemsFor(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	const query = `SELECT product_id, variant_id, name, quantity, unit_price
                   FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ProductID, &item.VariantID, &item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListByUser returns the order headers newest first. Line items are loaded
// on the detail lookup, not here.
func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) SelectBatchForRefresh(ctx context.Context, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
              WHERE status NOT IN ('delivered', 'cancelled', 'refunded', 'returned')
              ORDER BY updated_at
              LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ApplyUpdate(ctx context.Context, update model.OrderStatusUpdate) error {
	const query = `UPDATE orders SET status=$1, updated_at=$2, cancelled_at=$3 WHERE number=$4`
	tag, err := r.storage.pool.Exec(ctx, query, update.Status, update.UpdatedAt, update.CancelledAt, update.Number)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ReturnRepository implementation ---

const returnColumns = `id, user_id, order_number, status, resolution, reason, rejection_reason, created_at, updated_at`

func scanReturn(row pgx.Row) (*model.ReturnRequest, error) {
	var req model.ReturnRequest
	err := row.Scan(&req.ID, &req.UserID, &req.OrderNumber, &req.Status, &req.Resolution,
		&req.Reason, &req.RejectionReason, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *returnRepository) Create(ctx context.Context, req model.ReturnRequest) (*model.ReturnRequest, error) {
	req.ID = uuid.NewString()
	const query = `INSERT INTO returns (id, user_id, order_number, status, resolution, reason)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		req.ID, req.UserID, req.OrderNumber, req.Status, req.Resolution, req.Reason,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *returnRepository) GetByID(ctx context.Context, userID int64, id string) (*model.ReturnRequest, error) {
	query := `SELECT ` + returnColumns + ` FROM returns WHERE id=$1 AND user_id=$2`
	return scanReturn(r.storage.pool.QueryRow(ctx, query, id, userID))
}

func (r *returnRepository) ListByUser(ctx context.Context, userID int64) ([]model.ReturnRequest, error) {
	query := `SELECT ` + returnColumns + ` FROM returns WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ReturnRequest
	for rows.Next() {
		req, err := scanReturn(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *returnRepository) SelectBatchForRefresh(ctx context.Context, limit int) ([]model.ReturnRequest, error) {
	query := `SELECT ` + returnColumns + ` FROM returns
              WHERE status NOT IN ('refunded', 'exchanged', 'rejected')
              ORDER BY updated_at
              LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ReturnRequest
	for rows.Next() {
		req, err := scanReturn(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *returnRepository) ApplyUpdate(ctx context.Context, update model.ReturnStatusUpdate) error {
	const query = `UPDATE returns SET status=$1, rejection_reason=$2, updated_at=$3 WHERE id=$4`
	tag, err := r.storage.pool.Exec(ctx, query, update.Status, update.RejectionReason, update.UpdatedAt, update.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
