package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/arzonstar/storefront/internal/domain/errors"
	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on. Tests swap in
// a pgxmock pool through newPgxPool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct{ storage *Storage }
type productRepository struct{ storage *Storage }
type orderRepository struct{ storage *Storage }
type depositRepository struct{ storage *Storage }
type referralRepository struct{ storage *Storage }
type notificationRepository struct{ storage *Storage }
type cardRepository struct{ storage *Storage }
type activityRepository struct{ storage *Storage }
type statsRepository struct{ storage *Storage }

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
func (s *Storage) Users() repository.UserRepository { return &userRepository{storage: s} }

func (s *Storage) Products() repository.ProductRepository { return &productRepository{storage: s} }

func (s *Storage) Orders() repository.OrderRepository { return &orderRepository{storage: s} }

func (s *Storage) Deposits() repository.DepositRepository { return &depositRepository{storage: s} }

func (s *Storage) Referrals() repository.ReferralRepository { return &referralRepository{storage: s} }

func (s *Storage) Notifications() repository.NotificationRepository {
	return &notificationRepository{storage: s}
}

func (s *Storage) Cards() repository.CardRepository { return &cardRepository{storage: s} }

func (s *Storage) Activity() repository.ActivityRepository { return &activityRepository{storage: s} }

func (s *Storage) Stats() repository.StatsRepository { return &statsRepository{storage: s} }

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            telegram_id TEXT UNIQUE NOT NULL,
            username TEXT NOT NULL DEFAULT '',
            first_name TEXT NOT NULL DEFAULT '',
            last_name TEXT NOT NULL DEFAULT '',
            photo_url TEXT NOT NULL DEFAULT '',
            is_subscribed BOOLEAN NOT NULL DEFAULT FALSE,
            is_admin BOOLEAN NOT NULL DEFAULT FALSE,
            balance BIGINT NOT NULL DEFAULT 0 CHECK (balance >= 0),
            total_spent BIGINT NOT NULL DEFAULT 0,
            referral_code TEXT UNIQUE NOT NULL,
            referrer_id BIGINT REFERENCES users(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id BIGSERIAL PRIMARY KEY,
            type TEXT NOT NULL,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price BIGINT NOT NULL CHECK (price > 0),
            original_price BIGINT,
            duration_months INT,
            stars_amount INT,
            image_url TEXT NOT NULL DEFAULT '',
            rating DOUBLE PRECISION NOT NULL DEFAULT 0,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            product_id BIGINT NOT NULL REFERENCES products(id),
            recipient_username TEXT NOT NULL DEFAULT '',
            quantity INT NOT NULL DEFAULT 1,
            total_price BIGINT NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending',
            payment_method TEXT NOT NULL DEFAULT 'balance',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS deposit_requests (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            amount BIGINT NOT NULL CHECK (amount > 0),
            receipt_url TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'pending',
            admin_note TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS referrals (
            id BIGSERIAL PRIMARY KEY,
            referrer_id BIGINT NOT NULL REFERENCES users(id),
            referred_id BIGINT UNIQUE NOT NULL REFERENCES users(id),
            bonus_earned BIGINT NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS notifications (
            id BIGSERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            message TEXT NOT NULL,
            image_url TEXT NOT NULL DEFAULT '',
            is_sent BOOLEAN NOT NULL DEFAULT FALSE,
            sent_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS admin_cards (
            id BIGSERIAL PRIMARY KEY,
            card_number TEXT NOT NULL,
            card_holder TEXT NOT NULL,
            bank_name TEXT NOT NULL,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS user_nfts (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            nft_name TEXT NOT NULL,
            nft_image TEXT NOT NULL DEFAULT '',
            order_id BIGINT REFERENCES orders(id),
            purchase_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS activity_logs (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT,
            action TEXT NOT NULL,
            details JSONB,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_deposits_user ON deposit_requests(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_referrals_referrer ON referrals(referrer_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const userColumns = `id, telegram_id, username, first_name, last_name, photo_url,
       is_subscribed, is_admin, balance, total_spent, referral_code, referrer_id,
       created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.TelegramID, &u.Username, &u.FirstName, &u.LastName,
		&u.PhotoURL, &u.IsSubscribed, &u.IsAdmin, &u.Balance, &u.TotalSpent,
		&u.ReferralCode, &u.ReferrerID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- UserRepository implementation ---

func (r *userRepository) Upsert(ctx context.Context, profile model.UserProfile, referralCode string, isAdmin bool) (*model.User, bool, error) {
	const query = `INSERT INTO users (telegram_id, username, first_name, last_name, photo_url, is_admin, referral_code)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   ON CONFLICT (telegram_id) DO UPDATE SET
                       username = EXCLUDED.username,
                       first_name = EXCLUDED.first_name,
                       last_name = EXCLUDED.last_name,
                       photo_url = EXCLUDED.photo_url,
                       is_admin = users.is_admin OR EXCLUDED.is_admin,
                       updated_at = NOW()
                   RETURNING ` + userColumns + `, (xmax = 0) AS inserted`

	var u model.User
	var inserted bool
	err := r.storage.pool.QueryRow(ctx, query,
		profile.TelegramID, profile.Username, profile.FirstName, profile.LastName,
		profile.PhotoURL, isAdmin, referralCode,
	).Scan(&u.ID, &u.TelegramID, &u.Username, &u.FirstName, &u.LastName,
		&u.PhotoURL, &u.IsSubscribed, &u.IsAdmin, &u.Balance, &u.TotalSpent,
		&u.ReferralCode, &u.ReferrerID, &u.CreatedAt, &u.UpdatedAt, &inserted)
	if err != nil {
		return nil, false, err
	}
	return &u, inserted, nil
}

func (r *userRepository) GetByTelegramID(ctx context.Context, telegramID string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE telegram_id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, telegramID))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByReferralCode(ctx context.Context, code string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE referral_code=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, code))
}

func (r *userRepository) List(ctx context.Context, search string, limit int) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1`
	args := []any{limit}
	if search != "" {
		query = `SELECT ` + userColumns + ` FROM users
                 WHERE username ILIKE $2 OR first_name ILIKE $2 OR telegram_id ILIKE $2
                 ORDER BY created_at DESC LIMIT $1`
		args = append(args, "%"+search+"%")
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) AllTelegramIDs(ctx context.Context) ([]string, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT telegram_id FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *userRepository) AdjustBalance(ctx context.Context, userID int64, delta int64) (int64, error) {
	const query = `UPDATE users SET balance = balance + $2, updated_at = NOW()
                   WHERE id = $1 AND balance + $2 >= 0
                   RETURNING balance`
	var balance int64
	err := r.storage.pool.QueryRow(ctx, query, userID, delta).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	var exists bool
	if err := r.storage.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id=$1)`, userID).Scan(&exists); err != nil {
		return 0, err
	}
	if !exists {
		return 0, domainErrors.ErrNotFound
	}
	return 0, domainErrors.ErrInsufficientBalance
}

// --- ProductRepository implementation ---

const productColumns = `id, type, name, description, price, original_price,
       duration_months, stars_amount, image_url, rating, is_active, created_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Type, &p.Name, &p.Description, &p.Price,
		&p.OriginalPrice, &p.DurationMonths, &p.StarsAmount, &p.ImageURL,
		&p.Rating, &p.IsActive, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) ListActive(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE is_active = TRUE ORDER BY price ASC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (type, name, description, price, original_price, duration_months, stars_amount, image_url)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING id, rating, is_active, created_at`
	p := *product
	err := r.storage.pool.QueryRow(ctx, query,
		p.Type, p.Name, p.Description, p.Price, p.OriginalPrice,
		p.DurationMonths, p.StarsAmount, p.ImageURL,
	).Scan(&p.ID, &p.Rating, &p.IsActive, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Update(ctx context.Context, id int64, update model.ProductUpdate) error {
	const query = `UPDATE products SET
                       name = COALESCE($2, name),
                       description = COALESCE($3, description),
                       price = COALESCE($4, price),
                       image_url = COALESCE($5, image_url),
                       is_active = COALESCE($6, is_active)
                   WHERE id = $1`
	tag, err := r.storage.pool.Exec(ctx, query, id,
		update.Name, update.Description, update.Price, update.ImageURL, update.IsActive)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) Deactivate(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE products SET is_active = FALSE WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, user_id, product_id, recipient_username, quantity,
       total_price, status, payment_method, created_at, updated_at`

func (r *orderRepository) Place(ctx context.Context, userID, productID int64, quantity int, totalPrice int64, recipientUsername string) (*model.Order, error) {
	order := &model.Order{
		UserID:            userID,
		ProductID:         productID,
		RecipientUsername: recipientUsername,
		Quantity:          quantity,
		TotalPrice:        totalPrice,
		PaymentMethod:     "balance",
	}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		// Debit and spend counter move together, conditionally on balance.
		const debit = `UPDATE users SET balance = balance - $2, total_spent = total_spent + $2, updated_at = NOW()
                       WHERE id = $1 AND balance >= $2`
		tag, err := tx.Exec(ctx, debit, userID, totalPrice)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id=$1)`, userID).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return domainErrors.ErrNotFound
			}
			return domainErrors.ErrInsufficientBalance
		}

		const insert = `INSERT INTO orders (user_id, product_id, recipient_username, quantity, total_price, status, payment_method)
                        VALUES ($1, $2, $3, $4, $5, 'pending', 'balance')
                        RETURNING id, status, created_at, updated_at`
		return tx.QueryRow(ctx, insert, userID, productID, recipientUsername, quantity, totalPrice).
			Scan(&order.ID, &order.Status, &order.CreatedAt, &order.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT o.id, o.user_id, o.product_id, o.recipient_username, o.quantity,
                          o.total_price, o.status, o.payment_method, o.created_at, o.updated_at,
                          p.id, p.type, p.name, p.description, p.price, p.original_price,
                          p.duration_months, p.stars_amount, p.image_url, p.rating, p.is_active, p.created_at
                   FROM orders o
                   JOIN products p ON p.id = o.product_id
                   WHERE o.user_id=$1 ORDER BY o.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		var p model.Product
		if err := rows.Scan(&o.ID, &o.UserID, &o.ProductID, &o.RecipientUsername, &o.Quantity,
			&o.TotalPrice, &o.Status, &o.PaymentMethod, &o.CreatedAt, &o.UpdatedAt,
			&p.ID, &p.Type, &p.Name, &p.Description, &p.Price, &p.OriginalPrice,
			&p.DurationMonths, &p.StarsAmount, &p.ImageURL, &p.Rating, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, err
		}
		o.Product = &p
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

const orderJoinedQuery = `SELECT o.id, o.user_id, o.product_id, o.recipient_username, o.quantity,
       o.total_price, o.status, o.payment_method, o.created_at, o.updated_at,
       p.id, p.type, p.name, p.description, p.price, p.original_price,
       p.duration_months, p.stars_amount, p.image_url, p.rating, p.is_active, p.created_at,
       u.id, u.telegram_id, u.username, u.first_name, u.last_name, u.photo_url,
       u.is_subscribed, u.is_admin, u.balance, u.total_spent, u.referral_code, u.referrer_id,
       u.created_at, u.updated_at
FROM orders o
JOIN products p ON p.id = o.product_id
JOIN users u ON u.id = o.user_id`

func scanJoinedOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	var p model.Product
	var u model.User
	err := row.Scan(&o.ID, &o.UserID, &o.ProductID, &o.RecipientUsername, &o.Quantity,
		&o.TotalPrice, &o.Status, &o.PaymentMethod, &o.CreatedAt, &o.UpdatedAt,
		&p.ID, &p.Type, &p.Name, &p.Description, &p.Price, &p.OriginalPrice,
		&p.DurationMonths, &p.StarsAmount, &p.ImageURL, &p.Rating, &p.IsActive, &p.CreatedAt,
		&u.ID, &u.TelegramID, &u.Username, &u.FirstName, &u.LastName, &u.PhotoURL,
		&u.IsSubscribed, &u.IsAdmin, &u.Balance, &u.TotalSpent, &u.ReferralCode, &u.ReferrerID,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	o.Product = &p
	o.User = &u
	return &o, nil
}

func (r *orderRepository) ListAll(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	query := orderJoinedQuery + ` ORDER BY o.created_at DESC LIMIT $1`
	args := []any{limit}
	if status != "" {
		query = orderJoinedQuery + ` WHERE o.status=$2 ORDER BY o.created_at DESC LIMIT $1`
		args = append(args, status)
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanJoinedOrder(rows)
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

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`, status, orderID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}

		order, err = scanJoinedOrder(tx.QueryRow(ctx, orderJoinedQuery+` WHERE o.id=$1`, orderID))
		if err != nil {
			return err
		}

		// A completed NFT purchase grants ownership.
		if status == model.OrderStatusCompleted && order.Product.Type == model.ProductTypeNFT {
			const grant = `INSERT INTO user_nfts (user_id, nft_name, nft_image, order_id) VALUES ($1, $2, $3, $4)`
			if _, err := tx.Exec(ctx, grant, order.UserID, order.Product.Name, order.Product.ImageURL, order.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// --- DepositRepository implementation ---

const depositJoinedQuery = `SELECT d.id, d.user_id, d.amount, d.receipt_url, d.status, d.admin_note,
       d.created_at, d.updated_at,
       u.id, u.telegram_id, u.username, u.first_name, u.last_name, u.photo_url,
       u.is_subscribed, u.is_admin, u.balance, u.total_spent, u.referral_code, u.referrer_id,
       u.created_at, u.updated_at
FROM deposit_requests d
JOIN users u ON u.id = d.user_id`

func scanJoinedDeposit(row pgx.Row) (*model.DepositRequest, error) {
	var d model.DepositRequest
	var u model.User
	err := row.Scan(&d.ID, &d.UserID, &d.Amount, &d.ReceiptURL, &d.Status, &d.AdminNote,
		&d.CreatedAt, &d.UpdatedAt,
		&u.ID, &u.TelegramID, &u.Username, &u.FirstName, &u.LastName, &u.PhotoURL,
		&u.IsSubscribed, &u.IsAdmin, &u.Balance, &u.TotalSpent, &u.ReferralCode, &u.ReferrerID,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	d.User = &u
	return &d, nil
}

func (r *depositRepository) Create(ctx context.Context, userID, amount int64, receiptURL string) (*model.DepositRequest, error) {
	const query = `INSERT INTO deposit_requests (user_id, amount, receipt_url, status)
                   VALUES ($1, $2, $3, 'pending')
                   RETURNING id, status, created_at, updated_at`
	d := &model.DepositRequest{UserID: userID, Amount: amount, ReceiptURL: receiptURL}
	err := r.storage.pool.QueryRow(ctx, query, userID, amount, receiptURL).
		Scan(&d.ID, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *depositRepository) List(ctx context.Context, filter repository.DepositFilter) ([]model.DepositRequest, error) {
	query := depositJoinedQuery
	var args []any
	var conds []string
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conds = append(conds, fmt.Sprintf("d.user_id=$%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("d.status=$%d", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY d.created_at DESC"

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.DepositRequest
	for rows.Next() {
		d, err := scanJoinedDeposit(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *depositRepository) Resolve(ctx context.Context, depositID int64, status model.DepositStatus, adminNote string, bonusPercent int) (*model.DepositRequest, bool, bool, error) {
	var deposit *model.DepositRequest
	var claimed, applied bool

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		// Claim the pending row; a second resolution cannot pass this guard.
		const claim = `UPDATE deposit_requests SET status=$2, admin_note=$3, updated_at=NOW()
                       WHERE id=$1 AND status='pending'`
		tag, err := tx.Exec(ctx, claim, depositID, status, adminNote)
		if err != nil {
			return err
		}
		claimed = tag.RowsAffected() == 1

		if !claimed {
			// Already resolved: the note may still be refreshed, balances may not.
			const note = `UPDATE deposit_requests SET admin_note=$2, updated_at=NOW() WHERE id=$1`
			tag, err := tx.Exec(ctx, note, depositID, adminNote)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return domainErrors.ErrNotFound
			}
		}

		deposit, err = scanJoinedDeposit(tx.QueryRow(ctx, depositJoinedQuery+` WHERE d.id=$1`, depositID))
		if err != nil {
			return err
		}

		if !claimed || status != model.DepositStatusApproved {
			return nil
		}

		const credit = `UPDATE users SET balance = balance + $2, updated_at = NOW() WHERE id = $1`
		if _, err := tx.Exec(ctx, credit, deposit.UserID, deposit.Amount); err != nil {
			return err
		}
		applied = true

		if deposit.User.ReferrerID == nil {
			return nil
		}
		bonus := deposit.Amount * int64(bonusPercent) / 100
		if bonus <= 0 {
			return nil
		}
		if _, err := tx.Exec(ctx, credit, *deposit.User.ReferrerID, bonus); err != nil {
			return err
		}
		const accrue = `UPDATE referrals SET bonus_earned = bonus_earned + $3
                        WHERE referrer_id=$1 AND referred_id=$2`
		if _, err := tx.Exec(ctx, accrue, *deposit.User.ReferrerID, deposit.UserID, bonus); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, false, false, err
	}
	return deposit, claimed, applied, nil
}

// --- ReferralRepository implementation ---

func (r *referralRepository) Link(ctx context.Context, referrerID, referredID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const bind = `UPDATE users SET referrer_id=$1, updated_at=NOW()
                      WHERE id=$2 AND referrer_id IS NULL`
		tag, err := tx.Exec(ctx, bind, referrerID, referredID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id=$1)`, referredID).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return domainErrors.ErrNotFound
			}
			return domainErrors.ErrAlreadyReferred
		}

		const insert = `INSERT INTO referrals (referrer_id, referred_id, bonus_earned) VALUES ($1, $2, 0)`
		if _, err := tx.Exec(ctx, insert, referrerID, referredID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domainErrors.ErrAlreadyReferred
			}
			return err
		}
		return nil
	})
}

func (r *referralRepository) ListByReferrer(ctx context.Context, referrerID int64) ([]model.Referral, error) {
	const query = `SELECT r.id, r.referrer_id, r.referred_id, r.bonus_earned, r.created_at,
                          u.id, u.telegram_id, u.username, u.first_name, u.last_name, u.photo_url,
                          u.is_subscribed, u.is_admin, u.balance, u.total_spent, u.referral_code, u.referrer_id,
                          u.created_at, u.updated_at
                   FROM referrals r
                   JOIN users u ON u.id = r.referred_id
                   WHERE r.referrer_id=$1 ORDER BY r.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, referrerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Referral
	for rows.Next() {
		var ref model.Referral
		var u model.User
		if err := rows.Scan(&ref.ID, &ref.ReferrerID, &ref.ReferredID, &ref.BonusEarned, &ref.CreatedAt,
			&u.ID, &u.TelegramID, &u.Username, &u.FirstName, &u.LastName, &u.PhotoURL,
			&u.IsSubscribed, &u.IsAdmin, &u.Balance, &u.TotalSpent, &u.ReferralCode, &u.ReferrerID,
			&u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		ref.ReferredUser = &u
		result = append(result, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- NotificationRepository implementation ---

const notificationColumns = `id, title, message, image_url, is_sent, sent_at, created_at`

func scanNotification(row pgx.Row) (*model.Notification, error) {
	var n model.Notification
	err := row.Scan(&n.ID, &n.Title, &n.Message, &n.ImageURL, &n.IsSent, &n.SentAt, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) List(ctx context.Context, limit int) ([]model.Notification, error) {
	const query = `SELECT ` + notificationColumns + ` FROM notifications ORDER BY created_at DESC LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id int64) (*model.Notification, error) {
	const query = `SELECT ` + notificationColumns + ` FROM notifications WHERE id=$1`
	return scanNotification(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *notificationRepository) Create(ctx context.Context, title, message, imageURL string) (*model.Notification, error) {
	const query = `INSERT INTO notifications (title, message, image_url, is_sent)
                   VALUES ($1, $2, $3, FALSE)
                   RETURNING ` + notificationColumns
	return scanNotification(r.storage.pool.QueryRow(ctx, query, title, message, imageURL))
}

func (r *notificationRepository) MarkSent(ctx context.Context, id int64, sent bool) (*model.Notification, error) {
	const query = `UPDATE notifications
                   SET is_sent=$2, sent_at = CASE WHEN $2 THEN NOW() ELSE NULL END
                   WHERE id=$1
                   RETURNING ` + notificationColumns
	return scanNotification(r.storage.pool.QueryRow(ctx, query, id, sent))
}

// --- CardRepository implementation ---

func (r *cardRepository) List(ctx context.Context) ([]model.AdminCard, error) {
	const query = `SELECT id, card_number, card_holder, bank_name, is_active, created_at
                   FROM admin_cards ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.AdminCard
	for rows.Next() {
		var c model.AdminCard
		if err := rows.Scan(&c.ID, &c.CardNumber, &c.CardHolder, &c.BankName, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *cardRepository) Create(ctx context.Context, cardNumber, cardHolder, bankName string) (*model.AdminCard, error) {
	const query = `INSERT INTO admin_cards (card_number, card_holder, bank_name, is_active)
                   VALUES ($1, $2, $3, TRUE)
                   RETURNING id, is_active, created_at`
	c := &model.AdminCard{CardNumber: cardNumber, CardHolder: cardHolder, BankName: bankName}
	err := r.storage.pool.QueryRow(ctx, query, cardNumber, cardHolder, bankName).
		Scan(&c.ID, &c.IsActive, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *cardRepository) SetActive(ctx context.Context, id int64, active bool) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE admin_cards SET is_active=$2 WHERE id=$1`, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cardRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM admin_cards WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ActivityRepository implementation ---

func (r *activityRepository) Log(ctx context.Context, userID *int64, action string, details map[string]any) error {
	const query = `INSERT INTO activity_logs (user_id, action, details) VALUES ($1, $2, $3)`
	_, err := r.storage.pool.Exec(ctx, query, userID, action, details)
	return err
}

// --- StatsRepository implementation ---

func (r *statsRepository) UserStats(ctx context.Context, userID int64) (*model.UserStats, error) {
	stats := &model.UserStats{}

	const orderQuery = `SELECT COUNT(*),
                               COUNT(*) FILTER (WHERE status='completed'),
                               COUNT(*) FILTER (WHERE status='pending')
                        FROM orders WHERE user_id=$1`
	if err := r.storage.pool.QueryRow(ctx, orderQuery, userID).
		Scan(&stats.TotalOrders, &stats.CompletedOrders, &stats.PendingOrders); err != nil {
		return nil, err
	}

	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM referrals WHERE referrer_id=$1`, userID).
		Scan(&stats.ReferralCount); err != nil {
		return nil, err
	}

	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM user_nfts WHERE user_id=$1`, userID).
		Scan(&stats.NFTCount); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *statsRepository) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	stats := &model.AdminStats{}

	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&stats.TotalUsers); err != nil {
		return nil, err
	}

	const orderQuery = `SELECT COUNT(*),
           COALESCE(SUM(total_price) FILTER (WHERE status='completed'), 0),
           COUNT(*) FILTER (WHERE created_at >= date_trunc('day', NOW())),
           COALESCE(SUM(total_price) FILTER (WHERE status='completed' AND created_at >= date_trunc('day', NOW())), 0),
           COALESCE(SUM(total_price) FILTER (WHERE status='completed' AND created_at >= NOW() - INTERVAL '7 days'), 0),
           COALESCE(SUM(total_price) FILTER (WHERE status='completed' AND created_at >= NOW() - INTERVAL '30 days'), 0)
    FROM orders`
	if err := r.storage.pool.QueryRow(ctx, orderQuery).Scan(
		&stats.TotalOrders, &stats.TotalRevenue, &stats.OrdersToday,
		&stats.RevenueToday, &stats.WeeklyRevenue, &stats.MonthlyRevenue); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *statsRepository) PublicStats(ctx context.Context) (*model.PublicStats, error) {
	stats := &model.PublicStats{}

	const query = `SELECT (SELECT COUNT(*) FROM users),
                          (SELECT COUNT(*) FROM orders),
                          (SELECT COALESCE(AVG(rating) FILTER (WHERE rating > 0), 0) FROM products)`
	if err := r.storage.pool.QueryRow(ctx, query).Scan(&stats.Users, &stats.Orders, &stats.Rating); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *statsRepository) TopUsers(ctx context.Context, limit int) ([]model.TopUser, error) {
	const query = `SELECT id, telegram_id, username, first_name, total_spent, photo_url
                   FROM users WHERE total_spent > 0
                   ORDER BY total_spent DESC LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.TopUser
	for rows.Next() {
		var t model.TopUser
		if err := rows.Scan(&t.ID, &t.TelegramID, &t.Username, &t.FirstName, &t.TotalSpent, &t.PhotoURL); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
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
