package repository

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"auction-house/internal/biddingerrors"
	model "auction-house/internal/models"
	"auction-house/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

const (
	pgUniqueViolation        = "23505"
	pgForeignKeyViolation    = "23503"
	pgSerializationFailure   = "40001"
	maxSerializationAttempts = 10
)

// PostgresRepo implements Store on PostgreSQL through a pgx connection pool
type PostgresRepo struct {
	db *pgxpool.Pool
}

var _ Store = (*PostgresRepo)(nil)

// NewPostgresRepo connects to dsn and verifies the connection.
func NewPostgresRepo(ctx context.Context, dsn string) (*PostgresRepo, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return &PostgresRepo{db: pool}, nil
}

// Migrate creates the tables if they do not exist yet.
func (r *PostgresRepo) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (r *PostgresRepo) Close() {
	r.db.Close()
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// inTx runs fn in a repeatable-read transaction, retrying serialization failures.
func (r *PostgresRepo) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxSerializationAttempts; attempt++ {
		err = r.runTx(ctx, fn)
		if pgCode(err) != pgSerializationFailure {
			return err
		}
		utils.Warn("postgres: serialization failure, retrying", map[string]any{"attempt": attempt})
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 5 * time.Millisecond):
		}
	}
	return err
}

func (r *PostgresRepo) runTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return fmt.Errorf("tx begin failed: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("tx commit failed: %w", err)
	}
	return nil
}

// ---- adverts and bids ----

const advertColumns = `advert_id, title, COALESCE(slug, ''), state, currency, amount, min_bid_amount,
	reserve_price, initial_deposit_amount, minimum_wallet_balance, deposit_percentage,
	starts_at, ends_at, status, owner_id, liked_by, created_at, updated_at`

func scanAdvert(row pgx.Row) (model.Advert, error) {
	var a model.Advert
	var status string
	err := row.Scan(&a.AdvertID, &a.Title, &a.Slug, &a.State, &a.Currency, &a.Amount, &a.MinBidAmount,
		&a.ReservePrice, &a.InitialDepositAmount, &a.MinimumWalletBalance, &a.DepositPercentage,
		&a.StartsAt, &a.EndsAt, &status, &a.OwnerID, &a.LikedBy, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return model.Advert{}, err
	}
	if a.Status, err = model.ParseAdvertStatus(status); err != nil {
		return model.Advert{}, err
	}
	return a, nil
}

func (r *PostgresRepo) GetAdvert(ctx context.Context, advertID string) (model.Advert, error) {
	row := r.db.QueryRow(ctx, "SELECT "+advertColumns+" FROM adverts WHERE advert_id = $1", advertID)
	advert, err := scanAdvert(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Advert{}, fmt.Errorf("get advert %s: %w", advertID, biddingerrors.ErrAdvertNotFound)
	}
	if err != nil {
		return model.Advert{}, fmt.Errorf("get advert %s: %w", advertID, err)
	}
	return advert, nil
}

func (r *PostgresRepo) CreateAdvert(ctx context.Context, a model.Advert) error {
	if a.LikedBy == nil {
		a.LikedBy = []string{}
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO adverts (advert_id, title, slug, state, currency, amount, min_bid_amount,
			reserve_price, initial_deposit_amount, minimum_wallet_balance, deposit_percentage,
			starts_at, ends_at, status, owner_id, liked_by, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $17)`,
		a.AdvertID, a.Title, a.Slug, a.State, a.Currency, a.Amount, a.MinBidAmount,
		a.ReservePrice, a.InitialDepositAmount, a.MinimumWalletBalance, a.DepositPercentage,
		a.StartsAt, a.EndsAt, string(a.Status), a.OwnerID, a.LikedBy, a.CreatedAt)
	switch pgCode(err) {
	case "":
	case pgUniqueViolation:
		return fmt.Errorf("create advert %s: %w", a.AdvertID, biddingerrors.ErrAlreadyExists)
	case pgForeignKeyViolation:
		return fmt.Errorf("create advert %s: %w", a.AdvertID, biddingerrors.ErrUserNotFound)
	}
	if err != nil {
		return fmt.Errorf("create advert %s: %w", a.AdvertID, err)
	}
	return nil
}

var terminalAdvertStatuses = []string{
	string(model.AdvertStatusSold),
	string(model.AdvertStatusExpired),
	string(model.AdvertStatusCancelled),
	string(model.AdvertStatusArchived),
}

func (r *PostgresRepo) UpdateAdvertStatus(ctx context.Context, advertID string, status model.AdvertStatus, endsAt *time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE adverts SET status = $2, ends_at = COALESCE($3, ends_at), updated_at = now()
		WHERE advert_id = $1 AND status <> $2 AND NOT (status = ANY($4))`,
		advertID, string(status), endsAt, terminalAdvertStatuses)
	if err != nil {
		return fmt.Errorf("update advert %s: %w", advertID, err)
	}
	if tag.RowsAffected() == 0 {
		current, err := r.GetAdvert(ctx, advertID)
		if err != nil {
			return fmt.Errorf("update advert %s: %w", advertID, err)
		}
		return fmt.Errorf("update advert %s: %w - already %s", advertID, biddingerrors.ErrAuctionNotActive, current.Status)
	}
	return nil
}

func (r *PostgresRepo) AddLike(ctx context.Context, advertID, userID string) (model.Advert, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE adverts
		SET liked_by = CASE WHEN $2 = ANY(liked_by) THEN liked_by ELSE array_append(liked_by, $2) END
		WHERE advert_id = $1
		RETURNING `+advertColumns, advertID, userID)
	advert, err := scanAdvert(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Advert{}, fmt.Errorf("like advert %s: %w", advertID, biddingerrors.ErrAdvertNotFound)
	}
	if err != nil {
		return model.Advert{}, fmt.Errorf("like advert %s: %w", advertID, err)
	}
	return advert, nil
}

const bidColumns = `bid_id, advert_id, user_id, amount, active, COALESCE(bid_intent_id, ''), created_at, updated_at`

func scanBid(row pgx.Row) (model.Bid, error) {
	var b model.Bid
	err := row.Scan(&b.BidID, &b.AdvertID, &b.UserID, &b.Amount, &b.Active, &b.BidIntentID, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func collectBids(rows pgx.Rows) ([]model.Bid, error) {
	defer rows.Close()

	var bids []model.Bid
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}

// ListAdvertsWithBids loads adverts and bids in two queries and joins them in memory.
func (r *PostgresRepo) ListAdvertsWithBids(ctx context.Context) ([]model.AdvertWithBids, error) {
	rows, err := r.db.Query(ctx, "SELECT "+advertColumns+" FROM adverts ORDER BY created_at, advert_id")
	if err != nil {
		return nil, fmt.Errorf("list adverts: %w", err)
	}
	var out []model.AdvertWithBids
	index := make(map[string]int)
	for rows.Next() {
		advert, err := scanAdvert(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan advert: %w", err)
		}
		index[advert.AdvertID] = len(out)
		out = append(out, model.AdvertWithBids{Advert: advert})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list adverts: %w", err)
	}

	bidRows, err := r.db.Query(ctx, "SELECT "+bidColumns+" FROM bids ORDER BY created_at, bid_id")
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	bids, err := collectBids(bidRows)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	for _, b := range bids {
		if i, ok := index[b.AdvertID]; ok {
			out[i].Bids = append(out[i].Bids, b)
		}
	}
	return out, nil
}

func (r *PostgresRepo) GetBidsByAdvert(ctx context.Context, advertID string) ([]model.Bid, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM adverts WHERE advert_id = $1)", advertID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("get bids for advert %s: %w", advertID, err)
	}
	if !exists {
		return nil, fmt.Errorf("get bids for advert %s: %w", advertID, biddingerrors.ErrAdvertNotFound)
	}

	rows, err := r.db.Query(ctx, "SELECT "+bidColumns+" FROM bids WHERE advert_id = $1 ORDER BY created_at, bid_id", advertID)
	if err != nil {
		return nil, fmt.Errorf("get bids for advert %s: %w", advertID, err)
	}
	return collectBids(rows)
}

func (r *PostgresRepo) GetAdvertsByUser(ctx context.Context, userID string) ([]model.Advert, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+advertColumns+` FROM adverts
		WHERE advert_id IN (SELECT advert_id FROM bids WHERE user_id = $1)
		ORDER BY created_at, advert_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("get adverts for user %s: %w", userID, err)
	}
	defer rows.Close()

	adverts := []model.Advert{}
	for rows.Next() {
		a, err := scanAdvert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan advert: %w", err)
		}
		adverts = append(adverts, a)
	}
	return adverts, rows.Err()
}

// UpsertBid relies on the (advert_id, user_id) unique constraint for one row per user.
func (r *PostgresRepo) UpsertBid(ctx context.Context, bid model.Bid) (model.Bid, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO bids (bid_id, advert_id, user_id, amount, active, bid_intent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, NULLIF($5, ''), $6, $7)
		ON CONFLICT (advert_id, user_id) DO UPDATE
		SET amount = EXCLUDED.amount,
			active = TRUE,
			bid_intent_id = COALESCE(EXCLUDED.bid_intent_id, bids.bid_intent_id),
			updated_at = EXCLUDED.updated_at
		RETURNING `+bidColumns,
		bid.BidID, bid.AdvertID, bid.UserID, bid.Amount, bid.BidIntentID, bid.CreatedAt, bid.UpdatedAt)
	saved, err := scanBid(row)
	if pgCode(err) == pgForeignKeyViolation {
		return model.Bid{}, fmt.Errorf("upsert bid for advert %s: %w", bid.AdvertID, biddingerrors.ErrAdvertNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("upsert bid for advert %s: %w", bid.AdvertID, err)
	}
	return saved, nil
}

// ---- users and documents ----

func (r *PostgresRepo) GetUser(ctx context.Context, userID string) (model.User, error) {
	var u model.User
	err := r.db.QueryRow(ctx, "SELECT user_id, email, first_name, email_verified FROM users WHERE user_id = $1", userID).
		Scan(&u.UserID, &u.Email, &u.FirstName, &u.EmailVerified)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, biddingerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, err)
	}
	return u, nil
}

func (r *PostgresRepo) hasPhotoID(ctx context.Context, userID string, review model.ReviewState) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM documents WHERE user_id = $1 AND type = $2 AND review = $3)",
		userID, string(model.DocumentPhotoID), string(review)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check photo id for user %s: %w", userID, err)
	}
	return exists, nil
}

func (r *PostgresRepo) HasApprovedPhotoID(ctx context.Context, userID string) (bool, error) {
	return r.hasPhotoID(ctx, userID, model.ReviewApproved)
}

func (r *PostgresRepo) HasPendingPhotoID(ctx context.Context, userID string) (bool, error) {
	return r.hasPhotoID(ctx, userID, model.ReviewPending)
}

func (r *PostgresRepo) ListAdvertDocuments(ctx context.Context, advertID string) ([]model.Document, error) {
	rows, err := r.db.Query(ctx, `
		SELECT document_id, user_id, COALESCE(advert_id, ''), name, url, type, review
		FROM documents WHERE advert_id = $1 AND type = $2 ORDER BY document_id`,
		advertID, string(model.DocumentAdvert))
	if err != nil {
		return nil, fmt.Errorf("list documents for advert %s: %w", advertID, err)
	}
	defer rows.Close()

	var docs []model.Document
	for rows.Next() {
		var d model.Document
		var docType, review string
		if err := rows.Scan(&d.DocumentID, &d.UserID, &d.AdvertID, &d.Name, &d.URL, &docType, &review); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		d.Type, d.Review = model.DocumentType(docType), model.ReviewState(review)
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// ---- bid intents ----

const intentColumns = `intent_id, advert_id, user_id, bid_amount, amount, provider_price, provider_link,
	payable_url, expires_at, created_at, updated_at`

func scanIntent(row pgx.Row) (model.BidIntent, error) {
	var i model.BidIntent
	err := row.Scan(&i.IntentID, &i.AdvertID, &i.UserID, &i.BidAmount, &i.Amount, &i.ProviderPrice,
		&i.ProviderLink, &i.PayableURL, &i.ExpiresAt, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func (r *PostgresRepo) CreateIntent(ctx context.Context, i model.BidIntent) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO bid_intents (`+intentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`,
		i.IntentID, i.AdvertID, i.UserID, i.BidAmount, i.Amount, i.ProviderPrice, i.ProviderLink,
		i.PayableURL, i.ExpiresAt, i.CreatedAt)
	switch pgCode(err) {
	case "":
		return nil
	case pgUniqueViolation:
		return fmt.Errorf("create intent for advert %s user %s: %w", i.AdvertID, i.UserID, biddingerrors.ErrAlreadyExists)
	case pgForeignKeyViolation:
		return fmt.Errorf("create intent for advert %s: %w", i.AdvertID, biddingerrors.ErrAdvertNotFound)
	default:
		return fmt.Errorf("create intent: %w", err)
	}
}

func (r *PostgresRepo) FindIntent(ctx context.Context, advertID, userID string) (model.BidIntent, error) {
	row := r.db.QueryRow(ctx, "SELECT "+intentColumns+" FROM bid_intents WHERE advert_id = $1 AND user_id = $2", advertID, userID)
	intent, err := scanIntent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.BidIntent{}, fmt.Errorf("find intent for advert %s user %s: %w", advertID, userID, biddingerrors.ErrIntentNotFound)
	}
	if err != nil {
		return model.BidIntent{}, fmt.Errorf("find intent: %w", err)
	}
	return intent, nil
}

func (r *PostgresRepo) DeleteIntent(ctx context.Context, intentID string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM bid_intents WHERE intent_id = $1", intentID)
	if err != nil {
		return fmt.Errorf("delete intent %s: %w", intentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete intent %s: %w", intentID, biddingerrors.ErrIntentNotFound)
	}
	return nil
}

func (r *PostgresRepo) ListIntentsByUser(ctx context.Context, userID string) ([]model.BidIntent, error) {
	rows, err := r.db.Query(ctx, "SELECT "+intentColumns+" FROM bid_intents WHERE user_id = $1 ORDER BY created_at", userID)
	if err != nil {
		return nil, fmt.Errorf("list intents for user %s: %w", userID, err)
	}
	defer rows.Close()

	var intents []model.BidIntent
	for rows.Next() {
		i, err := scanIntent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan intent: %w", err)
		}
		intents = append(intents, i)
	}
	return intents, rows.Err()
}

// ---- wallets ----

func (r *PostgresRepo) CreateWallet(ctx context.Context, w model.Wallet) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO wallets (wallet_id, user_id, balance, billing_address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)`, w.WalletID, w.UserID, w.Balance, w.BillingAddress, w.CreatedAt)
	switch pgCode(err) {
	case "":
		return nil
	case pgUniqueViolation:
		return fmt.Errorf("create wallet for user %s: %w", w.UserID, biddingerrors.ErrAlreadyExists)
	case pgForeignKeyViolation:
		return fmt.Errorf("create wallet for user %s: %w", w.UserID, biddingerrors.ErrUserNotFound)
	default:
		return fmt.Errorf("create wallet: %w", err)
	}
}

const walletColumns = "wallet_id, user_id, balance, billing_address, created_at, updated_at"

func scanWallet(row pgx.Row) (model.Wallet, error) {
	var w model.Wallet
	err := row.Scan(&w.WalletID, &w.UserID, &w.Balance, &w.BillingAddress, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}

func (r *PostgresRepo) GetWallet(ctx context.Context, walletID string) (model.WalletWithOperations, error) {
	wallet, err := scanWallet(r.db.QueryRow(ctx, "SELECT "+walletColumns+" FROM wallets WHERE wallet_id = $1", walletID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.WalletWithOperations{}, fmt.Errorf("get wallet %s: %w", walletID, biddingerrors.ErrWalletNotFound)
	}
	if err != nil {
		return model.WalletWithOperations{}, fmt.Errorf("get wallet %s: %w", walletID, err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT operation_id, wallet_id, balance_before, balance_after, balance_change, operation_type, status, created_at
		FROM wallet_operations WHERE wallet_id = $1 ORDER BY created_at DESC, operation_id DESC`, walletID)
	if err != nil {
		return model.WalletWithOperations{}, fmt.Errorf("list operations for wallet %s: %w", walletID, err)
	}
	defer rows.Close()

	ops := []model.WalletOperation{}
	for rows.Next() {
		var op model.WalletOperation
		var opType, status string
		if err := rows.Scan(&op.OperationID, &op.WalletID, &op.BalanceBefore, &op.BalanceAfter,
			&op.BalanceChange, &opType, &status, &op.CreatedAt); err != nil {
			return model.WalletWithOperations{}, fmt.Errorf("scan operation: %w", err)
		}
		op.OperationType, op.Status = model.OperationType(opType), model.OperationStatus(status)
		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return model.WalletWithOperations{}, err
	}
	return model.WalletWithOperations{Wallet: wallet, Operations: ops}, nil
}

func (r *PostgresRepo) GetWalletByUser(ctx context.Context, userID string) (model.Wallet, error) {
	wallet, err := scanWallet(r.db.QueryRow(ctx, "SELECT "+walletColumns+" FROM wallets WHERE user_id = $1", userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Wallet{}, fmt.Errorf("get wallet for user %s: %w", userID, biddingerrors.ErrWalletNotFound)
	}
	if err != nil {
		return model.Wallet{}, fmt.Errorf("get wallet for user %s: %w", userID, err)
	}
	return wallet, nil
}

// applyOperation locks the wallet row, appends the log entry and updates the balance.
func applyOperation(ctx context.Context, tx pgx.Tx, walletID string, change int64, opType model.OperationType) (model.WalletOperation, error) {
	var balance int64
	err := tx.QueryRow(ctx, "SELECT balance FROM wallets WHERE wallet_id = $1 FOR UPDATE", walletID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.WalletOperation{}, fmt.Errorf("apply operation to wallet %s: %w", walletID, biddingerrors.ErrWalletNotFound)
	}
	if err != nil {
		return model.WalletOperation{}, fmt.Errorf("lock acquisition failed: %w", err)
	}

	after := balance + change
	if after < 0 {
		return model.WalletOperation{}, fmt.Errorf("apply operation to wallet %s: %w - balance %d, change %d",
			walletID, biddingerrors.ErrInsufficientWalletBalance, balance, change)
	}

	op := model.WalletOperation{
		OperationID:   utils.GenerateID(),
		WalletID:      walletID,
		BalanceBefore: balance,
		BalanceAfter:  after,
		BalanceChange: change,
		OperationType: opType,
		Status:        model.OperationProcessed,
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO wallet_operations (operation_id, wallet_id, balance_before, balance_after, balance_change, operation_type, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		op.OperationID, op.WalletID, op.BalanceBefore, op.BalanceAfter, op.BalanceChange,
		string(op.OperationType), string(op.Status), op.CreatedAt); err != nil {
		return model.WalletOperation{}, fmt.Errorf("operation insert failed: %w", err)
	}
	if _, err := tx.Exec(ctx, "UPDATE wallets SET balance = $2, updated_at = $3 WHERE wallet_id = $1", walletID, after, op.CreatedAt); err != nil {
		return model.WalletOperation{}, fmt.Errorf("balance update failed: %w", err)
	}
	return op, nil
}

func (r *PostgresRepo) ApplyOperation(ctx context.Context, walletID string, change int64, opType model.OperationType) (model.WalletOperation, error) {
	var op model.WalletOperation
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		op, err = applyOperation(ctx, tx, walletID, change, opType)
		return err
	})
	return op, err
}

const withdrawalColumns = "request_id, user_id, amount, status, created_at, updated_at"

func scanWithdrawal(row pgx.Row) (model.WithdrawalRequest, error) {
	var w model.WithdrawalRequest
	var status string
	if err := row.Scan(&w.RequestID, &w.UserID, &w.Amount, &status, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return model.WithdrawalRequest{}, err
	}
	w.Status = model.WithdrawalStatus(status)
	return w, nil
}

func (r *PostgresRepo) CreateWithdrawalRequest(ctx context.Context, req model.WithdrawalRequest) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO withdrawal_requests (`+withdrawalColumns+`) VALUES ($1, $2, $3, $4, $5, $5)`,
		req.RequestID, req.UserID, req.Amount, string(req.Status), req.CreatedAt)
	if err != nil {
		return fmt.Errorf("create withdrawal request: %w", err)
	}
	return nil
}

func (r *PostgresRepo) GetWithdrawalRequest(ctx context.Context, requestID string) (model.WithdrawalRequest, error) {
	req, err := scanWithdrawal(r.db.QueryRow(ctx, "SELECT "+withdrawalColumns+" FROM withdrawal_requests WHERE request_id = $1", requestID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.WithdrawalRequest{}, fmt.Errorf("get withdrawal %s: %w", requestID, biddingerrors.ErrWithdrawalNotFound)
	}
	if err != nil {
		return model.WithdrawalRequest{}, fmt.Errorf("get withdrawal %s: %w", requestID, err)
	}
	return req, nil
}

func (r *PostgresRepo) UpdateWithdrawalStatus(ctx context.Context, requestID string, status model.WithdrawalStatus) (model.WithdrawalRequest, error) {
	req, err := scanWithdrawal(r.db.QueryRow(ctx, `
		UPDATE withdrawal_requests SET status = $2, updated_at = now()
		WHERE request_id = $1 AND status NOT IN ($3, $4)
		RETURNING `+withdrawalColumns, requestID, string(status),
		string(model.WithdrawalDenied), string(model.WithdrawalFinished)))
	if errors.Is(err, pgx.ErrNoRows) {
		// either missing or already closed
		if _, getErr := r.GetWithdrawalRequest(ctx, requestID); getErr != nil {
			return model.WithdrawalRequest{}, fmt.Errorf("update withdrawal %s: %w", requestID, getErr)
		}
		return model.WithdrawalRequest{}, fmt.Errorf("update withdrawal %s: %w - already closed", requestID, biddingerrors.ErrValidation)
	}
	if err != nil {
		return model.WithdrawalRequest{}, fmt.Errorf("update withdrawal %s: %w", requestID, err)
	}
	return req, nil
}

func (r *PostgresRepo) CompleteWithdrawal(ctx context.Context, requestID string) (model.WithdrawalRequest, model.WalletOperation, error) {
	var (
		req model.WithdrawalRequest
		op  model.WalletOperation
	)
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		req, err = scanWithdrawal(tx.QueryRow(ctx,
			"SELECT "+withdrawalColumns+" FROM withdrawal_requests WHERE request_id = $1 FOR UPDATE", requestID))
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("complete withdrawal %s: %w", requestID, biddingerrors.ErrWithdrawalNotFound)
		}
		if err != nil {
			return fmt.Errorf("complete withdrawal %s: %w", requestID, err)
		}
		if req.Status.IsClosed() {
			return fmt.Errorf("complete withdrawal %s: %w - already %s", requestID, biddingerrors.ErrValidation, req.Status)
		}

		var walletID string
		err = tx.QueryRow(ctx, "SELECT wallet_id FROM wallets WHERE user_id = $1", req.UserID).Scan(&walletID)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("complete withdrawal %s: %w", requestID, biddingerrors.ErrWalletNotFound)
		}
		if err != nil {
			return fmt.Errorf("complete withdrawal %s: %w", requestID, err)
		}

		if op, err = applyOperation(ctx, tx, walletID, -req.Amount, model.OperationWithdrawal); err != nil {
			return err
		}

		req, err = scanWithdrawal(tx.QueryRow(ctx, `
			UPDATE withdrawal_requests SET status = $2, updated_at = now() WHERE request_id = $1
			RETURNING `+withdrawalColumns, requestID, string(model.WithdrawalFinished)))
		return err
	})
	return req, op, err
}

// ---- payments ----

const paymentColumns = `payment_id, user_id, COALESCE(advert_id, ''), COALESCE(wallet_id, ''), description,
	amount, url, status, created_at, updated_at`

func scanPayment(row pgx.Row) (model.Payment, error) {
	var p model.Payment
	var status string
	if err := row.Scan(&p.PaymentID, &p.UserID, &p.AdvertID, &p.WalletID, &p.Description,
		&p.Amount, &p.URL, &status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return model.Payment{}, err
	}
	p.Status = model.PaymentStatus(status)
	return p, nil
}

func (r *PostgresRepo) CreatePayment(ctx context.Context, p model.Payment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payments (payment_id, user_id, advert_id, wallet_id, description, amount, url, status, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8, $9, $9)`,
		p.PaymentID, p.UserID, p.AdvertID, p.WalletID, p.Description, p.Amount, p.URL, string(p.Status), p.CreatedAt)
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

func (r *PostgresRepo) GetPayment(ctx context.Context, paymentID string) (model.Payment, error) {
	p, err := scanPayment(r.db.QueryRow(ctx, "SELECT "+paymentColumns+" FROM payments WHERE payment_id = $1", paymentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Payment{}, fmt.Errorf("get payment %s: %w", paymentID, biddingerrors.ErrPaymentNotFound)
	}
	if err != nil {
		return model.Payment{}, fmt.Errorf("get payment %s: %w", paymentID, err)
	}
	return p, nil
}

func (r *PostgresRepo) ApprovePayment(ctx context.Context, paymentID string) (model.Payment, model.WalletOperation, error) {
	var (
		p  model.Payment
		op model.WalletOperation
	)
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		p, err = scanPayment(tx.QueryRow(ctx, `
			UPDATE payments SET status = $2, updated_at = now()
			WHERE payment_id = $1 AND status = $3
			RETURNING `+paymentColumns, paymentID, string(model.PaymentApproved), string(model.PaymentPending)))
		if errors.Is(err, pgx.ErrNoRows) {
			var status string
			err = tx.QueryRow(ctx, "SELECT status FROM payments WHERE payment_id = $1", paymentID).Scan(&status)
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("approve payment %s: %w", paymentID, biddingerrors.ErrPaymentNotFound)
			}
			if err != nil {
				return fmt.Errorf("approve payment %s: %w", paymentID, err)
			}
			return fmt.Errorf("approve payment %s: %w - already %s", paymentID, biddingerrors.ErrValidation, status)
		}
		if err != nil {
			return fmt.Errorf("approve payment %s: %w", paymentID, err)
		}

		var walletID string
		err = tx.QueryRow(ctx, "SELECT wallet_id FROM wallets WHERE user_id = $1", p.UserID).Scan(&walletID)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("approve payment %s: %w", paymentID, biddingerrors.ErrWalletNotFound)
		}
		if err != nil {
			return fmt.Errorf("approve payment %s: %w", paymentID, err)
		}

		if op, err = applyOperation(ctx, tx, walletID, p.Amount, model.OperationDeposit); err != nil {
			return err
		}
		p.WalletID = walletID
		_, err = tx.Exec(ctx, "UPDATE payments SET wallet_id = $2 WHERE payment_id = $1", paymentID, walletID)
		return err
	})
	if err != nil {
		return model.Payment{}, model.WalletOperation{}, err
	}
	return p, op, nil
}

func (r *PostgresRepo) FindPendingPayment(ctx context.Context, userID string, amount int64) (model.Payment, error) {
	p, err := scanPayment(r.db.QueryRow(ctx, `
		SELECT `+paymentColumns+` FROM payments
		WHERE user_id = $1 AND amount = $2 AND status = $3
		ORDER BY created_at DESC LIMIT 1`, userID, amount, string(model.PaymentPending)))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Payment{}, fmt.Errorf("find pending payment for user %s: %w", userID, biddingerrors.ErrPaymentNotFound)
	}
	if err != nil {
		return model.Payment{}, fmt.Errorf("find pending payment: %w", err)
	}
	return p, nil
}
