package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tbeckert/admindash/internal/domain"
)

// AccountRepository implements domain.AccountRepository using SQLite.
type AccountRepository struct {
	db *sql.DB
}

// Create inserts a new account. The ID is store-assigned unless the caller
// provides one; JoinedAt defaults to the current time.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	if account.JoinedAt.IsZero() {
		account.JoinedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, name, email, password_hash, role, status, join_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		account.ID, account.Name, account.Email, account.PasswordHash,
		account.Role, account.Status, account.JoinedAt,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.getOne(ctx,
		`SELECT id, name, email, password_hash, role, status, join_date
		 FROM accounts WHERE id = ?`, id)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.getOne(ctx,
		`SELECT id, name, email, password_hash, role, status, join_date
		 FROM accounts WHERE email = ?`, email)
}

func (r *AccountRepository) getOne(ctx context.Context, query string, arg any) (*domain.Account, error) {
	account := &domain.Account{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&account.ID, &account.Name, &account.Email, &account.PasswordHash,
		&account.Role, &account.Status, &account.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query account: %w", err)
	}
	return account, nil
}

// List returns all accounts ordered by join date.
func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, password_hash, role, status, join_date
		 FROM accounts ORDER BY join_date, id`)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(
			&account.ID, &account.Name, &account.Email, &account.PasswordHash,
			&account.Role, &account.Status, &account.JoinedAt,
		); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

// Update persists all mutable fields of the account.
func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET name = ?, email = ?, role = ?, status = ? WHERE id = ?`,
		account.Name, account.Email, account.Role, account.Status, account.ID,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("update account: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AccountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return count, nil
}

func (r *AccountRepository) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts WHERE status = ?`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count accounts by status: %w", err)
	}
	return count, nil
}

// CountJoinedSince counts accounts whose join date is at or after since.
func (r *AccountRepository) CountJoinedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts WHERE join_date >= ?`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count accounts joined since: %w", err)
	}
	return count, nil
}

// isUniqueConstraintError checks if the error is a SQLite unique constraint
// violation.
func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
