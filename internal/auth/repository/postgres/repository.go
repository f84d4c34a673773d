package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lokamarket/auth-service/internal/auth/domain"
)

// DB is the subset of pgxpool.Pool the repository uses. pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT u.id, u.email, u.password_hash, u.role_id, r.name, u.active, u.created_at, u.updated_at
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email)

	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.RoleID, &user.RoleName,
		&user.Active, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) GetByIDWithRole(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT u.id, u.email, u.password_hash, u.role_id, r.name, u.active, u.created_at, u.updated_at
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.RoleID, &user.RoleName,
		&user.Active, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, email, password_hash, role_id, active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, user.ID, user.Email, user.PasswordHash, user.RoleID, user.Active, user.CreatedAt, user.UpdatedAt)

	return err
}

func (r *PostgresRepository) GetAllWithRoles(ctx context.Context) ([]*domain.User, error) {
	query := `
		SELECT u.id, u.email, u.password_hash, u.role_id, r.name, u.active, u.created_at, u.updated_at
		FROM users u
		JOIN roles r ON r.id = u.role_id
		ORDER BY u.created_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.RoleID, &user.RoleName,
			&user.Active, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}

func (r *PostgresRepository) UpdateRole(ctx context.Context, userID string, roleID int) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET role_id = $1, updated_at = now() WHERE id = $2
	`, roleID, userID)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", userID)
	}

	return nil
}

const refreshTokenColumns = `id, family_id, user_id, token_hash, issued_at, expires_at, status,
		replaced_by_id, device_fingerprint, ip_address, user_agent`

func (r *PostgresRepository) Insert(ctx context.Context, rec *domain.RefreshTokenRecord) error {
	query := `INSERT INTO refresh_tokens (` + refreshTokenColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		rec.ID, rec.FamilyID, rec.UserID, rec.TokenHash, rec.IssuedAt, rec.ExpiresAt,
		rec.Status, rec.ReplacedByID, rec.Device.Fingerprint, rec.Device.IPAddress, rec.Device.UserAgent)
	return err
}

func (r *PostgresRepository) FindByHash(ctx context.Context, tokenHash string) (*domain.RefreshTokenRecord, error) {
	query := `SELECT ` + refreshTokenColumns + `
	          FROM refresh_tokens WHERE token_hash = $1 LIMIT 1;`
	row := r.db.QueryRow(ctx, query, tokenHash)

	rec, err := scanRefreshToken(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token by hash: %w", err)
	}

	return rec, nil
}

// CASStatus is the single forward-transition primitive: the WHERE clause on
// the current status makes concurrent transitions race safely — at most one
// caller observes success.
func (r *PostgresRepository) CASStatus(ctx context.Context, id string, expected, next domain.TokenStatus, replacedByID *string) (bool, error) {
	query := `
		UPDATE refresh_tokens
		SET status = $1, replaced_by_id = COALESCE($2, replaced_by_id)
		WHERE id = $3 AND status = $4
	`
	tag, err := r.db.Exec(ctx, query, next, replacedByID, id, expected)
	if err != nil {
		return false, fmt.Errorf("failed to transition token status: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *PostgresRepository) Rotate(ctx context.Context, oldID string, replacement *domain.RefreshTokenRecord) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin rotation: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE refresh_tokens
		SET status = $1, replaced_by_id = $2
		WHERE id = $3 AND status = $4
	`, domain.TokenStatusRotated, replacement.ID, oldID, domain.TokenStatusActive)
	if err != nil {
		_ = tx.Rollback(ctx)
		return false, fmt.Errorf("failed to rotate token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Someone else consumed the record first. The caller treats this
		// as a reuse signal.
		_ = tx.Rollback(ctx)
		return false, nil
	}

	query := `INSERT INTO refresh_tokens (` + refreshTokenColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.Exec(ctx, query,
		replacement.ID, replacement.FamilyID, replacement.UserID, replacement.TokenHash,
		replacement.IssuedAt, replacement.ExpiresAt, replacement.Status, replacement.ReplacedByID,
		replacement.Device.Fingerprint, replacement.Device.IPAddress, replacement.Device.UserAgent)
	if err != nil {
		_ = tx.Rollback(ctx)
		return false, fmt.Errorf("failed to insert replacement token: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit rotation: %w", err)
	}

	return true, nil
}

func (r *PostgresRepository) RevokeAllActiveInFamily(ctx context.Context, familyID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens SET status = $1 WHERE family_id = $2 AND status = $3
	`, domain.TokenStatusRevoked, familyID, domain.TokenStatusActive)
	if err != nil {
		return fmt.Errorf("failed to revoke token family %s: %w", familyID, err)
	}

	return nil
}

func (r *PostgresRepository) RevokeAllActiveByUserID(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens SET status = $1 WHERE user_id = $2 AND status = $3
	`, domain.TokenStatusRevoked, userID, domain.TokenStatusActive)
	if err != nil {
		return fmt.Errorf("failed to revoke tokens for user %s: %w", userID, err)
	}

	return nil
}

func (r *PostgresRepository) ListActiveByUserID(ctx context.Context, userID string) ([]*domain.RefreshTokenRecord, error) {
	query := `SELECT ` + refreshTokenColumns + `
	          FROM refresh_tokens
	          WHERE user_id = $1 AND status = $2 AND expires_at > now()
	          ORDER BY issued_at DESC;`
	rows, err := r.db.Query(ctx, query, userID, domain.TokenStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions for user %s: %w", userID, err)
	}
	defer rows.Close()

	var records []*domain.RefreshTokenRecord
	for rows.Next() {
		rec, err := scanRefreshToken(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan refresh token: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *PostgresRepository) CountActiveByUserID(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM refresh_tokens
		WHERE user_id = $1 AND status = $2 AND expires_at > now()
	`, userID, domain.TokenStatusActive).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active tokens: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) RevokeOldestActiveByUserID(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens SET status = $1
		WHERE id = (
			SELECT id FROM refresh_tokens
			WHERE user_id = $2 AND status = $3
			ORDER BY issued_at ASC
			LIMIT 1
		)
	`, domain.TokenStatusRevoked, userID, domain.TokenStatusActive)
	if err != nil {
		return fmt.Errorf("failed to revoke oldest token for user %s: %w", userID, err)
	}

	return nil
}

func (r *PostgresRepository) RecordLoginAttempt(ctx context.Context, email, ip string, success bool) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO login_attempts (id, email, ip_address, attempt_time, successful)
		VALUES (gen_random_uuid(), $1, $2, now(), $3)
	`, email, ip, success)
	return err
}

func (r *PostgresRepository) CountRecentFailedAttempts(ctx context.Context, email, ip string, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM login_attempts
		WHERE email = $1 AND ip_address = $2 AND successful = FALSE AND attempt_time > $3
	`, email, ip, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count login attempts: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) UpsertTrustedDevice(ctx context.Context, userID, fingerprint, userAgent, ip string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO trusted_devices (
			id, user_id, device_fingerprint, user_agent, ip_address, last_seen, created_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, now(), now()
		)
		ON CONFLICT (user_id, device_fingerprint)
		DO UPDATE SET
			last_seen = now(),
			ip_address = EXCLUDED.ip_address,
			user_agent = EXCLUDED.user_agent
	`, userID, fingerprint, userAgent, ip)
	return err
}

func scanRefreshToken(row pgx.Row) (*domain.RefreshTokenRecord, error) {
	var rec domain.RefreshTokenRecord
	err := row.Scan(&rec.ID, &rec.FamilyID, &rec.UserID, &rec.TokenHash, &rec.IssuedAt,
		&rec.ExpiresAt, &rec.Status, &rec.ReplacedByID,
		&rec.Device.Fingerprint, &rec.Device.IPAddress, &rec.Device.UserAgent)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}
