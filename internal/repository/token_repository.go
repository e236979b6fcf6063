package repository

import (
    "context"
    "database/sql"
    "errors"
    "time"
)

// ErrTokenInvalid is returned when a refresh token hash matches no row,
// or matches one that is revoked or past its expiry.  The three cases
// are deliberately indistinguishable to the caller.
var ErrTokenInvalid = errors.New("refresh token invalid")

// TokenRepo persists refresh-token hashes.  Only the SHA-256 hash of the
// token ever reaches the database; revocation is a timestamp, not a
// delete, so the rows double as an audit trail.
type TokenRepo struct {
    db *sql.DB
}

func NewTokenRepo(db *sql.DB) *TokenRepo { return &TokenRepo{db: db} }

// StoreRefresh records a freshly issued refresh token for the user.
func (r *TokenRepo) StoreRefresh(ctx context.Context, userID uint64, tokenHash string, expiresAt time.Time) error {
    _, err := r.db.ExecContext(ctx, `
        INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
        VALUES (?, ?, ?)`,
        userID, tokenHash, expiresAt)
    return err
}

// ValidateRefresh resolves a token hash to its user id.  Revoked and
// expired tokens yield ErrTokenInvalid; expiry is evaluated in UTC to
// match the stored timestamps.
func (r *TokenRepo) ValidateRefresh(ctx context.Context, tokenHash string) (uint64, error) {
    var (
        userID    uint64
        expiresAt time.Time
        revokedAt sql.NullTime
    )
    err := r.db.QueryRowContext(ctx, `
        SELECT user_id, expires_at, revoked_at
        FROM refresh_tokens
        WHERE token_hash = ?
        LIMIT 1`,
        tokenHash).Scan(&userID, &expiresAt, &revokedAt)
    if err == sql.ErrNoRows {
        return 0, ErrTokenInvalid
    }
    if err != nil {
        return 0, err
    }
    if revokedAt.Valid || !expiresAt.After(time.Now().UTC()) {
        return 0, ErrTokenInvalid
    }
    return userID, nil
}

// RevokeByHash revokes a single token, as rotation does after minting
// the replacement.  Revoking an unknown or already revoked hash is a
// no-op.
func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
    _, err := r.db.ExecContext(ctx, `
        UPDATE refresh_tokens
        SET revoked_at = UTC_TIMESTAMP()
        WHERE token_hash = ? AND revoked_at IS NULL`,
        tokenHash)
    return err
}

// RevokeAllForUser revokes every live token of a user, ending all of
// their sessions at once.
func (r *TokenRepo) RevokeAllForUser(ctx context.Context, userID uint64) error {
    _, err := r.db.ExecContext(ctx, `
        UPDATE refresh_tokens
        SET revoked_at = UTC_TIMESTAMP()
        WHERE user_id = ? AND revoked_at IS NULL`,
        userID)
    return err
}
