package repository

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "github.com/priyanshu24-creation/Ticket-Hub/internal/model"
)

// HoldRepo provides data access to the seat_holds table.  A hold occupies
// one row per seat label; the rows of one session share a session_id and
// expiry and together form the session's single active hold.  All methods
// compare expirations against UTC_TIMESTAMP() so that expired holds are
// invisible to every read without requiring a background sweep.
type HoldRepo struct {
    db *sql.DB
}

// NewHoldRepo returns a new HoldRepo bound to the provided database.
func NewHoldRepo(db *sql.DB) *HoldRepo { return &HoldRepo{db: db} }

// HeldLabels returns the distinct seat labels covered by non-expired holds
// for a show, excluding holds that belong to excludeSessionID.  Passing an
// empty excludeSessionID returns every active hold; the reservation path
// passes the caller's own session so it can re-reserve seats it already
// holds.  When there are no active holds it returns an empty slice and
// nil error.
func (r *HoldRepo) HeldLabels(ctx context.Context, showID uint64, excludeSessionID string) ([]string, error) {
    const q = `SELECT DISTINCT seat_label FROM seat_holds
               WHERE show_id = ? AND expires_at > UTC_TIMESTAMP() AND session_id <> ?`
    rows, err := r.db.QueryContext(ctx, q, showID, excludeSessionID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    labels := make([]string, 0)
    for rows.Next() {
        var l string
        if err := rows.Scan(&l); err != nil {
            return nil, err
        }
        labels = append(labels, l)
    }
    return labels, rows.Err()
}

// ReplaceForSession atomically replaces the session's hold with a new one
// covering the given seats.  The delete and the bulk insert run in a
// single transaction so no reader ever observes the session owning two
// holds.  Deleting across all shows enforces the one-active-hold-per-
// session rule: switching shows silently releases the old selection.
func (r *HoldRepo) ReplaceForSession(ctx context.Context, h *model.SeatHold) error {
    if len(h.SeatLabels) == 0 {
        return errors.New("hold requires at least one seat label")
    }
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()
    if _, err := tx.ExecContext(ctx, `DELETE FROM seat_holds WHERE session_id = ?`, h.SessionID); err != nil {
        return err
    }
    query := `INSERT INTO seat_holds (show_id, seat_label, session_id, expires_at) VALUES `
    args := make([]any, 0, len(h.SeatLabels)*4)
    for i, label := range h.SeatLabels {
        if i > 0 {
            query += ","
        }
        query += "(?, ?, ?, ?)"
        args = append(args, h.ShowID, label, h.SessionID, h.ExpiresAt.UTC().Format("2006-01-02 15:04:05"))
    }
    if _, err := tx.ExecContext(ctx, query, args...); err != nil {
        return err
    }
    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    return nil
}

// ActiveBySession returns the session's non-expired hold for a show, or
// ErrHoldNotFound when the session holds nothing (or everything it held
// has expired).  The labels are collected from the per-seat rows; the
// expiry is shared across them by construction.
func (r *HoldRepo) ActiveBySession(ctx context.Context, showID uint64, sessionID string) (*model.SeatHold, error) {
    const q = `SELECT seat_label, expires_at, created_at FROM seat_holds
               WHERE show_id = ? AND session_id = ? AND expires_at > UTC_TIMESTAMP()
               ORDER BY seat_label ASC`
    rows, err := r.db.QueryContext(ctx, q, showID, sessionID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    h := &model.SeatHold{ShowID: showID, SessionID: sessionID}
    for rows.Next() {
        var label string
        var expiresAt, createdAt time.Time
        if err := rows.Scan(&label, &expiresAt, &createdAt); err != nil {
            return nil, err
        }
        h.SeatLabels = append(h.SeatLabels, label)
        h.ExpiresAt = expiresAt
        h.CreatedAt = createdAt
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    if len(h.SeatLabels) == 0 {
        return nil, ErrHoldNotFound
    }
    return h, nil
}

// DeleteBySessionAndShow removes the session's hold rows for one show and
// reports how many seats were released.  Finalizing a booking calls this
// so that only the paying session's hold is released, never holds that
// belong to other customers of the same show.
func (r *HoldRepo) DeleteBySessionAndShow(ctx context.Context, sessionID string, showID uint64) (int64, error) {
    res, err := r.db.ExecContext(ctx,
        `DELETE FROM seat_holds WHERE session_id = ? AND show_id = ?`, sessionID, showID)
    if err != nil {
        return 0, err
    }
    return res.RowsAffected()
}

// PurgeExpired removes expired hold rows for a show.  Correctness never
// depends on this – every read filters on expires_at – it only keeps the
// table small.  The reservation path calls it opportunistically.
func (r *HoldRepo) PurgeExpired(ctx context.Context, showID uint64) (int64, error) {
    res, err := r.db.ExecContext(ctx,
        `DELETE FROM seat_holds WHERE show_id = ? AND expires_at <= UTC_TIMESTAMP()`, showID)
    if err != nil {
        return 0, err
    }
    return res.RowsAffected()
}
