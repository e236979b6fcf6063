// This file defines the booking repository.  Bookings are keyed by an
// externally shareable string id; their seats live in booking_seats, one
// row per label, which makes the sold-seat union for a show a single
// indexed join.
package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/priyanshu24-creation/Ticket-Hub/internal/model"
)

// BookingRepo manages persistence for bookings and their seats.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// BookedLabels returns the distinct seat labels sold for a show, i.e. the
// union of seats across bookings with payment_status = 'success'.  Pending
// and failed bookings never contribute.  When nothing is sold it returns
// an empty slice and nil error.
func (r *BookingRepo) BookedLabels(ctx context.Context, showID uint64) ([]string, error) {
    const q = `SELECT DISTINCT bs.seat_label
               FROM booking_seats bs
               JOIN bookings b ON b.booking_id = bs.booking_id
               WHERE bs.show_id = ? AND b.payment_status = 'success'`
    rows, err := r.db.QueryContext(ctx, q, showID)
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

// Create persists a pending booking together with its seat rows in one
// transaction.  The caller supplies the booking id and the gateway order
// reference; payment_status starts as 'pending' via the DB default.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
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
    const ins = `INSERT INTO bookings
        (booking_id, show_id, session_id, email, phone, total_amount_cents, payment_order_id)
        VALUES (?, ?, ?, ?, ?, ?, ?)`
    if _, err := tx.ExecContext(ctx, ins,
        b.BookingID, b.ShowID, b.SessionID, b.Email, b.Phone, b.TotalAmountCents, b.PaymentOrderID); err != nil {
        return err
    }
    query := `INSERT INTO booking_seats (booking_id, show_id, seat_label) VALUES `
    args := make([]any, 0, len(b.SeatLabels)*3)
    for i, label := range b.SeatLabels {
        if i > 0 {
            query += ","
        }
        query += "(?, ?, ?)"
        args = append(args, b.BookingID, b.ShowID, label)
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

// GetByID retrieves a booking with its seat labels.  It returns
// ErrBookingNotFound if there is no matching row.
func (r *BookingRepo) GetByID(ctx context.Context, bookingID string) (*model.Booking, error) {
    const q = `SELECT booking_id, show_id, session_id, email, phone, total_amount_cents,
                      payment_status, payment_order_id, payment_id, created_at, updated_at
               FROM bookings WHERE booking_id = ?`
    var b model.Booking
    var paymentID sql.NullString
    err := r.db.QueryRowContext(ctx, q, bookingID).Scan(
        &b.BookingID, &b.ShowID, &b.SessionID, &b.Email, &b.Phone, &b.TotalAmountCents,
        &b.PaymentStatus, &b.PaymentOrderID, &paymentID, &b.CreatedAt, &b.UpdatedAt)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrBookingNotFound
        }
        return nil, err
    }
    if paymentID.Valid {
        b.PaymentID = &paymentID.String
    }
    const seats = `SELECT seat_label FROM booking_seats WHERE booking_id = ? ORDER BY seat_label ASC`
    rows, err := r.db.QueryContext(ctx, seats, bookingID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    for rows.Next() {
        var l string
        if err := rows.Scan(&l); err != nil {
            return nil, err
        }
        b.SeatLabels = append(b.SeatLabels, l)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return &b, nil
}

// MarkPaid transitions a booking from pending to success and records the
// gateway payment id.  The UPDATE is conditional on the current status so
// the transition happens exactly once: a repeat call affects zero rows and
// is reported as ErrAlreadyFinalized (or ErrBookingNotFound when the id
// does not exist at all).
func (r *BookingRepo) MarkPaid(ctx context.Context, bookingID, paymentID string) error {
    const q = `UPDATE bookings
               SET payment_status = 'success', payment_id = ?, updated_at = UTC_TIMESTAMP()
               WHERE booking_id = ? AND payment_status = 'pending'`
    res, err := r.db.ExecContext(ctx, q, paymentID, bookingID)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n > 0 {
        return nil
    }
    // Zero rows: distinguish a missing booking from a repeated finalize.
    var status string
    err = r.db.QueryRowContext(ctx,
        `SELECT payment_status FROM bookings WHERE booking_id = ?`, bookingID).Scan(&status)
    if errors.Is(err, sql.ErrNoRows) {
        return ErrBookingNotFound
    }
    if err != nil {
        return err
    }
    return ErrAlreadyFinalized
}
