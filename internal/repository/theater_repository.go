package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/priyanshu24-creation/Ticket-Hub/internal/model"
)

// TheaterRepo manages persistence for theaters.  The seat layout (row
// labels and seats per row) lives on the theater so that seat labels can
// be rendered without storing individual seat rows.
type TheaterRepo struct {
    db *sql.DB
}

// NewTheaterRepo constructs a TheaterRepo with the given DB handle.
func NewTheaterRepo(db *sql.DB) *TheaterRepo { return &TheaterRepo{db: db} }

// GetByID retrieves a theater by its ID.  It returns ErrTheaterNotFound
// if there is no matching row.
func (r *TheaterRepo) GetByID(ctx context.Context, id uint64) (*model.Theater, error) {
    const q = `SELECT id, name, location, city, total_seats, seat_rows, seats_per_row, created_at
               FROM theaters WHERE id = ?`
    var t model.Theater
    var rowsCSV string
    err := r.db.QueryRowContext(ctx, q, id).Scan(
        &t.ID, &t.Name, &t.Location, &t.City, &t.TotalSeats, &rowsCSV, &t.SeatsPerRow, &t.CreatedAt)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrTheaterNotFound
        }
        return nil, err
    }
    t.SeatRows = splitCSV(rowsCSV)
    return &t, nil
}

// Create inserts a new theater and assigns the generated ID back to the
// struct.  Used by the seed command.
func (r *TheaterRepo) Create(ctx context.Context, t *model.Theater) error {
    const q = `INSERT INTO theaters (name, location, city, total_seats, seat_rows, seats_per_row)
               VALUES (?, ?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, t.Name, t.Location, t.City, t.TotalSeats,
        joinCSV(t.SeatRows), t.SeatsPerRow)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    t.ID = uint64(id)
    return nil
}
