// Package repository contains data access logic built on database/sql.
// This file defines the movie repository.  Genre, language and format
// lists are stored as comma-separated values; splitCSV/joinCSV convert
// between the column format and slices at this boundary so the rest of
// the application never sees the CSV encoding.
package repository

import (
    "context"
    "database/sql"
    "errors"
    "strings"

    "github.com/priyanshu24-creation/Ticket-Hub/internal/model"
)

// MovieRepo manages persistence for movies.
type MovieRepo struct {
    db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the given DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{db: db} }

// splitCSV converts a comma-separated column value into a slice,
// dropping empty entries.
func splitCSV(s string) []string {
    if s == "" {
        return []string{}
    }
    parts := strings.Split(s, ",")
    out := make([]string, 0, len(parts))
    for _, p := range parts {
        if p = strings.TrimSpace(p); p != "" {
            out = append(out, p)
        }
    }
    return out
}

// joinCSV converts a slice into the comma-separated column format.
func joinCSV(vals []string) string { return strings.Join(vals, ",") }

const movieCols = `id, title, poster, rating, votes, genres, languages, formats,
                   duration, release_date, trailer, description, created_at`

func scanMovie(row interface{ Scan(...any) error }) (*model.Movie, error) {
    var m model.Movie
    var genres, languages, formats string
    err := row.Scan(&m.ID, &m.Title, &m.Poster, &m.Rating, &m.Votes,
        &genres, &languages, &formats,
        &m.Duration, &m.ReleaseDate, &m.Trailer, &m.Description, &m.CreatedAt)
    if err != nil {
        return nil, err
    }
    m.Genres = splitCSV(genres)
    m.Languages = splitCSV(languages)
    m.Formats = splitCSV(formats)
    return &m, nil
}

// List returns movies matching the optional filters.  genre and language
// are matched as exact CSV members via FIND_IN_SET; search matches the
// title case-insensitively.  Empty filter values are ignored.  When no
// movie matches it returns an empty slice and nil error.
func (r *MovieRepo) List(ctx context.Context, genre, language, search string) ([]model.Movie, error) {
    q := `SELECT ` + movieCols + ` FROM movies`
    var conds []string
    var args []any
    if genre != "" && genre != "all" {
        conds = append(conds, `FIND_IN_SET(?, genres) > 0`)
        args = append(args, genre)
    }
    if language != "" && language != "all" {
        conds = append(conds, `FIND_IN_SET(?, languages) > 0`)
        args = append(args, language)
    }
    if search != "" {
        conds = append(conds, `title LIKE CONCAT('%', ?, '%')`)
        args = append(args, search)
    }
    if len(conds) > 0 {
        q += ` WHERE ` + strings.Join(conds, ` AND `)
    }
    q += ` ORDER BY id ASC`
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Movie, 0)
    for rows.Next() {
        m, err := scanMovie(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, *m)
    }
    return out, rows.Err()
}

// GetByID retrieves a movie by its ID.  It returns ErrMovieNotFound if
// there is no matching row.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (*model.Movie, error) {
    const q = `SELECT ` + movieCols + ` FROM movies WHERE id = ?`
    m, err := scanMovie(r.db.QueryRowContext(ctx, q, id))
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrMovieNotFound
        }
        return nil, err
    }
    return m, nil
}

// Create inserts a new movie and assigns the generated ID back to the
// struct.  Used by the seed command.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
    const q = `INSERT INTO movies (title, poster, rating, votes, genres, languages, formats,
                                   duration, release_date, trailer, description)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, m.Title, m.Poster, m.Rating, m.Votes,
        joinCSV(m.Genres), joinCSV(m.Languages), joinCSV(m.Formats),
        m.Duration, m.ReleaseDate, m.Trailer, m.Description)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    m.ID = uint64(id)
    return nil
}
