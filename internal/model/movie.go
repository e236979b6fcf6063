package model

import "time"

// Movie represents a film in the catalog.  Genre, language and format
// lists are stored as comma-separated values and split at the repository
// boundary so the rest of the application works with slices.
//
// Fields:
//  ID          – primary key identifier.
//  Title       – movie title.
//  Poster      – URL of the poster image.
//  Rating      – aggregate rating out of ten.
//  Votes       – human-readable vote count (e.g. "245K").
//  Genres      – list of genres.
//  Languages   – list of audio languages.
//  Formats     – list of screening formats (2D, 3D, IMAX).
//  Duration    – human-readable runtime (e.g. "2h 30m").
//  ReleaseDate – release date as YYYY-MM-DD.
//  Trailer     – external trailer video identifier.
//  Description – synopsis shown on the detail page.
//  CreatedAt   – creation timestamp.
type Movie struct {
    ID          uint64    // movies.id
    Title       string    // movies.title
    Poster      string    // movies.poster
    Rating      float64   // movies.rating
    Votes       string    // movies.votes
    Genres      []string  // movies.genres (CSV column)
    Languages   []string  // movies.languages (CSV column)
    Formats     []string  // movies.formats (CSV column)
    Duration    string    // movies.duration
    ReleaseDate string    // movies.release_date
    Trailer     string    // movies.trailer
    Description string    // movies.description
    CreatedAt   time.Time // movies.created_at
}
