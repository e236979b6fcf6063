// Command seed populates the database with an initial catalog of movies,
// theaters and a full day of shows.  It is idempotent only in the sense
// that running it twice duplicates the catalog; intended for fresh
// development databases.
package main

import (
    "context"
    "log"
    "time"

    "github.com/joho/godotenv"

    "github.com/priyanshu24-creation/Ticket-Hub/internal/config"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/database"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/model"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/repository"
)

var seatRows = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

func movies() []model.Movie {
    return []model.Movie{
        {
            Title: "Pushpa 2: The Rule", Poster: "https://images.unsplash.com/photo-1594908900066-3f47337549d8?w=300&h=450&fit=crop",
            Rating: 9.1, Votes: "245K",
            Genres: []string{"Action", "Drama", "Thriller"}, Languages: []string{"Hindi", "Telugu", "Tamil"},
            Formats: []string{"2D", "3D", "IMAX"}, Duration: "3h 15m", ReleaseDate: "2024-12-05", Trailer: "BhQTkdZFOyo",
            Description: "The clash is on as Pushpa and Bhanwar Singh continue their rivalry in this epic conclusion.",
        },
        {
            Title: "Stree 2", Poster: "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=300&h=450&fit=crop",
            Rating: 8.5, Votes: "189K",
            Genres: []string{"Horror", "Comedy"}, Languages: []string{"Hindi"},
            Formats: []string{"2D"}, Duration: "2h 30m", ReleaseDate: "2024-08-15", Trailer: "KVnheWSKu0w",
            Description: "The women of Chanderi return with another mysterious entity.",
        },
        {
            Title: "Kalki 2898 AD", Poster: "https://images.unsplash.com/photo-1626814026160-2237a95fc5a0?w=300&h=450&fit=crop",
            Rating: 8.9, Votes: "312K",
            Genres: []string{"Sci-Fi", "Action", "Adventure"}, Languages: []string{"Hindi", "Telugu", "Tamil", "English"},
            Formats: []string{"2D", "3D", "IMAX"}, Duration: "3h 0m", ReleaseDate: "2024-06-27", Trailer: "e3YzyAFric0",
            Description: "A modern avatar of Vishnu descends to Earth to protect the world from evil forces.",
        },
        {
            Title: "Jawan", Poster: "https://images.unsplash.com/photo-1440404653325-ab127d49abc1?w=300&h=450&fit=crop",
            Rating: 8.2, Votes: "278K",
            Genres: []string{"Action", "Thriller"}, Languages: []string{"Hindi", "Tamil", "Telugu"},
            Formats: []string{"2D", "IMAX"}, Duration: "2h 50m", ReleaseDate: "2024-09-07", Trailer: "CEZbKlJJ0bU",
            Description: "A man is driven by a personal vendetta to rectify the wrongs in society.",
        },
        {
            Title: "Inception", Poster: "https://images.unsplash.com/photo-1478720568477-152d9b164e26?w=300&h=450&fit=crop",
            Rating: 8.8, Votes: "2.5M",
            Genres: []string{"Sci-Fi", "Thriller", "Action"}, Languages: []string{"English", "Hindi"},
            Formats: []string{"2D", "IMAX"}, Duration: "2h 28m", ReleaseDate: "2010-07-16", Trailer: "YoHD9XEInc0",
            Description: "A thief who steals corporate secrets through dream-sharing technology.",
        },
        {
            Title: "Kantara: Chapter 1", Poster: "https://images.unsplash.com/photo-1533928298208-27ff66555d8d?w=300&h=450&fit=crop",
            Rating: 8.3, Votes: "156K",
            Genres: []string{"Action", "Drama", "Thriller"}, Languages: []string{"Kannada", "Hindi", "Telugu", "Tamil"},
            Formats: []string{"2D"}, Duration: "2h 28m", ReleaseDate: "2022-09-30", Trailer: "8mrVmf239GU",
            Description: "A tale of a man and nature's fight for co-existence.",
        },
    }
}

func theaters() []model.Theater {
    return []model.Theater{
        {Name: "PVR: Phoenix MarketCity", Location: "Kurla, Mumbai", City: "Mumbai", TotalSeats: 200, SeatRows: seatRows, SeatsPerRow: 20},
        {Name: "INOX: R City Mall", Location: "Ghatkopar, Mumbai", City: "Mumbai", TotalSeats: 200, SeatRows: seatRows, SeatsPerRow: 20},
        {Name: "Cinepolis: Viviana Mall", Location: "Thane, Mumbai", City: "Mumbai", TotalSeats: 200, SeatRows: seatRows, SeatsPerRow: 20},
    }
}

func main() {
    _ = godotenv.Load()
    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database connect failed: %v", err)
    }
    defer func() { _ = db.Close() }()

    movieRepo := repository.NewMovieRepo(db)
    theaterRepo := repository.NewTheaterRepo(db)
    showRepo := repository.NewShowRepo(db)

    ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
    defer cancel()

    ms := movies()
    for i := range ms {
        if err := movieRepo.Create(ctx, &ms[i]); err != nil {
            log.Fatalf("seed movie %q: %v", ms[i].Title, err)
        }
    }
    log.Printf("seeded %d movies", len(ms))

    ts := theaters()
    for i := range ts {
        if err := theaterRepo.Create(ctx, &ts[i]); err != nil {
            log.Fatalf("seed theater %q: %v", ts[i].Name, err)
        }
    }
    log.Printf("seeded %d theaters", len(ts))

    // Four showtimes per movie per theater for today, matching the price
    // tiers of the formats.
    today := time.Now().Format("2006-01-02")
    times := []string{"10:30", "14:15", "18:45", "21:30"}
    formats := []string{"2D", "3D", "IMAX", "2D"}
    prices := []uint32{220, 350, 450, 220}

    count := 0
    for _, m := range ms {
        for _, t := range ts {
            for i, at := range times {
                s := model.Show{
                    MovieID:    m.ID,
                    TheaterID:  t.ID,
                    ShowDate:   today,
                    ShowTime:   at,
                    Format:     formats[i],
                    PriceCents: prices[i],
                    TotalSeats: t.TotalSeats,
                }
                if err := showRepo.Create(ctx, &s); err != nil {
                    log.Fatalf("seed show for movie %d theater %d: %v", m.ID, t.ID, err)
                }
                count++
            }
        }
    }
    log.Printf("seeded %d shows for %s", count, today)
}
