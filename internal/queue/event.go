// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a booking's payment has been
// verified.  It carries everything the confirmation consumer needs to
// format the customer email without querying the primary database.
type BookingConfirmedEvent struct {
    BookingID        string   `json:"booking_id"`
    Email            string   `json:"email"`
    MovieTitle       string   `json:"movie_title"`
    TheaterName      string   `json:"theater_name"`
    ShowDate         string   `json:"show_date"`
    ShowTime         string   `json:"show_time"`
    SeatLabels       []string `json:"seats"`
    TotalAmountCents uint32   `json:"total_amount_cents"`
    ConfirmedAt      string   `json:"confirmed_at"`
}
