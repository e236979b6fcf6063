package model

import "time"

// Payment status values for a booking.  A booking is created pending and
// transitions to success exactly once, when the payment signature has been
// verified.  Failed exists for gateway callbacks that report a definitive
// failure; the core never sets it on its own.
const (
    PaymentPending = "pending"
    PaymentSuccess = "success"
    PaymentFailed  = "failed"
)

// Booking records a purchase attempt and, once paid, a confirmed ticket.
// Seats on a success booking never overlap seats of any other success
// booking for the same show.  A booking abandoned before payment stays
// pending forever; its seats free up when the originating hold expires.
//
// Fields:
//  BookingID        – externally shareable identifier (e.g. "TH1733412345ab12").
//  ShowID           – show being booked.
//  SessionID        – browsing session that held the seats.
//  SeatLabels       – seats covered by this booking.
//  Email            – contact email for the confirmation.
//  Phone            – contact phone number.
//  TotalAmountCents – ticket price plus convenience fee, in cents.
//  PaymentStatus    – pending, success or failed.
//  PaymentOrderID   – order reference returned by the payment gateway.
//  PaymentID        – gateway payment id, set only on success.
//  CreatedAt        – creation timestamp.
//  UpdatedAt        – last update timestamp.
type Booking struct {
    BookingID        string    // bookings.booking_id
    ShowID           uint64    // bookings.show_id
    SessionID        string    // bookings.session_id
    SeatLabels       []string  // booking_seats.seat_label (one row per label)
    Email            string    // bookings.email
    Phone            string    // bookings.phone
    TotalAmountCents uint32    // bookings.total_amount_cents
    PaymentStatus    string    // bookings.payment_status
    PaymentOrderID   string    // bookings.payment_order_id
    PaymentID        *string   // bookings.payment_id (nullable)
    CreatedAt        time.Time // bookings.created_at
    UpdatedAt        time.Time // bookings.updated_at
}
