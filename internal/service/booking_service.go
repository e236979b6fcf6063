package service

import (
    "context"
    "fmt"
    "log"
    "time"

    "github.com/priyanshu24-creation/Ticket-Hub/internal/model"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/queue"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/repository"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/utils"
)

// BookingStore is the persistence contract for bookings.
type BookingStore interface {
    BookingReader
    Create(ctx context.Context, b *model.Booking) error
    GetByID(ctx context.Context, bookingID string) (*model.Booking, error)
    // MarkPaid performs the conditional pending→success transition,
    // returning repository.ErrAlreadyFinalized on a repeat call.
    MarkPaid(ctx context.Context, bookingID, paymentID string) error
}

// PaymentGateway is the opaque order-creation and signature-verification
// collaborator.  Implementations must bound their own network timeouts.
type PaymentGateway interface {
    CreateOrder(ctx context.Context, amountCents uint32, currency, receipt string) (orderID string, err error)
    VerifySignature(orderID, paymentID, signature string) bool
}

// Notifier delivers booking confirmations.  Delivery is best effort; the
// orchestrator never lets a notifier error surface to the customer.
type Notifier interface {
    NotifyBookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent) error
}

// CreateBookingInput carries a booking request from the HTTP layer.
type CreateBookingInput struct {
    ShowID     uint64
    SeatLabels []string
    SessionID  string
    Email      string
    Phone      string
}

// CreateBookingResult is returned to the client so it can start payment.
type CreateBookingResult struct {
    BookingID      string `json:"booking_id"`
    PaymentOrderID string `json:"payment_order_id"`
    AmountCents    uint32 `json:"amount_cents"`
    Currency       string `json:"currency"`
}

// FinalizeInput carries the payment proof submitted after checkout.
type FinalizeInput struct {
    BookingID string
    PaymentID string
    Signature string
}

// BookingSummary is the receipt returned once payment is verified, and
// also what GetBooking returns for later lookups.
type BookingSummary struct {
    BookingID        string   `json:"booking_id"`
    MovieTitle       string   `json:"movie_title"`
    TheaterName      string   `json:"theater_name"`
    ShowDate         string   `json:"show_date"`
    ShowTime         string   `json:"show_time"`
    Format           string   `json:"format"`
    SeatLabels       []string `json:"seats"`
    TotalAmountCents uint32   `json:"total_amount_cents"`
    PaymentStatus    string   `json:"payment_status"`
    Email            string   `json:"email"`
    Phone            string   `json:"phone"`
    CreatedAt        string   `json:"created_at"`
}

// BookingService converts a live hold into a pending booking with a
// payment order, and finalizes the booking once the payment proof
// verifies.  It shares the per-show lock table with the hold manager so
// finalize never interleaves with a reserve on the same show.
type BookingService struct {
    shows    ShowStore
    holds    HoldStore
    bookings BookingStore
    gateway  PaymentGateway
    notifier Notifier
    locks    *ShowLocks

    currency string
    feeCents uint32

    now func() time.Time // overridable in tests
}

// NewBookingService constructs a BookingService.  feeCents is the flat
// per-seat convenience fee added on top of the ticket price.
func NewBookingService(shows ShowStore, holds HoldStore, bookings BookingStore,
    gateway PaymentGateway, notifier Notifier, locks *ShowLocks,
    currency string, feeCents uint32) *BookingService {
    return &BookingService{
        shows:    shows,
        holds:    holds,
        bookings: bookings,
        gateway:  gateway,
        notifier: notifier,
        locks:    locks,
        currency: currency,
        feeCents: feeCents,
        now:      time.Now,
    }
}

// CreateBooking converts the session's active hold into a pending booking.
// The requested seats must all be covered by the hold; the price is
// price*seats plus the per-seat convenience fee.  The gateway order is
// created before anything is persisted, so a gateway failure leaves no
// partial booking behind.
func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
    show, err := s.shows.GetByID(ctx, in.ShowID)
    if err != nil {
        return nil, err
    }
    seats := dedupe(in.SeatLabels)
    if len(seats) == 0 {
        return nil, ErrNoSeats
    }

    defer s.locks.Lock(in.ShowID)()

    hold, err := s.holds.ActiveBySession(ctx, in.ShowID, in.SessionID)
    if err != nil {
        if err == repository.ErrHoldNotFound {
            return nil, ErrHoldExpired
        }
        return nil, err
    }
    held := make(map[string]struct{}, len(hold.SeatLabels))
    for _, l := range hold.SeatLabels {
        held[l] = struct{}{}
    }
    for _, l := range seats {
        if _, ok := held[l]; !ok {
            return nil, ErrSeatsNotHeld
        }
    }

    n := uint32(len(seats))
    amount := show.PriceCents*n + s.feeCents*n

    bookingID, err := newBookingID(s.now())
    if err != nil {
        return nil, err
    }
    orderID, err := s.gateway.CreateOrder(ctx, amount, s.currency, bookingID)
    if err != nil {
        return nil, fmt.Errorf("%w: %v", ErrGateway, err)
    }

    booking := &model.Booking{
        BookingID:        bookingID,
        ShowID:           in.ShowID,
        SessionID:        in.SessionID,
        SeatLabels:       seats,
        Email:            in.Email,
        Phone:            in.Phone,
        TotalAmountCents: amount,
        PaymentStatus:    model.PaymentPending,
        PaymentOrderID:   orderID,
    }
    if err := s.bookings.Create(ctx, booking); err != nil {
        return nil, err
    }
    return &CreateBookingResult{
        BookingID:      bookingID,
        PaymentOrderID: orderID,
        AmountCents:    amount,
        Currency:       s.currency,
    }, nil
}

// FinalizeBooking verifies the payment proof and transitions the booking
// to success exactly once.  The signature is checked against the order id
// stored on the booking, not one supplied by the caller.  Seats resold
// to another booking while the proof was in flight yield a ConflictError
// instead of a double sale.  On success the
// finalizing session's hold is released (other sessions' holds are left
// alone) and a confirmation is dispatched asynchronously; notification
// failures are logged and swallowed, never rolled back into the result.
func (s *BookingService) FinalizeBooking(ctx context.Context, in FinalizeInput) (*BookingSummary, error) {
    b, err := s.bookings.GetByID(ctx, in.BookingID)
    if err != nil {
        return nil, err
    }
    if !s.gateway.VerifySignature(b.PaymentOrderID, in.PaymentID, in.Signature) {
        return nil, ErrInvalidSignature
    }

    detail, err := s.shows.GetDetail(ctx, b.ShowID)
    if err != nil {
        return nil, err
    }

    unlock := s.locks.Lock(b.ShowID)
    err = s.confirmPaid(ctx, b, in.PaymentID)
    unlock()
    if err != nil {
        return nil, err
    }

    ev := queue.BookingConfirmedEvent{
        BookingID:        b.BookingID,
        Email:            b.Email,
        MovieTitle:       detail.MovieTitle,
        TheaterName:      detail.TheaterName,
        ShowDate:         detail.ShowDate,
        ShowTime:         detail.ShowTime,
        SeatLabels:       b.SeatLabels,
        TotalAmountCents: b.TotalAmountCents,
        ConfirmedAt:      s.now().UTC().Format(time.RFC3339),
    }
    go func(ev queue.BookingConfirmedEvent) {
        nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
        defer cancel()
        if err := s.notifier.NotifyBookingConfirmed(nctx, ev); err != nil {
            log.Printf("booking confirmation notify failed for %s: %v", ev.BookingID, err)
        }
    }(ev)

    return s.summarize(b, detail, model.PaymentSuccess), nil
}

// confirmPaid is the finalize critical section and must run under the
// show lock.  A hold only protects seats while it lives: if the proof
// arrives after the hold lapsed, another session may have bought the
// seats in the meantime, so availability is re-checked against the sold
// set before the pending→success transition.  The booking is re-read
// under the lock so a concurrent finalize of the same booking is seen.
func (s *BookingService) confirmPaid(ctx context.Context, b *model.Booking, paymentID string) error {
    cur, err := s.bookings.GetByID(ctx, b.BookingID)
    if err != nil {
        return err
    }
    if cur.PaymentStatus != model.PaymentPending {
        return repository.ErrAlreadyFinalized
    }
    sold, err := s.bookings.BookedLabels(ctx, b.ShowID)
    if err != nil {
        return err
    }
    taken := make(map[string]struct{}, len(sold))
    for _, l := range sold {
        taken[l] = struct{}{}
    }
    var lost []string
    for _, l := range b.SeatLabels {
        if _, ok := taken[l]; ok {
            lost = append(lost, l)
        }
    }
    if len(lost) > 0 {
        return &ConflictError{Unavailable: lost}
    }

    if err := s.bookings.MarkPaid(ctx, b.BookingID, paymentID); err != nil {
        return err
    }
    if _, delErr := s.holds.DeleteBySessionAndShow(ctx, b.SessionID, b.ShowID); delErr != nil {
        // The booking is already paid; a leftover hold expires on its
        // own and only blocks this session's seats meanwhile.
        log.Printf("release hold failed for booking %s: %v", b.BookingID, delErr)
    }
    return nil
}

// GetBooking returns the receipt view of a booking for later lookups.
func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (*BookingSummary, error) {
    b, err := s.bookings.GetByID(ctx, bookingID)
    if err != nil {
        return nil, err
    }
    detail, err := s.shows.GetDetail(ctx, b.ShowID)
    if err != nil {
        return nil, err
    }
    return s.summarize(b, detail, b.PaymentStatus), nil
}

func (s *BookingService) summarize(b *model.Booking, d *model.ShowDetail, status string) *BookingSummary {
    return &BookingSummary{
        BookingID:        b.BookingID,
        MovieTitle:       d.MovieTitle,
        TheaterName:      d.TheaterName,
        ShowDate:         d.ShowDate,
        ShowTime:         d.ShowTime,
        Format:           d.Format,
        SeatLabels:       b.SeatLabels,
        TotalAmountCents: b.TotalAmountCents,
        PaymentStatus:    status,
        Email:            b.Email,
        Phone:            b.Phone,
        CreatedAt:        b.CreatedAt.UTC().Format(time.RFC3339),
    }
}

// newBookingID builds an externally shareable booking id: a "TH" prefix,
// the creation time in unix seconds for rough ordering, and a random
// suffix so two bookings in the same second never collide.
func newBookingID(now time.Time) (string, error) {
    suffix, err := utils.RandomHex(2)
    if err != nil {
        return "", err
    }
    return fmt.Sprintf("TH%d%s", now.UTC().Unix(), suffix), nil
}
