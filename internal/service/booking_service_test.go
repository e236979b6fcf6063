package service

import (
    "context"
    "errors"
    "strings"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/priyanshu24-creation/Ticket-Hub/internal/model"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/repository"
)

// bookingFixture wires a BookingService plus the HoldService it shares
// locks with, over the in-memory fakes.
type bookingFixture struct {
    svc      *BookingService
    holdSvc  *HoldService
    holds    *fakeHoldStore
    bookings *fakeBookingStore
    gateway  *fakeGateway
    notifier *fakeNotifier
    now      time.Time
}

func newBookingFixture(t *testing.T) *bookingFixture {
    t.Helper()
    f := &bookingFixture{
        now:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
        bookings: newFakeBookingStore(),
        gateway:  &fakeGateway{validSig: "good-sig"},
        notifier: newFakeNotifier(),
    }
    clock := func() time.Time { return f.now }
    f.holds = newFakeHoldStore(clock)
    locks := NewShowLocks()
    ledger := NewSeatLedger(f.bookings, f.holds)
    shows := newFakeShowStore(testShow(1))
    f.holdSvc = NewHoldService(shows, f.holds, ledger, locks, 5*time.Minute)
    f.holdSvc.now = clock
    f.svc = NewBookingService(shows, f.holds, f.bookings, f.gateway, f.notifier, locks, "INR", 20)
    f.svc.now = clock
    return f
}

func (f *bookingFixture) reserve(t *testing.T, seats []string, session string) {
    t.Helper()
    _, err := f.holdSvc.Reserve(context.Background(), 1, seats, session)
    require.NoError(t, err)
}

func TestCreateBooking(t *testing.T) {
    f := newBookingFixture(t)
    f.reserve(t, []string{"A1", "A2", "A3"}, "sess-1")

    res, err := f.svc.CreateBooking(context.Background(), CreateBookingInput{
        ShowID:     1,
        SeatLabels: []string{"A1", "A2", "A3"},
        SessionID:  "sess-1",
        Email:      "alice@example.com",
        Phone:      "9999999999",
    })
    require.NoError(t, err)

    // Three seats at 220 plus a 20 convenience fee per seat.
    assert.Equal(t, uint32(3*220+3*20), res.AmountCents)
    assert.Equal(t, "INR", res.Currency)
    assert.True(t, strings.HasPrefix(res.BookingID, "TH"), "booking id %q", res.BookingID)
    assert.Equal(t, "order_1", res.PaymentOrderID)

    b, err := f.bookings.GetByID(context.Background(), res.BookingID)
    require.NoError(t, err)
    assert.Equal(t, model.PaymentPending, b.PaymentStatus)
    assert.ElementsMatch(t, []string{"A1", "A2", "A3"}, b.SeatLabels)
}

func TestCreateBookingSubsetOfHold(t *testing.T) {
    f := newBookingFixture(t)
    f.reserve(t, []string{"A1", "A2", "A3"}, "sess-1")

    // Booking fewer seats than held is fine.
    res, err := f.svc.CreateBooking(context.Background(), CreateBookingInput{
        ShowID: 1, SeatLabels: []string{"A1"}, SessionID: "sess-1", Email: "a@b.c",
    })
    require.NoError(t, err)
    assert.Equal(t, uint32(220+20), res.AmountCents)
}

func TestCreateBookingWithoutHold(t *testing.T) {
    f := newBookingFixture(t)

    _, err := f.svc.CreateBooking(context.Background(), CreateBookingInput{
        ShowID: 1, SeatLabels: []string{"A1"}, SessionID: "sess-1", Email: "a@b.c",
    })
    assert.ErrorIs(t, err, ErrHoldExpired)
}

func TestCreateBookingExpiredHold(t *testing.T) {
    f := newBookingFixture(t)
    f.reserve(t, []string{"A1"}, "sess-1")
    f.now = f.now.Add(5*time.Minute + time.Second)

    _, err := f.svc.CreateBooking(context.Background(), CreateBookingInput{
        ShowID: 1, SeatLabels: []string{"A1"}, SessionID: "sess-1", Email: "a@b.c",
    })
    assert.ErrorIs(t, err, ErrHoldExpired)
}

func TestCreateBookingSeatsOutsideHold(t *testing.T) {
    f := newBookingFixture(t)
    f.reserve(t, []string{"A1", "A2"}, "sess-1")

    _, err := f.svc.CreateBooking(context.Background(), CreateBookingInput{
        ShowID: 1, SeatLabels: []string{"A1", "A4"}, SessionID: "sess-1", Email: "a@b.c",
    })
    assert.ErrorIs(t, err, ErrSeatsNotHeld)
    assert.Zero(t, f.bookings.count(), "nothing persisted")
}

func TestCreateBookingGatewayFailure(t *testing.T) {
    f := newBookingFixture(t)
    f.reserve(t, []string{"A1"}, "sess-1")
    f.gateway.orderErr = errors.New("upstream down")

    _, err := f.svc.CreateBooking(context.Background(), CreateBookingInput{
        ShowID: 1, SeatLabels: []string{"A1"}, SessionID: "sess-1", Email: "a@b.c",
    })
    assert.ErrorIs(t, err, ErrGateway)
    assert.Zero(t, f.bookings.count(), "gateway failure leaves no partial booking")

    // The hold survives so the customer can retry payment setup.
    _, err = f.holds.ActiveBySession(context.Background(), 1, "sess-1")
    assert.NoError(t, err)
}

func TestFinalizeBooking(t *testing.T) {
    f := newBookingFixture(t)
    f.reserve(t, []string{"A1", "A2"}, "sess-1")

    res, err := f.svc.CreateBooking(context.Background(), CreateBookingInput{
        ShowID: 1, SeatLabels: []string{"A1", "A2"}, SessionID: "sess-1", Email: "alice@example.com",
    })
    require.NoError(t, err)

    summary, err := f.svc.FinalizeBooking(context.Background(), FinalizeInput{
        BookingID: res.BookingID, PaymentID: "pay_1", Signature: "good-sig",
    })
    require.NoError(t, err)
    assert.Equal(t, model.PaymentSuccess, summary.PaymentStatus)
    assert.Equal(t, "Inception", summary.MovieTitle)
    assert.Equal(t, "PVR: Phoenix MarketCity", summary.TheaterName)
    assert.ElementsMatch(t, []string{"A1", "A2"}, summary.SeatLabels)

    // The finalizing session's hold is released; the seats are now booked.
    _, err = f.holds.ActiveBySession(context.Background(), 1, "sess-1")
    assert.ErrorIs(t, err, repository.ErrHoldNotFound)
    booked, err := f.bookings.BookedLabels(context.Background(), 1)
    require.NoError(t, err)
    assert.ElementsMatch(t, []string{"A1", "A2"}, booked)

    select {
    case ev := <-f.notifier.events:
        assert.Equal(t, res.BookingID, ev.BookingID)
        assert.Equal(t, "alice@example.com", ev.Email)
    case <-time.After(time.Second):
        t.Fatal("confirmation event not dispatched")
    }
}

func TestFinalizeBookingIdempotent(t *testing.T) {
    f := newBookingFixture(t)
    f.reserve(t, []string{"A1"}, "sess-1")
    res, err := f.svc.CreateBooking(context.Background(), CreateBookingInput{
        ShowID: 1, SeatLabels: []string{"A1"}, SessionID: "sess-1", Email: "a@b.c",
    })
    require.NoError(t, err)

    in := FinalizeInput{BookingID: res.BookingID, PaymentID: "pay_1", Signature: "good-sig"}
    _, err = f.svc.FinalizeBooking(context.Background(), in)
    require.NoError(t, err)

    // A repeat submission with a valid proof must not double-confirm.
    _, err = f.svc.FinalizeBooking(context.Background(), in)
    assert.ErrorIs(t, err, repository.ErrAlreadyFinalized)
}

func TestFinalizeBookingAfterSeatsResold(t *testing.T) {
    f := newBookingFixture(t)

    // First customer holds A1 and creates a pending booking, then stalls
    // at checkout until the hold lapses.
    f.reserve(t, []string{"A1"}, "sess-1")
    first, err := f.svc.CreateBooking(context.Background(), CreateBookingInput{
        ShowID: 1, SeatLabels: []string{"A1"}, SessionID: "sess-1", Email: "a@b.c",
    })
    require.NoError(t, err)
    f.now = f.now.Add(5*time.Minute + time.Second)

    // A second customer buys the freed seat outright.
    f.reserve(t, []string{"A1"}, "sess-2")
    second, err := f.svc.CreateBooking(context.Background(), CreateBookingInput{
        ShowID: 1, SeatLabels: []string{"A1"}, SessionID: "sess-2", Email: "b@c.d",
    })
    require.NoError(t, err)
    _, err = f.svc.FinalizeBooking(context.Background(), FinalizeInput{
        BookingID: second.BookingID, PaymentID: "pay_2", Signature: "good-sig",
    })
    require.NoError(t, err)

    // The first customer's proof is valid but arrives too late; the seat
    // belongs to the second booking now and must not be sold again.
    _, err = f.svc.FinalizeBooking(context.Background(), FinalizeInput{
        BookingID: first.BookingID, PaymentID: "pay_1", Signature: "good-sig",
    })
    var conflict *ConflictError
    require.ErrorAs(t, err, &conflict)
    assert.Equal(t, []string{"A1"}, conflict.Unavailable)

    b, err := f.bookings.GetByID(context.Background(), first.BookingID)
    require.NoError(t, err)
    assert.Equal(t, model.PaymentPending, b.PaymentStatus, "late booking not confirmed")

    booked, err := f.bookings.BookedLabels(context.Background(), 1)
    require.NoError(t, err)
    assert.Equal(t, []string{"A1"}, booked, "seat sold exactly once")
}

func TestFinalizeBookingBadSignature(t *testing.T) {
    f := newBookingFixture(t)
    f.reserve(t, []string{"A1"}, "sess-1")
    res, err := f.svc.CreateBooking(context.Background(), CreateBookingInput{
        ShowID: 1, SeatLabels: []string{"A1"}, SessionID: "sess-1", Email: "a@b.c",
    })
    require.NoError(t, err)

    _, err = f.svc.FinalizeBooking(context.Background(), FinalizeInput{
        BookingID: res.BookingID, PaymentID: "pay_1", Signature: "forged",
    })
    assert.ErrorIs(t, err, ErrInvalidSignature)

    b, err := f.bookings.GetByID(context.Background(), res.BookingID)
    require.NoError(t, err)
    assert.Equal(t, model.PaymentPending, b.PaymentStatus, "booking untouched on bad proof")
}

func TestFinalizeBookingNotFound(t *testing.T) {
    f := newBookingFixture(t)
    _, err := f.svc.FinalizeBooking(context.Background(), FinalizeInput{
        BookingID: "TH0000nope", PaymentID: "pay_1", Signature: "good-sig",
    })
    assert.ErrorIs(t, err, repository.ErrBookingNotFound)
}

func TestGetBooking(t *testing.T) {
    f := newBookingFixture(t)
    f.reserve(t, []string{"A1"}, "sess-1")
    res, err := f.svc.CreateBooking(context.Background(), CreateBookingInput{
        ShowID: 1, SeatLabels: []string{"A1"}, SessionID: "sess-1", Email: "a@b.c",
    })
    require.NoError(t, err)

    summary, err := f.svc.GetBooking(context.Background(), res.BookingID)
    require.NoError(t, err)
    assert.Equal(t, model.PaymentPending, summary.PaymentStatus)
    assert.Equal(t, res.BookingID, summary.BookingID)
}
