package service

// In-memory fakes implementing the persistence and gateway contracts.
// They mirror the repository semantics closely enough for the protocol
// tests: expiry filtering by timestamp, session-scoped replacement and
// the conditional pending to success transition.

import (
    "context"
    "fmt"
    "sync"
    "time"

    "github.com/priyanshu24-creation/Ticket-Hub/internal/model"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/queue"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/repository"
)

type fakeShowStore struct {
    shows map[uint64]model.ShowDetail
}

func newFakeShowStore(details ...model.ShowDetail) *fakeShowStore {
    m := make(map[uint64]model.ShowDetail, len(details))
    for _, d := range details {
        m[d.ID] = d
    }
    return &fakeShowStore{shows: m}
}

func (f *fakeShowStore) GetByID(_ context.Context, id uint64) (*model.Show, error) {
    d, ok := f.shows[id]
    if !ok {
        return nil, repository.ErrShowNotFound
    }
    s := d.Show
    return &s, nil
}

func (f *fakeShowStore) GetDetail(_ context.Context, id uint64) (*model.ShowDetail, error) {
    d, ok := f.shows[id]
    if !ok {
        return nil, repository.ErrShowNotFound
    }
    return &d, nil
}

type holdRow struct {
    showID    uint64
    label     string
    session   string
    expiresAt time.Time
}

type fakeHoldStore struct {
    mu   sync.Mutex
    rows []holdRow
    now  func() time.Time
}

func newFakeHoldStore(now func() time.Time) *fakeHoldStore {
    return &fakeHoldStore{now: now}
}

func (f *fakeHoldStore) HeldLabels(_ context.Context, showID uint64, excludeSessionID string) ([]string, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    now := f.now()
    seen := map[string]struct{}{}
    var out []string
    for _, r := range f.rows {
        if r.showID != showID || r.session == excludeSessionID || !r.expiresAt.After(now) {
            continue
        }
        if _, ok := seen[r.label]; ok {
            continue
        }
        seen[r.label] = struct{}{}
        out = append(out, r.label)
    }
    return out, nil
}

func (f *fakeHoldStore) ReplaceForSession(_ context.Context, h *model.SeatHold) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    kept := f.rows[:0]
    for _, r := range f.rows {
        if r.session != h.SessionID {
            kept = append(kept, r)
        }
    }
    f.rows = kept
    for _, label := range h.SeatLabels {
        f.rows = append(f.rows, holdRow{showID: h.ShowID, label: label, session: h.SessionID, expiresAt: h.ExpiresAt})
    }
    return nil
}

func (f *fakeHoldStore) ActiveBySession(_ context.Context, showID uint64, sessionID string) (*model.SeatHold, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    now := f.now()
    h := &model.SeatHold{ShowID: showID, SessionID: sessionID}
    for _, r := range f.rows {
        if r.showID == showID && r.session == sessionID && r.expiresAt.After(now) {
            h.SeatLabels = append(h.SeatLabels, r.label)
            h.ExpiresAt = r.expiresAt
        }
    }
    if len(h.SeatLabels) == 0 {
        return nil, repository.ErrHoldNotFound
    }
    return h, nil
}

func (f *fakeHoldStore) DeleteBySessionAndShow(_ context.Context, sessionID string, showID uint64) (int64, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    var n int64
    kept := f.rows[:0]
    for _, r := range f.rows {
        if r.session == sessionID && r.showID == showID {
            n++
            continue
        }
        kept = append(kept, r)
    }
    f.rows = kept
    return n, nil
}

func (f *fakeHoldStore) PurgeExpired(_ context.Context, showID uint64) (int64, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    now := f.now()
    var n int64
    kept := f.rows[:0]
    for _, r := range f.rows {
        if r.showID == showID && !r.expiresAt.After(now) {
            n++
            continue
        }
        kept = append(kept, r)
    }
    f.rows = kept
    return n, nil
}

type fakeBookingStore struct {
    mu       sync.Mutex
    bookings map[string]model.Booking
}

func newFakeBookingStore() *fakeBookingStore {
    return &fakeBookingStore{bookings: map[string]model.Booking{}}
}

func (f *fakeBookingStore) BookedLabels(_ context.Context, showID uint64) ([]string, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    var out []string
    for _, b := range f.bookings {
        if b.ShowID == showID && b.PaymentStatus == model.PaymentSuccess {
            out = append(out, b.SeatLabels...)
        }
    }
    return out, nil
}

func (f *fakeBookingStore) Create(_ context.Context, b *model.Booking) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.bookings[b.BookingID] = *b
    return nil
}

func (f *fakeBookingStore) GetByID(_ context.Context, bookingID string) (*model.Booking, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    b, ok := f.bookings[bookingID]
    if !ok {
        return nil, repository.ErrBookingNotFound
    }
    return &b, nil
}

func (f *fakeBookingStore) MarkPaid(_ context.Context, bookingID, paymentID string) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    b, ok := f.bookings[bookingID]
    if !ok {
        return repository.ErrBookingNotFound
    }
    if b.PaymentStatus != model.PaymentPending {
        return repository.ErrAlreadyFinalized
    }
    b.PaymentStatus = model.PaymentSuccess
    b.PaymentID = &paymentID
    f.bookings[bookingID] = b
    return nil
}

func (f *fakeBookingStore) count() int {
    f.mu.Lock()
    defer f.mu.Unlock()
    return len(f.bookings)
}

type fakeGateway struct {
    mu       sync.Mutex
    orderErr error
    orders   int
    validSig string
}

func (f *fakeGateway) CreateOrder(_ context.Context, _ uint32, _, _ string) (string, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    if f.orderErr != nil {
        return "", f.orderErr
    }
    f.orders++
    return fmt.Sprintf("order_%d", f.orders), nil
}

func (f *fakeGateway) VerifySignature(_, _, signature string) bool {
    return signature == f.validSig
}

type fakeNotifier struct {
    events chan queue.BookingConfirmedEvent
}

func newFakeNotifier() *fakeNotifier {
    return &fakeNotifier{events: make(chan queue.BookingConfirmedEvent, 8)}
}

func (f *fakeNotifier) NotifyBookingConfirmed(_ context.Context, ev queue.BookingConfirmedEvent) error {
    f.events <- ev
    return nil
}
