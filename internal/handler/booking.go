package handler

import (
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/priyanshu24-creation/Ticket-Hub/internal/repository"
    "github.com/priyanshu24-creation/Ticket-Hub/internal/service"
)

// BookingHandler exposes the seat reservation and booking flow: the seat
// map, seat holds, booking creation and payment verification.  The
// business rules live in the service layer; this handler only binds
// requests and maps service errors onto HTTP status codes.
type BookingHandler struct {
    Shows    *repository.ShowRepo
    Theaters *repository.TheaterRepo
    Ledger   *service.SeatLedger
    Holds    *service.HoldService
    Bookings *service.BookingService
}

func NewBookingHandler(shows *repository.ShowRepo, theaters *repository.TheaterRepo,
    ledger *service.SeatLedger, holds *service.HoldService, bookings *service.BookingService) *BookingHandler {
    return &BookingHandler{Shows: shows, Theaters: theaters, Ledger: ledger, Holds: holds, Bookings: bookings}
}

// SeatMap handles GET /shows/:id/seats.  It returns the theater's seat
// grid together with the derived booked and held seat sets, so the client
// can render availability without any seat rows existing in the database.
func (h *BookingHandler) SeatMap(c echo.Context) error {
    showID, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid show id"})
    }
    ctx := c.Request().Context()

    show, err := h.Shows.GetByID(ctx, showID)
    if err != nil {
        if err == repository.ErrShowNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    theater, err := h.Theaters.GetByID(ctx, show.TheaterID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    state, err := h.Ledger.SeatState(ctx, showID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    return c.JSON(http.StatusOK, echo.Map{
        "show_id":       showID,
        "show_date":     show.ShowDate,
        "show_time":     show.ShowTime,
        "format":        show.Format,
        "price_cents":   show.PriceCents,
        "seat_rows":     theater.SeatRows,
        "seats_per_row": theater.SeatsPerRow,
        "booked_seats":  state.Booked,
        "held_seats":    state.Held,
    })
}

type reserveReq struct {
    Seats     []string `json:"seats"`
    SessionID string   `json:"session_id"`
}

// Reserve handles POST /shows/:id/hold.  It places a five minute hold on
// the requested seats for the caller's session.  Conflicting seats yield
// a 409 listing the unavailable labels; reserving again from the same
// session replaces the previous hold.
func (h *BookingHandler) Reserve(c echo.Context) error {
    showID, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid show id"})
    }
    var req reserveReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    session := sessionID(c, req.SessionID)
    if session == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "session_id required"})
    }

    hold, err := h.Holds.Reserve(c.Request().Context(), showID, req.Seats, session)
    if err != nil {
        var conflict *service.ConflictError
        switch {
        case errors.As(err, &conflict):
            return c.JSON(http.StatusConflict, echo.Map{
                "error":             "seats unavailable",
                "unavailable_seats": conflict.Unavailable,
            })
        case err == repository.ErrShowNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
        case err == service.ErrNoSeats:
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "seats required"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reserve failed"})
    }

    return c.JSON(http.StatusCreated, echo.Map{
        "show_id":    hold.ShowID,
        "seats":      hold.SeatLabels,
        "expires_at": hold.ExpiresAt.UTC().Format(time.RFC3339),
    })
}

type createBookingReq struct {
    ShowID    uint64   `json:"show_id"`
    Seats     []string `json:"seats"`
    SessionID string   `json:"session_id"`
    Email     string   `json:"email"`
    Phone     string   `json:"phone"`
}

// Create handles POST /bookings.  The session must have a live hold
// covering every requested seat; on success the response carries the
// payment order the client completes checkout against.
func (h *BookingHandler) Create(c echo.Context) error {
    var req createBookingReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if req.ShowID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "show_id required"})
    }
    if req.Email == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
    }
    session := sessionID(c, req.SessionID)
    if session == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "session_id required"})
    }

    res, err := h.Bookings.CreateBooking(c.Request().Context(), service.CreateBookingInput{
        ShowID:     req.ShowID,
        SeatLabels: req.Seats,
        SessionID:  session,
        Email:      req.Email,
        Phone:      req.Phone,
    })
    if err != nil {
        switch {
        case err == repository.ErrShowNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
        case err == service.ErrNoSeats:
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "seats required"})
        case err == service.ErrHoldExpired:
            return c.JSON(http.StatusConflict, echo.Map{"error": "seat reservation expired, please reselect seats"})
        case err == service.ErrSeatsNotHeld:
            return c.JSON(http.StatusConflict, echo.Map{"error": "seats not covered by your reservation"})
        case errors.Is(err, service.ErrGateway):
            return c.JSON(http.StatusBadGateway, echo.Map{"error": "payment gateway unavailable"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
    }
    return c.JSON(http.StatusCreated, res)
}

type verifyPaymentReq struct {
    PaymentID string `json:"payment_id"`
    Signature string `json:"signature"`
}

// VerifyPayment handles POST /bookings/:id/payment.  It checks the HMAC
// payment proof and finalizes the booking exactly once; a second valid
// submission gets a 409 rather than a duplicate confirmation.
func (h *BookingHandler) VerifyPayment(c echo.Context) error {
    bookingID := c.Param("id")
    var req verifyPaymentReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if bookingID == "" || req.PaymentID == "" || req.Signature == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "payment_id and signature required"})
    }

    summary, err := h.Bookings.FinalizeBooking(c.Request().Context(), service.FinalizeInput{
        BookingID: bookingID,
        PaymentID: req.PaymentID,
        Signature: req.Signature,
    })
    if err != nil {
        var conflict *service.ConflictError
        switch {
        case err == repository.ErrBookingNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        case err == service.ErrInvalidSignature:
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "payment verification failed"})
        case err == repository.ErrAlreadyFinalized:
            return c.JSON(http.StatusConflict, echo.Map{"error": "booking already confirmed"})
        case errors.As(err, &conflict):
            return c.JSON(http.StatusConflict, echo.Map{
                "error":             "seats were sold while payment was pending",
                "unavailable_seats": conflict.Unavailable,
            })
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "payment verification failed"})
    }
    return c.JSON(http.StatusOK, summary)
}

// Get handles GET /bookings/:id and returns the receipt view.
func (h *BookingHandler) Get(c echo.Context) error {
    bookingID := c.Param("id")
    if bookingID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
    }
    summary, err := h.Bookings.GetBooking(c.Request().Context(), bookingID)
    if err != nil {
        if err == repository.ErrBookingNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, summary)
}
