// Package payment implements the payment gateway collaborator: order
// creation against a Razorpay-style REST API and local HMAC verification
// of payment signatures.  The rest of the system treats both operations
// as opaque – it never inspects gateway responses beyond the order id.
package payment

import (
    "bytes"
    "context"
    "crypto/hmac"
    "crypto/sha256"
    "encoding/hex"
    "encoding/json"
    "fmt"
    "net/http"
    "time"

    "github.com/priyanshu24-creation/Ticket-Hub/internal/utils"
)

// Gateway talks to the payment provider.  When BaseURL is empty the
// gateway runs in stub mode and mints local order ids, which keeps
// development and tests off the network; signature verification works
// identically in both modes because it is computed locally.
type Gateway struct {
    keyID     string
    keySecret string
    baseURL   string
    client    *http.Client
}

// NewGateway constructs a Gateway.  The HTTP client timeout bounds order
// creation so a stuck provider cannot stall booking creation.
func NewGateway(keyID, keySecret, baseURL string) *Gateway {
    return &Gateway{
        keyID:     keyID,
        keySecret: keySecret,
        baseURL:   baseURL,
        client:    &http.Client{Timeout: 10 * time.Second},
    }
}

type orderRequest struct {
    Amount   uint32 `json:"amount"`
    Currency string `json:"currency"`
    Receipt  string `json:"receipt"`
}

type orderResponse struct {
    ID string `json:"id"`
}

// CreateOrder registers a payment order for the given amount (in minor
// units) and returns the provider's order id.  The receipt is the booking
// id, which lets support staff correlate provider orders with bookings.
func (g *Gateway) CreateOrder(ctx context.Context, amountCents uint32, currency, receipt string) (string, error) {
    if g.baseURL == "" {
        suffix, err := utils.RandomHex(8)
        if err != nil {
            return "", err
        }
        return "order_" + suffix, nil
    }

    body, err := json.Marshal(orderRequest{Amount: amountCents, Currency: currency, Receipt: receipt})
    if err != nil {
        return "", err
    }
    req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/orders", bytes.NewReader(body))
    if err != nil {
        return "", err
    }
    req.Header.Set("Content-Type", "application/json")
    req.SetBasicAuth(g.keyID, g.keySecret)

    resp, err := g.client.Do(req)
    if err != nil {
        return "", err
    }
    defer resp.Body.Close()
    if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
        return "", fmt.Errorf("order create returned status %d", resp.StatusCode)
    }
    var out orderResponse
    if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
        return "", err
    }
    if out.ID == "" {
        return "", fmt.Errorf("order create returned empty id")
    }
    return out.ID, nil
}

// VerifySignature checks a payment proof: the provider signs
// "{order_id}|{payment_id}" with HMAC-SHA256 under the shared secret and
// sends the hex digest along with the payment.  Comparison is constant
// time.
func (g *Gateway) VerifySignature(orderID, paymentID, signature string) bool {
    mac := hmac.New(sha256.New, []byte(g.keySecret))
    fmt.Fprintf(mac, "%s|%s", orderID, paymentID)
    expected := hex.EncodeToString(mac.Sum(nil))
    return hmac.Equal([]byte(expected), []byte(signature))
}
