package payment

import (
    "context"
    "crypto/hmac"
    "crypto/sha256"
    "encoding/hex"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func sign(secret, orderID, paymentID string) string {
    mac := hmac.New(sha256.New, []byte(secret))
    mac.Write([]byte(orderID + "|" + paymentID))
    return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
    g := NewGateway("key", "secret", "")

    sig := sign("secret", "order_abc", "pay_123")
    assert.True(t, g.VerifySignature("order_abc", "pay_123", sig))

    assert.False(t, g.VerifySignature("order_abc", "pay_123", sig+"00"), "tampered signature")
    assert.False(t, g.VerifySignature("order_abc", "pay_456", sig), "different payment id")
    assert.False(t, g.VerifySignature("order_xyz", "pay_123", sig), "different order id")
    assert.False(t, g.VerifySignature("order_abc", "pay_123", ""))

    wrongKey := sign("other-secret", "order_abc", "pay_123")
    assert.False(t, g.VerifySignature("order_abc", "pay_123", wrongKey))
}

func TestCreateOrderStubMode(t *testing.T) {
    g := NewGateway("key", "secret", "")

    id, err := g.CreateOrder(context.Background(), 720, "INR", "TH123ab")
    require.NoError(t, err)
    assert.True(t, strings.HasPrefix(id, "order_"), "stub order id %q", id)

    other, err := g.CreateOrder(context.Background(), 720, "INR", "TH123ab")
    require.NoError(t, err)
    assert.NotEqual(t, id, other, "stub ids are random")
}

func TestCreateOrder(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        assert.Equal(t, http.MethodPost, r.Method)
        assert.Equal(t, "/v1/orders", r.URL.Path)
        user, pass, ok := r.BasicAuth()
        require.True(t, ok)
        assert.Equal(t, "key", user)
        assert.Equal(t, "secret", pass)

        var body map[string]any
        require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
        assert.EqualValues(t, 720, body["amount"])
        assert.Equal(t, "INR", body["currency"])
        assert.Equal(t, "TH123ab", body["receipt"])

        w.WriteHeader(http.StatusCreated)
        _ = json.NewEncoder(w).Encode(map[string]string{"id": "order_live_1"})
    }))
    defer srv.Close()

    g := NewGateway("key", "secret", srv.URL)
    id, err := g.CreateOrder(context.Background(), 720, "INR", "TH123ab")
    require.NoError(t, err)
    assert.Equal(t, "order_live_1", id)
}

func TestCreateOrderUpstreamError(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
        w.WriteHeader(http.StatusInternalServerError)
    }))
    defer srv.Close()

    g := NewGateway("key", "secret", srv.URL)
    _, err := g.CreateOrder(context.Background(), 720, "INR", "TH123ab")
    assert.Error(t, err)
}
