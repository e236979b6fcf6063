package config // package config loads application configuration from environment variables

import (
    "log"      // log is used to report configuration errors and halt execution
    "os"       // os provides access to environment variables
    "strconv"  // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations and fees.
type Config struct {
    Env                 string // application environment (e.g. "dev", "prod")
    Port                string // HTTP port to listen on
    DBUser              string // database username
    DBPass              string // database password (optional)
    DBHost              string // database host address
    DBPort              string // database port number
    DBName              string // database name
    JWTSecret           string // secret used to sign JWTs
    AccessTTLMin        int    // access token time‑to‑live in minutes
    RefreshTTLDays      int    // refresh token time‑to‑live in days
    BcryptCost          int    // bcrypt cost for password hashing
    PaymentKeyID        string // key id for the payment gateway account
    PaymentKeySecret    string // shared secret used for orders and signature checks
    PaymentBaseURL      string // gateway API base URL; empty enables offline stub orders
    Currency            string // currency code attached to payment orders
    HoldTTLMin          int    // seat hold time‑to‑live in minutes
    ConvenienceFeeCents int    // flat per‑seat fee added to every booking
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  Payment and hold
// settings fall back to development defaults so that a local environment
// only needs the database and JWT variables.
func Load() Config {
    return Config{
        Env:                 must("APP_ENV"),             // environment (dev/test/prod)
        Port:                must("APP_PORT"),            // port to bind the HTTP server
        DBUser:              must("DB_USER"),             // database user
        DBPass:              os.Getenv("DB_PASS"),        // database password (empty allowed)
        DBHost:              must("DB_HOST"),             // database host
        DBPort:              must("DB_PORT"),             // database port
        DBName:              must("DB_NAME"),             // database name
        JWTSecret:           must("JWT_SECRET"),          // secret used for signing JWTs
        AccessTTLMin:        mustInt("ACCESS_TOKEN_TTL_MIN"),   // TTL for access tokens in minutes
        RefreshTTLDays:      mustInt("REFRESH_TOKEN_TTL_DAYS"), // TTL for refresh tokens in days
        BcryptCost:          mustInt("BCRYPT_COST"),      // bcrypt cost factor
        PaymentKeyID:        envOr("PAYMENT_KEY_ID", "rzp_test_key"),        // gateway key id
        PaymentKeySecret:    envOr("PAYMENT_KEY_SECRET", "rzp_test_secret"), // gateway shared secret
        PaymentBaseURL:      os.Getenv("PAYMENT_BASE_URL"),                  // empty -> stub orders
        Currency:            envOr("PAYMENT_CURRENCY", "INR"),               // order currency
        HoldTTLMin:          intOr("HOLD_TTL_MIN", 5),           // holds last five minutes by default
        ConvenienceFeeCents: intOr("CONVENIENCE_FEE_CENTS", 20), // flat per-seat fee in cents
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

// envOr reads an optional string environment variable with a default.
func envOr(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

// intOr reads an optional integer environment variable, falling back to the
// provided default when unset.  A malformed value is fatal like mustInt.
func intOr(key string, def int) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    n, err := strconv.Atoi(v)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, v)
    }
    return n
}
