package config // package config loads application configuration from environment variables

import (
    "log"      // log is used to report configuration errors and halt execution
    "os"       // os provides access to environment variables
    "strconv"  // strconv converts strings to other types
    "time"     // time is used for duration-typed configuration values
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, durations for TTLs,
// ints for costs and thresholds.
type Config struct {
    Env         string        // application environment (e.g. "dev", "prod")
    Port        string        // HTTP port to listen on
    DBUser      string        // database username
    DBPass      string        // database password (optional)
    DBHost      string        // database host address
    DBPort      string        // database port number
    DBName      string        // database name
    JWTSecret   string        // secret used to sign JWTs
    JWTTTL      time.Duration // access token time-to-live (configured in milliseconds)
    BcryptCost  int           // bcrypt cost for password hashing
    ThrottleMax int           // consecutive failed logins before an email is blocked
    FrontendURL string        // base URL of the frontend, used to build reset links
    SMTPHost    string        // SMTP server host (optional; mail disabled when empty)
    SMTPPort    string        // SMTP server port
    SMTPUser    string        // SMTP auth username (optional)
    SMTPPass    string        // SMTP auth password (optional)
    SMTPFrom    string        // "from" address on outgoing password-reset mail
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  The JWT TTL is
// expressed in milliseconds to match what the frontend stores alongside
// the token.
func Load() Config {
    return Config{
        Env:         must("APP_ENV"),                // environment (dev/test/prod)
        Port:        must("APP_PORT"),               // port to bind the HTTP server
        DBUser:      must("DB_USER"),                // database user
        DBPass:      os.Getenv("DB_PASS"),           // database password (empty allowed)
        DBHost:      must("DB_HOST"),                // database host
        DBPort:      must("DB_PORT"),                // database port
        DBName:      must("DB_NAME"),                // database name
        JWTSecret:   must("JWT_SECRET"),             // secret used for signing JWTs
        JWTTTL:      time.Duration(mustInt("JWT_EXPIRATION_MS")) * time.Millisecond, // token lifetime
        BcryptCost:  mustInt("BCRYPT_COST"),         // bcrypt cost factor
        ThrottleMax: intOr("LOGIN_MAX_ATTEMPTS", 6), // failed-login threshold
        FrontendURL: must("FRONTEND_URL"),           // reset links point at the frontend
        SMTPHost:    os.Getenv("SMTP_HOST"),         // empty disables outgoing mail
        SMTPPort:    getOr("SMTP_PORT", "587"),      // standard submission port
        SMTPUser:    os.Getenv("SMTP_USER"),         // optional SMTP credentials
        SMTPPass:    os.Getenv("SMTP_PASS"),         // optional SMTP credentials
        SMTPFrom:    getOr("SMTP_FROM", "no-reply@taskmanager.local"), // sender address
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

// intOr reads an optional integer variable, falling back to def when the
// variable is unset, malformed or non-positive.
func intOr(key string, def int) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    n, err := strconv.Atoi(v)
    if err != nil || n < 1 {
        return def
    }
    return n
}

// getOr reads an optional string variable with a default.
func getOr(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}
