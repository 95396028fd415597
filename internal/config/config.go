package config // package config loads application configuration from environment variables

import (
    "os"       // os provides access to environment variables
    "strconv"  // strconv converts strings to other types
    "strings"  // strings splits list-valued variables
    "time"     // time parses duration-valued variables
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable and carries a default so the service starts with
// no environment at all.  The struct is built once at startup and passed
// explicitly into server composition; nothing reads it through a global.
type Config struct {
    AppName         string        // display name of the application
    Debug           bool          // enables verbose framework behaviour
    Port            string        // HTTP port to listen on
    Coins           []string      // perp symbols screened by the monitor
    MonitorInterval time.Duration // delay between monitor polling cycles
}

// Load reads configuration values from environment variables and returns a
// Config.  Every variable is optional; unset or malformed values fall back
// to the defaults below.
func Load() Config {
    return Config{
        AppName:         envStr("APP_NAME", "Perp Screener API"),
        Debug:           envBool("DEBUG", false),
        Port:            envStr("PORT", "3000"),
        Coins:           envList("COINS", []string{"BTC", "ETH", "SOL"}),
        MonitorInterval: envDur("MONITOR_INTERVAL", 60*time.Second),
    }
}

// envStr returns the value of an environment variable or a default when the
// variable is unset or empty.
func envStr(k, d string) string {
    if v := os.Getenv(k); v != "" {
        return v
    }
    return d
}

// envBool coerces an environment variable into a bool.  Unrecognised values
// fall back to the default rather than failing.
func envBool(k string, d bool) bool {
    v := os.Getenv(k)
    if v == "" {
        return d
    }
    switch v {
    case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
        return true
    case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
        return false
    }
    return d
}

// envInt coerces an environment variable into an int, defaulting on any
// parse failure.
func envInt(k string, d int) int {
    v := os.Getenv(k)
    if v == "" {
        return d
    }
    if n, err := strconv.Atoi(v); err == nil {
        return n
    }
    return d
}

// envFloat coerces an environment variable into a float64, defaulting on
// any parse failure.
func envFloat(k string, d float64) float64 {
    v := os.Getenv(k)
    if v == "" {
        return d
    }
    if f, err := strconv.ParseFloat(v, 64); err == nil {
        return f
    }
    return d
}

// envDur coerces an environment variable into a time.Duration using Go
// duration syntax (e.g. "60s", "5m"), defaulting on any parse failure.
func envDur(k string, d time.Duration) time.Duration {
    v := os.Getenv(k)
    if v == "" {
        return d
    }
    if dur, err := time.ParseDuration(v); err == nil {
        return dur
    }
    return d
}

// envList splits a comma-separated environment variable into a slice,
// trimming whitespace and dropping empty entries.
func envList(k string, d []string) []string {
    v := os.Getenv(k)
    if v == "" {
        return d
    }
    out := make([]string, 0)
    for _, p := range strings.Split(v, ",") {
        p = strings.TrimSpace(p)
        if p != "" {
            out = append(out, p)
        }
    }
    if len(out) == 0 {
        return d
    }
    return out
}
