package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/avendel/pokerledger/internal/api/apierr"
)

// GateConfig holds the credentials guarding the statistics routes.
// Password and PasswordHash are alternatives: when PasswordHash (bcrypt) is
// set it takes precedence and Password is ignored.
type GateConfig struct {
	Username     string
	Password     string
	PasswordHash string

	// InternalHostSuffix exempts requests arriving via an internal
	// hostname (e.g. ".internal") from the credential check
	InternalHostSuffix string
}

// Configured reports whether both gate secrets are present
func (c GateConfig) Configured() bool {
	return c.Username != "" && (c.Password != "" || c.PasswordHash != "")
}

// Gate creates the basic-credential middleware for protected routes.
// Missing server-side secrets are a 500-class fault, distinct from bad
// credentials (401).
func Gate(cfg GateConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.InternalHostSuffix != "" && strings.HasSuffix(requestHost(r), cfg.InternalHostSuffix) {
				next.ServeHTTP(w, r)
				return
			}

			if !cfg.Configured() {
				logger.Error("gate secrets not configured")
				apierr.WriteError(w, apierr.NewAuthNotConfiguredError())
				return
			}

			username, password, ok := r.BasicAuth()
			if !ok || !cfg.match(username, password) {
				w.Header().Set("WWW-Authenticate", `Basic realm="pokerledger"`)
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// match compares the presented credentials against the configured secrets
func (c GateConfig) match(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1

	var passOK bool
	if c.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	}

	return userOK && passOK
}

// requestHost returns the request host with any port stripped
func requestHost(r *http.Request) string {
	host := r.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
