package utils

import (
	"log"
	"os"
)

const (
	TransportHeader = "header"
	TransportCookie = "cookie"
)

var (
	JWTSecretKey      string
	JWTExpirationTime int64  // seconds
	TokenTransport    string // "header" (canonical) or "cookie"
)

func InitJWT() {
	// For tests, use default values if environment variables aren't set
	if os.Getenv("GO_ENV") == "test" {
		if os.Getenv("JWT_SECRET_KEY") == "" {
			os.Setenv("JWT_SECRET_KEY", "test_secret_key")
		}
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT Secret Key not set")
	}

	// No expiry in the legacy deployment; issued tokens now expire after
	// this window (24h default) so a leaked token stops working eventually.
	JWTExpirationTime = GetEnvAsInt64("JWT_EXPIRATION_TIME", 86400)

	TokenTransport = GetEnvAsString("TOKEN_TRANSPORT", TransportHeader)
	if TokenTransport != TransportHeader && TokenTransport != TransportCookie {
		log.Fatalf("Invalid TOKEN_TRANSPORT %q, want %q or %q",
			TokenTransport, TransportHeader, TransportCookie)
	}
}
