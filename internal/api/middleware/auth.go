package middleware

import (
	"crypto/rsa"
	"crypto/subtle"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-revshare/internal/api/shared/errors"
	"github.com/feral-file/ff-revshare/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_TYPE_KEY    contextKey = "auth_type"
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"
)

const (
	AuthTypeJWT    = "jwt"
	AuthTypeAPIKey = "apikey"
)

// AuthConfig holds authentication configuration of the operator endpoints
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	JWTIssuer    string // Expected issuer, not checked when empty
	APIKeys      []string
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success     bool
	AuthType    string
	Claims      *jwt.RegisteredClaims
	AuthSubject string
	Error       error
}

// Authenticate validates the Authorization header and returns the authentication result
func Authenticate(authHeader string, cfg AuthConfig) AuthResult {
	result := AuthResult{
		Success: false,
	}

	if authHeader == "" {
		result.Error = errors.New("missing Authorization header")
		return result
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
		result.Error = errors.New("invalid Authorization header format")
		return result
	}

	authType := strings.ToLower(parts[0])
	credentials := strings.TrimSpace(parts[1])

	switch authType {
	case "bearer":
		claims, err := validateJWT(credentials, cfg)
		if err != nil {
			result.Error = err
			return result
		}
		result.Success = true
		result.AuthType = AuthTypeJWT
		result.Claims = claims
		result.AuthSubject = claims.Subject

	case "apikey":
		if err := validateAPIKey(credentials, cfg.APIKeys); err != nil {
			result.Error = err
			return result
		}
		result.Success = true
		result.AuthType = AuthTypeAPIKey

	default:
		result.Error = fmt.Errorf("unsupported authorization type: %s", authType)
		return result
	}

	return result
}

// Auth returns a gin middleware guarding the operator endpoints.
// It supports both JWT (Bearer token) and API Key authentication.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := Authenticate(c.GetHeader("Authorization"), cfg)

		if !result.Success {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Authentication failed", result.Error.Error())
			c.AbortWithStatusJSON(apiErr.StatusCode(), apierrors.ErrorResponse{Error: apiErr})
			return
		}

		c.Set(string(AUTH_TYPE_KEY), result.AuthType)
		if result.Claims != nil {
			c.Set(string(JWT_CLAIMS_KEY), result.Claims)
		}
		if result.AuthSubject != "" {
			c.Set(string(AUTH_SUBJECT_KEY), result.AuthSubject)
		}

		logger.DebugCtx(c.Request.Context(), "Authentication successful",
			zap.String("auth_type", result.AuthType),
			zap.String("subject", result.AuthSubject),
			zap.String("path", c.Request.URL.Path),
		)

		c.Next()
	}
}

// validateJWT validates a JWT token with RSA signature and returns claims
func validateJWT(tokenString string, cfg AuthConfig) (*jwt.RegisteredClaims, error) {
	if cfg.JWTPublicKey == "" {
		return nil, errors.New("JWT public key not configured")
	}

	publicKey, err := parseRSAPublicKey(cfg.JWTPublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}),
		jwt.WithExpirationRequired(),
	}
	if cfg.JWTIssuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.JWTIssuer))
	}

	// Expiry and not-before are checked by the parser
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return publicKey, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// Try parsing as PKIX (most common format)
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		// Try parsing as PKCS1 format
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}

// validateAPIKey compares the key against every configured key in constant time
func validateAPIKey(apiKey string, validKeys []string) error {
	configured := false
	for _, key := range validKeys {
		if key == "" {
			continue
		}
		configured = true
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) == 1 {
			return nil
		}
	}

	if !configured {
		return errors.New("no API keys configured")
	}
	return errors.New("invalid API key")
}
