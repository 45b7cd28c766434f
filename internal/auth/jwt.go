package auth // package auth implements token issuance, password hashing and login throttling

import (
    "time" // time utilities for computing token expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating and verifying signed tokens
)

// Codec signs and verifies the bearer tokens handed to clients after a
// successful login.  Tokens are HS256 JWTs carrying the user's email as
// the subject, a mirrored "email" claim, an issued-at and an expiry.
// The codec holds only the signing secret and the configured TTL, so a
// single instance is safe for concurrent use by every request handler.
type Codec struct {
    secret []byte        // symmetric HMAC signing key
    ttl    time.Duration // lifetime of issued tokens
}

// NewCodec returns a Codec signing with the given secret and issuing
// tokens valid for ttl.
func NewCodec(secret string, ttl time.Duration) *Codec {
    return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue builds and signs a token for the given email.  The JWT includes
// the standard claims: subject (sub), a mirrored email claim, expiration
// (exp) and issued at (iat).
func (c *Codec) Issue(email string) (string, error) {
    now := time.Now().UTC()
    claims := jwt.MapClaims{
        "sub":   email,
        "email": email,
        "iat":   now.Unix(),
        "exp":   now.Add(c.ttl).Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    return t.SignedString(c.secret)
}

// Subject cryptographically verifies the token and returns its subject
// claim.  On any verification failure (malformed input, bad signature,
// wrong algorithm, expired) it returns the empty string; no error is
// propagated to the caller.
func (c *Codec) Subject(token string) string {
    claims := c.parse(token)
    if claims == nil {
        return ""
    }
    sub, _ := claims["sub"].(string)
    return sub
}

// Email returns the token's email claim, or the empty string when
// verification fails or the claim is absent.
func (c *Codec) Email(token string) string {
    claims := c.parse(token)
    if claims == nil {
        return ""
    }
    email, _ := claims["email"].(string)
    return email
}

// IsExpired reports whether the token's expiry is in the past.  A token
// that fails verification for any reason is treated as expired.
func (c *Codec) IsExpired(token string) bool {
    claims := c.parse(token)
    if claims == nil {
        return true
    }
    exp, err := claims.GetExpirationTime()
    if err != nil || exp == nil {
        return true
    }
    return exp.Before(time.Now())
}

// Validate reports whether the token is genuine, unexpired and was
// issued for the expected identity.
func (c *Codec) Validate(token, expected string) bool {
    sub := c.Subject(token)
    return sub != "" && sub == expected && !c.IsExpired(token)
}

// parse verifies signature and registered claims, returning the claim
// map or nil when the token is not acceptable.  The signing method is
// pinned to HMAC so a token re-signed under a different algorithm is
// rejected.
func (c *Codec) parse(token string) jwt.MapClaims {
    tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, jwt.ErrSignatureInvalid
        }
        return c.secret, nil
    })
    if err != nil || !tok.Valid {
        return nil
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return nil
    }
    return claims
}
