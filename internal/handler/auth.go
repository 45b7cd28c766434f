package handler

import (
    "context"  // provides context with cancellation for DB calls
    "errors"   // sentinel error comparisons
    "log"      // internal logging for mail/queue failures
    "net/http" // HTTP status codes and primitives
    "strings"  // string manipulation utilities
    "time"     // timeouts for DB calls and token expiry

    "github.com/google/uuid"      // random reset-token generation
    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/iliyamo/task-manager/internal/auth"       // token codec, hashing, throttle
    "github.com/iliyamo/task-manager/internal/config"     // app configuration
    "github.com/iliyamo/task-manager/internal/mail"       // password-reset mail dispatch
    "github.com/iliyamo/task-manager/internal/queue"      // audit event payloads
    "github.com/iliyamo/task-manager/internal/repository" // sentinel errors
    queue_publisher "github.com/iliyamo/task-manager/internal/service"
)

// resetTokenTTL bounds how long a password-reset token stays redeemable.
const resetTokenTTL = time.Hour

// forgotPasswordMsg is the single response body for forgot-password.
// It must be identical whether or not the account exists and whether or
// not the mail went out, so nothing about account existence leaks.
const forgotPasswordMsg = "If an account with that email exists, a password reset link has been sent."

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg         config.Config
	Codec       *auth.Codec
	Throttle    auth.Throttle
	Users       CredentialStore
	Roles       RoleLookup
	ResetTokens ResetTokenStore
	Mail        mail.Dispatcher
}

func NewAuthHandler(cfg config.Config, codec *auth.Codec, throttle auth.Throttle,
	users CredentialStore, roles RoleLookup, tokens ResetTokenStore, mailer mail.Dispatcher) *AuthHandler {
	return &AuthHandler{
		Cfg:         cfg,
		Codec:       codec,
		Throttle:    throttle,
		Users:       users,
		Roles:       roles,
		ResetTokens: tokens,
		Mail:        mailer,
	}
}

// ----- DTOs -----

type registerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	// Roles accepts role names ("ROLE_ADMIN"), numeric ids, or objects
	// with a "name" or "id" key. Unknown entries are skipped.
	Roles []any `json:"roles"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type forgotPasswordReq struct {
	Email string `json:"email"`
}
type resetPasswordReq struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Login: throttle check first, then credential verification. The failure
// response is the same for an unknown email and a wrong password.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if errs := validateLogin(req); !errs.ok() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": errs})
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Blocked identities are rejected before any credential work, so a
	// guessing attacker learns nothing further and burns no bcrypt time.
	if h.Throttle.IsBlocked(email) {
		return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "too many failed attempts"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.Throttle.RecordFailure(email)
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !auth.VerifyPassword(u.PasswordHash, req.Password) {
		h.Throttle.RecordFailure(email)
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	h.Throttle.RecordSuccess(email)
	token, err := h.Codec.Issue(u.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

// Register: both uniqueness checks must pass, then the user and its role
// links are inserted in one transaction by the store.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if errs := validateRegister(req); !errs.ok() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": errs})
	}
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if exists, err := h.Users.ExistsByEmail(ctx, email); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	} else if exists {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email already in use"})
	}
	if exists, err := h.Users.ExistsByUsername(ctx, username); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	} else if exists {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username already in use"})
	}

	hash, err := auth.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash password failed"})
	}

	roleIDs := h.resolveRoles(ctx, req.Roles)
	uid, err := h.Users.Create(ctx, username, email, hash, roleIDs)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailExists):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email already in use"})
		case errors.Is(err, repository.ErrUsernameExists):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "username already in use"})
		}
		log.Printf("register: create user failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	h.publish(queue.AuthEvent{Type: queue.EventUserRegistered, UserID: uid, Email: email, Username: username})
	return c.JSON(http.StatusCreated, echo.Map{"message": "user registered successfully"})
}

// resolveRoles maps the loosely-typed role references from the request to
// role IDs. Entries can be a name string, a bare number, or an object
// carrying "name" or "id". Anything unknown or malformed is skipped with
// a warning; an empty result falls back to ROLE_USER.
func (h *AuthHandler) resolveRoles(ctx context.Context, refs []any) []uint8 {
	var ids []uint8
	seen := map[uint8]bool{}
	add := func(r uint8) {
		if !seen[r] {
			seen[r] = true
			ids = append(ids, r)
		}
	}
	for _, ref := range refs {
		switch v := ref.(type) {
		case string:
			if role, err := h.Roles.FindByName(ctx, v); err == nil {
				add(role.ID)
			} else {
				log.Printf("register: skipping unknown role %q", v)
			}
		case float64: // JSON numbers decode as float64
			if role, err := h.Roles.FindByID(ctx, uint8(v)); err == nil {
				add(role.ID)
			} else {
				log.Printf("register: skipping unknown role id %v", v)
			}
		case map[string]any:
			if name, ok := v["name"].(string); ok {
				if role, err := h.Roles.FindByName(ctx, name); err == nil {
					add(role.ID)
					continue
				}
			}
			if id, ok := v["id"].(float64); ok {
				if role, err := h.Roles.FindByID(ctx, uint8(id)); err == nil {
					add(role.ID)
					continue
				}
			}
			log.Printf("register: skipping unresolvable role ref %v", v)
		default:
			log.Printf("register: skipping malformed role ref %v", ref)
		}
	}
	if len(ids) == 0 {
		if role, err := h.Roles.FindByName(ctx, "ROLE_USER"); err == nil {
			ids = append(ids, role.ID)
		}
	}
	return ids
}

// ForgotPassword: the response is always 200 with the same body. For a
// known account it supersedes any outstanding token, stores a fresh one
// and mails the reset link; mail failures are logged, never surfaced.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if errs := validateForgotPassword(req); !errs.ok() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": errs})
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("forgot-password: lookup failed for %s: %v", email, err)
		}
		// Unknown account: same response, no further action.
		return c.JSON(http.StatusOK, echo.Map{"message": forgotPasswordMsg})
	}

	if err := h.ResetTokens.DeleteForUser(ctx, u.ID); err != nil {
		log.Printf("forgot-password: supersede failed for user %d: %v", u.ID, err)
		return c.JSON(http.StatusOK, echo.Map{"message": forgotPasswordMsg})
	}
	token := uuid.NewString()
	if err := h.ResetTokens.Save(ctx, u.ID, token, time.Now().UTC().Add(resetTokenTTL)); err != nil {
		log.Printf("forgot-password: save token failed for user %d: %v", u.ID, err)
		return c.JSON(http.StatusOK, echo.Map{"message": forgotPasswordMsg})
	}

	// Synchronous send, matching the original contract; the client-visible
	// response does not depend on the outcome.
	if err := h.Mail.SendPasswordResetEmail(u.Email, token); err != nil {
		log.Printf("forgot-password: send mail to %s failed: %v", u.Email, err)
	}
	h.publish(queue.AuthEvent{Type: queue.EventPasswordResetRequested, UserID: u.ID, Email: u.Email})
	return c.JSON(http.StatusOK, echo.Map{"message": forgotPasswordMsg})
}

// ResetPassword: redeem a token exactly once. The conditional delete is
// taken before the password write, so when two redemptions race only the
// one that removed the row proceeds.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if errs := validateResetPassword(req); !errs.ok() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": errs})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rec, err := h.ResetTokens.FindByToken(ctx, strings.TrimSpace(req.Token))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid or expired token"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if time.Now().UTC().After(rec.ExpiresAt) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid or expired token"})
	}

	deleted, err := h.ResetTokens.Delete(ctx, rec.Token)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !deleted {
		// A concurrent redemption consumed the token first.
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid or expired token"})
	}

	hash, err := auth.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash password failed"})
	}
	if err := h.Users.UpdatePassword(ctx, rec.UserID, hash); err != nil {
		log.Printf("reset-password: update failed for user %d: %v", rec.UserID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update password failed"})
	}

	// Redeeming a token proves control of the mailbox, so the login
	// throttle counter for that email is cleared here as well.
	if u, err := h.Users.FindByID(ctx, rec.UserID); err == nil {
		h.Throttle.RecordSuccess(u.Email)
		h.publish(queue.AuthEvent{Type: queue.EventPasswordResetCompleted, UserID: u.ID, Email: u.Email})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "password reset successfully"})
}

// Me: simple protected endpoint echoing the authenticated identity.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"email": c.Get("email")})
}

// publish emits an audit event without blocking the request.
func (h *AuthHandler) publish(ev queue.AuthEvent) {
	ev.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishAuthEvent(ctx, ev)
	}()
}
