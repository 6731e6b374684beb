package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sharewallet/sharewallet/internal/app/system/normalize"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Cookie constants & capabilities                                             |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	AccessCookie  = "accessToken"
	RefreshCookie = "refreshToken"

	// RefreshedMessage is echoed in every success body after a silent
	// access-token refresh so API clients know to pick up the new cookie.
	RefreshedMessage = "access token has been refreshed; update the client copy"
)

// Capability is the authorization kind a request must satisfy.
type Capability int

const (
	// Simple requires only a valid token pair.
	Simple Capability = iota
	// User requires the token to belong to a specific username.
	User
	// Admin requires the admin role.
	Admin
	// Group requires the caller's email to be among a group's member emails.
	Group
)

// Requirement pairs a capability with its parameters.
type Requirement struct {
	Cap          Capability
	Username     string
	MemberEmails []string
}

func RequireSimple() Requirement              { return Requirement{Cap: Simple} }
func RequireUser(username string) Requirement { return Requirement{Cap: User, Username: username} }
func RequireAdmin() Requirement               { return Requirement{Cap: Admin} }
func RequireGroup(memberEmails []string) Requirement {
	return Requirement{Cap: Group, MemberEmails: memberEmails}
}

// Decision is the outcome of an authorization check. Cause is human-readable
// and returned verbatim in 401 bodies when Authorized is false.
// RefreshedTokenMessage is non-empty when the access token was silently
// renewed during the check; handlers echo it in the success envelope.
type Decision struct {
	Authorized            bool
	Cause                 string
	RefreshedTokenMessage string
}

/*─────────────────────────────────────────────────────────────────────────────*
| Claims & Manager                                                            |
*─────────────────────────────────────────────────────────────────────────────*/

// Claims is what both the access and refresh JWTs carry.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

func (c *Claims) complete() bool {
	return c.Username != "" && c.Email != "" && c.Role != ""
}

// Manager mints and verifies the access/refresh token pair. It is shared by
// every handler; construction happens once in bootstrap.
type Manager struct {
	secret       []byte
	accessTTL    time.Duration
	refreshTTL   time.Duration
	cookieDomain string
	secure       bool
	log          *zap.Logger
}

// NewManager builds a token manager. The signing secret must be non-empty;
// short secrets are tolerated with a warning so local dev keeps working.
func NewManager(secret string, accessTTL, refreshTTL time.Duration, cookieDomain string, secure bool, logger *zap.Logger) (*Manager, error) {
	if secret == "" {
		return nil, fmt.Errorf("token secret is empty; provide ≥32 random chars")
	}
	if len(secret) < 32 {
		logger.Warn("token secret is short; 32+ chars recommended",
			zap.Int("length", len(secret)))
	}
	return &Manager{
		secret:       []byte(secret),
		accessTTL:    accessTTL,
		refreshTTL:   refreshTTL,
		cookieDomain: cookieDomain,
		secure:       secure,
		log:          logger,
	}, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Minting & cookies                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

func (m *Manager) mint(username, email, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: username,
		Email:    normalize.Email(email),
		Role:     normalize.Role(role),
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// MintAccessToken signs a short-lived access token for the given identity.
func (m *Manager) MintAccessToken(username, email, role string) (string, error) {
	return m.mint(username, email, role, m.accessTTL)
}

// MintRefreshToken signs a long-lived refresh token for the given identity.
func (m *Manager) MintRefreshToken(username, email, role string) (string, error) {
	return m.mint(username, email, role, m.refreshTTL)
}

func (m *Manager) setCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   m.cookieDomain,
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetAuthCookies installs the token pair on the response.
func (m *Manager) SetAuthCookies(w http.ResponseWriter, access, refresh string) {
	m.setCookie(w, AccessCookie, access, m.accessTTL)
	m.setCookie(w, RefreshCookie, refresh, m.refreshTTL)
}

// ClearAuthCookies expires both auth cookies.
func (m *Manager) ClearAuthCookies(w http.ResponseWriter) {
	m.setCookie(w, AccessCookie, "", -time.Second)
	m.setCookie(w, RefreshCookie, "", -time.Second)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Verification                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

// parse decodes and verifies a token. An expired-but-otherwise-valid token
// returns its claims with expired=true so the refresh path can still read
// the identity it carried.
func (m *Manager) parse(token string) (claims *Claims, expired bool, err error) {
	claims = &Claims{}
	_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		ve, ok := err.(*jwt.ValidationError)
		if ok && ve.Errors == jwt.ValidationErrorExpired {
			return claims, true, nil
		}
		return nil, false, err
	}
	return claims, false, nil
}

// Verify checks a single requirement. See VerifyAny.
func (m *Manager) Verify(w http.ResponseWriter, r *http.Request, req Requirement) Decision {
	return m.VerifyAny(w, r, req)
}

// VerifyAny authorizes the request if its token pair satisfies at least one
// of the given requirements.
//
// Both cookies must be present and well formed, carry complete identity
// information, and agree with each other. An expired access token is renewed
// on the spot when the refresh token is still valid: the capability check
// then runs against the refresh claims, a fresh access cookie is set on w,
// and the returned decision carries RefreshedMessage.
func (m *Manager) VerifyAny(w http.ResponseWriter, r *http.Request, reqs ...Requirement) Decision {
	accessC, errA := r.Cookie(AccessCookie)
	refreshC, errR := r.Cookie(RefreshCookie)
	if errA != nil || errR != nil || accessC.Value == "" || refreshC.Value == "" {
		return Decision{Cause: "auth tokens missing"}
	}

	access, accessExpired, err := m.parse(accessC.Value)
	if err != nil {
		return Decision{Cause: "access token is malformed"}
	}
	refresh, refreshExpired, err := m.parse(refreshC.Value)
	if err != nil {
		return Decision{Cause: "refresh token is malformed"}
	}

	if !access.complete() || !refresh.complete() {
		return Decision{Cause: "token is missing information"}
	}
	if access.Username != refresh.Username || access.Email != refresh.Email || access.Role != refresh.Role {
		return Decision{Cause: "mismatched tokens"}
	}

	claims := access
	var refreshedMsg string
	if accessExpired {
		if refreshExpired {
			return Decision{Cause: "session expired, perform login again"}
		}
		claims = refresh
		renewed, mintErr := m.MintAccessToken(refresh.Username, refresh.Email, refresh.Role)
		if mintErr != nil {
			m.log.Error("access token renewal failed", zap.Error(mintErr))
			return Decision{Cause: "session expired, perform login again"}
		}
		m.setCookie(w, AccessCookie, renewed, m.accessTTL)
		refreshedMsg = RefreshedMessage
	}

	ok, cause := satisfiesAny(claims, reqs)
	if !ok {
		return Decision{Cause: cause}
	}
	return Decision{Authorized: true, RefreshedTokenMessage: refreshedMsg}
}

// CallerClaims returns the identity carried by the request's access token,
// expired or not. Intended for handlers that already ran a Verify and need
// the caller's own email or username; it does not authorize anything.
func (m *Manager) CallerClaims(r *http.Request) (*Claims, bool) {
	c, err := r.Cookie(AccessCookie)
	if err != nil || c.Value == "" {
		return nil, false
	}
	claims, _, parseErr := m.parse(c.Value)
	if parseErr != nil || !claims.complete() {
		return nil, false
	}
	return claims, true
}

func satisfies(claims *Claims, req Requirement) (bool, string) {
	switch req.Cap {
	case Simple:
		return true, ""
	case User:
		if claims.Username == normalize.Username(req.Username) {
			return true, ""
		}
		return false, "token username does not match the requested user"
	case Admin:
		if claims.Role == "admin" {
			return true, ""
		}
		return false, "admin capability required"
	case Group:
		for _, e := range req.MemberEmails {
			if normalize.Email(e) == claims.Email {
				return true, ""
			}
		}
		return false, "caller email is not a member of the group"
	}
	return false, "unknown capability"
}

func satisfiesAny(claims *Claims, reqs []Requirement) (bool, string) {
	if len(reqs) == 0 {
		return true, ""
	}
	cause := ""
	for _, req := range reqs {
		ok, c := satisfies(claims, req)
		if ok {
			return true, ""
		}
		if cause == "" {
			cause = c
		}
	}
	return false, cause
}
