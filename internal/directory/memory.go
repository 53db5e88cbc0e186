package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/avolkov/reverso/internal/config"
	"github.com/avolkov/reverso/internal/logger"
	"github.com/avolkov/reverso/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// principalRecord is the internal storage form of a principal. The bcrypt
// hash never leaves the provider.
type principalRecord struct {
	principal    models.Principal
	passwordHash []byte
}

// accessClaims is the claim set of tokens minted by the memory provider.
type accessClaims struct {
	jwt.RegisteredClaims

	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name,omitempty"`
	Picture       string `json:"picture,omitempty"`
}

// MemoryProvider is an in-process [Provider] used for local development and
// tests. Principals and documents live in process memory; tokens are
// HMAC-SHA256 JWTs signed with the configured key.
//
// Deleting a principal implicitly revokes its tokens: verification of a
// token whose subject no longer exists fails with [ErrInvalidToken].
type MemoryProvider struct {
	signKey       []byte
	issuer        string
	tokenDuration time.Duration

	mu         sync.RWMutex
	principals map[string]*principalRecord
	emails     map[string]string // normalized email -> uid
	documents  map[string]map[string][]byte

	logger *logger.Logger
}

// NewMemoryProvider constructs a [MemoryProvider] with the token parameters
// from cfg.
func NewMemoryProvider(cfg config.App, logger *logger.Logger) *MemoryProvider {
	return &MemoryProvider{
		signKey:       []byte(cfg.TokenSignKey),
		issuer:        cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		principals:    make(map[string]*principalRecord),
		emails:        make(map[string]string),
		documents:     make(map[string]map[string][]byte),
		logger:        logger,
	}
}

// VerifyToken implements [Provider]. It checks the token signature, issuer
// and expiry, then confirms the subject principal still exists so that
// deleted accounts cannot keep using previously issued tokens.
func (m *MemoryProvider) VerifyToken(_ context.Context, token string) (models.Identity, error) {
	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.signKey, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return models.Identity{}, fmt.Errorf("%w: %s", ErrInvalidToken, "token verification failed")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.principals[claims.Subject]
	if !ok {
		m.logger.Debug().Str("uid", claims.Subject).Msg("token for revoked principal rejected")
		return models.Identity{}, fmt.Errorf("%w: %s", ErrInvalidToken, "principal revoked")
	}

	// Identity reflects the current principal state, not the claims frozen
	// at issue time.
	p := record.principal
	return models.Identity{
		Subject:       p.UID,
		Email:         p.Email,
		EmailVerified: p.EmailVerified,
		Name:          p.DisplayName,
		Picture:       p.PhotoURL,
	}, nil
}

// CreatePrincipal implements [Provider]. The email is normalized to lower
// case for uniqueness checks; the password is stored as a bcrypt hash.
func (m *MemoryProvider) CreatePrincipal(_ context.Context, params PrincipalParams) (models.Principal, error) {
	email := normalizeEmail(params.Email)

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Principal{}, fmt.Errorf("hashing password: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.emails[email]; taken {
		return models.Principal{}, fmt.Errorf("%w: %s", ErrEmailExists, email)
	}

	principal := models.Principal{
		UID:           uuid.NewString(),
		Email:         email,
		EmailVerified: false,
		DisplayName:   params.DisplayName,
		PhotoURL:      params.PhotoURL,
	}

	m.principals[principal.UID] = &principalRecord{principal: principal, passwordHash: hash}
	m.emails[email] = principal.UID

	m.logger.Debug().Str("uid", principal.UID).Str("email", email).Msg("principal created")

	return principal, nil
}

// UpdatePrincipal implements [Provider]. Only non-nil fields of upd are
// applied.
func (m *MemoryProvider) UpdatePrincipal(_ context.Context, uid string, upd PrincipalUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.principals[uid]
	if !ok {
		return fmt.Errorf("%w: principal %s", ErrNotFound, uid)
	}

	if upd.DisplayName != nil {
		record.principal.DisplayName = *upd.DisplayName
	}
	if upd.PhotoURL != nil {
		record.principal.PhotoURL = *upd.PhotoURL
	}

	return nil
}

// DeletePrincipal implements [Provider]. Tokens issued for the principal
// become unverifiable as soon as the record is gone.
func (m *MemoryProvider) DeletePrincipal(_ context.Context, uid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.principals[uid]
	if !ok {
		return fmt.Errorf("%w: principal %s", ErrNotFound, uid)
	}

	delete(m.emails, record.principal.Email)
	delete(m.principals, uid)

	return nil
}

// GetDocument implements [Provider].
func (m *MemoryProvider) GetDocument(_ context.Context, collection, id string, out any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	raw, ok := m.documents[collection][id]
	if !ok {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding document %s/%s: %w", collection, id, err)
	}

	return nil
}

// SetDocument implements [Provider]. The document is stored in its JSON
// form, replacing any previous content.
func (m *MemoryProvider) SetDocument(_ context.Context, collection, id string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding document %s/%s: %w", collection, id, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.documents[collection] == nil {
		m.documents[collection] = make(map[string][]byte)
	}
	m.documents[collection][id] = raw

	return nil
}

// UpdateDocument implements [Provider]. Field keys may address nested
// values with dotted paths, e.g. "profile.bio".
func (m *MemoryProvider) UpdateDocument(_ context.Context, collection, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, ok := m.documents[collection][id]
	if !ok {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decoding document %s/%s: %w", collection, id, err)
	}

	for path, value := range fields {
		setDocumentField(doc, path, value)
	}

	updated, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document %s/%s: %w", collection, id, err)
	}
	m.documents[collection][id] = updated

	return nil
}

// DeleteDocument implements [Provider]. Deleting a missing document is a
// no-op.
func (m *MemoryProvider) DeleteDocument(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.documents[collection], id)

	return nil
}

// SignIn authenticates the email/password pair against the stored bcrypt
// hash and mints a fresh access token. It is not part of [Provider]; the
// remote directory issues tokens on its own, this method exists so that the
// in-process directory can be exercised end to end in development and tests.
func (m *MemoryProvider) SignIn(_ context.Context, email, password string) (string, error) {
	m.mu.RLock()
	uid, ok := m.emails[normalizeEmail(email)]
	var record *principalRecord
	if ok {
		record = m.principals[uid]
	}
	m.mu.RUnlock()

	if record == nil {
		return "", fmt.Errorf("%w: unknown email", ErrInvalidToken)
	}

	if err := bcrypt.CompareHashAndPassword(record.passwordHash, []byte(password)); err != nil {
		return "", fmt.Errorf("%w: wrong password", ErrInvalidToken)
	}

	return m.IssueToken(uid)
}

// IssueToken mints a signed HMAC-SHA256 access token for the given
// principal. Like [MemoryProvider.SignIn] it is a development/test helper,
// not part of [Provider].
func (m *MemoryProvider) IssueToken(uid string) (string, error) {
	m.mu.RLock()
	record, ok := m.principals[uid]
	m.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w: principal %s", ErrNotFound, uid)
	}

	now := time.Now()
	p := record.principal
	claims := &accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   p.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenDuration)),
		},
		Email:         p.Email,
		EmailVerified: p.EmailVerified,
		Name:          p.DisplayName,
		Picture:       p.PhotoURL,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// setDocumentField writes value into doc at the dotted path, creating
// intermediate maps as needed. A path segment that collides with a
// non-object value replaces it.
func setDocumentField(doc map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := doc
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}
