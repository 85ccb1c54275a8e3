package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tbeckert/admindash/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

// Claims is the identity payload embedded in a signed token. Validity is
// determined entirely by signature and expiry; claims are never re-checked
// against the store, so a token outlives deletion or demotion of its
// account until it expires.
type Claims struct {
	UserID string      `json:"id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// AuthConfig carries the process-wide authentication settings. It is
// constructed once at startup and injected, so tests can use distinct
// secrets and lifetimes.
type AuthConfig struct {
	JWTSecret  string
	BcryptCost int
	// TokenTTL is the token lifetime. Zero means the 24-hour default.
	TokenTTL time.Duration
}

// AuthService is the authentication and authorization gate: it registers
// accounts, verifies credentials, issues and validates tokens, and enforces
// role requirements.
type AuthService struct {
	accounts   domain.AccountRepository
	secret     []byte
	bcryptCost int
	tokenTTL   time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(accounts domain.AccountRepository, cfg AuthConfig) *AuthService {
	ttl := cfg.TokenTTL
	if ttl == 0 {
		ttl = defaultTokenTTL
	}
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{
		accounts:   accounts,
		secret:     []byte(cfg.JWTSecret),
		bcryptCost: cost,
		tokenTTL:   ttl,
	}
}

// Register creates a new account after validating inputs. Role defaults to
// StandardUser, status to Active. The plaintext password is hashed and
// never stored or logged.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.Account, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email, and password are required", domain.ErrInvalidInput)
	}
	if role == "" {
		role = domain.RoleUser
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       domain.StatusActive,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

// Authenticate verifies credentials and returns a signed token plus the
// matching account. Unknown email and wrong password both yield
// ErrInvalidCredentials so the caller cannot tell which check failed.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, *domain.Account, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(account)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, account, nil
}

// ValidateToken parses and validates a token string and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, domain.ErrMissingToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}

// Authorize checks that the claims carry the required role.
func (s *AuthService) Authorize(claims *Claims, required domain.Role) error {
	if claims == nil || claims.Role != required {
		return domain.ErrForbidden
	}
	return nil
}

func (s *AuthService) issueToken(account *domain.Account) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: account.ID,
		Email:  account.Email,
		Role:   account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
