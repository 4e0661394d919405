package user

import (
	"context"
	"errors"
	"strings"
	"sync"

	"allergysafe-be/internal/logger"
	"allergysafe-be/internal/session"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailExists    = errors.New("email already registered")
	ErrInvalidEmail   = errors.New("email is required")
	ErrInvalidRole    = errors.New("unsupported role")
	ErrWeakPassword   = errors.New("password must be at least 6 characters")
	ErrUnknownAccount = errors.New("invalid email or password")
)

// Account is a registered storefront account. Login stays role-mocked; the
// ledger only records who registered with which role.
type Account struct {
	Email        string
	PasswordHash string
	Role         session.Role
}

// Registry records registrations in memory.
type Registry struct {
	mu       sync.RWMutex
	accounts map[string]Account
}

func NewRegistry() *Registry {
	return &Registry{accounts: make(map[string]Account)}
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Register hashes the password and records the account. Duplicate emails are
// rejected; admin accounts cannot self-register.
func (r *Registry) Register(ctx context.Context, email, password string, role session.Role) (Account, error) {
	log := logger.FromCtx(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return Account{}, ErrInvalidEmail
	}
	if role != session.RoleClient && role != session.RoleSeller {
		return Account{}, ErrInvalidRole
	}
	if len(password) < 6 {
		return Account{}, ErrWeakPassword
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return Account{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[email]; exists {
		return Account{}, ErrEmailExists
	}

	acc := Account{Email: email, PasswordHash: hashed, Role: role}
	r.accounts[email] = acc

	log.Info("account registered",
		zap.String("email", email),
		zap.String("role", string(role)),
	)
	return acc, nil
}

// Verify checks a credential pair against the ledger.
func (r *Registry) Verify(email, password string) (Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	r.mu.RLock()
	acc, ok := r.accounts[email]
	r.mu.RUnlock()

	if !ok || !CheckPasswordHash(password, acc.PasswordHash) {
		return Account{}, ErrUnknownAccount
	}
	return acc, nil
}
