package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"time"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultSessionTTL = 7 * 24 * time.Hour
	minPasswordLength = 8
	sessionTokenBytes = 32
)

type RegisterInput struct {
	Email    string
	Password string
	Role     entities.Role
	Customer entities.CustomerProfile
	Vendor   entities.VendorProfile
}

type CreateAdminInput struct {
	Email    string
	Password string
	Profile  entities.AdminProfile
}

type LoginResult struct {
	User    entities.User
	Session entities.Session
}

// IAuthUseCase covers registration, login/logout and the access gate.
//
// Authorize is the single session-validation entry point: a missing, unknown
// or expired token, or an inactive owner, yields ErrUnauthenticated; a valid
// user outside a non-empty allowed set yields ErrForbidden.

type IAuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (entities.User, error)
	CreateAdmin(ctx context.Context, in CreateAdminInput) (entities.User, error)
	EnsureAdmin(ctx context.Context, email, password string) (bool, error)
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Logout(ctx context.Context, token string) error
	Authorize(ctx context.Context, token string, allowed ...entities.Role) (entities.User, error)
	Me(ctx context.Context, userID string) (entities.UserWithProfile, error)
}

type AuthUseCase struct {
	users      interfaces.IUserRepository
	sessions   interfaces.ISessionRepository
	sessionTTL time.Duration
	log        *zap.SugaredLogger
	now        func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, sessions interfaces.ISessionRepository, sessionTTL time.Duration, log *zap.SugaredLogger) *AuthUseCase {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &AuthUseCase{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		log:        log.With("component", "usecase.auth"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (entities.User, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return entities.User{}, err
	}
	if len(in.Password) < minPasswordLength {
		return entities.User{}, invalid("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	profile := entities.Profile{}
	switch in.Role {
	case entities.RoleCustomer:
		c := trimCustomer(in.Customer)
		if c.FirstName == "" {
			return entities.User{}, invalid("first_name", "first name is required for customers")
		}
		if c.LastName == "" {
			return entities.User{}, invalid("last_name", "last name is required for customers")
		}
		c.FederatedIdentity = false
		c.ProfileComplete = c.Address != "" && c.PhoneNumber != ""
		profile.Customer = &c
	case entities.RoleVendor:
		v := trimVendor(in.Vendor)
		for _, f := range []struct{ name, value string }{
			{"company_name", v.CompanyName},
			{"owner_name", v.OwnerName},
			{"company_address", v.CompanyAddress},
			{"contact_phone", v.ContactPhone},
		} {
			if f.value == "" {
				return entities.User{}, invalid(f.name, strings.ReplaceAll(f.name, "_", " ")+" is required for vendors")
			}
		}
		v.ProfileComplete = true
		v.VerificationStatus = entities.VerificationPending
		profile.Vendor = &v
	default:
		return entities.User{}, invalid("user_type", "user type must be customer or vendor")
	}

	return u.create(ctx, email, in.Password, in.Role, profile)
}

func (u *AuthUseCase) CreateAdmin(ctx context.Context, in CreateAdminInput) (entities.User, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return entities.User{}, err
	}
	if len(in.Password) < minPasswordLength {
		return entities.User{}, invalid("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	p := in.Profile
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Title = strings.TrimSpace(p.Title)
	return u.create(ctx, email, in.Password, entities.RoleAdmin, entities.Profile{Admin: &p})
}

// EnsureAdmin creates the seed admin account unless the email is already taken.
func (u *AuthUseCase) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	_, err := u.CreateAdmin(ctx, CreateAdminInput{Email: email, Password: password, Profile: entities.AdminProfile{Title: "owner"}})
	if errors.Is(err, ErrEmailAlreadyRegistered) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (u *AuthUseCase) create(ctx context.Context, email, password string, role entities.Role, profile entities.Profile) (entities.User, error) {
	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := hashPassword(password)
	if err != nil {
		return entities.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := u.now()
	user := entities.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile.UserID = user.ID

	created, err := u.users.CreateWithProfile(ctx, user, profile)
	if errors.Is(err, interfaces.ErrDuplicate) {
		return entities.User{}, ErrEmailAlreadyRegistered
	}
	if err != nil {
		u.log.Errorw("register failed", "role", role, "error", err)
		return entities.User{}, err
	}
	u.log.Infow("user registered", "user_id", created.ID, "role", role)
	return created, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return LoginResult{}, invalid("email", "email is required")
	}
	if password == "" {
		return LoginResult{}, invalid("password", "password is required")
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}
	if user.ID == "" || !user.HasPassword() {
		return LoginResult{}, ErrInvalidCredentials
	}
	if !user.Active {
		return LoginResult{}, ErrAccountInactive
	}
	if err := checkPassword(user.PasswordHash, password); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := newSessionToken()
	if err != nil {
		return LoginResult{}, fmt.Errorf("generate session token: %w", err)
	}
	now := u.now()
	sess, err := u.sessions.Create(ctx, entities.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: now.Add(u.sessionTTL),
		CreatedAt: now,
	})
	if err != nil {
		u.log.Errorw("session create failed", "user_id", user.ID, "error", err)
		return LoginResult{}, err
	}
	u.log.Infow("login", "user_id", user.ID, "role", user.Role)
	return LoginResult{User: user, Session: sess}, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return u.sessions.DeleteByToken(ctx, token)
}

func (u *AuthUseCase) Authorize(ctx context.Context, token string, allowed ...entities.Role) (entities.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.User{}, ErrUnauthenticated
	}

	sess, err := u.sessions.GetByToken(ctx, token)
	if err != nil {
		return entities.User{}, fmt.Errorf("load session: %w", err)
	}
	if sess.ID == "" || sess.Expired(u.now()) {
		return entities.User{}, ErrUnauthenticated
	}

	user, err := u.users.GetByID(ctx, sess.UserID)
	if err != nil {
		return entities.User{}, fmt.Errorf("load session user: %w", err)
	}
	if user.ID == "" || !user.Active {
		return entities.User{}, ErrUnauthenticated
	}
	if len(allowed) > 0 && !slices.Contains(allowed, user.Role) {
		return entities.User{}, ErrForbidden
	}
	return user, nil
}

func (u *AuthUseCase) Me(ctx context.Context, userID string) (entities.UserWithProfile, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.UserWithProfile{}, err
	}
	if user.ID == "" {
		return entities.UserWithProfile{}, ErrUserNotFound
	}
	profile, err := u.users.GetProfile(ctx, userID)
	if err != nil {
		return entities.UserWithProfile{}, err
	}
	return entities.UserWithProfile{User: user, Profile: profile}, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", invalid("email", "email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", invalid("email", "email is not a valid address")
	}
	return email, nil
}

func newSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func trimCustomer(c entities.CustomerProfile) entities.CustomerProfile {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Address = strings.TrimSpace(c.Address)
	c.PhoneNumber = strings.TrimSpace(c.PhoneNumber)
	return c
}

func trimVendor(v entities.VendorProfile) entities.VendorProfile {
	v.CompanyName = strings.TrimSpace(v.CompanyName)
	v.OwnerName = strings.TrimSpace(v.OwnerName)
	v.CompanyAddress = strings.TrimSpace(v.CompanyAddress)
	v.ContactPhone = strings.TrimSpace(v.ContactPhone)
	v.Description = strings.TrimSpace(v.Description)
	v.ServicesOffered = strings.TrimSpace(v.ServicesOffered)
	return v
}
