package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase/interfaces"
	mock_interfaces "solar_marketplace/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_Register_Validations(t *testing.T) {
	tests := []struct {
		name  string
		in    RegisterInput
		field string
	}{
		{"empty email", RegisterInput{Email: " ", Password: testPassword, Role: entities.RoleCustomer}, "email"},
		{"malformed email", RegisterInput{Email: "not-an-email", Password: testPassword, Role: entities.RoleCustomer}, "email"},
		{"short password", RegisterInput{Email: "a@b.com", Password: "short", Role: entities.RoleCustomer}, "password"},
		{"unknown role", RegisterInput{Email: "a@b.com", Password: testPassword, Role: "root"}, "user_type"},
		{"admin self registration", RegisterInput{Email: "a@b.com", Password: testPassword, Role: entities.RoleAdmin}, "user_type"},
		{"customer without first name", RegisterInput{Email: "a@b.com", Password: testPassword, Role: entities.RoleCustomer,
			Customer: entities.CustomerProfile{LastName: "S"}}, "first_name"},
		{"customer without last name", RegisterInput{Email: "a@b.com", Password: testPassword, Role: entities.RoleCustomer,
			Customer: entities.CustomerProfile{FirstName: "A"}}, "last_name"},
		{"vendor without company", RegisterInput{Email: "a@b.com", Password: testPassword, Role: entities.RoleVendor,
			Vendor: entities.VendorProfile{OwnerName: "O", CompanyAddress: "A", ContactPhone: "P"}}, "company_name"},
		{"vendor without phone", RegisterInput{Email: "a@b.com", Password: testPassword, Role: entities.RoleVendor,
			Vendor: entities.VendorProfile{CompanyName: "Sun", OwnerName: "O", CompanyAddress: "A"}}, "contact_phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No repository calls are expected before validation passes.
			uc := NewAuthUseCase(nil, nil, 0, nopLogger())
			_, err := uc.Register(context.Background(), tt.in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Fatalf("expected field %q, got %q", tt.field, verr.Field)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected errors.Is ErrValidation")
			}
		})
	}
}

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("customer profile is stored with the user", func(t *testing.T) {
		m := newMarketplace(t)
		u, err := m.auth.Register(context.Background(), RegisterInput{
			Email:    "  Ana@Example.COM ",
			Password: testPassword,
			Role:     entities.RoleCustomer,
			Customer: entities.CustomerProfile{FirstName: "Ana", LastName: "Silva", Address: "1 Main St", PhoneNumber: "555"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Email != "ana@example.com" || !u.Active || u.Role != entities.RoleCustomer {
			t.Fatalf("unexpected user: %+v", u)
		}
		if u.PasswordHash == "" || u.PasswordHash == testPassword {
			t.Fatalf("password must be stored hashed")
		}

		me, err := m.auth.Me(context.Background(), u.ID)
		if err != nil {
			t.Fatalf("me: %v", err)
		}
		if me.Profile.Customer == nil || !me.Profile.Customer.ProfileComplete {
			t.Fatalf("expected complete customer profile, got %+v", me.Profile)
		}
	})

	t.Run("vendor starts pending verification", func(t *testing.T) {
		m := newMarketplace(t)
		v := m.vendor(t, "sun@example.com", "Sunny Co")
		me, err := m.auth.Me(context.Background(), v.ID)
		if err != nil {
			t.Fatalf("me: %v", err)
		}
		if me.Profile.Vendor == nil || me.Profile.Vendor.VerificationStatus != entities.VerificationPending {
			t.Fatalf("expected pending vendor profile, got %+v", me.Profile)
		}
	})

	t.Run("duplicate email is a conflict and leaves one user", func(t *testing.T) {
		m := newMarketplace(t)
		m.customer(t, "dup@example.com")
		_, err := m.auth.Register(context.Background(), RegisterInput{
			Email: "DUP@example.com", Password: testPassword, Role: entities.RoleCustomer,
			Customer: entities.CustomerProfile{FirstName: "B", LastName: "C"},
		})
		if !errors.Is(err, ErrEmailAlreadyRegistered) {
			t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
		}
		n, _ := m.store.Users().CountByRole(context.Background(), entities.RoleCustomer)
		if n != 1 {
			t.Fatalf("expected 1 customer, got %d", n)
		}
	})

	t.Run("concurrent duplicate registrations", func(t *testing.T) {
		m := newMarketplace(t)
		const attempts = 8
		var wg sync.WaitGroup
		errs := make([]error, attempts)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = m.auth.Register(context.Background(), RegisterInput{
					Email: "race@example.com", Password: testPassword, Role: entities.RoleCustomer,
					Customer: entities.CustomerProfile{FirstName: "R", LastName: "C"},
				})
			}(i)
		}
		wg.Wait()

		ok := 0
		for _, err := range errs {
			switch {
			case err == nil:
				ok++
			case !errors.Is(err, ErrEmailAlreadyRegistered):
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if ok != 1 {
			t.Fatalf("expected exactly one registration, got %d", ok)
		}
	})

	t.Run("storage duplicate maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, 0, nopLogger())

		users.EXPECT().GetByEmail(gomock.Any(), "late@example.com").Return(entities.User{}, nil)
		users.EXPECT().CreateWithProfile(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.User{}, interfaces.ErrDuplicate)

		_, err := uc.Register(context.Background(), RegisterInput{
			Email: "late@example.com", Password: testPassword, Role: entities.RoleCustomer,
			Customer: entities.CustomerProfile{FirstName: "L", LastName: "T"},
		})
		if !errors.Is(err, ErrEmailAlreadyRegistered) {
			t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()
	c := m.customer(t, "login@example.com")

	t.Run("unknown email", func(t *testing.T) {
		_, err := m.auth.Login(ctx, "nobody@example.com", testPassword)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := m.auth.Login(ctx, "login@example.com", "wrong-password")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := m.auth.Login(ctx, "", testPassword)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("success issues a session", func(t *testing.T) {
		res, err := m.auth.Login(ctx, " LOGIN@example.com", testPassword)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.User.ID != c.ID {
			t.Fatalf("expected user %s, got %s", c.ID, res.User.ID)
		}
		if len(res.Session.Token) != 64 {
			t.Fatalf("expected 64 char token, got %d", len(res.Session.Token))
		}
		if !res.Session.ExpiresAt.After(time.Now()) {
			t.Fatalf("session must expire in the future")
		}
	})

	t.Run("inactive account", func(t *testing.T) {
		if _, err := m.store.Users().SetActive(ctx, c.ID, false); err != nil {
			t.Fatalf("set active: %v", err)
		}
		defer m.store.Users().SetActive(ctx, c.ID, true)

		_, err := m.auth.Login(ctx, "login@example.com", testPassword)
		if !errors.Is(err, ErrAccountInactive) {
			t.Fatalf("expected ErrAccountInactive, got %v", err)
		}
	})

	t.Run("federated account has no password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, 0, nopLogger())
		users.EXPECT().GetByEmail(gomock.Any(), "fed@example.com").Return(entities.User{ID: "u1", Email: "fed@example.com", Active: true}, nil)

		_, err := uc.Login(ctx, "fed@example.com", testPassword)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestAuthUseCase_Authorize(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()
	c := m.customer(t, "gate@example.com")
	res, err := m.auth.Login(ctx, "gate@example.com", testPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	token := res.Session.Token

	t.Run("absent token", func(t *testing.T) {
		_, err := m.auth.Authorize(ctx, "")
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := m.auth.Authorize(ctx, "deadbeef")
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("any role", func(t *testing.T) {
		u, err := m.auth.Authorize(ctx, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.ID != c.ID || u.Role != entities.RoleCustomer {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	t.Run("allowed role", func(t *testing.T) {
		if _, err := m.auth.Authorize(ctx, token, entities.RoleCustomer, entities.RoleAdmin); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		_, err := m.auth.Authorize(ctx, token, entities.RoleAdmin)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
		if errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("forbidden must be distinct from unauthenticated")
		}
	})

	t.Run("expired session", func(t *testing.T) {
		uc := NewAuthUseCase(m.store.Users(), m.store.Sessions(), time.Hour, nopLogger())
		uc.now = func() time.Time { return time.Now().UTC().Add(2 * time.Hour) }
		_, err := uc.Authorize(ctx, token)
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("inactive user", func(t *testing.T) {
		if _, err := m.store.Users().SetActive(ctx, c.ID, false); err != nil {
			t.Fatalf("set active: %v", err)
		}
		defer m.store.Users().SetActive(ctx, c.ID, true)
		_, err := m.auth.Authorize(ctx, token)
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("logout invalidates the token", func(t *testing.T) {
		other, err := m.auth.Login(ctx, "gate@example.com", testPassword)
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if err := m.auth.Logout(ctx, other.Session.Token); err != nil {
			t.Fatalf("logout: %v", err)
		}
		if err := m.auth.Logout(ctx, other.Session.Token); err != nil {
			t.Fatalf("second logout must be a no-op: %v", err)
		}
		_, err = m.auth.Authorize(ctx, other.Session.Token)
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("storage failure is not reported as unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewAuthUseCase(nil, sessions, 0, nopLogger())
		boom := errors.New("connection refused")
		sessions.EXPECT().GetByToken(gomock.Any(), "tok").Return(entities.Session{}, boom)

		_, err := uc.Authorize(ctx, "tok")
		if !errors.Is(err, boom) {
			t.Fatalf("expected wrapped storage error, got %v", err)
		}
	})
}

func TestAuthUseCase_EnsureAdmin(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()

	created, err := m.auth.EnsureAdmin(ctx, "root@example.com", testPassword)
	if err != nil || !created {
		t.Fatalf("expected admin to be created, got created=%v err=%v", created, err)
	}
	created, err = m.auth.EnsureAdmin(ctx, "root@example.com", testPassword)
	if err != nil || created {
		t.Fatalf("expected second seed to be a no-op, got created=%v err=%v", created, err)
	}
	n, _ := m.store.Users().CountByRole(ctx, entities.RoleAdmin)
	if n != 1 {
		t.Fatalf("expected 1 admin, got %d", n)
	}
}
