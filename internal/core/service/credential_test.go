package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/yndnr/docfold-go/internal/core/domain"
	"github.com/yndnr/docfold-go/internal/storage"
)

func newTestCredentials(t *testing.T, scheme PasswordScheme) *CredentialService {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	docs, err := storage.NewFSStore(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	t.Cleanup(func() { docs.Close() })

	return NewCredentialService(docs, scheme, logger)
}

func TestCredentialService_Create(t *testing.T) {
	ctx := context.Background()
	creds := newTestCredentials(t, PlainScheme{})

	if err := creds.Create(ctx, "alice", "s3cret"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	ok, err := creds.Exists(ctx, "alice")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !ok {
		t.Error("Exists = false after Create")
	}

	t.Run("duplicate user", func(t *testing.T) {
		err := creds.Create(ctx, "alice", "other")
		if !errors.Is(err, domain.ErrUserExists) {
			t.Errorf("Create duplicate = %v, want ErrUserExists", err)
		}
	})
}

func TestCredentialService_Exists(t *testing.T) {
	ctx := context.Background()
	creds := newTestCredentials(t, PlainScheme{})

	ok, err := creds.Exists(ctx, "nobody")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if ok {
		t.Error("Exists = true for unknown user")
	}
}

func TestCredentialService_Verify(t *testing.T) {
	ctx := context.Background()

	schemes := map[string]PasswordScheme{
		"plain":  PlainScheme{},
		"bcrypt": BcryptScheme{},
	}
	for name, scheme := range schemes {
		t.Run(name, func(t *testing.T) {
			creds := newTestCredentials(t, scheme)
			if err := creds.Create(ctx, "alice", "s3cret"); err != nil {
				t.Fatalf("Create: %v", err)
			}

			if err := creds.Verify(ctx, "alice", "s3cret"); err != nil {
				t.Errorf("Verify with correct password = %v", err)
			}
			if err := creds.Verify(ctx, "alice", "wrong"); !errors.Is(err, domain.ErrInvalidPassword) {
				t.Errorf("Verify with wrong password = %v, want ErrInvalidPassword", err)
			}
			if err := creds.Verify(ctx, "nobody", "s3cret"); !errors.Is(err, domain.ErrUserNotFound) {
				t.Errorf("Verify unknown user = %v, want ErrUserNotFound", err)
			}
		})
	}
}

func TestCredentialService_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	creds := newTestCredentials(t, PlainScheme{})

	if err := creds.Create(ctx, "alice", "old"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := creds.UpdatePassword(ctx, "alice", "new"); err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}

	if err := creds.Verify(ctx, "alice", "new"); err != nil {
		t.Errorf("Verify new password = %v", err)
	}
	if err := creds.Verify(ctx, "alice", "old"); !errors.Is(err, domain.ErrInvalidPassword) {
		t.Errorf("Verify old password = %v, want ErrInvalidPassword", err)
	}

	t.Run("unknown user", func(t *testing.T) {
		err := creds.UpdatePassword(ctx, "nobody", "pw")
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("UpdatePassword unknown user = %v, want ErrUserNotFound", err)
		}
	})
}

func TestPasswordScheme(t *testing.T) {
	t.Run("selection", func(t *testing.T) {
		cases := []struct {
			name    string
			want    string
			wantErr bool
		}{
			{name: "", want: "plain"},
			{name: "plain", want: "plain"},
			{name: "bcrypt", want: "bcrypt"},
			{name: "scrypt", wantErr: true},
		}
		for _, tc := range cases {
			scheme, err := NewPasswordScheme(tc.name)
			if tc.wantErr {
				if err == nil {
					t.Errorf("NewPasswordScheme(%q): expected error", tc.name)
				}
				continue
			}
			if err != nil {
				t.Errorf("NewPasswordScheme(%q): %v", tc.name, err)
				continue
			}
			if scheme.Name() != tc.want {
				t.Errorf("NewPasswordScheme(%q).Name() = %q, want %q", tc.name, scheme.Name(), tc.want)
			}
		}
	})

	t.Run("bcrypt seals irreversibly", func(t *testing.T) {
		scheme := BcryptScheme{}
		sealed, err := scheme.Seal("s3cret")
		if err != nil {
			t.Fatalf("Seal: %v", err)
		}
		if sealed == "s3cret" {
			t.Error("Seal returned the plaintext")
		}
		if !scheme.Compare(sealed, "s3cret") {
			t.Error("Compare rejected the correct password")
		}
		if scheme.Compare(sealed, "wrong") {
			t.Error("Compare accepted a wrong password")
		}
	})
}
