package user_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdelrhmanQ/shc2/core"
	"github.com/abdelrhmanQ/shc2/core/user"
	inmemdb "github.com/abdelrhmanQ/shc2/storage/inmem"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func setup(t *testing.T) (*user.Service, user.Repository) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	repo := inmemdb.NewUserRepository(db)
	svc := user.NewService(repo, nil, nopLogger{})
	return svc, repo
}

func Test_Service_Register(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	nu := user.NewUser{
		Name:            " Jane Doe ",
		Email:           "Jane@Test.CD",
		Password:        "s3cr3t!",
		PasswordConfirm: "s3cr3t!",
	}
	usr, err := svc.Register(ctx, nu)
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	assert.NotEmpty(t, usr.ID)
	assert.Equal(t, "Jane Doe", usr.Name)
	assert.Equal(t, "jane@test.cd", usr.Email) // cleaned and lowered
	assert.Equal(t, user.RoleStudent, usr.Role)
	assert.False(t, usr.CreatedAt.IsZero())
	assert.NotEqual(t, "s3cr3t!", string(usr.PasswordHash))
	assert.NoError(t, usr.CheckPassword("s3cr3t!"))

	all, err := repo.QueryAllUsers(ctx)
	if err != nil {
		t.Fatalf("QueryAllUsers() failed: %v", err)
	}
	assert.Len(t, all, 1)
}

func Test_Service_Register_duplicateEmail(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	nu := user.NewUser{Name: "Jane", Email: "jane@test.cd", Password: "s3cr3t!", PasswordConfirm: "s3cr3t!"}
	if _, err := svc.Register(ctx, nu); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	nu.Name = "Impostor"
	_, err := svc.Register(ctx, nu)
	var vErr *core.ValidationError
	if assert.ErrorAs(t, err, &vErr) {
		assert.Equal(t, "email", vErr.Fields[0].Field)
	}

	// the collection is left untouched
	all, _ := repo.QueryAllUsers(ctx)
	assert.Len(t, all, 1)
	assert.Equal(t, "Jane", all[0].Name)
}

func Test_Service_Register_validation(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	tests := []struct {
		name string
		nu   user.NewUser
	}{
		{name: "all fields missing", nu: user.NewUser{}},
		{name: "missing name", nu: user.NewUser{Email: "a@b.cd", Password: "s3cr3t", PasswordConfirm: "s3cr3t"}},
		{name: "invalid email", nu: user.NewUser{Name: "Jane", Email: "nope", Password: "s3cr3t", PasswordConfirm: "s3cr3t"}},
		{name: "short password", nu: user.NewUser{Name: "Jane", Email: "a@b.cd", Password: "nope", PasswordConfirm: "nope"}},
		{name: "password mismatch", nu: user.NewUser{Name: "Jane", Email: "a@b.cd", Password: "s3cr3t", PasswordConfirm: "s3cr3t!"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, tt.nu); err == nil {
				t.Error("Register() expected a validation error")
			}
		})
	}

	all, _ := repo.QueryAllUsers(ctx)
	assert.Empty(t, all)
}

func Test_Service_Authenticate(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	nu := user.NewUser{Name: "Jane", Email: "jane@test.cd", Password: "s3cr3t!", PasswordConfirm: "s3cr3t!"}
	if _, err := svc.Register(ctx, nu); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	tests := []struct {
		name    string
		email   string
		pwd     string
		wantErr error
	}{
		{name: "ok", email: "jane@test.cd", pwd: "s3cr3t!"},
		{name: "ok (mixed case email)", email: " Jane@Test.CD ", pwd: "s3cr3t!"},
		{name: "wrong password", email: "jane@test.cd", pwd: "nope!!", wantErr: user.ErrInvalidCredentials},
		{name: "unknown email", email: "ghost@test.cd", pwd: "s3cr3t!", wantErr: user.ErrInvalidCredentials},
		{name: "case-sensitive password", email: "jane@test.cd", pwd: strings.ToUpper("s3cr3t!"), wantErr: user.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usr, err := svc.Authenticate(ctx, tt.email, tt.pwd)
			if err != tt.wantErr {
				t.Errorf("Authenticate() error = %v; wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && usr.Email != "jane@test.cd" {
				t.Errorf("Authenticate() user = %v", usr)
			}
		})
	}
}

func Test_Service_SetRole(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	usr, err := svc.Register(ctx, user.NewUser{Name: "Jane", Email: "jane@test.cd", Password: "s3cr3t!", PasswordConfirm: "s3cr3t!"})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	promoted, err := svc.SetRole(ctx, usr.ID, user.RoleAdmin)
	if err != nil {
		t.Fatalf("SetRole() failed: %v", err)
	}
	assert.True(t, promoted.IsAdmin())

	refreshed, err := svc.GetByID(ctx, usr.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	assert.Equal(t, user.RoleAdmin, refreshed.Role)

	if _, err = svc.SetRole(ctx, "nope", user.RoleAdmin); err != user.ErrNotFound {
		t.Errorf("SetRole() error = %v; wantErr %v", err, user.ErrNotFound)
	}
}
