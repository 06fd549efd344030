package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdelrhmanQ/shc2/core/user"
	notifysvc "github.com/abdelrhmanQ/shc2/services/notify"
	inmemdb "github.com/abdelrhmanQ/shc2/storage/inmem"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func setup(t *testing.T) (*commandLine, *user.Service) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	svc := user.NewService(inmemdb.NewUserRepository(db), nil, nopLogger{})
	cli := &commandLine{
		usrSvc:   svc,
		notifier: notifysvc.NewConsoleNotifier(nopLogger{}),
	}
	return cli, svc
}

type cliTest struct {
	name    string
	args    []string // without program name
	pwd     string
	wantErr error
}

func Test_commandLine_addAdmin(t *testing.T) {
	cli, svc := setup(t)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"addadmin"}, wantErr: errHelp},
		{name: "name but no email", args: []string{"addadmin", "-name", "Admin"}, wantErr: errHelp},
		{name: "empty password", args: []string{"addadmin", "-name", "Admin", "-email", "admin@test.cd"}, wantErr: errHelp},
		{name: "ok", args: []string{"addadmin", "-name", "Admin", "-email", "admin@test.cd"}, pwd: "s3cr3t!"},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			return []byte(tt.pwd), nil
		}

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	usr, err := svc.GetByEmail(context.Background(), "admin@test.cd")
	if err != nil {
		t.Fatalf("GetByEmail() failed: %v", err)
	}
	assert.True(t, usr.IsAdmin())
	assert.NoError(t, usr.CheckPassword("s3cr3t!"))
}

func Test_commandLine_promote(t *testing.T) {
	cli, svc := setup(t)

	usr, err := svc.Register(context.Background(), user.NewUser{
		Name:            "Jane",
		Email:           "jane@test.cd",
		Password:        "s3cr3t!",
		PasswordConfirm: "s3cr3t!",
	})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	assert.False(t, usr.IsAdmin())

	tests := []cliTest{
		{name: "no email", args: []string{"promote"}, wantErr: errHelp},
		{name: "user not found", args: []string{"promote", "-email", "ghost@test.cd"}, wantErr: user.ErrNotFound},
		{name: "ok", args: []string{"promote", "-email", "jane@test.cd"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	refreshed, err := svc.GetByID(context.Background(), usr.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	assert.True(t, refreshed.IsAdmin())
}

func Test_commandLine_listUsers(t *testing.T) {
	cli, svc := setup(t)

	if _, err := svc.Register(context.Background(), user.NewUser{
		Name:            "Jane",
		Email:           "jane@test.cd",
		Password:        "s3cr3t!",
		PasswordConfirm: "s3cr3t!",
	}); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	if err := cli.run([]string{"admin", "listusers"}); err != nil {
		t.Errorf("cli.run() unexpected error = %v", err)
	}
}
