package echoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/abdelrhmanQ/shc2/core"
	"github.com/abdelrhmanQ/shc2/core/assignment"
	"github.com/abdelrhmanQ/shc2/core/attendance"
	"github.com/abdelrhmanQ/shc2/core/news"
	"github.com/abdelrhmanQ/shc2/core/user"
	inmemdb "github.com/abdelrhmanQ/shc2/storage/inmem"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testConfig() *core.Config {
	conf := &core.Config{
		Debug:      true,
		TestMode:   true,
		Env:        "TEST",
		AppName:    "SHC Portal",
		SecretKey:  []byte("secret"),
		AdminEmail: "admin@shc.com",
	}
	conf.JWT.ExpirationDelta = 10 * time.Minute
	conf.JWT.RefreshExpirationDelta = 4 * time.Hour
	return conf
}

type testDeps struct {
	conf *core.Config
	srv  Server
	auth *auth

	userRepo      user.Repository
	userSvc       *user.Service
	assignmentSvc *assignment.Service
	newsSvc       *news.Service
	attendanceSvc *attendance.Service
}

func setupServer(t *testing.T) *testDeps {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setupServer() failed: %v", err)
	}

	conf := testConfig()
	d := &testDeps{
		conf:          conf,
		auth:          newAuth(conf),
		userRepo:      inmemdb.NewUserRepository(db),
		assignmentSvc: assignment.NewService(inmemdb.NewAssignmentRepository(db), nopLogger{}),
		newsSvc:       news.NewService(inmemdb.NewNewsRepository(db), nopLogger{}),
		attendanceSvc: attendance.NewService(inmemdb.NewAttendanceRepository(db), nopLogger{}),
	}
	d.userSvc = user.NewService(d.userRepo, nil, nopLogger{})

	d.srv = NewServer(&Options{
		Conf:           conf,
		Logger:         nopLogger{},
		DisableReqLogs: true,
		UserSvc:        d.userSvc,
		AssignmentSvc:  d.assignmentSvc,
		NewsSvc:        d.newsSvc,
		AttendanceSvc:  d.attendanceSvc,
	})
	return d
}

func createUser(t *testing.T, d *testDeps, name, email, pwd, role string) user.User {
	usr := user.User{
		ID:        core.NewID(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("createUser() failed: %v", err)
		}
	}
	usr, err := d.userRepo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return usr
}

func getToken(t *testing.T, d *testDeps, usr user.User) string {
	token, err := d.auth.generateToken(d.auth.getUserClaims(usr))
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func notificationBytes(t *testing.T, message string) []byte {
	return marshallObj(t, core.Notification{Message: message, Type: core.NotifyError})
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, rec *httptest.ResponseRecorder, wantCode int, wantData []byte) {
	if rec.Code != wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(wantData))
	}
}
