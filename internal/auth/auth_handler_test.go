package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dayflow/internal/auth"
	"dayflow/internal/employee"
	employeeerrors "dayflow/internal/employee/errors"
	"dayflow/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	employee.Service
	validateCredentialsFn func(ctx context.Context, loginID, password string) (employee.Employee, error)
}

func (f *fakeEmployeeService) ValidateCredentials(ctx context.Context, loginID, password string) (employee.Employee, error) {
	return f.validateCredentialsFn(ctx, loginID, password)
}

func postLogin(h *auth.Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Login(c)
	return w
}

func TestHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	svc := &fakeEmployeeService{}
	svc.validateCredentialsFn = func(ctx context.Context, loginID, password string) (employee.Employee, error) {
		assert.Equal(t, "OIPS20241234", loginID)
		assert.Equal(t, "secret", password)
		return employee.Employee{ID: "emp-1", Name: "Priya Sharma"}, nil
	}
	h := auth.NewHandler(svc)

	w := postLogin(h, `{"loginId":"OIPS20241234","password":"secret"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"emp-1"`)
}

func TestHandler_Login_WrongPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	svc := &fakeEmployeeService{}
	svc.validateCredentialsFn = func(ctx context.Context, loginID, password string) (employee.Employee, error) {
		return employee.Employee{}, employeeerrors.ErrIncorrectPassword
	}
	h := auth.NewHandler(svc)

	w := postLogin(h, `{"loginId":"OIPS20241234","password":"wrong"}`)

	// Rejections ride the normal response shape so the form can show them
	// inline.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "Incorrect password")
}

func TestHandler_Login_UnknownLoginID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	svc := &fakeEmployeeService{}
	svc.validateCredentialsFn = func(ctx context.Context, loginID, password string) (employee.Employee, error) {
		return employee.Employee{}, employeeerrors.ErrInvalidLoginID
	}
	h := auth.NewHandler(svc)

	w := postLogin(h, `{"loginId":"OIXX20009999","password":"secret"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "Invalid Login ID")
}

func TestHandler_Login_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	h := auth.NewHandler(&fakeEmployeeService{})

	w := postLogin(h, `{"loginId":"OIPS20241234"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
