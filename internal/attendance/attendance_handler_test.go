package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dayflow/internal/attendance"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	checkInFn       func(ctx context.Context, userID string) (attendance.Attendance, error)
	checkOutFn      func(ctx context.Context, userID string) (*attendance.Attendance, error)
	historyFn       func(ctx context.Context, userID string) ([]attendance.Attendance, error)
	monthlyStatsFn  func(ctx context.Context, userID string) (attendance.MonthlyStats, error)
	currentStatusFn func(ctx context.Context, userID string) (string, error)
	allStatusesFn   func(ctx context.Context) (map[string]string, error)
	recordFn        func(ctx context.Context, req attendance.RecordRequest) (string, error)
}

func (f *fakeService) CheckIn(ctx context.Context, userID string) (attendance.Attendance, error) {
	return f.checkInFn(ctx, userID)
}
func (f *fakeService) CheckOut(ctx context.Context, userID string) (*attendance.Attendance, error) {
	return f.checkOutFn(ctx, userID)
}
func (f *fakeService) History(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	return f.historyFn(ctx, userID)
}
func (f *fakeService) MonthlyStats(ctx context.Context, userID string) (attendance.MonthlyStats, error) {
	return f.monthlyStatsFn(ctx, userID)
}
func (f *fakeService) CurrentStatus(ctx context.Context, userID string) (string, error) {
	return f.currentStatusFn(ctx, userID)
}
func (f *fakeService) AllStatuses(ctx context.Context) (map[string]string, error) {
	return f.allStatusesFn(ctx)
}
func (f *fakeService) Record(ctx context.Context, req attendance.RecordRequest) (string, error) {
	return f.recordFn(ctx, req)
}

func TestHandler_CheckIn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		checkInFn: func(ctx context.Context, userID string) (attendance.Attendance, error) {
			assert.Equal(t, "emp-1", userID)
			return attendance.Attendance{ID: "att-1", UserID: userID, Status: attendance.StatusPresent}, nil
		},
	}
	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "userId", Value: "emp-1"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/api/attendance/emp-1/check-in", nil)
	h.CheckIn(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"att-1"`)
	assert.Contains(t, w.Body.String(), `"present"`)
}

func TestHandler_CheckOut_NothingToClose(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		checkOutFn: func(ctx context.Context, userID string) (*attendance.Attendance, error) {
			return nil, nil
		},
	}
	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "userId", Value: "emp-1"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/api/attendance/emp-1/check-out", nil)
	h.CheckOut(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", strings.TrimSpace(w.Body.String()))
}

func TestHandler_History_EmptyIsArray(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		historyFn: func(ctx context.Context, userID string) ([]attendance.Attendance, error) {
			return nil, nil
		},
	}
	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "userId", Value: "emp-1"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/api/attendance/emp-1", nil)
	h.History(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestHandler_Record(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		recordFn: func(ctx context.Context, req attendance.RecordRequest) (string, error) {
			assert.Equal(t, "emp-1", req.UserID)
			assert.Equal(t, attendance.StatusLeave, req.Status)
			return "att-9", nil
		},
	}
	h := attendance.NewHandler(svc)

	body := `{"userId":"emp-1","date":"2025-03-05","status":"leave"}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/attendance", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Record(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"att-9"`)
}

func TestHandler_AllStatuses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		allStatusesFn: func(ctx context.Context) (map[string]string, error) {
			return map[string]string{"emp-1": attendance.StatusPresent}, nil
		},
	}
	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/attendance/status", nil)
	h.AllStatuses(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"emp-1":"present"`)
}
