package syncer_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dayflow/internal/attendance"
	"dayflow/internal/employee"
	"dayflow/internal/leave"
	"dayflow/internal/syncer"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	pullFn func(ctx context.Context) (syncer.Snapshot, error)
	pushFn func(ctx context.Context, snap syncer.Snapshot) error
}

func (f *fakeService) Pull(ctx context.Context) (syncer.Snapshot, error) { return f.pullFn(ctx) }
func (f *fakeService) Push(ctx context.Context, snap syncer.Snapshot) error {
	return f.pushFn(ctx, snap)
}

func TestHandler_Pull(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		pullFn: func(ctx context.Context) (syncer.Snapshot, error) {
			return syncer.Snapshot{
				Employees:  []employee.Employee{{ID: "emp-1"}},
				Leaves:     []leave.Leave{},
				Attendance: []attendance.Attendance{},
			}, nil
		},
	}
	h := syncer.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/sync/pull", nil)
	h.Pull(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"employees"`)
	assert.Contains(t, w.Body.String(), `"leaves":[]`)
	assert.Contains(t, w.Body.String(), `"attendance":[]`)
}

func TestHandler_Push(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var pushed syncer.Snapshot
	svc := &fakeService{
		pushFn: func(ctx context.Context, snap syncer.Snapshot) error {
			pushed = snap
			return nil
		},
	}
	h := syncer.NewHandler(svc)

	body := `{"employees":[{"id":"emp-1","name":"Priya Sharma"}]}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/sync/push", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Push(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
	assert.Len(t, pushed.Employees, 1)
	assert.Empty(t, pushed.Leaves)
}
