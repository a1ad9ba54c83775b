package syncer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dayflow/internal/attendance"
	"dayflow/internal/localstore"

	"go.uber.org/zap"
)

// Client is the local half of the sync bridge: it exchanges whole snapshots
// between a localstore.Store and a remote server. Replace semantics on both
// sides: pull overwrites the local collections, push lets the server upsert
// everything by id.
type Client struct {
	baseURL string
	httpc   *http.Client
	store   *localstore.Store
	logger  *zap.Logger
}

func NewClient(baseURL string, store *localstore.Store, logger ...*zap.Logger) *Client {
	l := zap.L().Named("syncer.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("syncer.client")
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		store:   store,
		logger:  l,
	}
}

// Pull fetches the full remote state and replaces the local store with it.
func (c *Client) Pull(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/sync/pull", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("pull: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pull: unexpected status %d", resp.StatusCode)
	}

	var snap Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return fmt.Errorf("pull: decode: %w", err)
	}

	if err := c.store.SaveEmployees(snap.Employees); err != nil {
		return err
	}
	if err := c.store.SaveLeaves(snap.Leaves); err != nil {
		return err
	}
	if err := c.store.SaveAttendance(groupByUser(snap.Attendance)); err != nil {
		return err
	}

	c.logger.Info("pull complete",
		zap.Int("employees", len(snap.Employees)),
		zap.Int("leaves", len(snap.Leaves)),
		zap.Int("attendance", len(snap.Attendance)),
	)
	return nil
}

// Push sends the whole local store to the server.
func (c *Client) Push(ctx context.Context) error {
	snap := Snapshot{
		Employees:  c.store.Employees(),
		Leaves:     c.store.Leaves(),
		Attendance: flatten(c.store.Attendance()),
	}

	body, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/sync/push", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("push: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push: unexpected status %d", resp.StatusCode)
	}

	c.logger.Info("push complete",
		zap.Int("employees", len(snap.Employees)),
		zap.Int("leaves", len(snap.Leaves)),
		zap.Int("attendance", len(snap.Attendance)),
	)
	return nil
}

func groupByUser(recs []attendance.Attendance) map[string][]attendance.Attendance {
	grouped := make(map[string][]attendance.Attendance)
	for _, r := range recs {
		grouped[r.UserID] = append(grouped[r.UserID], r)
	}
	return grouped
}

func flatten(grouped map[string][]attendance.Attendance) []attendance.Attendance {
	recs := []attendance.Attendance{}
	for _, rows := range grouped {
		recs = append(recs, rows...)
	}
	return recs
}
