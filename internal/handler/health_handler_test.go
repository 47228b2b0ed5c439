package handler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"feedback-builder/internal/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct{ err error }

func (s stubPinger) PingContext(context.Context) error { return s.err }

type stubCache struct{ pingErr error }

func (s stubCache) Get(context.Context, string) (string, error) { return "", nil }
func (s stubCache) Set(context.Context, string, string, time.Duration) error { return nil }
func (s stubCache) SetNX(context.Context, string, string, time.Duration) (bool, error) { return true, nil }
func (s stubCache) CompareAndSwap(context.Context, string, string, string, time.Duration) (bool, error) {
	return true, nil
}
func (s stubCache) DeleteIfEquals(context.Context, string, string) (bool, error) {
	return true, nil
}
func (s stubCache) Delete(context.Context, string) error { return nil }
func (s stubCache) Ping(context.Context) error { return s.pingErr }

func TestHealthz(t *testing.T) {
	tests := []struct {
		name       string
		dbErr      error
		cacheErr   error
		wantStatus int
	}{
		{"healthy", nil, nil, fiber.StatusOK},
		{"database down", errors.New("ORA-12541"), nil, fiber.StatusServiceUnavailable},
		{"redis down", nil, errors.New("connection refused"), fiber.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/healthz", handler.NewHealthHandler(stubPinger{tt.dbErr}, stubCache{tt.cacheErr}).Healthz)

			resp := send(t, app, "GET", "/healthz", nil)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
