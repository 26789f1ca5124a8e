package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

func TestRateLimiterGuardsAPIGroup(t *testing.T) {
	m := &middleware{
		rateLimitter: newRateLimiter(rate.Limit(0), 2),
		log:          logrus.New(),
	}

	app := fiber.New()
	router := app.Group("/api/v1", m.NewRateLimiter)
	router.Get("/ping", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/ping", nil))
		if err != nil {
			t.Fatalf("request %d err: %v", i, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("request %d status = %d, want %d", i, resp.StatusCode, fiber.StatusOK)
		}
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/ping", nil))
	if err != nil {
		t.Fatalf("request err: %v", err)
	}
	if resp.StatusCode != fiber.StatusTooManyRequests {
		t.Errorf("status after burst exhausted = %d, want %d", resp.StatusCode, fiber.StatusTooManyRequests)
	}
}

func TestRateLimiterTracksClientsSeparately(t *testing.T) {
	rl := newRateLimiter(rate.Limit(0), 1)

	if !rl.GetLimiterFrom("10.0.0.1").Allow() {
		t.Fatal("first request from 10.0.0.1 should be allowed")
	}
	if rl.GetLimiterFrom("10.0.0.1").Allow() {
		t.Error("second request from 10.0.0.1 should be denied")
	}
	if !rl.GetLimiterFrom("10.0.0.2").Allow() {
		t.Error("first request from 10.0.0.2 should be allowed")
	}
}
