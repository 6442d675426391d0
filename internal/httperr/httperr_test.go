package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/hsa-card/hsa_engine/internal/domain"
	"github.com/hsa-card/hsa_engine/internal/logging"
)

func TestFromMapsDomainErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: name", domain.ErrInvalidInput), http.StatusBadRequest},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{fmt.Errorf("%w: hsa-1", domain.ErrNotFound), http.StatusNotFound},
		{domain.ErrCardAlreadyIssued, http.StatusConflict},
		{domain.ErrInsufficientFunds, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		var fe *fiber.Error
		if !errors.As(From(tc.err), &fe) {
			t.Fatalf("%v: expected fiber error", tc.err)
		}
		if fe.Code != tc.status {
			t.Fatalf("%v: expected %d got %d", tc.err, tc.status, fe.Code)
		}
	}

	plain := errors.New("db down")
	if From(plain) != plain {
		t.Fatal("unknown errors must pass through unchanged")
	}
	if From(nil) != nil {
		t.Fatal("nil must stay nil")
	}
}

func TestHandlerHidesInternalErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: Handler(logging.Discard())})
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("connection refused") })
	app.Get("/missing", func(c *fiber.Ctx) error { return From(domain.ErrNotFound) })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	var decoded map[string]string
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded["error"] != "internal server error" {
		t.Fatalf("unexpected body %s", body)
	}

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/missing", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.StatusCode)
	}
}
