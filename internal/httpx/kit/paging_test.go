package kit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func parsePagingFor(t *testing.T, target string) (PagingParams, int) {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	var got PagingParams
	app.Get("/things", func(c *fiber.Ctx) error {
		p, err := ParsePaging(c)
		if err != nil {
			return err
		}
		got = p
		return c.SendStatus(http.StatusOK)
	})
	res, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return got, res.StatusCode
}

func TestParsePaging_Defaults(t *testing.T) {
	p, status := parsePagingFor(t, "/things")
	if status != http.StatusOK {
		t.Fatalf("status=%d", status)
	}
	if p.Limit != 20 || p.Offset != 0 || p.Mode != "offset" || p.WithTotal {
		t.Fatalf("unexpected params: %+v", p)
	}
}

func TestParsePaging_LimitClamped(t *testing.T) {
	p, _ := parsePagingFor(t, "/things?limit=5000")
	if p.Limit != 100 {
		t.Fatalf("limit=%d", p.Limit)
	}
	p, _ = parsePagingFor(t, "/things?limit=-3&offset=-7")
	if p.Limit != 1 || p.Offset != 0 {
		t.Fatalf("unexpected params: %+v", p)
	}
}

func TestParsePaging_CursorRoundtrip(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cursor := EncodeCursor(id.String(), ts)

	p, status := parsePagingFor(t, "/things?cursor="+cursor)
	if status != http.StatusOK {
		t.Fatalf("status=%d", status)
	}
	if p.Mode != "cursor" {
		t.Fatalf("mode=%s", p.Mode)
	}
	if p.CursorID == nil || *p.CursorID != id {
		t.Fatalf("cursor id=%v", p.CursorID)
	}
	if p.CursorTS == nil || !p.CursorTS.Equal(ts) {
		t.Fatalf("cursor ts=%v", p.CursorTS)
	}
}

func TestParsePaging_BareUUIDCursor(t *testing.T) {
	id := uuid.New()
	p, status := parsePagingFor(t, "/things?cursor="+id.String())
	if status != http.StatusOK {
		t.Fatalf("status=%d", status)
	}
	if p.CursorID == nil || *p.CursorID != id || p.CursorTS != nil {
		t.Fatalf("unexpected params: %+v", p)
	}
}

func TestParsePaging_InvalidCursor(t *testing.T) {
	_, status := parsePagingFor(t, "/things?cursor=not-a-cursor")
	if status != http.StatusBadRequest {
		t.Fatalf("status=%d", status)
	}
}

func TestDecodeCursor_Garbage(t *testing.T) {
	if _, err := DecodeCursor("%%%"); err == nil {
		t.Fatalf("expected error")
	}
}
