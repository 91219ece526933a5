package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"
)

const testToken = "SECRET"

func signedPayload(t *testing.T, p Payload) Payload {
	t.Helper()
	p.Hash = Sign(p, testToken)
	return p
}

func TestVerify_ValidPayload(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	p := signedPayload(t, Payload{
		ID:        12345,
		FirstName: "Ivan",
		AuthDate:  now.Unix() - 10,
	})

	id, err := Verify(p, testToken, now)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.Username != "ivan_12345" {
		t.Fatalf("username=%q", id.Username)
	}
	if id.Email != "12345@telegram.user" {
		t.Fatalf("email=%q", id.Email)
	}
	if id.TelegramID != 12345 {
		t.Fatalf("telegram id=%d", id.TelegramID)
	}
}

func TestVerify_ReferenceVector(t *testing.T) {
	// hash precomputed by hand from the documented construction:
	// HMAC_SHA256(SHA256("SECRET"), "auth_date=T\nfirst_name=Ivan\nid=12345")
	authDate := int64(1_700_000_000)
	dcs := "auth_date=1700000000\nfirst_name=Ivan\nid=12345"
	secret := sha256.Sum256([]byte(testToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(dcs))
	wantHash := hex.EncodeToString(mac.Sum(nil))

	p := Payload{ID: 12345, FirstName: "Ivan", AuthDate: authDate, Hash: wantHash}
	if got := DataCheckString(p); got != dcs {
		t.Fatalf("data check string:\n got %q\nwant %q", got, dcs)
	}

	if _, err := Verify(p, testToken, time.Unix(authDate+10, 0)); err != nil {
		t.Fatalf("verify at T+10: %v", err)
	}
	if _, err := Verify(p, testToken, time.Unix(authDate+301, 0)); !errors.Is(err, ErrExpired) {
		t.Fatalf("verify at T+301: want ErrExpired, got %v", err)
	}
}

func TestVerify_WindowBoundary(t *testing.T) {
	authDate := int64(1_700_000_000)
	p := signedPayload(t, Payload{ID: 7, FirstName: "A", AuthDate: authDate})

	// 300s is still inside the window, 301s is out.
	if _, err := Verify(p, testToken, time.Unix(authDate+300, 0)); err != nil {
		t.Fatalf("at +300s: %v", err)
	}
	if _, err := Verify(p, testToken, time.Unix(authDate+301, 0)); !errors.Is(err, ErrExpired) {
		t.Fatalf("at +301s: want ErrExpired, got %v", err)
	}
	// Payloads from the future beyond the skew tolerance are rejected too.
	if _, err := Verify(p, testToken, time.Unix(authDate-60, 0)); !errors.Is(err, ErrExpired) {
		t.Fatalf("from the future: want ErrExpired, got %v", err)
	}
}

func TestVerify_FlippedHashByte(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	p := signedPayload(t, Payload{ID: 42, FirstName: "Bob", AuthDate: now.Unix()})

	for i := 0; i < len(p.Hash); i++ {
		broken := p
		flipped := byte('0')
		if p.Hash[i] == '0' {
			flipped = '1'
		}
		broken.Hash = p.Hash[:i] + string(flipped) + p.Hash[i+1:]
		if _, err := Verify(broken, testToken, now); !errors.Is(err, ErrBadSignature) {
			t.Fatalf("flip at %d: want ErrBadSignature, got %v", i, err)
		}
	}
}

func TestVerify_ExpiredWinsOverSignature(t *testing.T) {
	// A stale payload is rejected as expired even with a valid signature,
	// and a stale forged one is also expired: freshness is checked first.
	authDate := int64(1_700_000_000)
	p := signedPayload(t, Payload{ID: 9, FirstName: "Eva", AuthDate: authDate})
	if _, err := Verify(p, testToken, time.Unix(authDate+400, 0)); !errors.Is(err, ErrExpired) {
		t.Fatalf("want ErrExpired, got %v", err)
	}
	p.Hash = strings.Repeat("0", 64)
	if _, err := Verify(p, testToken, time.Unix(authDate+400, 0)); !errors.Is(err, ErrExpired) {
		t.Fatalf("forged+stale: want ErrExpired, got %v", err)
	}
}

func TestVerify_Deterministic(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	p := signedPayload(t, Payload{
		ID: 5, FirstName: "Kira", LastName: "L", Username: "kira", PhotoURL: "https://t.me/p.jpg",
		AuthDate: now.Unix(),
	})
	h1 := Sign(p, testToken)
	h2 := Sign(p, testToken)
	if h1 != h2 {
		t.Fatalf("sign not deterministic: %s vs %s", h1, h2)
	}
	a, errA := Verify(p, testToken, now)
	b, errB := Verify(p, testToken, now)
	if errA != nil || errB != nil || a != b {
		t.Fatalf("verify not deterministic: %+v/%v vs %+v/%v", a, errA, b, errB)
	}
}

func TestDataCheckString_SortedAndOmitsAbsent(t *testing.T) {
	p := Payload{ID: 1, FirstName: "Zed", Username: "zed", AuthDate: 100}
	got := DataCheckString(p)
	want := "auth_date=100\nfirst_name=Zed\nid=1\nusername=zed"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if strings.Contains(got, "last_name") || strings.Contains(got, "photo_url") {
		t.Fatalf("absent optionals must not emit lines: %q", got)
	}
}

func TestVerify_CaseInsensitiveHash(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	p := signedPayload(t, Payload{ID: 3, FirstName: "Lena", AuthDate: now.Unix()})
	p.Hash = strings.ToUpper(p.Hash)
	if _, err := Verify(p, testToken, now); err != nil {
		t.Fatalf("uppercase hash should verify: %v", err)
	}
}

func TestVerify_Errors(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	valid := signedPayload(t, Payload{ID: 3, FirstName: "Lena", AuthDate: now.Unix()})

	cases := []struct {
		name  string
		p     Payload
		token string
		want  error
	}{
		{"no token", valid, "", ErrNoBotToken},
		{"missing id", signedPayload(t, Payload{FirstName: "X", AuthDate: now.Unix()}), testToken, ErrMalformedPayload},
		{"missing first name", signedPayload(t, Payload{ID: 1, AuthDate: now.Unix()}), testToken, ErrMalformedPayload},
		{"missing auth date", signedPayload(t, Payload{ID: 1, FirstName: "X"}), testToken, ErrMalformedPayload},
		{"missing hash", Payload{ID: 1, FirstName: "X", AuthDate: now.Unix()}, testToken, ErrMalformedPayload},
		{"wrong token", valid, "OTHER", ErrBadSignature},
	}
	for _, tc := range cases {
		if _, err := Verify(tc.p, tc.token, now); !errors.Is(err, tc.want) {
			t.Fatalf("%s: want %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestDeriveIdentity_UsernameFallbacks(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	// Telegram handle wins when present.
	p := signedPayload(t, Payload{ID: 10, FirstName: "Иван", Username: "vanya", AuthDate: now.Unix()})
	id, err := Verify(p, testToken, now)
	if err != nil || id.Username != "vanya_10" {
		t.Fatalf("handle case: %+v %v", id, err)
	}

	// Cyrillic first name filters to nothing and falls back to "user".
	p = signedPayload(t, Payload{ID: 11, FirstName: "Иван", AuthDate: now.Unix()})
	id, err = Verify(p, testToken, now)
	if err != nil || id.Username != "user_11" {
		t.Fatalf("fallback case: %+v %v", id, err)
	}

	// Mixed first name keeps lowercase latin and digits only.
	p = signedPayload(t, Payload{ID: 12, FirstName: "Ivan23!", AuthDate: now.Unix()})
	id, err = Verify(p, testToken, now)
	if err != nil || id.Username != "ivan23_12" {
		t.Fatalf("filter case: %+v %v", id, err)
	}
}
