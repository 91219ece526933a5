// Package telegram verifies Telegram login widget payloads.
//
// The widget returns a signed set of fields; the signature is
// HMAC-SHA256 over the sorted "key=value" serialization of every field
// except the hash itself, keyed with SHA256(bot token). See
// https://core.telegram.org/widgets/login#checking-authorization.
package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"
)

// MaxAuthAge is the acceptance window for auth_date.
const MaxAuthAge = 5 * time.Minute

// maxClockSkew tolerates payloads stamped slightly ahead of our clock.
const maxClockSkew = 30 * time.Second

var (
	// ErrNoBotToken means the bot token is not configured. This is a
	// deployment fault, not a property of the payload.
	ErrNoBotToken = errors.New("telegram: bot token not configured")
	// ErrMalformedPayload means a required field is missing.
	ErrMalformedPayload = errors.New("telegram: malformed payload")
	// ErrExpired means auth_date is outside the acceptance window.
	ErrExpired = errors.New("telegram: auth data expired")
	// ErrBadSignature means the recomputed HMAC does not match.
	ErrBadSignature = errors.New("telegram: invalid signature")
)

// Payload is the untrusted data the login widget hands to the callback.
type Payload struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
	AuthDate  int64  `json:"auth_date"`
	Hash      string `json:"hash"`
}

// Identity is the canonical local identity derived from a verified payload.
type Identity struct {
	TelegramID int64
	Username   string
	Email      string
	FullName   string
	AvatarURL  string
}

// DataCheckString builds the canonical HMAC message: every present field
// except hash, keys sorted byte-wise ascending, joined as key=value lines.
// Absent optional fields contribute no line at all.
func DataCheckString(p Payload) string {
	fields := map[string]string{
		"auth_date":  strconv.FormatInt(p.AuthDate, 10),
		"first_name": p.FirstName,
		"id":         strconv.FormatInt(p.ID, 10),
	}
	if p.LastName != "" {
		fields["last_name"] = p.LastName
	}
	if p.Username != "" {
		fields["username"] = p.Username
	}
	if p.PhotoURL != "" {
		fields["photo_url"] = p.PhotoURL
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+fields[k])
	}
	return strings.Join(parts, "\n")
}

// Sign computes the widget signature for a payload under the given bot
// token, as lowercase hex. Exposed for tests and tooling.
func Sign(p Payload, botToken string) string {
	secret := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(DataCheckString(p)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a widget payload against the bot token at the given time and
// returns the derived local identity. It is a pure function: no state, no
// global clock, safe for concurrent use.
func Verify(p Payload, botToken string, now time.Time) (Identity, error) {
	return VerifyWithin(p, botToken, now, MaxAuthAge)
}

// VerifyWithin is Verify with a caller-chosen acceptance window.
func VerifyWithin(p Payload, botToken string, now time.Time, maxAge time.Duration) (Identity, error) {
	if botToken == "" {
		return Identity{}, ErrNoBotToken
	}
	if p.ID == 0 || p.FirstName == "" || p.AuthDate == 0 || p.Hash == "" {
		return Identity{}, ErrMalformedPayload
	}

	age := now.Sub(time.Unix(p.AuthDate, 0))
	if age > maxAge || age < -maxClockSkew {
		return Identity{}, ErrExpired
	}

	want := Sign(p, botToken)
	got := strings.ToLower(p.Hash)
	if !hmac.Equal([]byte(want), []byte(got)) {
		return Identity{}, ErrBadSignature
	}

	return deriveIdentity(p), nil
}

func deriveIdentity(p Payload) Identity {
	base := p.Username
	if base == "" {
		base = filterAlnum(strings.ToLower(p.FirstName))
	}
	if base == "" {
		base = "user"
	}
	full := strings.TrimSpace(p.FirstName + " " + p.LastName)
	return Identity{
		TelegramID: p.ID,
		Username:   base + "_" + strconv.FormatInt(p.ID, 10),
		Email:      SyntheticEmail(p.ID),
		FullName:   full,
		AvatarURL:  p.PhotoURL,
	}
}

// SyntheticEmail is the reserved-domain address keying a Telegram identity
// into the e-mail based account tables.
func SyntheticEmail(telegramID int64) string {
	return strconv.FormatInt(telegramID, 10) + "@telegram.user"
}

func filterAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
