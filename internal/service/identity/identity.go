// Package identity gives an anonymous client a stable pseudo-identity
// without server-issued credentials.
//
// The device id is a fingerprint of ambient client attributes plus
// randomness. It is client-controlled and resettable by wiping local
// state: a convenience identity, NOT an authentication boundary. Keep it
// decoupled from any server-verified identity so the two can be swapped
// independently.
package identity

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Dastan7k/gig-track-system/pkg/localstore"
)

const (
	deviceIDKey = "rider_device_id"
	sessionKey  = "rider_session"

	// SessionTTL is the default validity window from the last write.
	SessionTTL = 30 * 24 * time.Hour

	deviceIDLen = 32
)

// MobileRX matches a 10-digit mobile number, country code excluded.
var MobileRX = regexp.MustCompile(`^\d{10}$`)

var nonAlnumRX = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Session is the client-persisted session payload. DeviceID and Timestamp
// are filled on every write; Timestamp governs expiry.
type Session struct {
	DeviceID       string    `json:"device_id"`
	RiderProfileID string    `json:"rider_profile_id,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// Environment describes the client attributes mixed into the device id.
type Environment struct {
	UserAgent    string
	ScreenWidth  int
	ScreenHeight int
}

// Manager owns the two persisted slots: a permanent device id and a
// session record with a 30-day rolling TTL. The two have independent
// lifetimes: clearing the session never touches the device id.
type Manager struct {
	store localstore.Store
	env   Environment
	ttl   time.Duration

	now func() time.Time // overridable in tests
}

func New(store localstore.Store, env Environment) *Manager {
	return NewWithTTL(store, env, SessionTTL)
}

// NewWithTTL overrides the default 30-day session window. A non-positive
// ttl falls back to the default.
func NewWithTTL(store localstore.Store, env Environment, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = SessionTTL
	}
	return &Manager{
		store: store,
		env:   env,
		ttl:   ttl,
		now:   time.Now,
	}
}

// GenerateDeviceID builds a fresh device id from a timestamp, a random
// token, the truncated user agent and the screen dimensions. The combined
// string is base64-encoded, stripped of everything outside [A-Za-z0-9] and
// truncated to 32 characters. Uniqueness is not cryptographically
// guaranteed; collision probability is accepted as negligible here.
func (m *Manager) GenerateDeviceID() string {
	timestamp := strconv.FormatInt(m.now().UnixMilli(), 10)
	token := randomToken()

	ua := m.env.UserAgent
	if len(ua) > 20 {
		ua = ua[len(ua)-20:]
	}
	screen := fmt.Sprintf("%dx%d", m.env.ScreenWidth, m.env.ScreenHeight)

	raw := strings.Join([]string{timestamp, token, ua, screen}, "_")
	encoded := base64.StdEncoding.EncodeToString([]byte(raw))

	id := nonAlnumRX.ReplaceAllString(encoded, "")
	if len(id) > deviceIDLen {
		id = id[:deviceIDLen]
	}
	return id
}

// DeviceID returns the persisted device id, generating and persisting one
// on first call. Idempotent afterwards within the same storage scope.
func (m *Manager) DeviceID() (string, error) {
	if id, ok := m.store.Get(deviceIDKey); ok && id != "" {
		return id, nil
	}

	id := m.GenerateDeviceID()
	if err := m.store.Set(deviceIDKey, id); err != nil {
		return "", fmt.Errorf("identity: persist device id: %w", err)
	}
	return id, nil
}

// SetSession persists a session for the given rider profile, stamping it
// with the device id and the current time. Overwrites any prior session.
func (m *Manager) SetSession(riderProfileID string) error {
	deviceID, err := m.DeviceID()
	if err != nil {
		return err
	}

	s := Session{
		DeviceID:       deviceID,
		RiderProfileID: riderProfileID,
		Timestamp:      m.now(),
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("identity: marshal session: %w", err)
	}
	if err := m.store.Set(sessionKey, string(data)); err != nil {
		return fmt.Errorf("identity: persist session: %w", err)
	}
	return nil
}

// Session returns the persisted session, or nil when it is absent,
// unparsable or expired. Corruption is treated the same as absence and
// never surfaces as an error: callers treat nil as "anonymous / not yet
// registered". An expired record is purged on read.
func (m *Manager) Session() *Session {
	raw, ok := m.store.Get(sessionKey)
	if !ok || raw == "" {
		return nil
	}

	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil
	}

	if m.now().Sub(s.Timestamp) > m.ttl {
		m.ClearSession()
		return nil
	}

	return &s
}

// ClearSession removes the session unconditionally. The device id stays:
// it is effectively permanent, the session rolls over every 30 days.
func (m *Manager) ClearSession() {
	// Best effort: a failed delete degrades to an expired-looking session
	_ = m.store.Delete(sessionKey)
}

// IsValidMobile reports whether value is exactly 10 ASCII digits.
// Callers must reject invalid input before any identity-linked write.
func IsValidMobile(value string) bool {
	return MobileRX.MatchString(value)
}

// randomToken returns a short base36 token from the OS entropy source.
func randomToken() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// Fall back to the clock; the id also carries a millisecond
		// timestamp, so this only weakens, not breaks, uniqueness.
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return strconv.FormatUint(binary.BigEndian.Uint64(b[:]), 36)
}
