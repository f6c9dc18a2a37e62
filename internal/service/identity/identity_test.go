package identity

import (
	"strings"
	"testing"
	"time"

	"github.com/Dastan7k/gig-track-system/pkg/localstore"
)

var testEnv = Environment{
	UserAgent:    "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36",
	ScreenWidth:  1080,
	ScreenHeight: 2400,
}

func newTestManager() *Manager {
	return New(localstore.NewMem(), testEnv)
}

func TestGenerateDeviceID_Shape(t *testing.T) {
	m := newTestManager()

	id := m.GenerateDeviceID()
	if len(id) != 32 {
		t.Fatalf("device id length = %d, want 32", len(id))
	}
	for _, r := range id {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !isAlnum {
			t.Fatalf("device id contains non-alphanumeric rune %q: %s", r, id)
		}
	}
}

func TestGenerateDeviceID_Distinct(t *testing.T) {
	m := newTestManager()
	if m.GenerateDeviceID() == m.GenerateDeviceID() {
		t.Fatalf("two generated ids should differ (random token)")
	}
}

func TestDeviceID_StableAcrossCalls(t *testing.T) {
	m := newTestManager()

	first, err := m.DeviceID()
	if err != nil {
		t.Fatalf("DeviceID: %v", err)
	}
	second, err := m.DeviceID()
	if err != nil {
		t.Fatalf("DeviceID (second): %v", err)
	}
	if first != second {
		t.Fatalf("device id must be stable within a storage scope: %s vs %s", first, second)
	}
}

func TestSession_RoundTrip(t *testing.T) {
	m := newTestManager()

	if err := m.SetSession("profile-42"); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	s := m.Session()
	if s == nil {
		t.Fatalf("expected a session right after SetSession")
	}
	if s.RiderProfileID != "profile-42" {
		t.Fatalf("RiderProfileID = %s, want profile-42", s.RiderProfileID)
	}

	deviceID, _ := m.DeviceID()
	if s.DeviceID != deviceID {
		t.Fatalf("session must carry the persisted device id")
	}
}

func TestSession_ExpiresAfter30Days(t *testing.T) {
	m := newTestManager()

	if err := m.SetSession("profile-42"); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	// Shift the clock 31 days forward: a well-formed but stale record
	// must be treated as absent and purged.
	m.now = func() time.Time { return time.Now().Add(31 * 24 * time.Hour) }

	if s := m.Session(); s != nil {
		t.Fatalf("expired session must read as nil, got %+v", s)
	}

	// Purged on read: still nil with the original clock.
	m.now = time.Now
	if s := m.Session(); s != nil {
		t.Fatalf("expired session must be purged, got %+v", s)
	}
}

func TestSession_ConfiguredTTLHonored(t *testing.T) {
	m := NewWithTTL(localstore.NewMem(), testEnv, time.Hour)

	if err := m.SetSession("profile-42"); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if s := m.Session(); s != nil {
		t.Fatalf("session older than the configured ttl must read as nil, got %+v", s)
	}
}

func TestNewWithTTL_NonPositiveFallsBack(t *testing.T) {
	m := NewWithTTL(localstore.NewMem(), testEnv, 0)
	if m.ttl != SessionTTL {
		t.Fatalf("ttl = %v, want default %v", m.ttl, SessionTTL)
	}
}

func TestSession_CorruptReadsAsNil(t *testing.T) {
	store := localstore.NewMem()
	m := New(store, testEnv)

	if err := store.Set("rider_session", "{definitely not json"); err != nil {
		t.Fatalf("seed corrupt session: %v", err)
	}

	if s := m.Session(); s != nil {
		t.Fatalf("corrupt session must read as nil, got %+v", s)
	}
}

func TestClearSession_KeepsDeviceID(t *testing.T) {
	m := newTestManager()

	before, err := m.DeviceID()
	if err != nil {
		t.Fatalf("DeviceID: %v", err)
	}
	if err := m.SetSession("profile-42"); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	m.ClearSession()

	if s := m.Session(); s != nil {
		t.Fatalf("session must be gone after ClearSession")
	}
	after, err := m.DeviceID()
	if err != nil {
		t.Fatalf("DeviceID after clear: %v", err)
	}
	if before != after {
		t.Fatalf("device id must survive ClearSession: %s vs %s", before, after)
	}
}

func TestIsValidMobile(t *testing.T) {
	valid := []string{"9876543210", "0000000000"}
	invalid := []string{"", "987654321", "98765432101", "+919876543210", "98765abcde", "98 7654321"}

	for _, v := range valid {
		if !IsValidMobile(v) {
			t.Fatalf("expected %q to be valid", v)
		}
	}
	for _, v := range invalid {
		if IsValidMobile(v) {
			t.Fatalf("expected %q to be invalid", v)
		}
	}
}

func TestGenerateDeviceID_LongUserAgentTruncated(t *testing.T) {
	m := New(localstore.NewMem(), Environment{
		UserAgent:    strings.Repeat("x", 500),
		ScreenWidth:  720,
		ScreenHeight: 1280,
	})

	if id := m.GenerateDeviceID(); len(id) != 32 {
		t.Fatalf("device id length = %d, want 32", len(id))
	}
}
