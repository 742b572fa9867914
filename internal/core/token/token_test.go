package token

import (
	"strings"
	"testing"
	"time"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := New("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNew_RequiresSecret(t *testing.T) {
	if _, err := New("", time.Hour); err != ErrMissingSecret {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	s := newTestService(t)
	in := Claims{UserID: "u1", Role: "freelancer", FullName: "Jane Doe"}

	signed, err := s.Issue(in)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	res := s.Verify(signed)
	if !res.Valid {
		t.Fatalf("expected valid token")
	}
	if res.Expired {
		t.Fatalf("fresh token must not be expired")
	}
	if res.Claims != in {
		t.Fatalf("claims mismatch: got %+v, want %+v", res.Claims, in)
	}
}

func TestVerify_Expired(t *testing.T) {
	s := newTestService(t)

	signed, err := s.Issue(Claims{UserID: "u1", Role: "admin"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Advance the clock past the expiry window.
	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	res := s.Verify(signed)
	if res.Valid {
		t.Fatalf("expired token must be invalid")
	}
	if !res.Expired {
		t.Fatalf("expiry must be flagged when it is the sole cause")
	}
}

func TestVerify_Tampered(t *testing.T) {
	s := newTestService(t)

	signed, err := s.Issue(Claims{UserID: "u1", Role: "admin"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Flip one byte in the payload section.
	parts := strings.Split(signed, ".")
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	res := s.Verify(tampered)
	if res.Valid {
		t.Fatalf("tampered token must be invalid")
	}
	if res.Expired {
		t.Fatalf("tampering must not report expired")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	s := newTestService(t)
	other, _ := New("other-secret", time.Hour)

	signed, err := other.Issue(Claims{UserID: "u1", Role: "admin"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if res := s.Verify(signed); res.Valid || res.Expired {
		t.Fatalf("foreign signature must yield invalid, not expired: %+v", res)
	}
}

func TestVerify_Garbage(t *testing.T) {
	s := newTestService(t)
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if res := s.Verify(raw); res.Valid {
			t.Fatalf("garbage %q must be invalid", raw)
		}
	}
}

func TestVerifyEmailToken_RoundTrip(t *testing.T) {
	s := newTestService(t)

	signed, err := s.IssueVerifyEmail("jane@example.com", "Jane Doe")
	if err != nil {
		t.Fatalf("IssueVerifyEmail: %v", err)
	}

	email, res := s.VerifyEmailToken(signed)
	if !res.Valid {
		t.Fatalf("expected valid verification token")
	}
	if email != "jane@example.com" {
		t.Fatalf("unexpected email: %s", email)
	}
}

func TestVerifyEmailToken_RejectsLoginToken(t *testing.T) {
	s := newTestService(t)

	signed, err := s.Issue(Claims{UserID: "u1", Role: "freelancer"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, res := s.VerifyEmailToken(signed); res.Valid {
		t.Fatalf("login token must not pass as a verification token")
	}
}

func TestVerify_RejectsEmailToken(t *testing.T) {
	s := newTestService(t)

	signed, err := s.IssueVerifyEmail("jane@example.com", "Jane Doe")
	if err != nil {
		t.Fatalf("IssueVerifyEmail: %v", err)
	}
	if res := s.Verify(signed); res.Valid {
		t.Fatalf("verification token must not pass as a login token")
	}
}
