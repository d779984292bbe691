package ratelimit

import (
	"testing"
	"time"

	"github.com/go-monolith/mono/pkg/types"
)

func TestNewLimiter(t *testing.T) {
	// NewLimiter works with a nil client for unit testing.
	limiter := NewLimiter(nil, "test:")

	if limiter == nil {
		t.Fatal("NewLimiter returned nil")
	}
	if limiter.keyPrefix != "test:" {
		t.Errorf("keyPrefix = %q, want %q", limiter.keyPrefix, "test:")
	}
}

func TestResult(t *testing.T) {
	result := &Result{
		Allowed:   true,
		Remaining: 9,
		ResetAt:   time.Now().Add(time.Minute),
		Limit:     10,
	}

	if !result.Allowed {
		t.Error("expected Allowed to be true")
	}
	if result.Remaining != 9 {
		t.Errorf("Remaining = %d", result.Remaining)
	}
}

func TestExtractClientID(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name   string
		header map[string][]string
		want   string
	}{
		{
			name:   "nil header",
			header: nil,
			want:   "anonymous",
		},
		{
			name:   "missing client id",
			header: map[string][]string{"Other": {"x"}},
			want:   "anonymous",
		},
		{
			name:   "empty client id",
			header: map[string][]string{"X-Client-ID": {""}},
			want:   "anonymous",
		},
		{
			name:   "present client id",
			header: map[string][]string{"X-Client-ID": {"203.0.113.7"}},
			want:   "203.0.113.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.extractClientID(&types.Msg{Header: tt.header})
			if got != tt.want {
				t.Errorf("extractClientID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractClientID_Truncation(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	long := make([]byte, 0, 200)
	for i := 0; i < 200; i++ {
		long = append(long, 'a')
	}

	got := m.extractClientID(&types.Msg{
		Header: map[string][]string{"X-Client-ID": {string(long)}},
	})
	if len(got) != maxClientIDLength {
		t.Errorf("len = %d, want %d", len(got), maxClientIDLength)
	}
}

// Limiter.Allow and Reset need a running Redis; they are covered by
// integration testing against a real instance, not here.
