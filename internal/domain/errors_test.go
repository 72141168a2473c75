package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "config.load",
		Kind: KindInvalidConfig,
		Path: "currency-detect.yaml",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}
	if !IsKind(fmt.Errorf("wrapped: %w", err), KindInvalidConfig) {
		t.Fatalf("expected IsKind through wrapping")
	}
	if IsKind(err, KindNetwork) {
		t.Fatalf("expected kind mismatch")
	}
	if !strings.Contains(err.Error(), "path=currency-detect.yaml") {
		t.Fatalf("expected path in message, got %q", err.Error())
	}
}

func TestOpErrorNil(t *testing.T) {
	var e *OpError
	if e.Error() != "<nil>" {
		t.Fatalf("expected <nil>")
	}
	if e.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestStatusCode(t *testing.T) {
	err := &OpError{
		Op:   "geoip.ip",
		Kind: KindHTTPStatus,
		Err:  &StatusError{Code: 503, Status: "503 Service Unavailable"},
	}
	code, ok := StatusCode(err)
	if !ok || code != 503 {
		t.Fatalf("expected 503, got %d ok=%v", code, ok)
	}
	if _, ok := StatusCode(errors.New("plain")); ok {
		t.Fatalf("expected no status on plain error")
	}
	if (&StatusError{Code: 418}).Error() != "status 418" {
		t.Fatalf("expected fallback status text")
	}
}
