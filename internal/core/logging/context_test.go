package logging

import (
	"context"
	"testing"
)

func TestWithRequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "req1a2b3c4d"

	ctx = WithRequestID(ctx, requestID)
	got := GetRequestID(ctx)

	if got != requestID {
		t.Errorf("GetRequestID() = %q, want %q", got, requestID)
	}
}

func TestWithPage(t *testing.T) {
	ctx := WithPage(context.Background(), "signup")

	if got := GetPage(ctx); got != "signup" {
		t.Errorf("GetPage() = %q, want %q", got, "signup")
	}
}

func TestGetRequestID_NotPresent(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("GetRequestID() = %q, want empty string", got)
	}
}

func TestGetPage_NotPresent(t *testing.T) {
	if got := GetPage(context.Background()); got != "" {
		t.Errorf("GetPage() = %q, want empty string", got)
	}
}
