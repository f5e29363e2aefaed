package telemetry

import (
	"context"
	"testing"
)

func TestSetupDisabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), Options{Enabled: false})
	if err != nil {
		t.Fatalf("Disabled setup should not fail: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("No-op shutdown returned error: %v", err)
	}

	// Spans still work against the global no-op provider
	_, span := Tracer("test").Start(context.Background(), "noop")
	span.End()
}

func TestHeaders(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want map[string]string
	}{
		{"empty", Options{}, map[string]string{}},
		{"key only", Options{APIKey: "abc"}, map[string]string{"x-honeycomb-team": "abc"}},
		{"key and dataset", Options{APIKey: "abc", Dataset: "leap"}, map[string]string{
			"x-honeycomb-team":    "abc",
			"x-honeycomb-dataset": "leap",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.opts.Headers()
			if len(got) != len(tt.want) {
				t.Fatalf("Headers() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("Header %s = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "noop")
	if span.SpanContext().IsValid() {
		t.Error("No-op spans should not carry a valid span context")
	}
	span.End()
}
