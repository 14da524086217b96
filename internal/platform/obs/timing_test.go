package obs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestTimeLogsRequestIDAndError(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(NewLogger(&buf, "debug", "text"))
	defer slog.SetDefault(prev)

	ctx := WithRequestID(context.Background(), "abc-123")

	func() (err error) {
		defer Time(ctx, "unit.op")(&err)
		return errors.New("boom")
	}()

	out := buf.String()
	for _, want := range []string{"req_id=abc-123", "op=unit.op", "err=boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestNewLoggerJSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn", "JSON")

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"k":"v"`) {
		t.Fatalf("unexpected json output: %q", out)
	}
}
