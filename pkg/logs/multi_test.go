package logs

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewJSONHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}}

	slog.New(h).Info("booking confirmed", slog.String("slot", "09:00"))

	for name, buf := range map[string]*bytes.Buffer{"first": &a, "second": &b} {
		if !strings.Contains(buf.String(), "booking confirmed") {
			t.Errorf("%s handler missed the record: %q", name, buf.String())
		}
		if !strings.Contains(buf.String(), `"slot":"09:00"`) {
			t.Errorf("%s handler missed the attr: %q", name, buf.String())
		}
	}
}

func TestMultiHandlerRespectsChildLevels(t *testing.T) {
	var quiet, chatty bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewJSONHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewJSONHandler(&chatty, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}}

	logger := slog.New(h)
	logger.Debug("only for the chatty one")

	if quiet.Len() != 0 {
		t.Errorf("error-level handler received a debug record: %q", quiet.String())
	}
	if !strings.Contains(chatty.String(), "only for the chatty one") {
		t.Errorf("debug-level handler missed the record: %q", chatty.String())
	}
}

func TestMultiHandlerWithAttrs(t *testing.T) {
	var a, b bytes.Buffer
	var h slog.Handler = &multiHandler{handlers: []slog.Handler{
		slog.NewJSONHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	}}
	h = h.WithAttrs([]slog.Attr{slog.String("service", "portal")})

	slog.New(h).Info("up")

	for _, buf := range []*bytes.Buffer{&a, &b} {
		if !strings.Contains(buf.String(), `"service":"portal"`) {
			t.Errorf("attr not propagated to child handler: %q", buf.String())
		}
	}
}
