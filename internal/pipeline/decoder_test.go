package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/dcarber/spinesel/internal/model"
)

func TestDecodeEvents(t *testing.T) {
	input := strings.Join([]string{
		`{"run":1,"event":1,"truth":[{"is_neutrino":true}],"reco":[]}`,
		``,
		`{"run":1,"event":2,"truth":[],"reco":[]}`,
	}, "\n")

	var events []*model.Event
	warnings, err := DecodeEvents(context.Background(), strings.NewReader(input), func(ev *model.Event) {
		events = append(events, ev)
	})
	if err != nil {
		t.Fatalf("DecodeEvents failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(events) != 2 {
		t.Fatalf("decoded %d events, want 2", len(events))
	}
	if events[0].Event != 1 || !events[0].Truth[0].IsNeutrino {
		t.Errorf("first event decoded wrong: %+v", events[0])
	}
}

func TestDecodeEvents_MalformedLines(t *testing.T) {
	input := strings.Join([]string{
		`{"run":1,"event":1}`,
		`{not json`,
		`{"run":1,"event":3}`,
	}, "\n")

	count := 0
	warnings, err := DecodeEvents(context.Background(), strings.NewReader(input), func(ev *model.Event) {
		count++
	})
	if err != nil {
		t.Fatalf("DecodeEvents failed: %v", err)
	}
	if count != 2 {
		t.Errorf("decoded %d events, want 2", count)
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want 1 entry", warnings)
	}
	if !strings.HasPrefix(warnings[0], "line 2:") {
		t.Errorf("warning should carry the line number: %q", warnings[0])
	}
}

func TestDecodeEvents_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := `{"run":1,"event":1}` + "\n"
	_, err := DecodeEvents(ctx, strings.NewReader(input), func(ev *model.Event) {
		t.Error("handler should not run after cancellation")
	})
	if err == nil {
		t.Error("expected context error")
	}
}
