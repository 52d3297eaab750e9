package pipeline

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dcarber/spinesel/internal/model"
)

// Event files are NDJSON: one event per line. Lines can be large when an
// event carries many interactions.
const maxLineBytes = 16 * 1024 * 1024

// DecodeEvents reads an NDJSON event stream, invoking handle for each
// decoded event. Blank lines are skipped. Malformed lines do not abort the
// stream; they are reported back as warnings with their line number so the
// consumer can count them.
func DecodeEvents(ctx context.Context, r io.Reader, handle func(ev *model.Event)) (warnings []string, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return warnings, err
		}

		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var ev model.Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		handle(&ev)
	}
	if err := scanner.Err(); err != nil {
		return warnings, fmt.Errorf("read events: %w", err)
	}
	return warnings, nil
}
