package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/Sibyl1122/promptGenerator/pkg/client"
)

// RenderStream writes fragments from ch to w as they arrive, with prefix
// before the first one. It returns the full text, the saved prompt id and
// the stream error, if any. A channel closed without a terminal event
// returns client.ErrStreamClosed.
func RenderStream(w io.Writer, ch <-chan client.StreamEvent, prefix string) (string, string, error) {
	var full strings.Builder
	first := true

	for ev := range ch {
		if ev.Err != nil {
			endLine(w, full.String())
			return full.String(), "", ev.Err
		}
		if ev.Done {
			endLine(w, full.String())
			return ev.Accumulated, ev.SavedID, nil
		}
		if ev.Chunk == "" {
			continue
		}

		if first {
			fmt.Fprint(w, prefix)
			first = false
		}
		fmt.Fprint(w, ev.Chunk)
		full.WriteString(ev.Chunk)
	}

	endLine(w, full.String())
	return full.String(), "", client.ErrStreamClosed
}

func endLine(w io.Writer, text string) {
	if text != "" && !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(w)
	}
}
