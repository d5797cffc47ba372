package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Sibyl1122/promptGenerator/pkg/client"
)

func TestRenderStream_BasicFragments(t *testing.T) {
	ch := make(chan client.StreamEvent, 4)
	ch <- client.StreamEvent{Chunk: "你", Accumulated: "你"}
	ch <- client.StreamEvent{Chunk: "好", Accumulated: "你好"}
	ch <- client.StreamEvent{Accumulated: "你好", Done: true, SavedID: "42"}
	close(ch)

	var buf bytes.Buffer
	full, savedID, err := RenderStream(&buf, ch, "  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if full != "你好" {
		t.Errorf("expected '你好', got %q", full)
	}
	if savedID != "42" {
		t.Errorf("expected saved id 42, got %q", savedID)
	}
	if buf.String() != "  你好\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestRenderStream_KeepsWhitespace(t *testing.T) {
	ch := make(chan client.StreamEvent, 3)
	ch <- client.StreamEvent{Chunk: " a\n", Accumulated: " a\n"}
	ch <- client.StreamEvent{Accumulated: " a\n", Done: true}
	close(ch)

	var buf bytes.Buffer
	full, _, err := RenderStream(&buf, ch, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if full != " a\n" {
		t.Errorf("expected ' a\\n', got %q", full)
	}
	if buf.String() != " a\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestRenderStream_Error(t *testing.T) {
	ch := make(chan client.StreamEvent, 2)
	ch <- client.StreamEvent{Chunk: "partial", Accumulated: "partial"}
	ch <- client.StreamEvent{Err: errors.New("stream broke")}
	close(ch)

	var buf bytes.Buffer
	full, _, err := RenderStream(&buf, ch, "")
	if err == nil {
		t.Fatal("expected error")
	}
	if full != "partial" {
		t.Errorf("expected partial output, got %q", full)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("output should end with a newline")
	}
}

func TestRenderStream_ClosedWithoutTerminal(t *testing.T) {
	ch := make(chan client.StreamEvent)
	close(ch)

	var buf bytes.Buffer
	_, _, err := RenderStream(&buf, ch, "")
	if !errors.Is(err, client.ErrStreamClosed) {
		t.Fatalf("expected ErrStreamClosed, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
