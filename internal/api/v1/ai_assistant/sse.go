package ai_assistant

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	eventSaved = "saved"
	eventDone  = "done"
	eventError = "error"
)

// frameData prefixes every line with one space. Readers strip exactly one
// leading space per data line, so fragments that start with whitespace
// survive. Carriage returns are folded into newlines.
func frameData(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return " " + strings.ReplaceAll(s, "\n", "\n ")
}

func startEventStream(c *gin.Context) {
	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Status(200)
	c.Writer.Flush()
}

// writeEvent sends one event and flushes it. An empty name sends an
// unnamed message event. It fails once the client has gone away.
func writeEvent(c *gin.Context, name, data string) error {
	if err := c.Request.Context().Err(); err != nil {
		return err
	}
	c.SSEvent(name, frameData(data))
	c.Writer.Flush()
	return nil
}
