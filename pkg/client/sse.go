package client

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// event is one dispatched server-sent event. An empty Name is a plain
// message event.
type event struct {
	Name  string
	Data  string
	ID    string
	Retry int
}

// eventDecoder reads server-sent events incrementally. Data lines of one
// event are joined with "\n" and a single leading space after the colon is
// dropped.
type eventDecoder struct {
	r      *bufio.Reader
	lastID string
}

func newEventDecoder(r io.Reader) *eventDecoder {
	return &eventDecoder{r: bufio.NewReaderSize(r, 64*1024)}
}

// Next blocks until a full event arrives. A trailing event that was not
// terminated by a blank line is discarded and io.EOF returned.
func (d *eventDecoder) Next() (event, error) {
	var (
		ev      event
		data    strings.Builder
		hasData bool
	)

	for {
		line, err := d.r.ReadString('\n')
		if err != nil {
			return event{}, err
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		if line == "" {
			if !hasData {
				ev = event{}
				continue
			}
			ev.Data = data.String()
			ev.ID = d.lastID
			return ev, nil
		}
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value := line, ""
		if i := strings.IndexByte(line, ':'); i >= 0 {
			field, value = line[:i], line[i+1:]
			value = strings.TrimPrefix(value, " ")
		}

		switch field {
		case "event":
			ev.Name = value
		case "data":
			if hasData {
				data.WriteByte('\n')
			}
			data.WriteString(value)
			hasData = true
		case "id":
			if !strings.ContainsRune(value, 0) {
				d.lastID = value
			}
		case "retry":
			if n, err := strconv.Atoi(value); err == nil {
				ev.Retry = n
			}
		}
	}
}
