package logger

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// csvDateLayout is the date column format of the structured log (dd-MM-yyyy).
const csvDateLayout = "02-01-2006"

// NewSimpleWriter renders events as "LEVEL - message", one per line.
func NewSimpleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("%s -", i))
		},
	}
}

// CSVWriter renders events as CSV rows: date,LEVEL,message.
// Messages containing the delimiter or quotes are quoted per RFC 4180.
type CSVWriter struct {
	out *csv.Writer
	now func() time.Time
}

// NewCSVWriter creates a CSVWriter writing to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{out: csv.NewWriter(w), now: time.Now}
}

// Write decodes one zerolog JSON event and writes it as a CSV row.
func (c *CSVWriter) Write(p []byte) (int, error) {
	var evt map[string]interface{}
	if err := json.Unmarshal(p, &evt); err != nil {
		return 0, fmt.Errorf("cannot decode log event: %w", err)
	}

	ts := c.now()
	if s, ok := evt[zerolog.TimestampFieldName].(string); ok {
		if parsed, err := time.Parse(zerolog.TimeFieldFormat, s); err == nil {
			ts = parsed
		}
	}
	level, _ := evt[zerolog.LevelFieldName].(string)
	msg, _ := evt[zerolog.MessageFieldName].(string)

	if err := c.out.Write([]string{ts.Format(csvDateLayout), strings.ToUpper(level), msg}); err != nil {
		return 0, err
	}
	c.out.Flush()
	if err := c.out.Error(); err != nil {
		return 0, err
	}
	return len(p), nil
}
