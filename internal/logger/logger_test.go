package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/transaction-merger/internal/config"
)

func testConfig(t *testing.T) config.LoggingConfig {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "logs")
	return config.LoggingConfig{
		Level:    "trace",
		TextFile: filepath.Join(dir, "logs.txt"),
		CSVFile:  filepath.Join(dir, "logs.csv"),
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestOpen_RoutesChannels(t *testing.T) {
	cfg := testConfig(t)
	console := &bytes.Buffer{}

	ch, err := Open(cfg, console)
	require.NoError(t, err)

	ch.LogOperational(zerolog.InfoLevel, "import data from a.csv")
	ch.LogOperational(zerolog.WarnLevel, "file b.csv does not exist - skip")
	ch.LogTransaction(zerolog.DebugLevel, "imported transaction Record{Coffee, 3.5, 01-02-2020}")
	require.NoError(t, ch.Close())

	text := readFile(t, cfg.TextFile)
	assert.Equal(t, "INFO - import data from a.csv\nWARN - file b.csv does not exist - skip\n", text)

	today := time.Now().Format("02-01-2006")
	structured := readFile(t, cfg.CSVFile)
	assert.Equal(t,
		today+",INFO,import data from a.csv\n"+today+",WARN,file b.csv does not exist - skip\n",
		structured)

	assert.Equal(t,
		"INFO - import data from a.csv\n"+
			"WARN - file b.csv does not exist - skip\n"+
			"DEBUG - imported transaction Record{Coffee, 3.5, 01-02-2020}\n",
		console.String())
}

func TestOpen_AppendsToExistingLogs(t *testing.T) {
	cfg := testConfig(t)

	for i := 0; i < 2; i++ {
		ch, err := Open(cfg, nil)
		require.NoError(t, err)
		ch.LogOperational(zerolog.InfoLevel, "run")
		require.NoError(t, ch.Close())
	}

	assert.Equal(t, "INFO - run\nINFO - run\n", readFile(t, cfg.TextFile))
}

func TestOpen_LevelFilter(t *testing.T) {
	cfg := testConfig(t)
	cfg.Level = "warn"
	console := &bytes.Buffer{}

	ch, err := Open(cfg, console)
	require.NoError(t, err)
	defer ch.Close()

	ch.LogOperational(zerolog.InfoLevel, "hidden")
	ch.LogTransaction(zerolog.DebugLevel, "hidden too")
	ch.LogOperational(zerolog.WarnLevel, "shown")

	assert.Equal(t, "WARN - shown\n", console.String())
}

func TestOpen_Quiet(t *testing.T) {
	cfg := testConfig(t)
	cfg.Quiet = true
	console := &bytes.Buffer{}

	ch, err := Open(cfg, console)
	require.NoError(t, err)

	ch.LogOperational(zerolog.WarnLevel, "to files only")
	ch.LogTransaction(zerolog.InfoLevel, "nowhere")
	require.NoError(t, ch.Close())

	assert.Empty(t, console.String())
	assert.Equal(t, "WARN - to files only\n", readFile(t, cfg.TextFile))
}

func TestOpen_InvalidLevel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Level = "loud"

	_, err := Open(cfg, nil)
	assert.Error(t, err)
}

func TestClose_Idempotent(t *testing.T) {
	ch, err := Open(testConfig(t), nil)
	require.NoError(t, err)

	require.NoError(t, ch.Close())
	assert.NoError(t, ch.Close())
}

func TestCSVWriter_QuotesMessages(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewCSVWriter(buf)
	w.now = func() time.Time { return time.Date(2020, 2, 1, 10, 0, 0, 0, time.UTC) }

	log := zerolog.New(w)
	log.Warn().Msg(`cannot parse amount: Book,"x",01-02-2020`)

	assert.Equal(t, "01-02-2020,WARN,\"cannot parse amount: Book,\"\"x\"\",01-02-2020\"\n", buf.String())
}

func TestCSVWriter_RejectsNonJSON(t *testing.T) {
	_, err := NewCSVWriter(&bytes.Buffer{}).Write([]byte("not json"))
	assert.Error(t, err)
}

func TestSimpleWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(NewSimpleWriter(buf))

	log.Trace().Msg("trace event")
	log.Info().Msg("info event")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"TRACE - trace event", "INFO - info event"}, lines)
}
