package pipeline

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/eventcheck/internal/report"
	"github.com/davetashner/eventcheck/internal/schema"
	"github.com/davetashner/eventcheck/internal/testable"
	"github.com/davetashner/eventcheck/internal/validate"
)

const header = "event_id,timestamp,user_id,ip,country,event_type,amount\n"

const (
	validRow1 = "e1001,2024-07-16T14:23:00Z,u_1,192.168.0.1,US,login,0\n"
	validRow2 = "e1002,2024-07-16T14:25:10Z,u_2,2001:db8::1,GB,payment,19.99\n"
	validRow3 = "e1003,2024-07-16T15:00:00Z,u_3,10.1.2.3,DE,change_password,0.00\n"
)

// writeEvents creates an events file under t.TempDir() and returns its path.
func writeEvents(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func run(t *testing.T, content string) *Result {
	t.Helper()
	res, err := Run(Options{InputPath: writeEvents(t, content), Logger: quietLogger()})
	require.NoError(t, err)
	return res
}

func TestRun_AllValid(t *testing.T) {
	res := run(t, header+validRow1+validRow2+validRow3)

	assert.Equal(t, StateReportEmitted, res.State)
	assert.Equal(t, schema.Passed, res.Report.SchemaCheck)
	assert.Equal(t, report.Summary{TotalRows: 3, PassedRows: 3, FailedRows: 0}, res.Report.Summary)
	assert.Empty(t, res.Report.FailedDetails)
	assert.True(t, res.Report.Valid())
}

func TestRun_MissingCountryColumn(t *testing.T) {
	res := run(t, "event_id,timestamp,user_id,ip,event_type,amount\n"+
		"e1,2024-07-16T14:23:00Z,u_1,10.0.0.1,login,0\n")

	assert.Equal(t, StateSchemaFailed, res.State)
	assert.Equal(t, schema.Failed, res.Report.SchemaCheck)
	assert.Equal(t, report.Summary{}, res.Report.Summary)
	assert.Empty(t, res.Report.FailedDetails)
	assert.Nil(t, res.Rows, "no row may be validated after a schema failure")
	assert.Equal(t, []string{"country"}, res.Schema.Missing)
}

func TestRun_SingleFieldViolations(t *testing.T) {
	tests := []struct {
		name   string
		row    string
		column string
		value  string
	}{
		{"bad ip", "e2,2024-07-16T14:23:00Z,u_2,999.999.999.999,US,login,1\n", "ip", "999.999.999.999"},
		{"bad event type", "e2,2024-07-16T14:23:00Z,u_2,10.0.0.1,US,withdrawal,1\n", "event_type", "withdrawal"},
		{"bad amount", "e2,2024-07-16T14:23:00Z,u_2,10.0.0.1,US,login,abc\n", "amount", "abc"},
		{"bad timestamp", "e2,INVALID_DATE,u_2,10.0.0.1,US,login,1\n", "timestamp", "INVALID_DATE"},
		{"bad country", "e2,2024-07-16T14:23:00Z,u_2,10.0.0.1,USA,login,1\n", "country", "USA"},
		{"null event id", ",2024-07-16T14:23:00Z,u_2,10.0.0.1,US,login,1\n", "event_id", "<NULL>"},
		{"short row", "e2,2024-07-16T14:23:00Z,u_2,10.0.0.1,US,login\n", "amount", "<NULL>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, header+validRow1+tt.row+validRow3)

			assert.Equal(t, report.Summary{TotalRows: 3, PassedRows: 2, FailedRows: 1}, res.Report.Summary)
			require.Len(t, res.Report.FailedDetails, 1)
			assert.Equal(t, report.FailedDetail{Row: 2, Column: tt.column, InvalidValue: tt.value}, res.Report.FailedDetails[0])
		})
	}
}

func TestRun_FirstInvalidColumnOnly(t *testing.T) {
	res := run(t, header+"e9,INVALID_DATE,u_9,999.999.999.999,USA,withdrawal,abc\n")
	require.Len(t, res.Report.FailedDetails, 1)
	assert.Equal(t, "timestamp", res.Report.FailedDetails[0].Column)
}

func TestRun_HeaderOnly(t *testing.T) {
	res := run(t, header)
	assert.Equal(t, StateReportEmitted, res.State)
	assert.Equal(t, report.Summary{}, res.Report.Summary)
	assert.NotNil(t, res.Report.FailedDetails)
	assert.Empty(t, res.Report.FailedDetails)
}

func TestRun_FailedDetailsInRowOrder(t *testing.T) {
	res := run(t, header+
		"e1,2024-07-16T14:23:00Z,u_1,10.0.0.1,US,login,abc\n"+
		validRow2+
		"e3,2024-07-16T14:23:00Z,u_3,1.2.3,US,login,1\n"+
		"e4,2024-07-16T14:23:00Z,u_4,10.0.0.1,US,refund,1\n")

	rows := make([]int, len(res.Report.FailedDetails))
	for i, d := range res.Report.FailedDetails {
		rows[i] = d.Row
	}
	assert.Equal(t, []int{1, 3, 4}, rows)
	assert.Equal(t, res.Report.Summary.TotalRows, res.Report.Summary.PassedRows+res.Report.Summary.FailedRows)
	require.Len(t, res.Rows, 4)
	assert.Equal(t, validate.CheckAllowed, res.Rows[3].Violation.Check)
}

func TestRun_MissingFile(t *testing.T) {
	_, err := Run(Options{InputPath: filepath.Join(t.TempDir(), "nope.csv"), Logger: quietLogger()})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "open input")
}

func TestRun_EmptyFile(t *testing.T) {
	_, err := Run(Options{InputPath: writeEvents(t, ""), Logger: quietLogger()})
	assert.ErrorIs(t, err, ErrNoHeader)
}

// trackingReader records whether Close was called.
type trackingReader struct {
	io.Reader
	closed bool
}

func (r *trackingReader) Close() error {
	r.closed = true
	return nil
}

func TestRun_ClosesInputOnSchemaFailure(t *testing.T) {
	tr := &trackingReader{Reader: strings.NewReader("a,b,c\n1,2,3\n")}
	fsys := &testable.MockFileSystem{
		OpenFn: func(string) (io.ReadCloser, error) { return tr, nil },
	}

	res, err := Run(Options{InputPath: "events.csv", FS: fsys, Logger: quietLogger()})
	require.NoError(t, err)
	assert.Equal(t, StateSchemaFailed, res.State)
	assert.True(t, tr.closed)
}

func TestRun_ReadError(t *testing.T) {
	boom := errors.New("device not ready")
	tr := &trackingReader{Reader: io.MultiReader(strings.NewReader(header), iotestErr{boom})}
	fsys := &testable.MockFileSystem{
		OpenFn: func(string) (io.ReadCloser, error) { return tr, nil },
	}

	_, err := Run(Options{InputPath: "events.csv", FS: fsys, Logger: quietLogger()})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.True(t, tr.closed)
}

type iotestErr struct{ err error }

func (e iotestErr) Read([]byte) (int, error) { return 0, e.err }

func TestRun_ByteOrderMarkHeader(t *testing.T) {
	res := run(t, "\ufeff"+header+validRow1+validRow2)

	assert.Equal(t, StateReportEmitted, res.State)
	assert.Equal(t, schema.Passed, res.Report.SchemaCheck)
	assert.Equal(t, report.Summary{TotalRows: 2, PassedRows: 2, FailedRows: 0}, res.Report.Summary)
	assert.Empty(t, res.Report.FailedDetails)
}

func TestRun_LogsRowViolations(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	path := writeEvents(t, header+validRow1+"e2,2024-07-16T14:23:00Z,u_2,999.999.999.999,US,login,1\n")

	res, err := Run(Options{InputPath: path, Logger: logger})
	require.NoError(t, err)
	assert.Equal(t, report.Summary{TotalRows: 2, PassedRows: 1, FailedRows: 1}, res.Report.Summary)

	out := logs.String()
	assert.Contains(t, out, "row failed")
	assert.Contains(t, out, "column=ip")
	assert.Contains(t, out, "rule=ip")
	assert.Contains(t, out, "valid=false")
}

func TestRun_LogsColumnSuggestion(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	path := writeEvents(t, "event_id,timestamp,user_id,ip,countyr,event_type,amount\n")

	res, err := Run(Options{InputPath: path, Logger: logger})
	require.NoError(t, err)
	assert.Equal(t, StateSchemaFailed, res.State)
	assert.Contains(t, logs.String(), "did_you_mean=country")
}

func TestWriteReport(t *testing.T) {
	res := run(t, header+validRow1+"e2,2024-07-16T14:23:00Z,u_2,10.0.0.1,US,withdrawal,1\n")
	path := filepath.Join(t.TempDir(), "validation_report.json")

	abs, err := WriteReport(nil, path, res.Report, report.JSONOptions{})
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck // test cleanup

	got, err := report.ReadJSON(f)
	require.NoError(t, err)
	assert.Equal(t, res.Report.Summary, got.Summary)
	assert.Equal(t, res.Report.FailedDetails, got.FailedDetails)
}

func TestWriteReport_CreateError(t *testing.T) {
	fsys := &testable.MockFileSystem{
		CreateFn: func(string) (io.WriteCloser, error) { return nil, os.ErrPermission },
	}
	_, err := WriteReport(fsys, "report.json", report.SchemaFailed(), report.JSONOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
}
