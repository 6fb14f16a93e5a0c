package highline_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/KasperOmsK/highline"
	"github.com/KasperOmsK/highline/internal/iterx"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func setup(input string) (*strings.Reader, *bytes.Buffer) {
	return strings.NewReader(input), &bytes.Buffer{}
}

func TestRunTo_ReturnsLineVerbatim(t *testing.T) {
	in, out := setup("My Value\n")

	value, ok, err := highline.Ask("Value?").RunTo(in, out)

	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "My Value", value)
	require.Equal(t, "Value? ", out.String())
}

func TestRunTo_RejectsEmptyLine(t *testing.T) {
	in, out := setup("\nMy Value\n")

	value, ok, err := highline.Ask("Value?").
		WithError("Please enter a value.").
		RunTo(in, out)

	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "My Value", value)
	require.Equal(t, "Value? Please enter a value.\nValue? ", out.String())
}

func TestRunTo_RepeatsErrorMessage(t *testing.T) {
	in, out := setup("\n\nMy Value\n")

	value, _, err := highline.Ask("Value?").RunTo(in, out)

	require.NoError(t, err)
	require.Equal(t, "My Value", value)
	require.Equal(t,
		"Value? Please enter a value.\nValue? Please enter a value.\nValue? ",
		out.String())
}

func TestRunTo_ExitSentinel(t *testing.T) {
	in, out := setup("n\n")

	value, ok, err := highline.AskAs("Number, n to exit?", highline.Unsigned).
		ExitOn("n").
		WithError("Please enter a number").
		RunTo(in, out)

	require.NoError(t, err)
	require.False(t, ok)
	require.Zero(t, value)
	require.Equal(t, "Number, n to exit? ", out.String())
}

func TestRunTo_AndOnAddsSecondExitKey(t *testing.T) {
	in, out := setup("x\nQ\n")

	_, ok, err := highline.AskAs("Number (q to quit):", highline.Unsigned).
		ExitOn("q").
		AndOn("Q").
		RunTo(in, out)

	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t,
		"Number (q to quit): Please enter a non-negative number.\nNumber (q to quit): ",
		out.String())
}

func TestRunTo_StripsCarriageReturn(t *testing.T) {
	in, out := setup("\r\n42\r\n")

	n, ok, err := highline.AskAs("N?", highline.Unsigned).RunTo(in, out)

	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(42), n)
	require.Equal(t, "N? Please enter a non-negative number.\nN? ", out.String())
}

func TestRunTo_KeepsLoneCarriageReturnAtEOF(t *testing.T) {
	in, out := setup("abc\r")

	value, _, err := highline.Ask("V?").RunTo(in, out)

	require.NoError(t, err)
	require.Equal(t, "abc\r", value)
}

func TestRunTo_FinalLineWithoutNewline(t *testing.T) {
	in, out := setup("\nlast")

	value, ok, err := highline.Ask("V?").RunTo(in, out)

	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "last", value)
}

func TestRunTo_InputClosed(t *testing.T) {
	in, out := setup("\n")

	_, ok, err := highline.Ask("V?").RunTo(in, out)

	require.False(t, ok)
	require.ErrorIs(t, err, highline.ErrInputClosed)
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, "V? Please enter a value.\nV? ", out.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestRunTo_ReadError(t *testing.T) {
	var out bytes.Buffer

	_, _, err := highline.Ask("V?").RunTo(failingReader{}, &out)

	require.ErrorContains(t, err, "read input")
	require.ErrorContains(t, err, "device gone")
	require.NotErrorIs(t, err, highline.ErrInputClosed)
}

type failingWriter struct {
	allowed int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.allowed <= 0 {
		return 0, errors.New("pipe closed")
	}
	w.allowed--
	return len(p), nil
}

func TestRunTo_WriteErrorOnPrompt(t *testing.T) {
	_, _, err := highline.Ask("V?").RunTo(strings.NewReader("a\n"), &failingWriter{})

	require.ErrorContains(t, err, "write prompt")
}

func TestRunTo_WriteErrorOnErrorMessage(t *testing.T) {
	// message and separator succeed, the error message does not
	w := &failingWriter{allowed: 2}

	_, _, err := highline.Ask("V?").RunTo(strings.NewReader("\na\n"), w)

	require.ErrorContains(t, err, "write error message")
}

type flushRecorder struct {
	bytes.Buffer
	flushed []string
}

func (f *flushRecorder) Flush() error {
	f.flushed = append(f.flushed, f.String())
	return nil
}

func TestRunTo_FlushesAfterEachWrite(t *testing.T) {
	out := &flushRecorder{}

	_, _, err := highline.Ask("V?").RunTo(strings.NewReader("\nok\n"), out)

	require.NoError(t, err)
	require.Equal(t, []string{
		"V? ",
		"V? Please enter a value.\n",
		"V? Please enter a value.\nV? ",
	}, out.flushed)
}

func TestRunTo_BufferedWriter(t *testing.T) {
	var sink bytes.Buffer
	w := bufio.NewWriter(&sink)

	_, _, err := highline.Ask("V?").RunTo(strings.NewReader("ok\n"), w)

	require.NoError(t, err)
	require.Equal(t, "V? ", sink.String())
}

func TestRunTo_SharedReaderKeepsBufferedInput(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("Ada\n36\n"))
	var out bytes.Buffer

	name, _, err := highline.Ask("Name?").RunTo(in, &out)
	require.NoError(t, err)

	age, _, err := highline.AskAs("Age?", highline.Unsigned).RunTo(in, &out)
	require.NoError(t, err)

	require.Equal(t, "Ada", name)
	require.Equal(t, uint64(36), age)
	require.Equal(t, "Name? Age? ", out.String())
}

func TestRunTo_LogsAttempts(t *testing.T) {
	var logs bytes.Buffer
	log := zerolog.New(&logs).Level(zerolog.DebugLevel)
	in, out := setup("123\n1234\n")

	pin := highline.Validate(highline.Ask("Pin?"), func(s string) bool { return len(s) == 4 })
	_, _, err := pin.WithLogger(log).RunTo(in, out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	require.Equal(t, "error", first["outcome"])
	require.EqualValues(t, 1, first["attempt"])
	require.Equal(t, "Pin?", first["prompt"])
	require.Equal(t, "answer", second["outcome"])
	require.EqualValues(t, 2, second["attempt"])
	require.NotContains(t, logs.String(), "1234")
}

func TestEach_YieldsUntilExit(t *testing.T) {
	in, out := setup("1\nx\n2\nq\n3\n")

	numbers, err := iterx.Collect(
		highline.AskAs("N?", highline.Unsigned).ExitOn("q").Each(in, out),
	)

	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2}, numbers)
	require.Equal(t, "N? N? Please enter a non-negative number.\nN? N? ", out.String())
}

func TestEach_StopsOnInputClosed(t *testing.T) {
	in, out := setup("1\n2\n")

	numbers, err := iterx.Collect(highline.AskAs("N?", highline.Unsigned).Each(in, out))

	require.ErrorIs(t, err, highline.ErrInputClosed)
	require.Equal(t, []uint64{1, 2}, numbers)
}

func TestEach_BreakStopsPrompting(t *testing.T) {
	in, out := setup("1\n2\n3\n")

	for range highline.AskAs("N?", highline.Unsigned).Each(in, out) {
		break
	}

	require.Equal(t, "N? ", out.String())
}

func TestMust(t *testing.T) {
	v, ok := highline.Must("x", true, nil)
	require.Equal(t, "x", v)
	require.True(t, ok)

	require.PanicsWithError(t, "boom", func() {
		highline.Must(0, false, errors.New("boom"))
	})
}
