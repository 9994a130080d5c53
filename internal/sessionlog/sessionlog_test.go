package sessionlog

import (
	"bufio"
	"os"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestTranscript(t *testing.T) {
	dir := t.TempDir()

	log, err := New(dir)
	require.NoError(t, err)

	log.Request("Write a hello world")
	log.Response("```python\nprint('hello')\n```")
	log.Execution(true, "hello\n")
	log.Error(errors.New("boom"))

	require.NoError(t, log.Close())

	file, err := os.Open(log.TranscriptPath())
	require.NoError(t, err)
	defer file.Close()

	var kinds []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		require.True(t, gjson.Valid(line))
		assert.NotEmpty(t, gjson.Get(line, "time").String())

		kinds = append(kinds, gjson.Get(line, "kind").String())
	}

	require.NoError(t, scanner.Err())
	assert.Equal(t, []string{EventRequest, EventResponse, EventExecution, EventError}, kinds)
}

func TestExecutionEventCarriesSuccess(t *testing.T) {
	dir := t.TempDir()

	log, err := New(dir)
	require.NoError(t, err)

	log.Execution(false, "Traceback ...")

	require.NoError(t, log.Close())

	raw, err := os.ReadFile(log.TranscriptPath())
	require.NoError(t, err)

	assert.False(t, gjson.GetBytes(raw, "success").Bool())
	assert.True(t, gjson.GetBytes(raw, "success").Exists())
}
