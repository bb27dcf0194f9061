package suite

import (
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/dnaeon/go-vcr.v4/pkg/cassette"
	"gopkg.in/dnaeon/go-vcr.v4/pkg/recorder"
)

// NewRecorder replays testdata/<test name>.yaml, matching interactions by method and URL.
func NewRecorder(t *testing.T) *recorder.Recorder {
	t.Helper()

	r, err := recorder.New(
		filepath.Join("testdata", strings.ReplaceAll(t.Name(), "/", "_")),
		recorder.WithMode(recorder.ModeReplayOnly),
		recorder.WithSkipRequestLatency(true),
		recorder.WithMatcher(func(r *http.Request, i cassette.Request) bool {
			return r.Method == i.Method && r.URL.String() == i.URL
		}),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		// Make sure recorder is stopped once done with it.
		require.NoError(t, r.Stop())
	})

	return r
}
