package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	prog "github.com/vito/progrock"

	"go.trai.ch/runviz/internal/adapters/telemetry/progrock"
)

func TestNew(t *testing.T) {
	rec := progrock.New()
	require.NotNil(t, rec)
	assert.NoError(t, rec.Close())
}

func TestRecorder_RecordsAndCompletesVertices(t *testing.T) {
	tape := prog.NewTape()
	rec := progrock.NewRecorder(tape)

	_, v := rec.Record(context.Background(), "restore collections")
	require.Equal(t, 1, tape.TotalCount())
	assert.Equal(t, 0, tape.CompletedCount())

	v.Complete(nil)
	assert.Equal(t, 1, tape.CompletedCount())
	assert.Equal(t, 0, tape.ErroredCount())

	_, failing := rec.Record(context.Background(), "open checkpoint")
	failing.Complete(errors.New("no such run"))
	assert.Equal(t, 2, tape.TotalCount())
	assert.Equal(t, 1, tape.ErroredCount())

	assert.NoError(t, rec.Close())
}
