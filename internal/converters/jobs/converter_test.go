package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jc/internal/core/domain"
)

func TestConvert(t *testing.T) {
	data := "[1]   Running                 sleep 10000 &\n[2]-  Running                 sleep 10100 &\n[3]+ 19432 Stopped                 vi notes.txt\n"

	result, err := New().Convert(context.Background(), data, domain.ConvertOptions{})
	require.NoError(t, err)

	assert.Equal(t, []domain.Record{
		{"job_number": 1, "status": "Running", "command": "sleep 10000 &"},
		{"job_number": 2, "history": "previous", "status": "Running", "command": "sleep 10100 &"},
		{"job_number": 3, "history": "current", "pid": 19432, "status": "Stopped", "command": "vi notes.txt"},
	}, result.Records())
}

func TestConvert_NotJobs(t *testing.T) {
	_, err := New().Convert(context.Background(), "nothing here\n", domain.ConvertOptions{})
	assert.ErrorIs(t, err, domain.ErrUnparsable)
}
