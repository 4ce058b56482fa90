package ps

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jc/internal/core/domain"
)

func TestConvert_EF(t *testing.T) {
	data := `UID        PID  PPID  C STIME TTY          TIME CMD
root         1     0  0 Nov01 ?        00:00:11 /usr/lib/systemd/systemd --switched-root --system
kbrazil   2310  2301  0 10:12 pts/0    00:00:00 -bash
`
	result, err := New().Convert(context.Background(), data, domain.ConvertOptions{})
	require.NoError(t, err)

	records := result.Records()
	require.Len(t, records, 2)
	assert.Equal(t, domain.Record{
		"uid":     "root",
		"pid":     1,
		"ppid":    0,
		"c":       0,
		"stime":   "Nov01",
		"tty":     nil,
		"time":    "00:00:11",
		"command": "/usr/lib/systemd/systemd --switched-root --system",
	}, records[0])
	assert.Equal(t, "pts/0", records[1]["tty"])
}

func TestConvert_AUX(t *testing.T) {
	data := `USER       PID %CPU %MEM    VSZ   RSS TTY      STAT START   TIME COMMAND
root         1  0.1  0.4 128164  6836 ?        Ss   Nov01   0:11 /sbin/init
`
	result, err := New().Convert(context.Background(), data, domain.ConvertOptions{})
	require.NoError(t, err)

	rec := result.Records()[0]
	assert.Equal(t, 0.1, rec["cpu_percent"])
	assert.Equal(t, 0.4, rec["mem_percent"])
	assert.Equal(t, 128164, rec["vsz"])
	assert.Equal(t, "/sbin/init", rec["command"])
}

func TestConvert_Raw(t *testing.T) {
	data := "UID PID PPID C STIME TTY TIME CMD\nroot 1 0 0 Nov01 ? 00:00:11 init\n"

	result, err := New().Convert(context.Background(), data, domain.ConvertOptions{Raw: true})
	require.NoError(t, err)

	rec := result.Records()[0]
	assert.Equal(t, "1", rec["pid"])
	assert.Equal(t, "?", rec["tty"])
	assert.Equal(t, "init", rec["cmd"])
}

func TestConvert_NoPID(t *testing.T) {
	_, err := New().Convert(context.Background(), "a b c\n1 2 3\n", domain.ConvertOptions{})
	assert.ErrorIs(t, err, domain.ErrUnparsable)
}
