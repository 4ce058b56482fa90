package stat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jc/internal/core/domain"
)

const twoFiles = `  File: ‘/bin/bash’
  Size: 964536    	Blocks: 1888       IO Block: 4096   regular file
Device: fd00h/64768d	Inode: 17001762    Links: 1
Access: (0755/-rwxr-xr-x)  Uid: (    0/    root)   Gid: (    0/    root)
Context: system_u:object_r:shell_exec_t:s0
Access: 2019-11-14 08:18:03.509681766 +0000
Modify: 2019-06-22 22:02:54.000000000 +0000
Change: 2019-08-16 12:19:12.325682286 +0000
 Birth: -
  File: '/bin/sh' -> 'bash'
  Size: 4         	Blocks: 0          IO Block: 4096   symbolic link
Device: fd00h/64768d	Inode: 17001763    Links: 1
Access: (0777/lrwxrwxrwx)  Uid: (    0/    root)   Gid: (    0/    root)
Access: 2019-11-14 08:18:03.000000000 +0000
Modify: 2019-06-22 22:02:54.000000000 +0000
Change: 2019-08-16 12:19:12.000000000 +0000
 Birth: -
`

func TestDescriptor(t *testing.T) {
	assert.Equal(t, "stat", New().Descriptor().Name)
}

func TestConvert(t *testing.T) {
	result, err := New().Convert(context.Background(), twoFiles, domain.ConvertOptions{})
	require.NoError(t, err)

	records := result.Records()
	require.Len(t, records, 2)
	assert.Equal(t, domain.Record{
		"file":        "/bin/bash",
		"link_to":     nil,
		"size":        964536,
		"blocks":      1888,
		"io_blocks":   4096,
		"type":        "regular file",
		"device":      "fd00h/64768d",
		"inode":       17001762,
		"links":       1,
		"access":      "0755",
		"flags":       "-rwxr-xr-x",
		"uid":         0,
		"user":        "root",
		"gid":         0,
		"group":       "root",
		"access_time": "2019-11-14 08:18:03.509681766 +0000",
		"modify_time": "2019-06-22 22:02:54.000000000 +0000",
		"change_time": "2019-08-16 12:19:12.325682286 +0000",
		"birth_time":  nil,
	}, records[0])

	assert.Equal(t, "/bin/sh", records[1]["file"])
	assert.Equal(t, "bash", records[1]["link_to"])
	assert.Equal(t, "symbolic link", records[1]["type"])
}

func TestConvert_Raw(t *testing.T) {
	result, err := New().Convert(context.Background(), twoFiles, domain.ConvertOptions{Raw: true})
	require.NoError(t, err)

	rec := result.Records()[0]
	assert.Equal(t, "964536", rec["size"])
	assert.Equal(t, "-", rec["birth_time"])
	assert.NotContains(t, rec, "link_to")
}

func TestConvert_NotStat(t *testing.T) {
	_, err := New().Convert(context.Background(), "hello world\n", domain.ConvertOptions{Quiet: true})
	assert.ErrorIs(t, err, domain.ErrUnparsable)
}
