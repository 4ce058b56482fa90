package mount

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jc/internal/core/domain"
)

func TestConvert_Linux(t *testing.T) {
	data := "sysfs on /sys type sysfs (rw,nosuid,nodev)\n/dev/sda1 on /mnt/my disk type ext4 (rw,relatime)\n"

	result, err := New().Convert(context.Background(), data, domain.ConvertOptions{})
	require.NoError(t, err)

	assert.Equal(t, []domain.Record{
		{"filesystem": "sysfs", "mount_point": "/sys", "type": "sysfs", "options": []string{"rw", "nosuid", "nodev"}},
		{"filesystem": "/dev/sda1", "mount_point": "/mnt/my disk", "type": "ext4", "options": []string{"rw", "relatime"}},
	}, result.Records())
}

func TestConvert_Darwin(t *testing.T) {
	data := "/dev/disk1s1 on / (apfs, local, journaled)\n"

	result, err := New().Convert(context.Background(), data, domain.ConvertOptions{})
	require.NoError(t, err)

	assert.Equal(t, []domain.Record{
		{"filesystem": "/dev/disk1s1", "mount_point": "/", "type": "apfs", "options": []string{"local", "journaled"}},
	}, result.Records())
}

func TestConvert_Garbage(t *testing.T) {
	_, err := New().Convert(context.Background(), "not a mount line\n", domain.ConvertOptions{})
	assert.ErrorIs(t, err, domain.ErrUnparsable)
}
