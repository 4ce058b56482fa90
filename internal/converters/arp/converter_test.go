package arp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jc/internal/core/domain"
)

func TestConvert_Table(t *testing.T) {
	data := `Address                  HWtype  HWaddress           Flags Mask            Iface
gateway                  ether   00:50:56:f7:4a:fc   C                     ens33
`
	result, err := New().Convert(context.Background(), data, domain.ConvertOptions{})
	require.NoError(t, err)

	assert.Equal(t, []domain.Record{{
		"address":    "gateway",
		"hwtype":     "ether",
		"hwaddress":  "00:50:56:f7:4a:fc",
		"flags_mask": "C",
		"iface":      "ens33",
	}}, result.Records())
}

func TestConvert_BSD(t *testing.T) {
	data := "? (192.168.71.254) at 00:50:56:f0:98:26 [ether] on ens33\n"

	result, err := New().Convert(context.Background(), data, domain.ConvertOptions{})
	require.NoError(t, err)

	rec := result.Records()[0]
	assert.Nil(t, rec["name"])
	assert.Equal(t, "192.168.71.254", rec["address"])
	assert.Equal(t, "ether", rec["hwtype"])
	assert.Equal(t, "ens33", rec["iface"])
}

func TestConvert_BSDRaw(t *testing.T) {
	data := "? (192.168.71.254) at 00:50:56:f0:98:26 on en0 ifscope [ethernet]\n"

	result, err := New().Convert(context.Background(), data, domain.ConvertOptions{Raw: true})
	require.NoError(t, err)

	rec := result.Records()[0]
	assert.Equal(t, "?", rec["name"])
	assert.Equal(t, "", rec["hwtype"])
	assert.Equal(t, "en0", rec["iface"])
}

func TestConvert_Garbage(t *testing.T) {
	_, err := New().Convert(context.Background(), "hello\n", domain.ConvertOptions{})
	assert.ErrorIs(t, err, domain.ErrUnparsable)
}
