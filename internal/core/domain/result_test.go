package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Single(t *testing.T) {
	r := Single(Record{"kernel_name": "Linux"})

	assert.True(t, r.IsSingle())
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, "Linux", r.Record()["kernel_name"])

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kernel_name":"Linux"}`, string(data))
}

func TestResult_SingleNil(t *testing.T) {
	data, err := json.Marshal(Single(nil))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestResult_Many(t *testing.T) {
	r := Many([]Record{{"filename": "a"}, {"filename": "b"}})

	assert.False(t, r.IsSingle())
	assert.Equal(t, 2, r.Len())
	assert.Nil(t, r.Record())

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"filename":"a"},{"filename":"b"}]`, string(data))
}

func TestResult_EmptyIsArray(t *testing.T) {
	for _, r := range []Result{{}, Many(nil), Many([]Record{})} {
		data, err := json.Marshal(r)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	}
}

func TestResult_RecordsOfSingle(t *testing.T) {
	rec := Record{"a": 1}
	assert.Equal(t, []Record{rec}, Single(rec).Records())
}

func TestResult_HTMLNotEscaped(t *testing.T) {
	tests := []struct {
		name     string
		result   Result
		expected string
	}{
		{"single", Single(Record{"cmd": "a<b>&c"}), `{"cmd":"a<b>&c"}`},
		{"many", Many([]Record{{"cmd": "x && y > z"}}), `[{"cmd":"x && y > z"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.result.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}
