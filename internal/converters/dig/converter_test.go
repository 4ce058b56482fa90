package dig

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jc/internal/core/domain"
)

const answer = `
; <<>> DiG 9.11.4 <<>> www.google.com
;; global options: +cmd
;; Got answer:
;; ->>HEADER<<- opcode: QUERY, status: NOERROR, id: 34898
;; flags: qr rd ra; QUERY: 1, ANSWER: 1, AUTHORITY: 0, ADDITIONAL: 1

;; OPT PSEUDOSECTION:
; EDNS: version: 0, flags:; udp: 4096
;; QUESTION SECTION:
;www.google.com.			IN	A

;; ANSWER SECTION:
www.google.com.		63	IN	A	216.58.194.100

;; Query time: 23 msec
;; SERVER: 192.168.71.2#53(192.168.71.2)
;; WHEN: Wed Oct 30 03:11:49 PDT 2019
;; MSG SIZE  rcvd: 59
`

func TestConvert(t *testing.T) {
	result, err := New().Convert(context.Background(), answer, domain.ConvertOptions{})
	require.NoError(t, err)

	assert.Equal(t, []domain.Record{{
		"id":             34898,
		"opcode":         "QUERY",
		"status":         "NOERROR",
		"flags":          []string{"qr", "rd", "ra"},
		"query_num":      1,
		"answer_num":     1,
		"authority_num":  0,
		"additional_num": 1,
		"question":       domain.Record{"name": "www.google.com.", "class": "IN", "type": "A"},
		"answer": []domain.Record{
			{"name": "www.google.com.", "ttl": 63, "class": "IN", "type": "A", "data": "216.58.194.100"},
		},
		"query_time": 23,
		"server":     "192.168.71.2#53(192.168.71.2)",
		"when":       "Wed Oct 30 03:11:49 PDT 2019",
		"rcvd":       59,
	}}, result.Records())
}

func TestConvert_Raw(t *testing.T) {
	result, err := New().Convert(context.Background(), answer, domain.ConvertOptions{Raw: true})
	require.NoError(t, err)

	rec := result.Records()[0]
	assert.Equal(t, "34898", rec["id"])
	assert.Equal(t, "23 msec", rec["query_time"])
}

func TestConvert_TwoQueries(t *testing.T) {
	result, err := New().Convert(context.Background(), answer+answer, domain.ConvertOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Len())
}

func TestConvert_NotDig(t *testing.T) {
	_, err := New().Convert(context.Background(), "216.58.194.100\n", domain.ConvertOptions{})
	assert.ErrorIs(t, err, domain.ErrUnparsable)
}
