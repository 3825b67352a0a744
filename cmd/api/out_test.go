package api

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeRow struct {
	Device string `json:"device"`
	Up     bool   `json:"up"`
	Ttl    int    `json:"ttl"`
}

func TestOut(t *testing.T) {
	var buf bytes.Buffer
	Stdout = &buf
	row := fakeRow{Device: "gre1", Up: true, Ttl: 255}

	assert.Nil(t, Out(row, "table", `{{ps -6 .Device}}|{{pb .Up}}|{{pi 4 .Ttl}}`))
	assert.Equal(t, "gre1  |yes| 255", buf.String(), "be the same.")

	buf.Reset()
	assert.Nil(t, Out(row, "yaml", ""))
	assert.Contains(t, buf.String(), "device: gre1")

	buf.Reset()
	assert.Nil(t, Out(row, "json", ""))
	assert.Contains(t, buf.String(), `"ttl": 255`)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("GRETUN_FAKE", "gre9")
	assert.Equal(t, "gre9", GetEnv("GRETUN_FAKE", "gre1"), "be the same.")
	assert.Equal(t, "gre1", GetEnv("GRETUN_NONE", "gre1"), "be the same.")
}
