package main

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "long…", truncate("longer", 5))
}

func TestTruncateMultiByte(t *testing.T) {
	// Finnish/emoji titles must not be cut mid-rune.
	got := truncate("Fjällräven Kånken reppu", 12)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "Fjällräven …", got)

	got = truncate("日本語のキーボード", 5)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "日本語の…", got)
}

func TestSplitCommand(t *testing.T) {
	cmd, rest := splitCommand("set title New Title")
	assert.Equal(t, "set", cmd)
	assert.Equal(t, "title New Title", rest)

	cmd, rest = splitCommand("ls")
	assert.Equal(t, "ls", cmd)
	assert.Empty(t, rest)
}

func TestSplitPair(t *testing.T) {
	k, v := splitPair("Material = Stoneware")
	assert.Equal(t, "Material", k)
	assert.Equal(t, "Stoneware", v)

	k, v = splitPair("keyonly")
	assert.Equal(t, "keyonly", k)
	assert.Empty(t, v)
}
