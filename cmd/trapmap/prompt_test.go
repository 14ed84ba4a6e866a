package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvorsen/trapmap"
)

func TestRunPromptQuitsOnCommand(t *testing.T) {
	m := trapmap.New(0, 0, 100, 100)
	var out strings.Builder
	err := runPrompt(m, strings.NewReader("quit\n"), &out)
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestRunPromptLogsMalformedQueryAndContinues(t *testing.T) {
	m := trapmap.New(0, 0, 100, 100)
	require.NoError(t, m.Insert(trapmap.Point{X: 10, Y: 50}, trapmap.Point{X: 90, Y: 50}))

	var out strings.Builder
	err := runPrompt(m, strings.NewReader("nope\n50 75\nq\n"), &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "query line is not two numbers")
	assert.NotEmpty(t, lines[1])
}
