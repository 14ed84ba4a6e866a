package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvorsen/trapmap/internal/arrangement"
)

func TestBuildEmptyMapNamesSingleTrapezoid(t *testing.T) {
	m := arrangement.New(0, 0, 100, 100)
	names, err := Build(m)
	require.NoError(t, err)

	assert.Empty(t, names.P)
	assert.Empty(t, names.Q)
	assert.Empty(t, names.S)
	require.Len(t, names.T, 1)
	assert.Equal(t, "T1", names.T[0])
	assert.Equal(t, []string{"T1"}, names.Order)
}

func TestBuildAssignsDeterministicLabels(t *testing.T) {
	m := arrangement.New(0, 0, 100, 100)
	require.NoError(t, m.Insert(&arrangement.Point{X: 10, Y: 50}, &arrangement.Point{X: 90, Y: 50}))

	names, err := Build(m)
	require.NoError(t, err)

	assert.Equal(t, []string{"P1"}, names.P)
	assert.Equal(t, []string{"Q1"}, names.Q)
	assert.Equal(t, []string{"S1"}, names.S)
	assert.Len(t, names.T, 4)

	wantOrder := append(append(append([]string{}, names.P...), names.Q...), names.S...)
	wantOrder = append(wantOrder, names.T...)
	assert.Equal(t, wantOrder, names.Order)
}

func TestBuildReusesLabelsForSharedEndpoint(t *testing.T) {
	m := arrangement.New(0, 0, 100, 100)
	require.NoError(t, m.Insert(&arrangement.Point{X: 20, Y: 50}, &arrangement.Point{X: 50, Y: 50}))
	require.NoError(t, m.Insert(&arrangement.Point{X: 50, Y: 50}, &arrangement.Point{X: 80, Y: 70}))

	names, err := Build(m)
	require.NoError(t, err)

	// (50,50) is Q of the first segment and P of the second. P and Q labels
	// are assigned per role, so it is labelled Q1 as a right endpoint and P2
	// as a left endpoint.
	assert.Equal(t, []string{"P1", "P2"}, names.P)
	assert.Equal(t, []string{"Q1", "Q2"}, names.Q)
}
