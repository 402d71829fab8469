package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID_Deterministic(t *testing.T) {
	a := ID("power.meter.1")
	b := ID("power.meter.1")

	require.Equal(t, a, b)
}

func TestID_DistinguishesNames(t *testing.T) {
	require.NotEqual(t, ID("power.meter.1"), ID("power.meter.2"))
	require.NotEqual(t, ID(""), ID("a"))
}
