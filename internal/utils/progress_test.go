package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgressBar_KnownTotal(t *testing.T) {
	bar := NewProgressBar(10, DescScanning)
	require.NotNil(t, bar)

	assert.NoError(t, bar.Add(3))
	assert.NoError(t, bar.Finish())
}

func TestNewProgressBar_Indeterminate(t *testing.T) {
	bar := NewProgressBar(-1, DescValidating)
	require.NotNil(t, bar)

	assert.NoError(t, bar.Add(1))
}
