// SPDX-License-Identifier: MIT

package clarkewright_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cvrp/clarkewright"
)

func TestLoadOptions(t *testing.T) {
	opts, err := clarkewright.LoadOptions(strings.NewReader("lambda: 1.2\n"))
	require.NoError(t, err)
	require.Equal(t, clarkewright.Options{Lambda: 1.2, Neighbors: clarkewright.DefaultNeighbors}, opts)

	opts, err = clarkewright.LoadOptions(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, clarkewright.DefaultOptions(), opts)

	opts, err = clarkewright.LoadOptionsFile(filepath.Join("testdata", "options.yaml"))
	require.NoError(t, err)
	require.Equal(t, clarkewright.Options{Lambda: 1.4, Neighbors: 25}, opts)
}

func TestLoadOptions_Errors(t *testing.T) {
	for _, src := range []string{
		"lambda: 1\nradius: 3\n",
		"lambda: .nan\n",
		"neighbors: -2\n",
		"neighbors: many\n",
		"lambda: [1, 2]\n",
	} {
		_, err := clarkewright.LoadOptions(strings.NewReader(src))
		require.ErrorIs(t, err, clarkewright.ErrBadOptions, src)
	}

	_, err := clarkewright.LoadOptionsFile(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}
