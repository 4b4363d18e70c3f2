// SPDX-License-Identifier: MIT

package instance_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cvrp/instance"
)

func requireSameInstance(t *testing.T, want, got instance.Provider) {
	t.Helper()
	require.Equal(t, want.VerticesNum(), got.VerticesNum())
	require.Equal(t, want.VehicleCapacity(), got.VehicleCapacity())
	for i := want.VerticesBegin(); i < want.VerticesEnd(); i++ {
		require.Equal(t, want.X(i), got.X(i), "x of %d", i)
		require.Equal(t, want.Y(i), got.Y(i), "y of %d", i)
		require.Equal(t, want.Demand(i), got.Demand(i), "demand of %d", i)
		require.Equal(t, want.NeighborsOf(i), got.NeighborsOf(i), "neighbors of %d", i)
	}
}

func TestWrite_TSPLIB(t *testing.T) {
	in := instance.Load(filepath.Join("testdata", "golden-tiny.vrp"))
	require.True(t, in.IsValid())

	var buf bytes.Buffer
	require.NoError(t, instance.Write(&buf, in, instance.FormatTSPLIB))
	require.Equal(t, strings.Join([]string{
		"NAME : name",
		"COMMENT : (comment)",
		"TYPE : CVRP",
		"DIMENSION : 4",
		"EDGE_WEIGHT_TYPE : EUC_2D",
		"CAPACITY : 15",
		"NODE_COORD_SECTION",
		"1\t10\t10",
		"2\t10\t13",
		"3\t14\t10",
		"4\t10\t5",
		"DEMAND_SECTION",
		"1\t0",
		"2\t5",
		"3\t7",
		"4\t9",
		"DEPOT_SECTION",
		"\t1",
		"\t-1",
		"EOF",
		"",
	}, "\n"), buf.String())

	back := instance.Parse(&buf)
	require.True(t, back.IsValid(), "%v", back.Err())
	require.Equal(t, "x", back.Source())
	requireSameInstance(t, in, back)
}

func TestSerialize_FileRoundTrip(t *testing.T) {
	gen, err := instance.Generate(instance.GenerateConfig{Customers: 105, Capacity: 600, MaxDemand: 100, Grid: 1000, Seed: 106})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "X-n106-k14.vrp")
	require.NoError(t, instance.Serialize(gen, path, instance.FormatTSPLIB))

	in := instance.Load(path)
	require.True(t, in.IsValid(), "%v", in.Err())
	require.Equal(t, 600, in.VehicleCapacity())
	require.Equal(t, 105, in.CustomersNum())
	require.Equal(t, 106, in.VerticesNum())
	requireSameInstance(t, gen, in)
}

func TestWrite_JSON(t *testing.T) {
	in := instance.Load(filepath.Join("testdata", "golden-tiny.vrp"))

	var buf bytes.Buffer
	require.NoError(t, instance.Write(&buf, in, instance.FormatJSON))

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.JSONEq(t, `[10,10,14,10]`, string(doc["x"]))
	require.JSONEq(t, `[10,13,10,5]`, string(doc["y"]))
	require.JSONEq(t, `15`, string(doc["Q"]))
	require.JSONEq(t, `[0,5,7,9]`, string(doc["q"]))

	back, err := instance.ParseJSON(&buf)
	require.NoError(t, err)
	require.True(t, back.IsValid())
	requireSameInstance(t, in, back)

	_, err = instance.ParseJSON(strings.NewReader("{"))
	require.ErrorIs(t, err, instance.ErrSyntax)
}

func TestWrite_SubInstanceAndErrors(t *testing.T) {
	in := instance.Load(filepath.Join("testdata", "x-tiny.vrp"))
	sub, err := instance.NewSubInstance(in, []int{4, 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, instance.Write(&buf, sub, instance.FormatJSON))
	require.JSONEq(t, `{"x":[0,0,6],"y":[0,10,8],"Q":10,"q":[0,2,3]}`, buf.String())

	require.ErrorIs(t, instance.Write(&buf, in, instance.Format(9)), instance.ErrUnsupportedFormat)
	require.ErrorIs(t, instance.Write(&buf, nil, instance.FormatJSON), instance.ErrNilProvider)
	require.Equal(t, "Format(9)", instance.Format(9).String())

	err = instance.Serialize(in, filepath.Join(t.TempDir(), "missing", "dir", "x.vrp"), instance.FormatTSPLIB)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWrite_Costs(t *testing.T) {
	in, err := instance.FromData([]float64{0, 3, 0}, []float64{0, 4, 2}, []int{0, 1, 1}, 5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, instance.Write(&buf, in, instance.FormatCosts))
	require.Equal(t, "[0, 5, 2]\n[5, 0, 4]\n[2, 4, 0]\n", buf.String())
	require.Equal(t, "costs", instance.FormatCosts.String())

	sub, err := instance.NewSubInstance(in, []int{2})
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, instance.Write(&buf, sub, instance.FormatCosts))
	require.Equal(t, "[0, 2]\n[2, 0]\n", buf.String())
}
