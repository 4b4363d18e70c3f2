// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cvrp/matrix"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i := range rows {
		for j := range rows[i] {
			require.NoError(t, m.Set(i, j, rows[i][j]))
		}
	}

	return m
}

func TestValidators_Nil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateZeroDiagonal(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)

	var typed *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typed), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquare(typed), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSymmetric(typed, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateZeroDiagonal(typed, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateFinite(typed), matrix.ErrNilMatrix)
}

func TestValidateSquare(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateSquare(mustDense(t, [][]float64{{1, 2}})), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateSquare(mustDense(t, [][]float64{{1}})))
}

func TestValidateSymmetric(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3.05, 0},
	})
	require.ErrorIs(t, matrix.ValidateSymmetric(m, 0.01), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(m, 0.1))
	require.NoError(t, matrix.ValidateSymmetric(m, -0.1), "negative tolerance is used by magnitude")
	require.ErrorIs(t, matrix.ValidateSymmetric(m, math.NaN()), matrix.ErrNaNInf)
}

func TestValidateZeroDiagonal(t *testing.T) {
	m := mustDense(t, [][]float64{{0, 1}, {1, 0.5}})
	require.ErrorIs(t, matrix.ValidateZeroDiagonal(m, 0), matrix.ErrNonZeroDiagonal)
	require.NoError(t, matrix.ValidateZeroDiagonal(m, 1))
}
