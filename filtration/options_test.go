package filtration_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/filtra/filtration"
	"github.com/katalvlaran/filtra/grade"
)

func TestObservers_FanOut(t *testing.T) {
	var a, b recorder
	f := filtration.NewSet[grade.Natural](2, 1,
		filtration.WithObserver(filtration.Observers(&a, nil, &b)))

	mustInsert(t, f, 0, vs(0))
	_, err := f.Insert(0, vs(0))
	require.NoError(t, err)
	_, err = f.Insert(0, vs(1, 0))
	require.ErrorIs(t, err, filtration.ErrUnsorted)

	for _, r := range []*recorder{&a, &b} {
		require.Equal(t, []int{0}, r.inserted)
		require.Equal(t, []int{0}, r.duplicate)
		require.Equal(t, []int{1}, r.rejected)
	}
}
