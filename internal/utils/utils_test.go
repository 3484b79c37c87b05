package utils_test

import (
	"testing"

	"github.com/jrsteele09/go-budget-client/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestPointers(t *testing.T) {
	require.Equal(t, "", utils.Value[string](nil))
	require.Equal(t, "x", utils.Value(utils.Ptr("x")))
	require.Nil(t, utils.NonEmptyPtr(""))
	require.Equal(t, "tok", *utils.NonEmptyPtr("tok"))
}

func TestFirstNonEmpty(t *testing.T) {
	require.Equal(t, "b", utils.FirstNonEmpty("", "b", "c"))
	require.Equal(t, "", utils.FirstNonEmpty())
}
