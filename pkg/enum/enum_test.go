package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type suit string

var (
	hearts = New(suit("hearts"))
	spades = New(suit("spades"))
)

func Test_ToEnum(t *testing.T) {
	got, err := ToEnum[suit]("hearts")
	require.NoError(t, err)
	require.Equal(t, hearts, got)

	got, err = ToEnum[suit]("spades")
	require.NoError(t, err)
	require.Equal(t, spades, got)

	_, err = ToEnum[suit]("clubs")
	require.Error(t, err)

	type unregistered string
	_, err = ToEnum[unregistered]("anything")
	require.Error(t, err)
}
