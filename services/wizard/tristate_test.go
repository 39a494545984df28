package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriStateValidity(t *testing.T) {
	assert.True(t, TriStateYes.Valid())
	assert.True(t, TriStateNo.Valid())
	assert.True(t, TriStateUnanswered.Valid())
	assert.False(t, TriState("yes").Valid())
	assert.False(t, TriState("Nao").Valid())

	assert.True(t, TriStateYes.Answered())
	assert.True(t, TriStateNo.Answered())
	assert.False(t, TriStateUnanswered.Answered())
}

func TestTriStateEncode(t *testing.T) {
	yes, err := TriStateYes.Encode()
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := TriStateNo.Encode()
	require.NoError(t, err)
	assert.False(t, no)

	_, err = TriStateUnanswered.Encode()
	assert.Error(t, err)
}

func TestDecodeTriState(t *testing.T) {
	y := true
	n := false
	assert.Equal(t, TriStateYes, DecodeTriState(&y))
	assert.Equal(t, TriStateNo, DecodeTriState(&n))
	assert.Equal(t, TriStateUnanswered, DecodeTriState(nil))
}

func TestTriStateRoundTrip(t *testing.T) {
	for _, ts := range []TriState{TriStateYes, TriStateNo} {
		b, err := ts.Encode()
		require.NoError(t, err)
		assert.Equal(t, ts, DecodeTriState(&b))
	}
}
