package errors

import (
	"io"
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"
)

func TestWrapKeepsKind(t *testing.T) {
	t.Parallel()

	require.Nil(t, Wrap(ErrConfigDecodeFile, nil))

	err := Wrap(ErrConfigDecodeFile, io.ErrUnexpectedEOF)
	require.True(t, Is(err, ErrConfigDecodeFile))
	require.False(t, Is(err, ErrConfigInvalidFlag))
	require.Equal(t, io.ErrUnexpectedEOF, errors.Cause(err))
	require.Contains(t, err.Error(), "CONTAINERS:ErrConfigDecodeFile")
	require.Contains(t, err.Error(), io.ErrUnexpectedEOF.Error())

	err = Wrap(ErrConfigInvalidFlag, io.EOF, "queue-capacity")
	require.True(t, Is(err, ErrConfigInvalidFlag))
	require.Contains(t, err.Error(), "'queue-capacity' is an invalid flag")

	// errors raised directly are classified as well
	require.True(t, Is(ErrNullInput.GenWithStackByArgs("other"), ErrNullInput))
	require.True(t, Is(errors.Trace(ErrEmptyContainer.GenWithStackByArgs("queue")), ErrEmptyContainer))
	require.False(t, Is(nil, ErrNullInput))
	require.False(t, Is(io.EOF, ErrNullInput))
}
