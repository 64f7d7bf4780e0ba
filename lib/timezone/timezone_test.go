package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNowUsesLocation(t *testing.T) {
	require.Equal(t, "Asia/Kolkata", Location.String())
	require.Equal(t, Location, Now().Location())
}

func TestSetLocation(t *testing.T) {
	original := Location
	defer func() { Location = original }()

	err := SetLocation("")
	require.NoError(t, err)
	require.Equal(t, original, Location)

	err = SetLocation("UTC")
	require.NoError(t, err)
	require.Equal(t, time.UTC.String(), Now().Location().String())

	err = SetLocation("Not/AZone")
	require.Error(t, err)
	require.Equal(t, "UTC", Location.String())
}
