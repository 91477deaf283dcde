package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToastToken(t *testing.T) {
	secret := []byte("s3cret")

	token, err := CreateToastToken("toast-1", secret, time.Minute)
	require.NoError(t, err)

	claims, err := ValidateToastToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "toast-1", claims.ID)

	_, err = ValidateToastToken(token, []byte("other"))
	assert.Error(t, err)

	expired, err := CreateToastToken("toast-2", secret, -time.Minute)
	require.NoError(t, err)
	_, err = ValidateToastToken(expired, secret)
	assert.Error(t, err)
}

func TestDates(t *testing.T) {
	d, err := ParseDate("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", FormatDate(d))
	assert.Equal(t, "", FormatDate(time.Time{}))

	truncated := TruncateDate(time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, d, truncated)

	_, err = ParseDate("09/03/2024")
	assert.Error(t, err)
}
