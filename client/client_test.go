package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	c, err := New("https://westus2.example.com/")
	require.NoError(t, err)
	assert.Equal(t, "https://westus2.example.com/formrecognizer/v2.1/custom", c.url("custom"))
}

func TestNew_NilHTTPClient(t *testing.T) {
	t.Parallel()

	_, err := New("https://westus2.example.com", WithHTTPClient(nil))
	require.Error(t, err)
}
