package sanity_check

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Check(&out))
	assert.Contains(t, out.String(), "Successfully running Bio Toolkit!")
}
