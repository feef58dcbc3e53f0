package config

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenhouse/hap/category"
)

var pinPattern = regexp.MustCompile(`^\d{3}-\d{2}-\d{3}$`)

func TestWithDefaultsFillsEverything(t *testing.T) {
	c := Config{Name: "Living Room Switch", Category: category.Switches}
	out, err := c.WithDefaults()
	require.NoError(t, err)

	assert.Equal(t, "Living Room Switch", out.StoragePath)
	assert.Regexp(t, pinPattern, out.Pin)
	assert.Len(t, out.SetupID, 4)
}

func TestWithDefaultsPreservesExplicitValues(t *testing.T) {
	c := Config{Name: "x", StoragePath: "/var/lib/hap", Pin: "031-45-154", SetupID: "ABCD"}
	out, err := c.WithDefaults()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/hap", out.StoragePath)
	assert.Equal(t, "031-45-154", out.Pin)
	assert.Equal(t, "ABCD", out.SetupID)
}

func TestWithDefaultsRequiresName(t *testing.T) {
	_, err := Config{}.WithDefaults()
	assert.Error(t, err)
}
