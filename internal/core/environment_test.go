package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnvironment(t *testing.T) {
	assert.Equal(t, Production, ParseEnvironment("production"))
	assert.Equal(t, Production, ParseEnvironment(" Production "))
	assert.Equal(t, Staging, ParseEnvironment("staging"))
	assert.Equal(t, Testing, ParseEnvironment("testing"))
	assert.Equal(t, Development, ParseEnvironment(""))
	assert.Equal(t, Development, ParseEnvironment("prod"))
}

func TestEnvironment_Decode(t *testing.T) {
	var e Environment
	assert.NoError(t, e.Decode("PRODUCTION"))
	assert.True(t, e.IsProduction())
	assert.Equal(t, "info", e.DefaultLogLevel())
	assert.Equal(t, "debug", Development.DefaultLogLevel())
}
