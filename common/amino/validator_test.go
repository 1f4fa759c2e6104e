package amino

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_Lower(t *testing.T) {
	type prefixed struct {
		Prefix string `validate:"optional,alphanum,t_lower"`
	}
	v := NewValidator()
	assert.NoError(t, v.Validate(&prefixed{}))
	assert.NoError(t, v.Validate(&prefixed{Prefix: "kontos"}))
	assert.NoError(t, v.Validate(&prefixed{Prefix: "osmo1"}))
	assert.Error(t, v.Validate(&prefixed{Prefix: "Kontos"}))
	assert.Error(t, v.Validate(&prefixed{Prefix: "COSMOS"}))
}
