package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zkkontos/kontos-go/common/errors"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(errors.New("plain")))
	assert.Equal(t, 1, exitCode(errors.IllegalArgumentError.New("InvalidConfig")))
	assert.Equal(t, 2, exitCode(errors.CriticalInvariantError.New("Broken")))
	assert.Equal(t, 2, exitCode(errors.Wrap(errors.CriticalFormatError.New("Broken"), "Outer")))
}
