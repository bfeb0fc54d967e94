package utils

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckErr(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	stderr = &buf
	exit = func(c int) { code = c }
	defer func() {
		stderr = os.Stderr
		exit = os.Exit
	}()

	assert.NotPanics(t, func() {
		CheckErr(nil, "This should not exit")
	})
	assert.Equal(t, -1, code)
	assert.Empty(t, buf.String())

	CheckErr(errors.New("boom"), "setup failed")
	assert.Equal(t, 1, code)
	assert.Equal(t, "setup failed: boom\n", buf.String())
}
