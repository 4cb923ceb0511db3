package vimbax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodeNames(t *testing.T) {
	assert.Equal(t, "VmbErrorSuccess", ErrorCode(0).Name())
	assert.Equal(t, "VmbErrorNotFound", ErrorCode(-3).Name())
	assert.Equal(t, "VmbErrorInsufficientBufferCount", ErrorCode(-41).Name())
	assert.Equal(t, "VmbErrorCustom", ErrorCode(-50).Name())
	assert.Equal(t, "", ErrorCode(-38).Name())

	for code := ErrorCode(0); code >= -41; code-- {
		if code == -38 {
			continue
		}
		assert.NotEmpty(t, code.Name(), "code %d", code)
	}
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "-11 (VmbErrorInvalidValue)", ErrorCode(-11).String())
	assert.Equal(t, "-1000", ErrorCode(-1000).String())
	assert.True(t, ErrorCode(0).OK())
	assert.False(t, ErrorCode(-6).OK())
}

func TestStatusString(t *testing.T) {
	s := Status{Code: -6, Text: "feature is not writable"}
	assert.False(t, s.OK())
	assert.Equal(t, "-6 (VmbErrorInvalidAccess): feature is not writable", s.String())
	assert.Equal(t, "0 (VmbErrorSuccess)", Status{}.String())
	assert.True(t, Status{}.OK())
}
