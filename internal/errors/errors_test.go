package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errFirst  = New("first")
	errSecond = New("second")
)

func TestWrapKeepsCause(t *testing.T) {
	wrapped := Wrap(errFirst, "loading remark")

	assert.True(t, Is(wrapped, errFirst))
	assert.Equal(t, errFirst, Cause(wrapped))
	assert.Equal(t, "loading remark: first", wrapped.Error())
}

func TestIsAny(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		targets []error
		want    bool
	}{
		{name: "direct match", err: errFirst, targets: []error{errSecond, errFirst}, want: true},
		{name: "wrapped match", err: Wrapf(errSecond, "remark %d", 7), targets: []error{errSecond}, want: true},
		{name: "no match", err: errFirst, targets: []error{errSecond}, want: false},
		{name: "no targets", err: errFirst, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAny(tt.err, tt.targets...))
		})
	}
}
