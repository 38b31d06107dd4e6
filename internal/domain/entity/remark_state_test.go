package entity

import (
	"testing"

	"statistics/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestParseRemarkState(t *testing.T) {
	tests := []struct {
		input   string
		want    RemarkState
		wantErr bool
	}{
		{input: "created", want: RemarkStateCreated},
		{input: "resolved", want: RemarkStateResolved},
		{input: "deleted", want: RemarkStateDeleted},
		{input: "Created", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRemarkState(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownRemarkState))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}
