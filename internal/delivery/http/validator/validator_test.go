package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listQuery struct {
	State string `query:"state" validate:"omitempty,oneof=created resolved deleted"`
	Limit int    `query:"limit" validate:"omitempty,min=1"`
}

type remarkParam struct {
	RemarkID string `param:"remarkId" validate:"required,uuid"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   any
		wantErr string
	}{
		{name: "valid query", input: &listQuery{State: "resolved", Limit: 5}},
		{name: "empty query", input: &listQuery{}},
		{name: "unknown state", input: &listQuery{State: "archived"}, wantErr: "state must be one of [created resolved deleted]"},
		{name: "negative limit", input: &listQuery{Limit: -1}, wantErr: "limit must be at least 1"},
		{name: "missing remark id", input: &remarkParam{}, wantErr: "remarkId is required"},
		{name: "malformed remark id", input: &remarkParam{RemarkID: "abc"}, wantErr: "remarkId must be a valid UUID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestCustomValidator_JoinsMultipleErrors(t *testing.T) {
	err := New().Validate(&listQuery{State: "archived", Limit: -3})

	require.Error(t, err)
	assert.Equal(t, "state must be one of [created resolved deleted]; limit must be at least 1", err.Error())
}
