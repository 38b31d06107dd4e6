package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestRemarkStatisticsModel_CoordinateColumns(t *testing.T) {
	s, err := schema.Parse(&RemarkStatisticsModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	assert.Equal(t, "remark_statistics", s.Table)

	for _, name := range []string{"latitude", "longitude"} {
		t.Run(name, func(t *testing.T) {
			field := s.LookUpField(name)
			require.NotNil(t, field)

			assert.Equal(t, schema.DataType("double precision"), field.DataType)
			assert.True(t, field.NotNull)
		})
	}
}
