package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBracketWidth(t *testing.T) {
	upper := decimal.NewFromInt(700_000)
	slab := Bracket{
		MinAmount: decimal.NewFromInt(500_000),
		MaxAmount: &upper,
	}

	width := slab.Width()
	require.NotNil(t, width)
	assert.True(t, width.Equal(decimal.NewFromInt(200_000)))

	top := Bracket{MinAmount: decimal.NewFromInt(2_000_000)}
	assert.Nil(t, top.Width(), "unbounded top bracket has no width")
}
