package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dimelords/skinlang/pkg/position"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		line, col int
		want      position.Position
	}{
		"zero values":     {0, 0, position.Position{Line: 0, Col: 0}},
		"positive values": {5, 10, position.Position{Line: 5, Col: 10}},
		"negative clamps":  {-3, -1, position.Position{Line: 0, Col: 0}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, position.New(tc.line, tc.col))
		})
	}
}

func TestPosition_String(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		pos  position.Position
		want string
	}{
		"zero position":  {position.New(0, 0), "1:1"},
		"line 10 col 29":  {position.New(9, 28), "10:29"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.pos.String())
		})
	}
}

func TestRange_Contains(t *testing.T) {
	t.Parallel()

	r := position.NewRange(position.New(1, 0), position.New(1, 10))
	assert.True(t, r.Contains(position.New(1, 0)))
	assert.True(t, r.Contains(position.New(1, 10)))
	assert.True(t, r.Contains(position.New(1, 5)))
	assert.False(t, r.Contains(position.New(0, 9)))
	assert.False(t, r.Contains(position.New(1, 11)))
}

func TestRange_String(t *testing.T) {
	t.Parallel()

	r := position.NewRange(position.New(2, 3), position.New(5, 8))
	assert.Equal(t, "3:4-6:9", r.String())
}
