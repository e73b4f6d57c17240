package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstString(t *testing.T) {
	values := map[string]any{"a": "", "b": "  hello  ", "n": 2, "f": 2.5}

	assert.Equal(t, "hello", firstString(values, "a", "b"))
	assert.Equal(t, "2", firstString(values, "n"))
	assert.Equal(t, "2.5", firstString(values, "f"))
	assert.Equal(t, "", firstString(values, "missing"))
}

func TestFirstNumber(t *testing.T) {
	values := map[string]any{"i": 5, "f": 2.5, "s": "14.5", "bad": "nope"}

	n, ok := firstNumber(values, "i")
	assert.True(t, ok)
	assert.Equal(t, 5.0, n)

	n, ok = firstNumber(values, "s")
	assert.True(t, ok)
	assert.Equal(t, 14.5, n)

	_, ok = firstNumber(values, "bad")
	assert.False(t, ok)

	// First parseable key wins.
	n, _ = firstNumber(values, "bad", "f")
	assert.Equal(t, 2.5, n)
}

func TestStringList(t *testing.T) {
	assert.Equal(t, []string{"milk", "eggs"}, stringList(map[string]any{"items": []string{"milk", "eggs"}}, "items"))
	assert.Equal(t, []string{"milk", "eggs"}, stringList(map[string]any{"items": []any{"milk", " eggs "}}, "items"))
	assert.Equal(t, []string{"milk"}, stringList(map[string]any{"items": "milk"}, "items"))
	assert.Nil(t, stringList(map[string]any{}, "items"))
}

func TestUnwrap(t *testing.T) {
	values := map[string]any{
		"shopping": map[string]any{"item_name": "milk"},
		"quantity": "2 l",
	}

	flat := unwrap(values, "shopping")
	assert.Equal(t, "milk", flat["item_name"])
	assert.Equal(t, "2 l", flat["quantity"])
	assert.NotContains(t, flat, "shopping")

	// No nesting: same map comes back.
	plain := map[string]any{"item_name": "milk"}
	assert.Equal(t, plain, unwrap(plain, "shopping"))
}

func TestUnwrapNestedWins(t *testing.T) {
	values := map[string]any{
		"item_name": "outer",
		"shopping":  map[string]any{"item_name": "inner"},
	}
	flat := unwrap(values, "shopping")
	assert.Equal(t, "inner", flat["item_name"])
}

func TestBoolValue(t *testing.T) {
	tests := []struct {
		in          any
		want, found bool
	}{
		{true, true, true},
		{false, false, true},
		{"enabled", true, true},
		{"off", false, true},
		{"maybe", false, false},
		{nil, false, false},
	}
	for _, tt := range tests {
		got, found := boolValue(map[string]any{"enabled": tt.in}, "enabled")
		assert.Equal(t, tt.want, got, "input %v", tt.in)
		assert.Equal(t, tt.found, found, "input %v", tt.in)
	}
}
