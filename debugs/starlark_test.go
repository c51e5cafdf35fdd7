package debugs

import (
	"testing"

	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	cells := []byte{0, 1, 255}
	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "+-", starlark.String("+-")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(42), starlark.MakeInt(42)},
		{"uint8", uint8(7), starlark.MakeInt(7)},
		{"cells", cells, starlark.NewList([]starlark.Value{
			starlark.MakeInt(0), starlark.MakeInt(1), starlark.MakeInt(255),
		})},
		{"pointer", &cells, starlark.NewList([]starlark.Value{
			starlark.MakeInt(0), starlark.MakeInt(1), starlark.MakeInt(255),
		})},
		{"map", map[string]int{"depth": 2}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("depth"), starlark.MakeInt(2))
			return d
		}()},
		{"nil pointer", (*int)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.name, tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("got %v, want %v", actual, tc.expected)
			}
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("should panic")
			}
		}()
		toStarlarkValue("chan", make(chan bool))
	})
}
