package htmlayout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Evaluate(t *testing.T) {
	t.Run("should evaluate quoted strings with both quote styles", func(t *testing.T) {
		v, err := Evaluate(`"hello"`)
		require.NoError(t, err)
		assert.Equal(t, "hello", v)

		v, err = Evaluate(`'world'`)
		require.NoError(t, err)
		assert.Equal(t, "world", v)
	})

	t.Run("should decode escape sequences in strings", func(t *testing.T) {
		v, err := Evaluate(`"line\none\ttab \"q\" \x41é"`)
		require.NoError(t, err)
		assert.Equal(t, "line\none\ttab \"q\" Aé", v)
	})

	t.Run("should evaluate integers including signed and prefixed forms", func(t *testing.T) {
		for input, want := range map[string]int64{
			"42":   42,
			"-7":   -7,
			"+3":   3,
			"0xff": 255,
			"0o17": 15,
			"0b101": 5,
			"1_000": 1000,
		} {
			v, err := Evaluate(input)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, want, v, "input %q", input)
		}
	})

	t.Run("should evaluate floats", func(t *testing.T) {
		for input, want := range map[string]float64{
			"1.5":   1.5,
			"-0.25": -0.25,
			"2e3":   2000,
			"1.5e-2": 0.015,
		} {
			v, err := Evaluate(input)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, want, v, "input %q", input)
		}
	})

	t.Run("should evaluate booleans and null in both spellings", func(t *testing.T) {
		for input, want := range map[string]any{
			"True":  true,
			"true":  true,
			"False": false,
			"false": false,
		} {
			v, err := Evaluate(input)
			require.NoError(t, err)
			assert.Equal(t, want, v)
		}
		for _, input := range []string{"None", "null"} {
			v, err := Evaluate(input)
			require.NoError(t, err)
			assert.Nil(t, v)
		}
	})

	t.Run("should evaluate sequences preserving order", func(t *testing.T) {
		v, err := Evaluate(`["Red", "Blue"]`)
		require.NoError(t, err)
		assert.Equal(t, []any{"Red", "Blue"}, v)

		v, err = Evaluate(`(1, 2, 3)`)
		require.NoError(t, err)
		assert.Equal(t, []any{int64(1), int64(2), int64(3)}, v)

		v, err = Evaluate(`[1, 2,]`) // trailing comma
		require.NoError(t, err)
		assert.Equal(t, []any{int64(1), int64(2)}, v)

		v, err = Evaluate(`[]`)
		require.NoError(t, err)
		assert.Equal(t, []any{}, v)
	})

	t.Run("should evaluate mappings with string keys", func(t *testing.T) {
		v, err := Evaluate(`{"size": 10, "label": "big", "nested": [True, None]}`)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"size":   int64(10),
			"label":  "big",
			"nested": []any{true, nil},
		}, v)

		v, err = Evaluate(`{}`)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{}, v)
	})

	t.Run("should be pure", func(t *testing.T) {
		first, err := Evaluate(`{"a": [1, 2]}`)
		require.NoError(t, err)
		second, err := Evaluate(`{"a": [1, 2]}`)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("should reject function calls", func(t *testing.T) {
		_, err := Evaluate(`open("/etc/passwd")`)
		require.Error(t, err)
		var syntaxErr *LiteralSyntaxError
		require.ErrorAs(t, err, &syntaxErr)
	})

	t.Run("should reject bare names", func(t *testing.T) {
		_, err := Evaluate(`options`)
		var syntaxErr *LiteralSyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		assert.Contains(t, syntaxErr.Message, "names")
	})

	t.Run("should reject trailing content after a literal", func(t *testing.T) {
		_, err := Evaluate(`1 + 2`)
		var syntaxErr *LiteralSyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		assert.Equal(t, 2, syntaxErr.Offset)
	})

	t.Run("should reject unterminated input", func(t *testing.T) {
		for _, input := range []string{`"open`, `[1, 2`, `{"a": 1`, ``, `{1: "x"}`} {
			_, err := Evaluate(input)
			var syntaxErr *LiteralSyntaxError
			require.ErrorAs(t, err, &syntaxErr, "input %q", input)
		}
	})
}

func Test_ResolveName(t *testing.T) {
	scope := map[string]any{"colors": []any{"Red", "Blue"}}

	t.Run("should resolve a prefixed name from the scope", func(t *testing.T) {
		v, err := ResolveName("$colors", scope)
		require.NoError(t, err)
		assert.Equal(t, []any{"Red", "Blue"}, v)
	})

	t.Run("should fail without the required prefix", func(t *testing.T) {
		_, err := ResolveName("colors", scope)
		var nameErr *InvalidNameError
		require.ErrorAs(t, err, &nameErr)
		assert.Equal(t, "colors", nameErr.Name)
	})

	t.Run("should fail for a name missing from the scope", func(t *testing.T) {
		_, err := ResolveName("$theme", scope)
		var nameErr *InvalidNameError
		require.ErrorAs(t, err, &nameErr)
	})

	t.Run("should fail for an empty name", func(t *testing.T) {
		_, err := ResolveName("$", scope)
		var nameErr *InvalidNameError
		require.ErrorAs(t, err, &nameErr)
	})
}
