package opdoc_test

import (
	"testing"

	"github.com/fwojciec/opdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnippetTypes(t *testing.T) {
	t.Parallel()

	t.Run("inverts categories", func(t *testing.T) {
		t.Parallel()

		types, err := opdoc.NewSnippetTypes(map[string][]string{
			"branch":  {"BRA", "BRL", "BCC"},
			"implied": {"CLC", "NOP"},
			"empty":   {},
		})

		require.NoError(t, err)
		assert.Equal(t, 5, types.Len())

		got, err := types.Classify("NOP")
		require.NoError(t, err)
		assert.Equal(t, "implied", got)
	})

	t.Run("keyword in several categories resolves deterministically", func(t *testing.T) {
		t.Parallel()

		categories := map[string][]string{
			"alpha": {"XCE"},
			"omega": {"XCE"},
			"mid":   {"XCE"},
		}

		for range 10 {
			types, err := opdoc.NewSnippetTypes(categories)
			require.NoError(t, err)
			got, err := types.Classify("XCE")
			require.NoError(t, err)
			assert.Equal(t, "omega", got)
		}
	})

	t.Run("rejects empty category name", func(t *testing.T) {
		t.Parallel()

		_, err := opdoc.NewSnippetTypes(map[string][]string{"": {"NOP"}})

		assert.Equal(t, opdoc.EINVALID, opdoc.ErrorCode(err))
	})
}

func TestSnippetTypes_Classify(t *testing.T) {
	t.Parallel()

	types, err := opdoc.NewSnippetTypes(map[string][]string{"arith": {"ADC"}})
	require.NoError(t, err)

	_, err = types.Classify("SBC")

	assert.Equal(t, opdoc.ENOTFOUND, opdoc.ErrorCode(err))
	assert.Equal(t, `could not retrieve snippet type for instruction "SBC"`, opdoc.ErrorMessage(err))
}
