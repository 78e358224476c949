package document

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ved/errs"
)

func TestParse(t *testing.T) {
	doc, err := Parse([]byte("2,1\n0=FF0000\n0,\n"))
	require.NoError(t, err)
	require.Equal(t, 2, doc.Width)
	require.Equal(t, 1, doc.Height)
	require.Equal(t, 1, doc.Dict.Len())
	require.Equal(t, []string{"0,"}, doc.Rows)
}

func TestParse_EmptyDictionaryLine(t *testing.T) {
	doc, err := Parse([]byte("2,1\n\nFF0000,00FF00\n"))
	require.NoError(t, err)
	require.Equal(t, 0, doc.Dict.Len())
	require.Equal(t, []string{"FF0000,00FF00"}, doc.Rows)
}

func TestParse_EmptyImage(t *testing.T) {
	doc, err := Parse([]byte("0,0\n\n"))
	require.NoError(t, err)
	require.Equal(t, 0, doc.Width)
	require.Equal(t, 0, doc.Height)
	require.Empty(t, doc.Rows)
}

func TestParse_StructuralErrors(t *testing.T) {
	t.Run("empty data", func(t *testing.T) {
		_, err := Parse(nil)
		require.ErrorIs(t, err, errs.ErrMissingDimensions)
	})

	t.Run("missing dictionary line", func(t *testing.T) {
		_, err := Parse([]byte("2,2"))
		require.ErrorIs(t, err, errs.ErrMissingDictionary)
	})

	t.Run("dimensions not integers", func(t *testing.T) {
		_, err := Parse([]byte("a,b\n\n"))
		require.ErrorIs(t, err, errs.ErrInvalidDimensions)
	})

	t.Run("negative dimension", func(t *testing.T) {
		_, err := Parse([]byte("-1,5\n\n"))
		require.ErrorIs(t, err, errs.ErrInvalidDimensions)
	})

	t.Run("missing comma", func(t *testing.T) {
		_, err := Parse([]byte("12\n\n"))
		require.ErrorIs(t, err, errs.ErrInvalidDimensions)
	})

	t.Run("too many fields", func(t *testing.T) {
		_, err := Parse([]byte("1,2,3\n\n"))
		require.ErrorIs(t, err, errs.ErrInvalidDimensions)
	})
}

func TestMarshal(t *testing.T) {
	dict := NewDictionary()
	dict.Add("FF0000")

	doc := &Document{
		Width:  2,
		Height: 1,
		Dict:   dict,
		Rows:   []string{"0,"},
	}
	require.Equal(t, "2,1\n0=FF0000\n0,\n", string(doc.Marshal()))
}

func TestMarshal_EmptyImage(t *testing.T) {
	doc := &Document{Width: 0, Height: 0, Dict: NewDictionary()}
	require.Equal(t, "0,0\n\n", string(doc.Marshal()))
}

func TestMarshalParse_RoundTrip(t *testing.T) {
	dict := NewDictionary()
	dict.Add("AABBCC")
	dict.Add("112233")

	doc := &Document{
		Width:  3,
		Height: 2,
		Dict:   dict,
		Rows:   []string{"0,,1", "1,AABB00,"},
	}

	parsed, err := Parse(doc.Marshal())
	require.NoError(t, err)
	require.Equal(t, doc.Width, parsed.Width)
	require.Equal(t, doc.Height, parsed.Height)
	require.Equal(t, doc.Rows, parsed.Rows)
	require.Equal(t, doc.Dict.Entries(), parsed.Dict.Entries())
}
