package nonempty_test

import (
	"testing"

	"github.com/amp-labs/amp-nonempty/empty"
	"github.com/amp-labs/amp-nonempty/nonempty"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Point struct {
	X, Y uint32
}

func (p Point) IsEmpty() bool {
	return p.X == 0 && p.Y == 0
}

func TestFrom(t *testing.T) {
	t.Parallel()

	t.Run("non-empty string", func(t *testing.T) {
		t.Parallel()

		value, ok := nonempty.From("hello")
		require.True(t, ok)
		assert.False(t, value.IsEmpty())
		assert.Equal(t, "hello", value.Get())
	})

	t.Run("empty string", func(t *testing.T) {
		t.Parallel()

		value, ok := nonempty.From("")
		assert.False(t, ok)
		assert.True(t, value.IsEmpty())
		assert.Empty(t, value.Get())
	})

	t.Run("empty custom type", func(t *testing.T) {
		t.Parallel()

		_, ok := nonempty.From(Point{0, 0})
		assert.False(t, ok)
	})

	t.Run("non-empty custom type", func(t *testing.T) {
		t.Parallel()

		value, ok := nonempty.From(Point{3, 4})
		require.True(t, ok)
		assert.Equal(t, Point{3, 4}, value.Take())
	})

	t.Run("numbers", func(t *testing.T) {
		t.Parallel()

		_, ok := nonempty.From(0)
		assert.False(t, ok)

		_, ok = nonempty.From(0.0)
		assert.False(t, ok)

		n, ok := nonempty.From(int64(-7))
		require.True(t, ok)
		assert.Equal(t, int64(-7), n.Get())
	})

	t.Run("collections", func(t *testing.T) {
		t.Parallel()

		_, ok := nonempty.From([]int{})
		assert.False(t, ok)

		_, ok = nonempty.From(map[string]int(nil))
		assert.False(t, ok)

		list, ok := nonempty.From([]int{1, 2})
		require.True(t, ok)
		assert.Equal(t, []int{1, 2}, list.Get())
	})

	t.Run("uuid", func(t *testing.T) {
		t.Parallel()

		_, ok := nonempty.From(uuid.Nil)
		assert.False(t, ok)

		id := uuid.New()
		wrapped, ok := nonempty.From(id)
		require.True(t, ok)
		assert.Equal(t, id, wrapped.Get())
	})
}

func TestFromFunc(t *testing.T) {
	t.Parallel()

	t.Run("custom predicate", func(t *testing.T) {
		t.Parallel()

		_, ok := nonempty.FromFunc("   ", empty.Blank[string])
		assert.False(t, ok)

		// The default predicate only looks at length.
		spaces, ok := nonempty.From("   ")
		require.True(t, ok)
		assert.Equal(t, "   ", spaces.Get())
	})

	t.Run("predicate decides alone", func(t *testing.T) {
		t.Parallel()

		zero, ok := nonempty.FromFunc(0, func(int) bool { return false })
		require.True(t, ok)
		assert.Equal(t, 0, zero.Get())
		assert.False(t, zero.IsEmpty())
	})

	t.Run("nil predicate falls back to Is", func(t *testing.T) {
		t.Parallel()

		_, ok := nonempty.FromFunc("", nil)
		assert.False(t, ok)

		value, ok := nonempty.FromFunc("x", nil)
		require.True(t, ok)
		assert.Equal(t, "x", value.Get())
	})
}

func TestFromChecker(t *testing.T) {
	t.Parallel()

	_, ok := nonempty.FromChecker(Point{})
	assert.False(t, ok)

	value, ok := nonempty.FromChecker(Point{X: 1})
	require.True(t, ok)
	assert.Equal(t, Point{X: 1}, value.Get())

	_, ok = nonempty.FromChecker[*Point](nil)
	assert.False(t, ok)
}

// quota declares IsEmpty on its pointer.
type quota struct {
	limit int
}

func (q *quota) IsEmpty() bool { return q.limit < 10 }

func TestFrom_PointerReceiverChecker(t *testing.T) {
	t.Parallel()

	_, ok := nonempty.From(quota{limit: 3})
	assert.False(t, ok)

	value, ok := nonempty.From(quota{limit: 12})
	require.True(t, ok)
	assert.Equal(t, 12, value.Get().limit)
}

func TestFromPtr(t *testing.T) {
	t.Parallel()

	_, ok := nonempty.FromPtr[string](nil)
	assert.False(t, ok)

	blank := ""
	_, ok = nonempty.FromPtr(&blank)
	assert.False(t, ok)

	name := "svc"
	value, ok := nonempty.FromPtr(&name)
	require.True(t, ok)
	assert.Equal(t, "svc", value.Get())

	// The payload is a copy; changing the original does not reach it.
	name = ""
	assert.Equal(t, "svc", value.Get())
}

func TestGet_DoesNotConsume(t *testing.T) {
	t.Parallel()

	value, ok := nonempty.From("hello")
	require.True(t, ok)

	for range 3 {
		assert.Equal(t, "hello", value.Get())
	}

	assert.False(t, value.IsEmpty())
}

func TestTake(t *testing.T) {
	t.Parallel()

	value, ok := nonempty.From("hello")
	require.True(t, ok)

	assert.Equal(t, "hello", value.Take())
	assert.True(t, value.IsEmpty())
	assert.Empty(t, value.Take())
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{"a", "hello", " ", "ünïcödé"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			value, ok := nonempty.From(input)
			require.True(t, ok)
			assert.Equal(t, input, value.Get())
			assert.Equal(t, input, value.Take())
		})
	}
}

func TestRevalidateAfterMutation(t *testing.T) {
	t.Parallel()

	value, ok := nonempty.From([]string{"a", "b"})
	require.True(t, ok)

	items := value.Take()
	items = items[:0]

	_, ok = nonempty.From(items)
	assert.False(t, ok)
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var value nonempty.String

	assert.True(t, value.IsEmpty())
	assert.True(t, empty.Is(value))
	assert.Empty(t, value.Get())
	assert.Equal(t, "<empty>", value.String())

	// A zero wrapper is itself empty, so it can't be wrapped.
	_, ok := nonempty.From(value)
	assert.False(t, ok)
}

func TestNested(t *testing.T) {
	t.Parallel()

	inner, ok := nonempty.From("x")
	require.True(t, ok)

	outer, ok := nonempty.From(inner)
	require.True(t, ok)
	assert.Equal(t, "x", outer.Get().Get())
}

func TestString(t *testing.T) {
	t.Parallel()

	text, ok := nonempty.From("hello")
	require.True(t, ok)
	assert.Equal(t, "hello", text.String())

	point, ok := nonempty.From(Point{3, 4})
	require.True(t, ok)
	assert.Equal(t, "{3 4}", point.String())
}

func TestAliases(t *testing.T) {
	t.Parallel()

	var (
		s   nonempty.String
		i   nonempty.Int
		f   nonempty.Float64
		id  nonempty.UUID
		sl  nonempty.Slice[int]
		m   nonempty.Map[string, bool]
		ok1 bool
	)

	s, ok1 = nonempty.From("a")
	assert.True(t, ok1)
	assert.Equal(t, "a", s.Get())

	i, ok1 = nonempty.From(1)
	assert.True(t, ok1)
	assert.Equal(t, 1, i.Get())

	f, ok1 = nonempty.From(2.5)
	assert.True(t, ok1)
	assert.InDelta(t, 2.5, f.Get(), 0)

	id, ok1 = nonempty.From(uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.True(t, ok1)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", id.String())

	sl, ok1 = nonempty.From([]int{1})
	assert.True(t, ok1)
	assert.Len(t, sl.Get(), 1)

	m, ok1 = nonempty.From(map[string]bool{"k": true})
	assert.True(t, ok1)
	assert.True(t, m.Get()["k"])
}
