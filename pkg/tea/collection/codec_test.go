package collection

import (
	"bytes"
	"errors"
	"math"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/tea/pkg/tea"
)

type point struct {
	X, Y int
	Tags []string
}

type secret struct {
	hidden int
}

func (s *secret) CloneValue() (*secret, error) {
	if s.hidden < 0 {
		return nil, errors.New("negative secret")
	}
	return &secret{hidden: s.hidden}, nil
}

func TestToJSON_ArrayOfPairs(t *testing.T) {
	t.Parallel()
	c := FromEntries(tea.PairOf("foo", map[string]int{"bar": 1}))

	text := c.ToJSON()
	require.True(t, text.IsOk(), "unexpected error: %v", text.Err())
	assert.JSONEq(t, `[["foo",{"bar":1}]]`, text.Unwrap())

	back := FromJSON[string, map[string]int](text.Unwrap())
	require.True(t, back.IsOk(), "unexpected error: %v", back.Err())
	assert.Equal(t, c.Entries(), back.Unwrap().Entries())
}

func TestToJSON_KeepsOrderAndNonStringKeys(t *testing.T) {
	t.Parallel()
	c := New[int, point]().
		Set(3, point{X: 1}).
		Set(1, point{Y: 2, Tags: []string{"t"}})

	text := c.ToJSON().Unwrap()
	assert.Equal(t, `[[3,{"X":1,"Y":0,"Tags":null}],[1,{"X":0,"Y":2,"Tags":["t"]}]]`, text)

	back := FromJSON[int, point](text).Unwrap()
	assert.Equal(t, []int{3, 1}, collectKeys(back))
	assert.Equal(t, c.Entries(), back.Entries())

	assert.Equal(t, "[]", New[string, int]().ToJSON().Unwrap())
}

func TestToJSON_UnencodableValue(t *testing.T) {
	t.Parallel()
	c := FromEntries(tea.PairOf("ok", 1.5), tea.PairOf("nan", math.NaN()))

	res := c.ToJSON()
	require.True(t, res.IsErr())
	assert.ErrorIs(t, res.UnwrapErr(), ErrEncode)

	var encErr *EncodeError
	require.ErrorAs(t, res.UnwrapErr(), &encErr)
	assert.Equal(t, c.Id(), encErr.Collection)
}

func TestFromJSON_Malformed(t *testing.T) {
	t.Parallel()
	for _, text := range []string{
		`{"a":1}`,
		`[["a"]]`,
		`[["a",1,2]]`,
		`[[1,1]]`,
		`[["a","x"]]`,
		`not json`,
	} {
		res := FromJSON[string, int](text)
		if !res.IsErr() {
			t.Fatalf("expected decode failure for %s, got %v", text, res)
		}
		assert.ErrorIs(t, res.UnwrapErr(), ErrDecode, text)
	}
}

func TestClone_DeepCopy(t *testing.T) {
	t.Parallel()
	orig := FromEntries(
		tea.PairOf("p", &point{X: 1, Tags: []string{"a"}}),
	)

	res := orig.Clone()
	require.True(t, res.IsOk(), "unexpected error: %v", res.Err())
	cp := res.Unwrap()

	assert.NotEqual(t, orig.Id(), cp.Id())
	assert.Equal(t, orig.Entries(), cp.Entries())

	cp.Get("p").Unwrap().Tags[0] = "changed"
	cp.Get("p").Unwrap().X = 42
	assert.Equal(t, "a", orig.Get("p").Unwrap().Tags[0])
	assert.Equal(t, 1, orig.Get("p").Unwrap().X)
}

func TestClone_InterfaceValuesKeepDynamicType(t *testing.T) {
	t.Parallel()
	orig := FromEntries[string, any](
		tea.PairOf[string, any]("int", 7),
		tea.PairOf[string, any]("str", "s"),
		tea.PairOf[string, any]("nil", nil),
	)

	cp := orig.Clone().Unwrap()
	assert.Equal(t, orig.Entries(), cp.Entries())
	assert.IsType(t, 7, cp.Get("int").Unwrap())
}

func TestClone_UsesCloner(t *testing.T) {
	t.Parallel()
	orig := FromEntries(tea.PairOf("s", &secret{hidden: 5}))

	cp := orig.Clone().Unwrap()
	got := cp.Get("s").Unwrap()
	assert.Equal(t, 5, got.hidden)
	assert.NotSame(t, orig.Get("s").Unwrap(), got)

	bad := FromEntries(tea.PairOf("s", &secret{hidden: -1}))
	res := bad.Clone()
	require.True(t, res.IsErr())
	var cloneErr *CloneError
	require.ErrorAs(t, res.UnwrapErr(), &cloneErr)
	assert.EqualError(t, cloneErr.Err, "negative secret")
}

func TestClone_FailureIsErrNotPanic(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := log.New()
	logger.SetOutput(&buf)
	logger.SetLevel(log.DebugLevel)

	c := NewWithOptions[string](Options[chan int]{Logger: logger})
	c.Set("ch", make(chan int))

	res := c.Clone()
	require.True(t, res.IsErr())
	assert.ErrorIs(t, res.UnwrapErr(), ErrClone)
	assert.NotErrorIs(t, res.UnwrapErr(), ErrEncode)

	var cloneErr *CloneError
	require.ErrorAs(t, res.UnwrapErr(), &cloneErr)
	assert.Equal(t, "ch", cloneErr.Key)
	assert.Equal(t, c.Id(), cloneErr.Collection)

	assert.Contains(t, buf.String(), "Clone: failed to copy value")
	assert.Contains(t, buf.String(), c.Id().String())
}

type hiddenPoint struct {
	x, y int
}

type cell struct {
	Next *cell
}

func TestClone_UnexportedFieldsFail(t *testing.T) {
	t.Parallel()
	c := FromEntries(tea.PairOf("p", hiddenPoint{1, 2}))

	res := c.Clone()
	require.True(t, res.IsErr(), "copy would lose unexported fields: %v", res)
	assert.ErrorIs(t, res.UnwrapErr(), ErrClone)
	assert.ErrorContains(t, res.UnwrapErr(), "unexported field x")
	assert.Equal(t, tea.Some(hiddenPoint{1, 2}), c.Get("p"))
}

func TestClone_NestedNumbersMustSurvive(t *testing.T) {
	t.Parallel()
	ints := FromEntries(tea.PairOf("m", map[string]any{"n": 1}))
	res := ints.Clone()
	require.True(t, res.IsErr(), "int inside any would come back as float64")
	assert.ErrorIs(t, res.UnwrapErr(), ErrClone)
	assert.ErrorContains(t, res.UnwrapErr(), "differs from the original")

	floats := FromEntries(tea.PairOf("m", map[string]any{"n": 1.0, "s": []any{"x", true}}))
	cp := floats.Clone()
	require.True(t, cp.IsOk(), "unexpected error: %v", cp.Err())
	assert.Equal(t, floats.Entries(), cp.Unwrap().Entries())
}

func TestClone_CyclicValueFails(t *testing.T) {
	t.Parallel()
	loop := &cell{}
	loop.Next = loop

	res := FromEntries(tea.PairOf("loop", loop)).Clone()
	require.True(t, res.IsErr())
	assert.ErrorIs(t, res.UnwrapErr(), ErrClone)
	assert.ErrorContains(t, res.UnwrapErr(), "cyclic")
}

func TestFromJSON_InterfaceKeys(t *testing.T) {
	t.Parallel()
	c := New[any, int]().Set(1, 10).Set("s", 20).Set(1.5, 30)

	text := c.ToJSON().Unwrap()
	assert.Equal(t, `[[1,10],["s",20],[1.5,30]]`, text)

	back := FromJSON[any, int](text)
	require.True(t, back.IsOk(), "unexpected error: %v", back.Err())
	assert.Equal(t, tea.Some(10), back.Unwrap().Get(1))
	assert.Equal(t, tea.Some(20), back.Unwrap().Get("s"))
	assert.Equal(t, tea.Some(30), back.Unwrap().Get(1.5))
}

func collectKeys[K comparable, V any](c *Collection[K, V]) []K {
	var out []K
	for k := range c.Keys() {
		out = append(out, k)
	}
	return out
}
