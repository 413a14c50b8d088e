package construct_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvstl/allocator"
	"github.com/katalvlaran/lvstl/construct"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRefused = errors.New("refused")

// counter has a non-zero default state.
type counter struct{ N int }

func (c *counter) Init() error { c.N = 100; return nil }

// picky refuses default construction.
type picky struct{ ok bool }

func (p *picky) Init() error { return errRefused }

// buffer deep-copies its slice and refuses to copy when poisoned.
type buffer struct {
	data     []byte
	poisoned bool
}

func (b buffer) Copy() (buffer, error) {
	if b.poisoned {
		return buffer{}, errRefused
	}
	return buffer{data: append([]byte(nil), b.data...)}, nil
}

// resource records its teardown in a shared log.
type resource struct {
	name string
	log  *[]string
}

func (r *resource) Destroy() { *r.log = append(*r.log, r.name) }

func TestConstruct_Default(t *testing.T) {
	var i int = 42
	require.NoError(t, construct.Construct(&i))
	assert.Equal(t, 0, i, "plain types default to zero")

	var c counter
	require.NoError(t, construct.Construct(&c))
	assert.Equal(t, 100, c.N, "Initializer hook runs")

	p := picky{ok: true}
	err := construct.Construct(&p)
	assert.ErrorIs(t, err, construct.ErrConstruct)
	assert.ErrorIs(t, err, errRefused)
	assert.Equal(t, picky{}, p, "failed construction leaves zero storage")
}

func TestConstructCopy(t *testing.T) {
	var a allocator.Raw[buffer]
	p := a.Allocate()
	defer a.Deallocate(p)

	src := buffer{data: []byte("abc")}
	require.NoError(t, construct.ConstructCopy(p, src))
	assert.Equal(t, src.data, p.data)
	p.data[0] = 'z'
	assert.Equal(t, byte('a'), src.data[0], "Copier produced an independent copy")

	err := construct.ConstructCopy(p, buffer{poisoned: true})
	assert.ErrorIs(t, err, construct.ErrConstruct)
	assert.ErrorIs(t, err, errRefused)
	assert.Nil(t, p.data, "failed copy leaves zero storage")

	var s string
	require.NoError(t, construct.ConstructCopy(&s, "plain"))
	assert.Equal(t, "plain", s)
}

func TestConstructWith(t *testing.T) {
	var v [2]int
	require.NoError(t, construct.ConstructWith(&v, func() ([2]int, error) { return [2]int{1, 2}, nil }))
	assert.Equal(t, [2]int{1, 2}, v)

	err := construct.ConstructWith(&v, func() ([2]int, error) { return [2]int{9, 9}, errRefused })
	assert.ErrorIs(t, err, errRefused)
	assert.Equal(t, [2]int{}, v)

	var c counter
	require.NoError(t, construct.ConstructWith[counter](&c, nil), "nil ctor defaults")
	assert.Equal(t, 100, c.N)
}

func TestDestroy(t *testing.T) {
	var log []string

	r := resource{name: "a", log: &log}
	construct.Destroy(&r)
	assert.Equal(t, []string{"a"}, log)

	var iface any = &resource{name: "b", log: &log}
	construct.Destroy(&iface)
	assert.Equal(t, []string{"a", "b"}, log, "interface payloads dispatch on the dynamic value")

	assert.NotPanics(t, func() {
		construct.Destroy[resource](nil)
		n := 5
		construct.Destroy(&n)
	})
}

func TestDestroyRange(t *testing.T) {
	var log []string
	rs := []resource{{"x", &log}, {"y", &log}, {"z", &log}}
	construct.DestroyRange(rs[:2])
	assert.Equal(t, []string{"x", "y"}, log, "half-open range only")

	ints := []int{1, 2, 3}
	construct.DestroyRange(ints)
	assert.Equal(t, []int{1, 2, 3}, ints, "trivial types are left untouched")
}
