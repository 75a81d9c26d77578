package container

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type greeter interface {
	Greet() string
}

type english struct{}

func (english) Greet() string { return "hello" }

func TestProvideResolve(t *testing.T) {
	key := NewKey[greeter]("greeter")
	c := New()

	require.NoError(t, Provide[greeter](c, key, english{}))
	assert.True(t, Has(c, key))

	g, err := Resolve(c, key)
	require.NoError(t, err)
	assert.Equal(t, "hello", g.Greet())
}

func TestResolveMissing(t *testing.T) {
	c := New()
	key := NewKey[int]("answer")

	v, err := Resolve(c, key)
	assert.ErrorIs(t, err, ErrNotRegistered)
	assert.Contains(t, err.Error(), "answer")
	assert.Zero(t, v)
	assert.False(t, Has(c, key))

	_, err = Resolve(c, Key[int]{})
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestKeysWithSameNameAreDistinct(t *testing.T) {
	c := New()
	a := NewKey[string]("name")
	b := NewKey[string]("name")

	require.NoError(t, Provide(c, a, "a"))
	require.NoError(t, Provide(c, b, "b"))

	va, _ := Resolve(c, a)
	vb, _ := Resolve(c, b)
	assert.Equal(t, "a", va)
	assert.Equal(t, "b", vb)
	assert.Equal(t, "name", a.Name())
	assert.Empty(t, Key[string]{}.Name())
}

func TestProvideTwice(t *testing.T) {
	c := New()
	key := NewKey[int]("n")
	require.NoError(t, Provide(c, key, 1))
	assert.ErrorIs(t, Provide(c, key, 2), ErrAlreadyRegistered)
	assert.Error(t, Provide(c, Key[int]{}, 3))
}

func TestProvideFactoryRunsOnce(t *testing.T) {
	c := New()
	dep := NewKey[int]("base")
	key := NewKey[string]("derived")
	require.NoError(t, Provide(c, dep, 21))

	calls := 0
	require.NoError(t, ProvideFactory(c, key, func(c *Container) (string, error) {
		calls++
		n, err := Resolve(c, dep)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n + 1), nil
	}))

	var g errgroup.Group
	for i := 0; i < 10; i++ {
		g.Go(func() error {
			v, err := Resolve(c, key)
			if err != nil {
				return err
			}
			if v != "22" {
				return fmt.Errorf("resolved %q", v)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 1, calls)
}

func TestProvideFactoryError(t *testing.T) {
	c := New()
	boom := errors.New("boom")
	key := NewKey[int]("broken")
	require.NoError(t, ProvideFactory(c, key, func(*Container) (int, error) { return 0, boom }))

	_, err := Resolve(c, key)
	assert.ErrorIs(t, err, boom)
	_, err = Resolve(c, key)
	assert.ErrorIs(t, err, boom)
}
