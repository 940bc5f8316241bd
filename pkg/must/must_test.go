package must_test

import (
	"regexp"
	"strconv"
	"testing"

	"go.llib.dev/sugarkit/pkg/must"

	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})

func ExampleMust() {
	must.Must(regexp.Compile(`^\w+$`))
}

func TestMust(t *testing.T) {
	t.Run("happy", func(t *testing.T) {
		expected := rnd.IntBetween(1, 42)
		got := must.Must(strconv.Atoi(strconv.Itoa(expected)))
		assert.Equal(t, expected, got)
	})
	t.Run("rainy", func(t *testing.T) {
		expectedErr := rnd.Error()
		pv := assert.Panic(t, func() {
			must.Must(0, expectedErr)
		})
		assert.Equal[any](t, expectedErr, pv)
	})
}

func TestMust2(t *testing.T) {
	t.Run("happy", func(t *testing.T) {
		a, b := must.Must2("foo", 42, nil)
		assert.Equal(t, "foo", a)
		assert.Equal(t, 42, b)
	})
	t.Run("rainy", func(t *testing.T) {
		expectedErr := rnd.Error()
		pv := assert.Panic(t, func() {
			must.Must2("foo", 42, expectedErr)
		})
		assert.Equal[any](t, expectedErr, pv)
	})
}

func TestMust3(t *testing.T) {
	t.Run("happy", func(t *testing.T) {
		a, b, c := must.Must3("foo", 42, true, nil)
		assert.Equal(t, "foo", a)
		assert.Equal(t, 42, b)
		assert.True(t, c)
	})
	t.Run("rainy", func(t *testing.T) {
		expectedErr := rnd.Error()
		pv := assert.Panic(t, func() {
			must.Must3("foo", 42, true, expectedErr)
		})
		assert.Equal[any](t, expectedErr, pv)
	})
}
