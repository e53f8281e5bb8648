package hwy

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortOverride(t *testing.T) {
	defer SetAbortFunc(nil)

	var gotFile string
	var gotLine int
	var gotMsg string
	SetAbortFunc(func(file string, line int, msg string) {
		gotFile, gotLine, gotMsg = file, line, msg
	})

	// Abort never returns: with a handler installed that returns control,
	// it panics after the handler runs.
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "Abort must not return")
			assert.Contains(t, fmt.Sprint(r), "Test Abort")
		}()
		Abort("Test %s", "Abort")
	}()

	assert.Equal(t, "Test Abort", gotMsg)
	assert.True(t, strings.HasSuffix(gotFile, "abort_test.go"), "file = %q", gotFile)
	assert.Greater(t, gotLine, 0)
}

func TestAbortOverrideChain(t *testing.T) {
	defer SetAbortFunc(nil)

	var log []string
	first := func(file string, line int, msg string) {
		log = append(log, "first:"+msg)
	}
	second := func(file string, line int, msg string) {
		log = append(log, "second:"+msg)
	}

	// Installing over the default returns nil.
	require.Nil(t, SetAbortFunc(first))
	require.NotNil(t, GetAbortFunc())
	GetAbortFunc()("f", 1, "a")

	// Replacing returns the previous handler.
	prev := SetAbortFunc(second)
	require.NotNil(t, prev)
	prev("f", 2, "b")
	GetAbortFunc()("f", 3, "c")

	// Restoring the default returns the last handler.
	last := SetAbortFunc(nil)
	require.NotNil(t, last)
	last("f", 4, "d")
	assert.Nil(t, GetAbortFunc())

	assert.Equal(t, []string{"first:a", "first:b", "second:c", "second:d"}, log)
}

func TestSetAbortFuncConcurrent(t *testing.T) {
	defer SetAbortFunc(nil)

	// Concurrent swaps must never expose a torn handler: every Get either
	// returns nil or a callable function.
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if g%2 == 0 {
					SetAbortFunc(func(string, int, string) {})
				} else if h := GetAbortFunc(); h != nil {
					h("f", 0, "msg")
				}
			}
		}(g)
	}
	wg.Wait()
}
