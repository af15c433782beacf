package baseerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	root := New("root")
	child := root.New("child")
	grandchild := child.New("grandchild")

	assert.True(t, errors.Is(grandchild, child))
	assert.True(t, errors.Is(grandchild, root))
	assert.False(t, errors.Is(child, grandchild))
	assert.False(t, errors.Is(root, child))
}

func TestError_Message(t *testing.T) {
	root := New("root")
	child := root.New("child")

	assert.Equal(t, "root", root.Error())
	assert.Equal(t, "root: child", child.Error())
}

func TestError_Wrapped(t *testing.T) {
	root := New("root")
	child := root.New("child")
	err := fmt.Errorf("%w: details", child)

	assert.True(t, errors.Is(err, root))
	assert.Equal(t, "root: child: details", err.Error())
}
