package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-webdom/webdom/dom"
)

// S5: classList.toggle semantics, including the optional force argument.
func TestClassListToggle(t *testing.T) {
	el := dom.NewElement("div")
	el.SetClassName("a b")

	result := el.ClassList().Toggle("b")

	assert.False(t, result)
	assert.Equal(t, "a", el.ClassName())

	result = el.ClassList().Toggle("c", true)

	assert.True(t, result)
	assert.Equal(t, "a c", el.ClassName())
}

func TestClassListAddSkipsDuplicates(t *testing.T) {
	el := dom.NewElement("div")
	el.SetClassName("a")

	el.ClassList().Add("a", "b", "b", "c")

	assert.Equal(t, "a b c", el.ClassName())
}

func TestClassListRemove(t *testing.T) {
	el := dom.NewElement("div")
	el.SetClassName("a b c")

	el.ClassList().Remove("b", "missing")

	assert.Equal(t, "a c", el.ClassName())
}

func TestClassListContainsAndLength(t *testing.T) {
	el := dom.NewElement("div")
	el.SetClassName("a b")
	cl := el.ClassList()

	assert.True(t, cl.Contains("a"))
	assert.False(t, cl.Contains("z"))
	assert.Equal(t, 2, cl.Length())
	assert.Equal(t, "a", cl.Item(0))
	assert.Equal(t, "", cl.Item(99))
}
