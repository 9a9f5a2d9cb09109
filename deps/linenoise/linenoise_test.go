package linenoise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompleter(t *testing.T) {
	c := Completer([]string{"ADD", "BUCKETS", "CLEAR", "CONTAINS", "COUNT"})
	assert.Equal(t, []string{"CONTAINS", "COUNT"}, c("co"))
	assert.Equal(t, []string{"ADD"}, c("A"))
	assert.Nil(t, c("add key"))
	assert.Nil(t, c("xyz"))
}
