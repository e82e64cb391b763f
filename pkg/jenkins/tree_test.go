package jenkins

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreeLeaf(t *testing.T) {
	tree := NewTreeObject("name").Build()
	assert.Equal(t, "name", tree.String())
}

func TestTreeObjectWithFields(t *testing.T) {
	tree := NewTreeObject("builds").
		WithField("url").
		WithField("result").
		WithSubtree(NewTreeObject("actions").WithField("causes")).
		Build()

	assert.Equal(t, "builds[url,result,actions[causes]]", tree.String())
}

func TestTreeRootGroup(t *testing.T) {
	tree := NewTree().
		WithField("displayName").
		WithSubtree(
			NewTreeObject("lastBuild").
				WithField("number").
				WithField("duration").
				WithField("result"),
		).
		Build()

	assert.Equal(t, "displayName,lastBuild[number,duration,result]", tree.String())
}

func TestTreeRangeOnLeaf(t *testing.T) {
	tree := NewTreeObject("builds").WithRange(0, 10).Build()
	assert.Equal(t, "builds{0,10}", tree.String())
}

func TestTreeRangeOnObject(t *testing.T) {
	tree := NewTreeObject("builds").
		WithField("url").
		WithRange(0, 5).
		Build()

	assert.Equal(t, "builds[url]{0,5}", tree.String())
}

func TestTreePreservesAppendOrder(t *testing.T) {
	tree := NewTreeObject("job").
		WithField("zulu").
		WithField("alpha").
		Build()

	assert.Equal(t, "job[zulu,alpha]", tree.String())
}
