package list

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DedupTestSuite struct {
	suite.Suite
}

func (suite *DedupTestSuite) SetupTest() {
}

func TestDedupTestSuite(t *testing.T) {
	suite.Run(t, new(DedupTestSuite))
}

func (suite *DedupTestSuite) intList(vals ...int) *List {
	l := New()
	for _, v := range vals {
		suite.Nil(l.PushBack(v))
	}
	return l
}

func (suite *DedupTestSuite) ints(l *List) []int {
	var out []int
	suite.Nil(l.ForEach(func(n *Node) {
		out = append(out, n.Data().(int))
	}))
	return out
}

func (suite *DedupTestSuite) TestRemoveDuplicateDropsLaterOccurrence() {
	l := suite.intList(5, 3, 5, 3)

	removed, err := l.RemoveDuplicate(Weak, Int)
	suite.Nil(err)
	suite.True(removed)
	suite.Equal([]int{5, 3, 3}, suite.ints(l))

	removed, err = l.RemoveDuplicate(Weak, Int)
	suite.Nil(err)
	suite.True(removed)
	suite.Equal([]int{5, 3}, suite.ints(l))

	removed, err = l.RemoveDuplicate(Weak, Int)
	suite.Nil(err)
	suite.False(removed)
}

func (suite *DedupTestSuite) TestRemoveDuplicatesKeepsFirstOccurrenceOrder() {
	l := suite.intList(1, 2, 1, 3, 2, 1)
	suite.Nil(l.RemoveDuplicates(Weak, Int))
	suite.Equal([]int{1, 2, 3}, suite.ints(l))
}

func (suite *DedupTestSuite) TestRemoveDuplicatesIdempotent() {
	l := suite.intList(4, 4, 4)
	suite.Nil(l.RemoveDuplicates(Weak, Int))
	suite.Equal([]int{4}, suite.ints(l))

	suite.Nil(l.RemoveDuplicates(Weak, Int))
	suite.Equal([]int{4}, suite.ints(l))
}

func (suite *DedupTestSuite) TestRemoveDuplicateNotImplemented() {
	l := suite.intList(1, 1)
	removed, err := l.RemoveDuplicate(Weak, Float)
	suite.True(errors.Is(err, ErrNotImplemented))
	suite.False(removed)
	suite.Equal([]int{1, 1}, suite.ints(l))
}

func (suite *DedupTestSuite) TestRemoveDuplicateStrongReleasesPayload() {
	l := suite.intList(9, 9)
	var freed int
	l.SetFreeMethod(func(interface{}) { freed++ })

	removed, err := l.RemoveDuplicate(Strong, Int)
	suite.Nil(err)
	suite.True(removed)
	suite.Equal(1, freed)
}
