package lineio

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/serdekh/list/list"
)

type ConvertTestSuite struct {
	suite.Suite
}

func (suite *ConvertTestSuite) SetupTest() {
}

func TestConvertTestSuite(t *testing.T) {
	suite.Run(t, new(ConvertTestSuite))
}

func (suite *ConvertTestSuite) strList(vals ...string) *list.List {
	l := list.New()
	for _, v := range vals {
		suite.Nil(l.PushBack(v))
	}
	return l
}

func (suite *ConvertTestSuite) TestConvertThenAggregate() {
	l := suite.strList("3\n", "1\n", "2\n")
	suite.Nil(ConvertStringsToInts(l))

	var max, min int
	suite.Nil(l.MaxInt(&max))
	suite.Nil(l.MinInt(&min))
	suite.Equal(3, max)
	suite.Equal(1, min)
}

func (suite *ConvertTestSuite) TestConvertZeroNeedsLiteralZero() {
	l := suite.strList("0\n")
	suite.Nil(ConvertStringsToInts(l))
	n, err := l.GetByIndex(0)
	suite.Nil(err)
	suite.Equal(0, n.Data())
}

func (suite *ConvertTestSuite) TestConvertKeepsGoingPastBadElement() {
	l := suite.strList("3\n", "abc\n", "2\n")
	err := ConvertStringsToInts(l)
	suite.True(errors.Is(err, list.ErrInvalidArgument))

	// partial conversion: the bad element keeps its string, the rest are
	// converted
	n, _ := l.GetByIndex(0)
	suite.Equal(3, n.Data())
	n, _ = l.GetByIndex(1)
	suite.Equal("abc\n", n.Data())
	n, _ = l.GetByIndex(2)
	suite.Equal(2, n.Data())
}

func (suite *ConvertTestSuite) TestConvertNegativeAndSpaced() {
	l := suite.strList("  -41\n", "+7\n")
	suite.Nil(ConvertStringsToInts(l))
	n, _ := l.GetByIndex(0)
	suite.Equal(-41, n.Data())
	n, _ = l.GetByIndex(1)
	suite.Equal(7, n.Data())
}

func (suite *ConvertTestSuite) TestConvertNilHandle() {
	suite.True(errors.Is(ConvertStringsToInts(nil), list.ErrInvalidArgument))
}

func (suite *ConvertTestSuite) TestReadConvertRoundTrip() {
	r := NewReader(strings.NewReader("41\n7\n"))
	l, err := r.ReadLines(12, 2)
	suite.Nil(err)
	suite.Nil(ConvertStringsToInts(l))

	var max int
	suite.Nil(l.MaxInt(&max))
	suite.Equal(41, max)
	suite.Nil(l.Deallocate(list.Strong))
}
