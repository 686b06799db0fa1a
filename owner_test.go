package paramlog_test

import (
	"strings"
	"testing"

	assertions "github.com/stretchr/testify/assert"

	"github.com/shaelmaar/paramlog"
)

type Circle struct{}

type named string

func (n named) LogName() string { return string(n) }

func TestOwnerName(t *testing.T) {
	assert := assertions.New(t)

	assert.Equal("", paramlog.OwnerName(nil))
	assert.Equal("Circle", paramlog.OwnerName(Circle{}))
	assert.Equal("Circle", paramlog.OwnerName(&Circle{}))
	assert.Equal("custom", paramlog.OwnerName(named("custom")))
	assert.Equal("Square", paramlog.OwnerName((*Square)(nil)))
	assert.Equal("Square", paramlog.OwnerName(&Square{}))
	assert.Equal("Square", paramlog.OwnerName(Square{}))
	assert.Equal("named", paramlog.OwnerName(named("")))
}

func TestParameterizedNames(t *testing.T) {
	assert := assertions.New(t)

	a := paramlog.NewParameterized("Triangle")
	b := paramlog.NewParameterized("Triangle")
	c := paramlog.NewParameterized("Hexagon")

	assert.Equal("Triangle00001", a.LogName())
	assert.Equal("Triangle00002", b.LogName())
	assert.True(strings.HasPrefix(c.LogName(), "Hexagon"))
	assert.Len(c.LogName(), len("Hexagon")+5)

	sq := newSquare()
	assert.Equal(sq.LogName(), paramlog.OwnerName(sq))
}
