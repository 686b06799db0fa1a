package paramlog

import (
	"fmt"
	"reflect"
	"sync"
)

// Namer is implemented by owners that know their own display name.
type Namer interface {
	LogName() string
}

// Parameterized gives an owner a display name made of its class name and a
// per-class instance counter, e.g. "Square00003". Embed it in framework
// objects to get owner-prefixed messages for free.
type Parameterized struct {
	name string
}

var instanceCounts = struct {
	sync.Mutex
	byClass map[string]int
}{byClass: make(map[string]int)}

// NewParameterized returns the next instance name for class.
func NewParameterized(class string) Parameterized {
	instanceCounts.Lock()
	instanceCounts.byClass[class]++
	n := instanceCounts.byClass[class]
	instanceCounts.Unlock()

	return Parameterized{name: fmt.Sprintf("%s%05d", class, n)}
}

// LogName implements Namer.
func (p Parameterized) LogName() string {
	return p.name
}

// OwnerName returns the display name of owner: LogName for a Namer when it is
// not empty, the dynamic type name otherwise, and "" for nil.
func OwnerName(owner any) string {
	if owner == nil {
		return ""
	}
	v := reflect.ValueOf(owner)
	if n, ok := owner.(Namer); ok && !(v.Kind() == reflect.Pointer && v.IsNil()) {
		if name := n.LogName(); name != "" {
			return name
		}
	}

	t := v.Type()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

func tag(loggerName string, owner any) string {
	name := OwnerName(owner)
	switch {
	case name == "":
		return loggerName + ": "
	case loggerName == "":
		return name + ": "
	default:
		return loggerName + "." + name + ": "
	}
}
