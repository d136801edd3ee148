package option

import (
	"errors"
)

// Errors returned from matching.
var (
	ErrNoSuchMatchPattern    = errors.New("no such match pattern")
	ErrCannotMatchUnsetValue = errors.New("cannot match unset value")
	ErrCannotMatchValue      = errors.New("cannot match value")
)

// MaybeOption labels the symbolic cases of a match.
type MaybeOption int

// None matches unset values, Some matches any set value. Error catches an
// error produced by the case taken.
const (
	None MaybeOption = iota
	Some
	Error
)

// Maybe is a set of cases distinguishing set from unset values.
type Maybe map[MaybeOption]interface{}

// Of is a set of cases for concrete values. If no concrete value equals
// the option, matching falls back to the symbolic cases None and Some.
type Of map[interface{}]interface{}

// Type is implemented by option types.
type Type interface {
	Match(choices interface{}) (interface{}, error)
	Equals(other interface{}) bool
	IsNone() bool
}

// Match matches o against a set of cases of type Of or Maybe.
// Option types implement their Match method by calling this function.
//
// Case values may be plain values or functions of type
// `func(interface{}) (interface{}, error)` or
// `func(interface{}, MaybeOption) (interface{}, error)`, which are called
// with o.
func Match(o Type, choices interface{}) (interface{}, error) {
	switch c := choices.(type) {
	case Of:
		return c.Match(o)
	case Maybe:
		return c.Match(o)
	}
	return nil, ErrNoSuchMatchPattern
}

// Match selects the case for o and evaluates it.
func (of Of) Match(o Type) (interface{}, error) {
	symbolic := func(label MaybeOption) (interface{}, bool) {
		c, ok := of[label]
		return c, ok
	}
	if !o.IsNone() {
		for k, c := range of {
			if _, isLabel := k.(MaybeOption); isLabel || !o.Equals(k) {
				continue
			}
			tracer().Debugf("option %v matched concrete case %v", o, k)
			v, err := evaluate(c, o, Some)
			return catch(v, err, o, symbolic)
		}
	}
	return matchSymbolic(o, symbolic)
}

// Match selects None or Some for o and evaluates it.
func (maybe Maybe) Match(o Type) (interface{}, error) {
	return matchSymbolic(o, func(label MaybeOption) (interface{}, bool) {
		c, ok := maybe[label]
		return c, ok
	})
}

func matchSymbolic(o Type, symbolic func(MaybeOption) (interface{}, bool)) (interface{}, error) {
	if o.IsNone() {
		c, ok := symbolic(None)
		if !ok {
			return nil, ErrCannotMatchUnsetValue
		}
		return evaluate(c, o, None)
	}
	c, ok := symbolic(Some)
	if !ok {
		return catch(nil, ErrCannotMatchValue, o, symbolic)
	}
	v, err := evaluate(c, o, Some)
	return catch(v, err, o, symbolic)
}

// catch hands an error to the Error case, if present.
func catch(v interface{}, err error, o Type, symbolic func(MaybeOption) (interface{}, bool)) (interface{}, error) {
	if err == nil {
		return v, nil
	}
	tracer().Debugf("option %v: %v", o, err)
	if c, ok := symbolic(Error); ok {
		return evaluate(c, o, Error)
	}
	return v, err
}

func evaluate(c interface{}, o Type, label MaybeOption) (interface{}, error) {
	switch f := c.(type) {
	case func(interface{}, MaybeOption) (interface{}, error):
		return f(o, label)
	case func(interface{}) (interface{}, error):
		return f(o)
	}
	return c, nil
}

// Fail creates a case which lets a match fail with err. Unless an Error
// case is present, err is returned from Match.
//
//     _, err := o.Match(option.Of{
//          option.None: …,
//          99:          option.Fail(errors.New("99 is illegal")),
//          option.Some: …,
//     })
//
func Fail(err error) func(interface{}) (interface{}, error) {
	return func(interface{}) (interface{}, error) {
		return nil, err
	}
}

// Safe drops the error of a match.
//
//     w := option.Safe(x.Match(…)).(dimen.Dimen)
//
func Safe(x interface{}, err error) interface{} {
	return x
}

// --- Reference options -----------------------------------------------------

// RefT is an option holding an arbitrary value. It is unset if it holds nil.
type RefT struct {
	ref interface{}
}

// Something creates an option holding x.
func Something(x interface{}) RefT {
	return RefT{ref: x}
}

// Nothing creates an unset option.
func Nothing() RefT {
	return RefT{}
}

// Unwrap returns the value held by o, or nil.
func (o RefT) Unwrap() interface{} { return o.ref }

// IsNone is part of interface Type.
func (o RefT) IsNone() bool { return o.ref == nil }

// Equals is part of interface Type.
func (o RefT) Equals(other interface{}) bool { return o.ref == other }

// Match is part of interface Type.
func (o RefT) Match(choices interface{}) (interface{}, error) {
	return Match(o, choices)
}

var _ Type = RefT{}
