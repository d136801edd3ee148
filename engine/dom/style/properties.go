package style

import (
	"sort"
	"strings"

	"github.com/derekparker/trie"
)

// PropertyMap maps property names to cascaded values.
//
// The zero value is not usable; create maps with NewPropertyMap.
// A nil *PropertyMap is treated as empty by all read methods.
type PropertyMap struct {
	m map[string]Value
}

// NewPropertyMap creates an empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{m: make(map[string]Value)}
}

// Set sets property key to value v, overwriting a previous value.
func (pm *PropertyMap) Set(key string, v Value) {
	pm.m[key] = v
}

// Size returns the number of properties in the map.
func (pm *PropertyMap) Size() int {
	if pm == nil {
		return 0
	}
	return len(pm.m)
}

// Value returns the value of property key, if present.
func (pm *PropertyMap) Value(key string) (Value, bool) {
	if pm == nil {
		return NullValue, false
	}
	v, ok := pm.m[key]
	return v, ok
}

// Lookup returns the value of property name, if present; else the value
// of property fallback (usually a shorthand); else def.
//
//     pm.Lookup("margin-left", "margin", style.Px(0))
//
func (pm *PropertyMap) Lookup(name, fallback string, def Value) Value {
	if v, ok := pm.Value(name); ok {
		return v
	}
	if fallback != "" {
		if v, ok := pm.Value(fallback); ok {
			return v
		}
	}
	return def
}

// Get returns the value of property name, resolving shorthands and initial
// values from the property registry. Unknown properties without a value
// resolve to NullValue.
func (pm *PropertyMap) Get(name string) Value {
	info, known := PropertyInfo(name)
	if !known {
		v, _ := pm.Value(name)
		return v
	}
	return pm.Lookup(name, info.Shorthand, info.Initial)
}

// Keys returns the property names of the map, sorted.
func (pm *PropertyMap) Keys() []string {
	if pm == nil {
		return nil
	}
	keys := make([]string, 0, len(pm.m))
	for k := range pm.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (pm *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, k := range pm.Keys() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(pm.m[k].String())
	}
	b.WriteString("}")
	return b.String()
}

// --- Property registry -----------------------------------------------------

// Property describes a CSS property known to the engine.
type Property struct {
	Name      string
	Shorthand string // single-valued shorthand to fall back to, if any
	Initial   Value  // CSS initial value
}

var registry = trie.New()

func init() {
	zero := Px(0)
	register := func(name, shorthand string, initial Value) {
		registry.Add(name, Property{Name: name, Shorthand: shorthand, Initial: initial})
	}
	register("display", "", Keyword("inline"))
	register("width", "", Auto())
	register("height", "", Auto())
	for _, side := range []string{"top", "right", "bottom", "left"} {
		register("margin-"+side, "margin", zero)
		register("padding-"+side, "padding", zero)
		register("border-"+side+"-width", "border-width", zero)
		register("border-"+side+"-color", "border-color", NullValue)
	}
	register("margin", "", zero)
	register("padding", "", zero)
	register("border-width", "", zero)
	register("border-color", "", NullValue)
	register("color", "", ColorOf(Color{0, 0, 0, 0xff}))
	register("background-color", "", NullValue)
}

// PropertyInfo returns the registry entry for a property name.
func PropertyInfo(name string) (Property, bool) {
	node, ok := registry.Find(name)
	if !ok {
		return Property{}, false
	}
	p, ok := node.Meta().(Property)
	return p, ok
}

// KnownProperty returns true if the layout engine interprets property name.
func KnownProperty(name string) bool {
	_, ok := PropertyInfo(name)
	return ok
}

// Longhands returns the names of all properties which fall back to
// shorthand, sorted.
func Longhands(shorthand string) []string {
	prefix := shorthand
	if i := strings.IndexByte(shorthand, '-'); i > 0 {
		prefix = shorthand[:i]
	}
	var longhands []string
	for _, name := range registry.PrefixSearch(prefix) {
		if p, ok := PropertyInfo(name); ok && p.Shorthand == shorthand {
			longhands = append(longhands, name)
		}
	}
	sort.Strings(longhands)
	return longhands
}
