package proxy

import (
	"reflect"
	"regexp"

	"github.com/go-drift/viewproxy/pkg/errors"
	"github.com/go-drift/viewproxy/pkg/layout"
)

// Relation selects the search direction relative to the subject envelope.
type Relation int

const (
	// RelationDescendant searches the envelope's subtree.
	RelationDescendant Relation = iota
	// RelationAncestor walks the envelope's parent chain.
	RelationAncestor
)

func (r Relation) String() string {
	if r == RelationAncestor {
		return "ancestor"
	}
	return "descendant"
}

// Distance selects which qualifying view wins when several match.
type Distance int

const (
	// DistanceClosest returns the first qualifying view in search order.
	DistanceClosest Distance = iota
	// DistanceFurthest returns the qualifying view with the greatest
	// hop-count from the subject envelope; ties keep the view found
	// first.
	DistanceFurthest
)

func (d Distance) String() string {
	if d == DistanceFurthest {
		return "furthest"
	}
	return "closest"
}

// Predicate is an arbitrary boolean test over a render object.
type Predicate func(layout.RenderObject) bool

// Relationship describes which render object to find relative to the
// subject envelope: a direction, a distance preference, a mandatory
// concrete-type gate, and an optional predicate. Values are immutable
// once constructed.
type Relationship struct {
	relation  Relation
	distance  Distance
	viewType  reflect.Type
	predicate Predicate
}

// Relation returns the search direction.
func (r Relationship) Relation() Relation { return r.relation }

// Distance returns the distance preference.
func (r Relationship) Distance() Distance { return r.distance }

// matches applies the type gate and then the predicate. The type gate is
// mandatory: a view of the wrong type never matches, even when the
// predicate would accept it.
func (r Relationship) matches(view layout.RenderObject) bool {
	if view == nil {
		return false
	}
	if !matchesType(view, r.viewType) {
		return false
	}
	if r.predicate != nil {
		return r.predicate(view)
	}
	return true
}

// matchesType reports whether a view satisfies a type gate. A nil gate
// accepts everything; an interface gate accepts any implementation; a
// concrete gate requires the exact dynamic type.
func matchesType(view layout.RenderObject, gate reflect.Type) bool {
	if gate == nil {
		return true
	}
	viewType := reflect.TypeOf(view)
	if gate.Kind() == reflect.Interface {
		return viewType.Implements(gate)
	}
	return viewType == gate
}

// Descendant returns the relationship "closest descendant of type T".
func Descendant[T layout.RenderObject]() Relationship {
	return Closest[T](RelationDescendant)
}

// Ancestor returns the relationship "closest ancestor of type T".
func Ancestor[T layout.RenderObject]() Relationship {
	return Closest[T](RelationAncestor)
}

// Closest returns the closest view of type T in the given direction.
func Closest[T layout.RenderObject](relation Relation) Relationship {
	return Relationship{
		relation: relation,
		distance: DistanceClosest,
		viewType: reflect.TypeFor[T](),
	}
}

// Furthest returns the furthest view of type T in the given direction.
func Furthest[T layout.RenderObject](relation Relation) Relationship {
	return Relationship{
		relation: relation,
		distance: DistanceFurthest,
		viewType: reflect.TypeFor[T](),
	}
}

// DescendantLike returns the closest descendant of type T whose debug
// description matches the regular expression pattern. Use
// layout.RenderObject as T when the concrete type is not nameable.
func DescendantLike[T layout.RenderObject](pattern string) Relationship {
	return ClosestLike[T](RelationDescendant, pattern)
}

// AncestorLike returns the closest ancestor of type T whose debug
// description matches the regular expression pattern.
func AncestorLike[T layout.RenderObject](pattern string) Relationship {
	return ClosestLike[T](RelationAncestor, pattern)
}

// ClosestLike returns the closest view of type T in the given direction
// whose debug description matches pattern.
func ClosestLike[T layout.RenderObject](relation Relation, pattern string) Relationship {
	return Relationship{
		relation:  relation,
		distance:  DistanceClosest,
		viewType:  reflect.TypeFor[T](),
		predicate: patternPredicate(pattern),
	}
}

// FurthestLike returns the furthest view of type T in the given direction
// whose debug description matches pattern.
func FurthestLike[T layout.RenderObject](relation Relation, pattern string) Relationship {
	return Relationship{
		relation:  relation,
		distance:  DistanceFurthest,
		viewType:  reflect.TypeFor[T](),
		predicate: patternPredicate(pattern),
	}
}

// DescendantPassing returns the closest descendant of type T accepted by
// the predicate.
func DescendantPassing[T layout.RenderObject](fn Predicate) Relationship {
	return ClosestPassing[T](RelationDescendant, fn)
}

// AncestorPassing returns the closest ancestor of type T accepted by the
// predicate.
func AncestorPassing[T layout.RenderObject](fn Predicate) Relationship {
	return ClosestPassing[T](RelationAncestor, fn)
}

// ClosestPassing returns the closest view of type T in the given
// direction accepted by the predicate.
func ClosestPassing[T layout.RenderObject](relation Relation, fn Predicate) Relationship {
	return Relationship{
		relation:  relation,
		distance:  DistanceClosest,
		viewType:  reflect.TypeFor[T](),
		predicate: fn,
	}
}

// FurthestPassing returns the furthest view of type T in the given
// direction accepted by the predicate.
func FurthestPassing[T layout.RenderObject](relation Relation, fn Predicate) Relationship {
	return Relationship{
		relation:  relation,
		distance:  DistanceFurthest,
		viewType:  reflect.TypeFor[T](),
		predicate: fn,
	}
}

// patternPredicate compiles a description pattern into a predicate. A
// pattern that fails to compile is reported once and never matches; a bad
// pattern must not take down a render pass.
func patternPredicate(pattern string) Predicate {
	re, err := regexp.Compile(pattern)
	if err != nil {
		errors.Report(&errors.FrameworkError{
			Op:   "proxy.patternPredicate",
			Kind: errors.KindMatch,
			Err:  err,
		})
		return func(layout.RenderObject) bool { return false }
	}
	return func(view layout.RenderObject) bool {
		return re.MatchString(view.DebugDescription())
	}
}
