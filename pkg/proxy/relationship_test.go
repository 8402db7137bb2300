package proxy

import (
	"testing"

	"github.com/go-drift/viewproxy/pkg/layout"
)

func TestConstructorDirectionsAndDistances(t *testing.T) {
	cases := []struct {
		name     string
		rel      Relationship
		relation Relation
		distance Distance
	}{
		{"Descendant", Descendant[*renderTagBox](), RelationDescendant, DistanceClosest},
		{"Ancestor", Ancestor[*renderTagBox](), RelationAncestor, DistanceClosest},
		{"FurthestDescendant", Furthest[*renderTagBox](RelationDescendant), RelationDescendant, DistanceFurthest},
		{"FurthestAncestor", Furthest[*renderTagBox](RelationAncestor), RelationAncestor, DistanceFurthest},
		{"DescendantLike", DescendantLike[*renderTagBox](`x`), RelationDescendant, DistanceClosest},
		{"AncestorLike", AncestorLike[*renderTagBox](`x`), RelationAncestor, DistanceClosest},
		{"FurthestLike", FurthestLike[*renderTagBox](RelationDescendant, `x`), RelationDescendant, DistanceFurthest},
		{"DescendantPassing", DescendantPassing[*renderTagBox](nil), RelationDescendant, DistanceClosest},
		{"AncestorPassing", AncestorPassing[*renderTagBox](nil), RelationAncestor, DistanceClosest},
		{"FurthestPassing", FurthestPassing[*renderTagBox](RelationAncestor, nil), RelationAncestor, DistanceFurthest},
	}
	for _, tc := range cases {
		if tc.rel.Relation() != tc.relation {
			t.Errorf("%s: expected relation %v, got %v", tc.name, tc.relation, tc.rel.Relation())
		}
		if tc.rel.Distance() != tc.distance {
			t.Errorf("%s: expected distance %v, got %v", tc.name, tc.distance, tc.rel.Distance())
		}
	}
}

func TestTypeGate(t *testing.T) {
	tag := &renderTagBox{tag: "a"}
	tag.SetSelf(tag)
	mark := &renderMarkBox{}
	mark.SetSelf(mark)

	exact := Descendant[*renderTagBox]()
	if !exact.matches(tag) {
		t.Error("expected the exact type to match")
	}
	if exact.matches(mark) {
		t.Error("expected a different type to be rejected")
	}

	// An interface gate accepts any implementation.
	anyView := Descendant[layout.RenderObject]()
	if !anyView.matches(tag) || !anyView.matches(mark) {
		t.Error("expected the interface gate to accept all render objects")
	}

	if exact.matches(nil) {
		t.Error("expected nil to never match")
	}
}

func TestPredicateRunsAfterTypeGate(t *testing.T) {
	tag := &renderTagBox{tag: "a"}
	tag.SetSelf(tag)
	mark := &renderMarkBox{}
	mark.SetSelf(mark)

	calls := 0
	rel := DescendantPassing[*renderTagBox](func(layout.RenderObject) bool {
		calls++
		return true
	})

	if rel.matches(mark) {
		t.Error("expected the type gate to reject before the predicate runs")
	}
	if calls != 0 {
		t.Errorf("expected no predicate call for a gated-out view, got %d", calls)
	}
	if !rel.matches(tag) {
		t.Error("expected a passing view to match")
	}
	if calls != 1 {
		t.Errorf("expected exactly one predicate call, got %d", calls)
	}
}

func TestInvalidPatternNeverMatches(t *testing.T) {
	tag := &renderTagBox{tag: "a"}
	tag.SetSelf(tag)

	rel := DescendantLike[layout.RenderObject](`(`)
	if rel.matches(tag) {
		t.Error("expected an uncompilable pattern to match nothing")
	}
	// Matching again must stay a quiet no-op.
	if rel.matches(tag) {
		t.Error("expected repeat matches to stay rejected")
	}
}
