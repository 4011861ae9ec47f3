package queryparams_test

import (
	"reflect"
	"testing"

	"github.com/goliatone/go-resource-adapter/pkg/testsupport"
	"github.com/goliatone/go-resource-adapter/queryparams"
)

func TestNew_initializesCollections(t *testing.T) {
	p := queryparams.New()
	if p.Filters == nil || p.Sorting == nil || p.Pagination == nil || p.Fields == nil {
		t.Fatal("New should initialize all map collections")
	}
	if !p.IsZero() {
		t.Fatal("New should produce a zero-valued Params")
	}
}

func TestIsZero(t *testing.T) {
	cases := []struct {
		name string
		p    queryparams.Params
		want bool
	}{
		{"empty", queryparams.Params{}, true},
		{"initialized empty", queryparams.New(), true},
		{"filter", queryparams.Params{Filters: map[string][]string{"status": {"open"}}}, false},
		{"sorting", queryparams.Params{Sorting: map[string]string{"name": "asc"}}, false},
		{"grouping", queryparams.Params{Grouping: []string{"author"}}, false},
		{"pagination", queryparams.Params{Pagination: map[string]int{"limit": 5}}, false},
		{"fields", queryparams.Params{Fields: map[string][]string{"tasks": {"name"}}}, false},
		{"inclusions", queryparams.Params{Inclusions: []string{"author"}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.IsZero(); got != tc.want {
				t.Fatalf("IsZero = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUnmarshal_fixture(t *testing.T) {
	var p queryparams.Params
	testsupport.LoadFixtureJSON(t, testsupport.FixturePath("params.json"), &p)

	if got := p.Filters["author.name"]; !reflect.DeepEqual(got, []string{"doe", "roe"}) {
		t.Errorf("Filters[author.name] = %v", got)
	}
	if p.Sorting["createdAt"] != "desc" {
		t.Errorf("Sorting[createdAt] = %q", p.Sorting["createdAt"])
	}
	if p.Pagination["offset"] != 20 || p.Pagination["limit"] != 10 {
		t.Errorf("Pagination = %v", p.Pagination)
	}
	if !reflect.DeepEqual(p.Fields["tasks"], []string{"name", "dueDate"}) {
		t.Errorf("Fields[tasks] = %v", p.Fields["tasks"])
	}
	if !reflect.DeepEqual(p.Inclusions, []string{"author", "comments.author"}) {
		t.Errorf("Inclusions = %v", p.Inclusions)
	}
	if !reflect.DeepEqual(p.Grouping, []string{"author.id"}) {
		t.Errorf("Grouping = %v", p.Grouping)
	}
}

func TestClone_isDeep(t *testing.T) {
	var orig queryparams.Params
	testsupport.LoadFixtureJSON(t, testsupport.FixturePath("params.json"), &orig)

	clone := orig.Clone()
	if !reflect.DeepEqual(clone, orig) {
		t.Fatal("clone should equal the original")
	}

	clone.Filters["status"][0] = "draft"
	clone.Sorting["createdAt"] = "asc"
	clone.Grouping[0] = "changed"
	clone.Pagination["limit"] = 99
	clone.Fields["tasks"][0] = "changed"
	clone.Inclusions[0] = "changed"

	if orig.Filters["status"][0] != "published" {
		t.Error("mutating clone filters leaked into the original")
	}
	if orig.Sorting["createdAt"] != "desc" {
		t.Error("mutating clone sorting leaked into the original")
	}
	if orig.Grouping[0] != "author.id" {
		t.Error("mutating clone grouping leaked into the original")
	}
	if orig.Pagination["limit"] != 10 {
		t.Error("mutating clone pagination leaked into the original")
	}
	if orig.Fields["tasks"][0] != "name" {
		t.Error("mutating clone fields leaked into the original")
	}
	if orig.Inclusions[0] != "author" {
		t.Error("mutating clone inclusions leaked into the original")
	}
}

func TestClone_preservesNilCollections(t *testing.T) {
	clone := queryparams.Params{}.Clone()
	if clone.Filters != nil || clone.Grouping != nil || clone.Inclusions != nil {
		t.Fatal("cloning a zero Params should keep nil collections nil")
	}
}
