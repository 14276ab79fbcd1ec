package restaurant

import (
	"reflect"
	"strings"
	"testing"
)

func whereClause(t *testing.T, sql string) string {
	t.Helper()
	i := strings.Index(sql, " WHERE ")
	if i < 0 {
		t.Fatalf("no WHERE in %q", sql)
	}
	w := sql[i+len(" WHERE "):]
	if j := strings.Index(w, " ORDER BY "); j >= 0 {
		w = w[:j]
	}
	return w
}

func TestCountAndPageShareOnePredicate(t *testing.T) {
	tests := []struct {
		name string
		q    ListQuery
	}{
		{"no filters", ListQuery{}},
		{"search only", ListQuery{Search: "sushi"}},
		{"all filters", ListQuery{Search: "a", Cuisine: "Italian", Location: "Delhi", SortBy: "cuisine", SortOrder: "desc", Page: 3, PerPage: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pageSQL, pageArgs, err := pageQuery(tt.q).ToSql()
			if err != nil {
				t.Fatal(err)
			}
			countSQL, countArgs, err := countQuery(tt.q).ToSql()
			if err != nil {
				t.Fatal(err)
			}
			if whereClause(t, pageSQL) != whereClause(t, countSQL) {
				t.Fatalf("predicates differ:\npage:  %s\ncount: %s", pageSQL, countSQL)
			}
			if !reflect.DeepEqual(pageArgs, countArgs) {
				t.Fatalf("args differ: %v vs %v", pageArgs, countArgs)
			}
		})
	}
}

func TestPredicate_SearchIsCaseInsensitiveAndEscaped(t *testing.T) {
	sql, args, err := countQuery(ListQuery{Search: " 100%_off "}).ToSql()
	if err != nil {
		t.Fatal(err)
	}
	for _, col := range []string{"name ILIKE", "location ILIKE", "cuisine ILIKE"} {
		if !strings.Contains(sql, col) {
			t.Errorf("missing %q in %s", col, sql)
		}
	}
	if strings.Contains(sql, "100") {
		t.Fatalf("search term interpolated into SQL: %s", sql)
	}
	if len(args) != 3 || args[0] != `%100\%\_off%` {
		t.Fatalf("args=%v", args)
	}
}

func TestPredicate_ExactFiltersAreAnded(t *testing.T) {
	sql, args, err := countQuery(ListQuery{Cuisine: "Japanese", Location: "Mumbai"}).ToSql()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sql, "cuisine = $1 AND location = $2") {
		t.Fatalf("sql=%s", sql)
	}
	if !reflect.DeepEqual(args, []interface{}{"Japanese", "Mumbai"}) {
		t.Fatalf("args=%v", args)
	}
}

func TestPageQuery_SortingAndPaging(t *testing.T) {
	tests := []struct {
		q         ListQuery
		wantOrder string
		wantPage  string
	}{
		{ListQuery{}, "ORDER BY name ASC, id ASC", "LIMIT 10 OFFSET 0"},
		{ListQuery{SortBy: "location", SortOrder: "desc"}, "ORDER BY location DESC, id DESC", "LIMIT 10"},
		{ListQuery{SortBy: "id; DROP TABLE restaurants", SortOrder: "DESC"}, "ORDER BY name ASC, id ASC", "LIMIT 10"},
		{ListQuery{SortBy: "cuisine", Page: 3, PerPage: 20}, "ORDER BY cuisine ASC", "LIMIT 20 OFFSET 40"},
	}
	for _, tt := range tests {
		sql, _, err := pageQuery(tt.q).ToSql()
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(sql, tt.wantOrder) || !strings.Contains(sql, tt.wantPage) {
			t.Errorf("query %+v rendered %s", tt.q, sql)
		}
	}
}

func TestListQuery_Values(t *testing.T) {
	v := ListQuery{Search: "pasta", SortOrder: "desc", Page: 2}.Values()
	if v.Encode() != "page=2&search=pasta&sort_order=desc" {
		t.Fatalf("got %s", v.Encode())
	}
}
