package restaurant

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Predicate is the WHERE clause shared by the page and the count query.
func (q ListQuery) Predicate() sq.And {
	pred := sq.And{}
	if s := strings.TrimSpace(q.Search); s != "" {
		pattern := "%" + likeEscaper.Replace(s) + "%"
		pred = append(pred, sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"location": pattern},
			sq.ILike{"cuisine": pattern},
		})
	}
	if q.Cuisine != "" {
		pred = append(pred, sq.Eq{"cuisine": q.Cuisine})
	}
	if q.Location != "" {
		pred = append(pred, sq.Eq{"location": q.Location})
	}
	return pred
}

func pageQuery(q ListQuery) sq.SelectBuilder {
	dir := "ASC"
	if q.Descending() {
		dir = "DESC"
	}
	p := q.Paging()
	return psql.
		Select("id", "name", "location", "cuisine").
		From("restaurants").
		Where(q.Predicate()).
		OrderBy(q.SortColumn()+" "+dir, "id "+dir).
		Limit(p.Limit()).
		Offset(p.Offset())
}

func countQuery(q ListQuery) sq.SelectBuilder {
	return psql.Select("COUNT(*)").From("restaurants").Where(q.Predicate())
}
