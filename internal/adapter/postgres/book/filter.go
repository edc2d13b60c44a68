package book

import (
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

// applyFilter adds one WHERE clause per set field of f.
func applyFilter(q squirrel.SelectBuilder, f domain.BookFilter) squirrel.SelectBuilder {
	if f.Title != nil {
		q = q.Where(squirrel.ILike{"b.title": "%" + escapeLike(*f.Title) + "%"})
	}
	if f.Category != nil {
		q = q.Where(squirrel.Eq{"b.category": string(*f.Category)})
	}
	if f.MachineID != nil {
		q = q.Where(squirrel.Eq{"b.machine_id": *f.MachineID})
	}
	if f.Status != nil {
		q = q.Where(squirrel.Eq{"b.status": string(*f.Status)})
	}
	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in user input match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
