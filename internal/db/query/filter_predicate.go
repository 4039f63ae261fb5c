package query

import "fmt"

// FilterPredicate composes a WHERE fragment with `?` placeholders so values
// are always bound, never interpolated.
type FilterPredicate struct {
	predicate string
	args      []interface{}
}

func NewFilterPredicate() *FilterPredicate {
	return &FilterPredicate{}
}

func (fp *FilterPredicate) Open() *FilterPredicate {
	fp.predicate += "("
	return fp
}

func (fp *FilterPredicate) Close() *FilterPredicate {
	fp.predicate += ")"
	return fp
}

func (fp *FilterPredicate) And() *FilterPredicate {
	fp.predicate += " AND "
	return fp
}

func (fp *FilterPredicate) Or() *FilterPredicate {
	fp.predicate += " OR "
	return fp
}

func (fp *FilterPredicate) Equal(column string, value interface{}) *FilterPredicate {
	fp.predicate += fmt.Sprintf("%s = ?", column)
	fp.args = append(fp.args, value)
	return fp
}

func (fp *FilterPredicate) NotEqual(column string, value interface{}) *FilterPredicate {
	fp.predicate += fmt.Sprintf("%s <> ?", column)
	fp.args = append(fp.args, value)
	return fp
}

func (fp *FilterPredicate) GreaterThan(column string, value interface{}) *FilterPredicate {
	fp.predicate += fmt.Sprintf("%s > ?", column)
	fp.args = append(fp.args, value)
	return fp
}

func (fp *FilterPredicate) LessThan(column string, value interface{}) *FilterPredicate {
	fp.predicate += fmt.Sprintf("%s < ?", column)
	fp.args = append(fp.args, value)
	return fp
}

func (fp *FilterPredicate) Like(column, pattern string) *FilterPredicate {
	fp.predicate += fmt.Sprintf("%s ILIKE ?", column)
	fp.args = append(fp.args, "%"+pattern+"%")
	return fp
}

// Build returns the predicate text and its bound arguments.
func (fp *FilterPredicate) Build() (string, []interface{}) {
	return fp.predicate, fp.args
}
