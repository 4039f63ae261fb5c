package query

import (
	"reflect"
	"testing"
)

func TestQueryBuilderDefaultsToSelectStar(t *testing.T) {
	sql, args := NewQueryBuilder().From("posts").Build()
	if sql != "SELECT * FROM posts" {
		t.Errorf("unexpected sql: %q", sql)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestQueryBuilderFullStatement(t *testing.T) {
	sql, args := NewQueryBuilder().
		Select("category", "SUM(points) AS total").
		From("quizzes").
		Where("points > ?", 5).
		Where("category <> ?", "Misc").
		GroupBy("category").
		OrderBy("total DESC").
		Limit(3).
		Build()

	want := "SELECT category, SUM(points) AS total FROM quizzes" +
		" WHERE points > ? AND category <> ?" +
		" GROUP BY category ORDER BY total DESC LIMIT 3"
	if sql != want {
		t.Errorf("sql mismatch:\n got  %q\n want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []interface{}{5, "Misc"}) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestFilterPredicateBindsValues(t *testing.T) {
	predicate, args := NewFilterPredicate().
		Open().
		Like("title", "go").
		Or().
		Like("content", "go").
		Close().
		And().
		Equal("user_id", "u1").
		Build()

	want := "(title ILIKE ? OR content ILIKE ?) AND user_id = ?"
	if predicate != want {
		t.Errorf("predicate mismatch:\n got  %q\n want %q", predicate, want)
	}
	if !reflect.DeepEqual(args, []interface{}{"%go%", "%go%", "u1"}) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestFilterPredicateComposesWithBuilder(t *testing.T) {
	predicate, args := NewFilterPredicate().
		GreaterThan("total_score", 50).
		Build()

	sql, values := NewQueryBuilder().
		From("skill_assessments").
		Where(predicate, args...).
		OrderBy("completed_at DESC").
		Build()

	want := "SELECT * FROM skill_assessments WHERE total_score > ? ORDER BY completed_at DESC"
	if sql != want {
		t.Errorf("sql mismatch:\n got  %q\n want %q", sql, want)
	}
	if !reflect.DeepEqual(values, []interface{}{50}) {
		t.Errorf("unexpected values: %v", values)
	}
}
