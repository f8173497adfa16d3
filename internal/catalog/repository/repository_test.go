package repository

import "testing"

func TestWhereBuilderNumbersPlaceholders(t *testing.T) {
	var where whereBuilder
	where.add("(name ILIKE $%[1]d OR tool_key ILIKE $%[1]d)", searchPattern(" digger "))
	where.add("lower(category) = lower($%d)", "excavation")

	want := "WHERE (name ILIKE $1 OR tool_key ILIKE $1) AND lower(category) = lower($2)"
	if got := where.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if len(where.args) != 2 || where.args[0] != "%digger%" {
		t.Fatalf("unexpected args: %#v", where.args)
	}
}

func TestWhereBuilderEmpty(t *testing.T) {
	var where whereBuilder
	if where.String() != "" {
		t.Fatalf("expected empty where clause, got %q", where.String())
	}
}
