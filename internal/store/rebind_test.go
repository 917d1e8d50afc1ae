package store

import "testing"

func TestRebind_Postgres(t *testing.T) {
	s := &SQLStore{dialect: dialectPostgres}
	got := s.rebind("UPDATE t SET a = ?, b = ? WHERE id = ?")
	want := "UPDATE t SET a = $1, b = $2 WHERE id = $3"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRebind_SQLiteUnchanged(t *testing.T) {
	s := &SQLStore{dialect: dialectSQLite}
	q := "SELECT id FROM skills WHERE id = ?"
	if got := s.rebind(q); got != q {
		t.Errorf("expected query unchanged, got %q", got)
	}
}
