package leave

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "holidays_date_key"}
	if !isUniqueViolation(dup) {
		t.Fatal("unique violation not recognised")
	}
	if !isUniqueViolation(fmt.Errorf("insert holiday: %w", dup)) {
		t.Fatal("wrapped unique violation not recognised")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatal("foreign key violation treated as duplicate")
	}
	if isUniqueViolation(errors.New("connection reset")) {
		t.Fatal("plain error treated as duplicate")
	}
	if isUniqueViolation(nil) {
		t.Fatal("nil error treated as duplicate")
	}
}
