package repository

import (
	"fmt"
	"strconv"

	"github.com/scholaris/scholaris-backend/internal/scope"
)

// itoa shortens positional placeholder construction in dynamic queries.
func itoa(i int) string {
	return strconv.Itoa(i)
}

// studentFilter builds a SQL predicate restricting rows to the students
// visible under the scope. col is the qualified student id column (e.g.
// "s.id") and classCol the qualified current-class column. Placeholders
// start at $start; the bound args are returned alongside.
func studentFilter(sc scope.Scope, col, classCol string, start int) (string, []any) {
	switch sc.Kind {
	case scope.KindAll:
		return "TRUE", nil
	case scope.KindTaughtClasses:
		return fmt.Sprintf("%s IN (SELECT id FROM classes WHERE class_teacher_id = $%d)", classCol, start),
			[]any{sc.ProfileID}
	case scope.KindOwnChildren:
		return fmt.Sprintf("%s IN (SELECT student_id FROM parent_children WHERE parent_id = $%d)", col, start),
			[]any{sc.ProfileID}
	case scope.KindSelfOnly:
		return fmt.Sprintf("%s = $%d", col, start), []any{sc.ProfileID}
	default:
		return "FALSE", nil
	}
}
