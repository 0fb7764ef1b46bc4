package identity

import (
	"fmt"
	"strings"
)

// ProfileUpdate holds the optional fields of a profile mutation. Callers only
// set what needs changing; a nil or empty field leaves the column untouched,
// so a field cannot be cleared through an update.
type ProfileUpdate struct {
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	Mobile    *string `json:"mobile"`
}

// Statement is a parameterised SQL statement ready for execution.
type Statement struct {
	SQL  string
	Args []any
}

type assignment struct {
	column string
	value  string
}

// assignments lists the present fields in column order.
func (u ProfileUpdate) assignments() []assignment {
	candidates := []struct {
		column string
		value  *string
	}{
		{"firstname", u.Firstname},
		{"lastname", u.Lastname},
		{"email", u.Email},
		{"address", u.Address},
		{"mobile", u.Mobile},
	}

	out := make([]assignment, 0, len(candidates))
	for _, c := range candidates {
		if c.value == nil || *c.value == "" {
			continue
		}
		out = append(out, assignment{column: c.column, value: *c.value})
	}
	return out
}

// Empty reports whether the update carries no field to change.
func (u ProfileUpdate) Empty() bool {
	return len(u.assignments()) == 0
}

// BuildUpdate composes an UPDATE touching only the present fields of upd for
// the row identified by userID. Values are always bound parameters; the user
// id is the last argument.
func BuildUpdate(userID int64, upd ProfileUpdate) (Statement, error) {
	fields := upd.assignments()
	if len(fields) == 0 {
		return Statement{}, ErrNoFieldsProvided
	}

	sets := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for _, f := range fields {
		args = append(args, f.value)
		sets = append(sets, fmt.Sprintf("%s = $%d", f.column, len(args)))
	}
	args = append(args, userID)

	return Statement{
		SQL:  fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args)),
		Args: args,
	}, nil
}
