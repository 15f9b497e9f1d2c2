package search

// TBool is the three-valued truth domain every strategy operates on: a
// variable starts Unknown and is resolved to False or True during
// construction.
type TBool int8

const (
	Unknown TBool = iota - 1
	False
	True
)

func (value TBool) String() string {
	switch value {
	case Unknown:
		return "UNKNOWN"
	case False:
		return "FALSE"
	case True:
		return "TRUE"
	default:
		panic("invalid truth value")
	}
}

// Flip toggles the value: True becomes False, anything else becomes True.
func (value TBool) Flip() TBool {
	if value == True {
		return False
	}
	return True
}

// Assignment holds one truth value per variable, indexed by variable id
// minus one.
type Assignment []TBool

// NewAssignment returns an all-Unknown assignment for the given variable
// count.
func NewAssignment(variables int) Assignment {
	assignment := make(Assignment, variables)
	for i := range assignment {
		assignment[i] = Unknown
	}
	return assignment
}

func (assignment Assignment) Clone() Assignment {
	clone := make(Assignment, len(assignment))
	copy(clone, assignment)
	return clone
}
