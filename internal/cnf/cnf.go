package cnf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/degel01459/CI5652-Proyecto/internal/search"
)

// Instance is the read-only base snapshot built once per input file: the
// clause collection plus the literal frequency table accumulated while
// parsing. Strategies clone whatever they mutate; the instance itself is
// never written to after parsing.
type Instance struct {
	Variables   int
	Clauses     []search.Clause
	Frequencies []search.Frequency
}

func (instance Instance) Formula() search.Formula {
	return search.NewFormula(instance.Clauses)
}

// ToDIMACS serializes the instance back into the DIMACS CNF format.
func (instance Instance) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", instance.Variables, len(instance.Clauses))
	for _, clause := range instance.Clauses {
		for _, literal := range clause.Literals() {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

// InstanceFromDimacs reads a DIMACS CNF file. Comment lines are skipped, the
// preamble fixes the variable count and every clause line is a sequence of
// nonzero signed integers terminated by 0.
func InstanceFromDimacs(path string) (Instance, error) {
	file, err := os.Open(path)
	if err != nil {
		return Instance{}, errors.Wrap(err, "cannot open instance")
	}
	defer file.Close()

	instance, err := ParseDimacs(file)
	return instance, errors.Wrapf(err, "cannot parse %v", path)
}

// ParseDimacs reads a DIMACS CNF instance from a reader.
func ParseDimacs(reader io.Reader) (Instance, error) {
	instance := Instance{}
	preamble := false

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}

		if line[0] == 'p' {
			variables, clauses, err := parsePreamble(line)
			if err != nil {
				return Instance{}, err
			}
			instance.Variables = variables
			instance.Frequencies = make([]search.Frequency, variables)
			instance.Clauses = make([]search.Clause, 0, clauses)
			preamble = true
			continue
		}

		if !preamble {
			return Instance{}, errors.New("clause found before the preamble")
		}
		clause, err := parseClause(line, instance.Variables, instance.Frequencies)
		if err != nil {
			return Instance{}, err
		}
		instance.Clauses = append(instance.Clauses, clause)
	}
	if err := scanner.Err(); err != nil {
		return Instance{}, errors.Wrap(err, "cannot read instance")
	}
	if !preamble {
		return Instance{}, errors.New("preamble missing")
	}

	return instance, nil
}

func parsePreamble(line string) (variables int, clauses int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 || fields[1] != "cnf" {
		return 0, 0, errors.Errorf("malformed preamble: %v", line)
	}
	if variables, err = strconv.Atoi(fields[2]); err != nil || variables < 0 {
		return 0, 0, errors.Errorf("invalid variable count: %v", fields[2])
	}
	if clauses, err = strconv.Atoi(fields[3]); err != nil || clauses < 0 {
		return 0, 0, errors.Errorf("invalid clause count: %v", fields[3])
	}
	return variables, clauses, nil
}

// parseClause extracts the literals of one clause line, accumulating each
// occurrence into the frequency table by polarity.
func parseClause(line string, variables int, frequencies []search.Frequency) (search.Clause, error) {
	literals := make([]int, 0)
	for _, field := range strings.Fields(line) {
		literal, err := strconv.Atoi(field)
		if err != nil {
			return search.Clause{}, errors.Errorf("invalid literal %v in clause: %v", field, line)
		}
		if literal == 0 {
			break
		}
		variable := literal
		if variable < 0 {
			variable = -variable
		}
		if variable > variables {
			return search.Clause{}, errors.Errorf("literal %v exceeds the declared %v variables", literal, variables)
		}

		if literal > 0 {
			frequencies[variable-1].Pos++
		} else {
			frequencies[variable-1].Neg++
		}
		literals = append(literals, literal)
	}
	return search.NewClause(literals), nil
}
