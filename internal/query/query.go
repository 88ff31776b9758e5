// Package query selects values from rendered capability reports using
// JSONPath expressions.
package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-yaml"
	"github.com/theory/jsonpath"
)

// ErrNoMatch indicates the expression selected nothing from the report.
var ErrNoMatch = errors.New("no match")

// Query is a compiled JSONPath expression.
type Query struct {
	path *jsonpath.Path
}

// Parse compiles a JSONPath expression.
func Parse(expr string) (*Query, error) {
	if expr == "" {
		return nil, errors.New("query expression is empty")
	}

	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid query %s", expr)
	}
	return &Query{path: path}, nil
}

// Select evaluates the query against a rendered report and returns one line
// per selected value: strings verbatim, other scalars in their Go form,
// containers re-encoded as JSON.
func (q *Query) Select(report []byte) ([]string, error) {
	data, err := decode(report)
	if err != nil {
		return nil, err
	}

	results := q.path.Select(data)
	if len(results) == 0 {
		return nil, ErrNoMatch
	}

	lines := make([]string, 0, len(results))
	for _, result := range results {
		line, err := render(result)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// decode reads a report back into generic data. The trailing commas of the
// dialect are legal YAML flow syntax except the one after the root object.
func decode(report []byte) (any, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(string(report)), ",")

	var data any
	if err := yaml.Unmarshal([]byte(trimmed), &data); err != nil {
		return nil, errors.Wrap(err, "decode report")
	}
	return data, nil
}

func render(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "null", nil
	case string:
		return v, nil
	case map[string]any, []any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return "", errors.Wrap(err, "encode query result")
		}
		return string(encoded), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}
