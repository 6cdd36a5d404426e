package importer

import (
	"fmt"
	"io"

	"github.com/electrotech-dev/electrotech/internal/model"
	"github.com/electrotech-dev/electrotech/internal/statement"
)

// GenericParser reads any comma-separated export whose header names a date
// and a description column.
type GenericParser struct{}

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads the whole export and hands it to the statement parser.
func (p *GenericParser) Parse(r io.Reader) (model.ParsedStatement, statement.Stats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.ParsedStatement{}, statement.Stats{}, fmt.Errorf("reading statement: %w", err)
	}
	return statement.ParseWithStats(string(data))
}
