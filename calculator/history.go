package calculator

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// HistoryRecord is an immutable snapshot of calculator state taken after a
// successful mutation.
//
// While its properties are exported for inspection and serialization, records
// are only ever created by the Calculator itself, one per successful mutating
// call, and never changed afterwards.
type HistoryRecord struct {
	Value     float64   `json:"value"`
	Operation string    `json:"operation"`
	Operands  []float64 `json:"operands"`
}

func buildHistoryRecord(value float64, operation string, operands ...float64) HistoryRecord {
	recorded := make([]float64, len(operands))
	copy(recorded, operands)

	return HistoryRecord{
		Value:     value,
		Operation: operation,
		Operands:  recorded,
	}
}

// cloned returns a copy of the record that shares no operand storage with
// the original.
func (r HistoryRecord) cloned() HistoryRecord {
	return buildHistoryRecord(r.Value, r.Operation, r.Operands...)
}

// String renders the record as "operation(operands) = value".
func (r HistoryRecord) String() string {
	rendered := make([]string, len(r.Operands))
	for i, operand := range r.Operands {
		rendered[i] = fmt.Sprintf("%v", operand)
	}

	return fmt.Sprintf("%s(%s) = %v", r.Operation, strings.Join(rendered, ", "), r.Value)
}

// HistoryJSON serializes the full history as a JSON array of records, oldest
// first. This is a diagnostic export; calculator state is never persisted or
// restored from it.
func (c *Calculator) HistoryJSON() ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(c.History())
}
