package snapshot

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"snapshot-manager/core/utils"
)

// DecodeCSV reads one wide-format snapshot from CSV. The header must
// contain the three identifier columns (any position) and no repeated
// column names; every remaining column is treated as a date column.
// Date column names are not validated here; the merge engine parses
// them before any write.
func DecodeCSV(name string, r io.Reader) (*Snapshot, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("snapshot %s: empty file", name)
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: failed to read header: %w", name, err)
	}
	if len(header) > 0 {
		// Excel exports prepend a BOM to the first header cell.
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		if _, dup := index[col]; dup {
			return nil, fmt.Errorf("snapshot %s: duplicate column %q", name, col)
		}
		index[col] = i
	}

	var missing []string
	for _, col := range IdentifierColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingIdentifierError{File: name, Missing: missing}
	}

	identifier := map[int]bool{
		index[ColumnClient]:    true,
		index[ColumnWarehouse]: true,
		index[ColumnProduct]:   true,
	}

	snap := &Snapshot{Name: name}
	var datePositions []int
	for i, col := range header {
		if identifier[i] {
			continue
		}
		snap.DateColumns = append(snap.DateColumns, col)
		datePositions = append(datePositions, i)
	}

	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: failed to read line %d: %w", name, line+1, err)
		}
		line++

		row := Row{
			Client:    utils.ToString(record[index[ColumnClient]]),
			Warehouse: utils.ToString(record[index[ColumnWarehouse]]),
			Product:   utils.ToString(record[index[ColumnProduct]]),
			Values:    make([]*float64, 0, len(datePositions)),
		}
		for n, pos := range datePositions {
			value, err := utils.NullableFloat(record[pos])
			if err != nil {
				return nil, fmt.Errorf("snapshot %s: line %d column %q: %w",
					name, line, snap.DateColumns[n], err)
			}
			row.Values = append(row.Values, value)
		}
		snap.Rows = append(snap.Rows, row)
	}

	return snap, nil
}
