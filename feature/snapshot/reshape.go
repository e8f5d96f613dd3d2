package snapshot

import (
	"snapshot-manager/feature/dataset/models"
)

// Normalize reshapes a wide snapshot into the canonical long layout.
//
// Each (row × date column) produces exactly one record carrying the
// derived entity key and the denormalized categorical attributes, so the
// output always holds rows(wide) × len(DateColumns) records. Nil values
// pass through as explicit null records. The result is sorted by
// (entity_key, date).
//
// Normalize is pure: it never touches storage.
func Normalize(s *Snapshot) (*models.Table, error) {
	dates, err := s.ParseDates()
	if err != nil {
		return nil, err
	}

	table := models.NewTable()
	table.Records = make([]models.Record, 0, len(s.Rows)*len(dates))

	for _, row := range s.Rows {
		key := models.BuildEntityKey(row.Client, row.Warehouse, row.Product)
		for i, date := range dates {
			table.Append(models.Record{
				Date:      date,
				Value:     row.Values[i],
				EntityKey: key,
				Client:    row.Client,
				Warehouse: row.Warehouse,
				Product:   row.Product,
			})
		}
	}

	table.Sort()
	return table, nil
}
