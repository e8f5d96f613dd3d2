package models

// ObservationRow is the GORM mapping for one persisted observation.
// The unique index enforces the (entity_key, date) uniqueness invariant
// at the store level as well.
type ObservationRow struct {
	ID        uint     `gorm:"column:id;primaryKey;autoIncrement"`
	Date      string   `gorm:"column:date;size:10;not null;uniqueIndex:idx_observations_key_date,priority:2"`
	Value     *float64 `gorm:"column:value"`
	EntityKey string   `gorm:"column:entity_key;size:255;not null;uniqueIndex:idx_observations_key_date,priority:1"`
	Client    string   `gorm:"column:client;size:64;not null"`
	Warehouse string   `gorm:"column:warehouse;size:64;not null"`
	Product   string   `gorm:"column:product;size:64;not null"`
}

// TableName returns the observations table name.
func (ObservationRow) TableName() string {
	return "observations"
}

// ToRecord converts a database row back to a domain record.
func (r ObservationRow) ToRecord() (Record, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Date:      date,
		Value:     r.Value,
		EntityKey: r.EntityKey,
		Client:    r.Client,
		Warehouse: r.Warehouse,
		Product:   r.Product,
	}, nil
}

// NewObservationRow converts a domain record into its database mapping.
func NewObservationRow(rec Record) ObservationRow {
	return ObservationRow{
		Date:      rec.Date.Format(DateLayout),
		Value:     rec.Value,
		EntityKey: rec.EntityKey,
		Client:    rec.Client,
		Warehouse: rec.Warehouse,
		Product:   rec.Product,
	}
}
