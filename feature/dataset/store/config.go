package store

// Config holds configuration for the dataset store.
type Config struct {
	// Driver selects the backend (file, database, memory).
	Driver string `mapstructure:"driver" default:"file"`
	// Path is the dataset file location for the file driver.
	Path string `mapstructure:"path" default:"data/preprocessed/sales.db"`
	// BatchSize is the insert batch size for the database driver.
	BatchSize int `mapstructure:"batch_size" default:"500"`
}

const (
	DriverFile     = "file"
	DriverDatabase = "database"
	DriverMemory   = "memory"
)

// IsValidDriver checks if the configured driver is supported.
func (c Config) IsValidDriver() bool {
	switch c.Driver {
	case DriverFile, DriverDatabase, DriverMemory:
		return true
	default:
		return false
	}
}
