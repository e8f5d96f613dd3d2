package snapshot_test

import (
	"errors"
	"strings"
	"testing"

	"snapshot-manager/feature/snapshot"

	"github.com/stretchr/testify/assert"
)

func TestDecodeCSV(t *testing.T) {
	input := "Client,Warehouse,Product,2024-01-01,2024-01-02\n" +
		"C1,W1,P1,10.5,20\n" +
		"C2,W2,P2,,null\n"

	snap, err := snapshot.DecodeCSV("sales_w1.csv", strings.NewReader(input))
	assert.NoError(t, err)

	assert.Equal(t, "sales_w1.csv", snap.Name)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, snap.DateColumns)
	assert.Len(t, snap.Rows, 2)

	assert.Equal(t, "C1", snap.Rows[0].Client)
	assert.Equal(t, "W1", snap.Rows[0].Warehouse)
	assert.Equal(t, "P1", snap.Rows[0].Product)
	assert.Equal(t, 10.5, *snap.Rows[0].Values[0])
	assert.Equal(t, 20.0, *snap.Rows[0].Values[1])

	// Empty and "null" cells both become nil values.
	assert.Nil(t, snap.Rows[1].Values[0])
	assert.Nil(t, snap.Rows[1].Values[1])
}

func TestDecodeCSV_IdentifiersAnyPosition(t *testing.T) {
	input := "2024-01-01,Product,Client,Warehouse\n" +
		"5,P1,C1,W1\n"

	snap, err := snapshot.DecodeCSV("sales.csv", strings.NewReader(input))
	assert.NoError(t, err)

	assert.Equal(t, []string{"2024-01-01"}, snap.DateColumns)
	assert.Equal(t, "C1", snap.Rows[0].Client)
	assert.Equal(t, 5.0, *snap.Rows[0].Values[0])
}

func TestDecodeCSV_BOMHeader(t *testing.T) {
	input := "\uFEFFClient,Warehouse,Product,2024-01-01\nC1,W1,P1,1\n"

	snap, err := snapshot.DecodeCSV("sales.csv", strings.NewReader(input))
	assert.NoError(t, err)
	assert.Len(t, snap.Rows, 1)
}

func TestDecodeCSV_MissingIdentifiers(t *testing.T) {
	input := "Client,Product,2024-01-01\nC1,P1,1\n"

	_, err := snapshot.DecodeCSV("sales.csv", strings.NewReader(input))

	var missingErr *snapshot.MissingIdentifierError
	assert.True(t, errors.As(err, &missingErr))
	assert.Equal(t, []string{"Warehouse"}, missingErr.Missing)
}

func TestDecodeCSV_DuplicateColumn(t *testing.T) {
	input := "Client,Warehouse,Product,2024-01-01,2024-01-01\nC1,W1,P1,10,99\n"

	_, err := snapshot.DecodeCSV("sales.csv", strings.NewReader(input))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate column")

	// Repeated identifier columns are rejected the same way.
	input = "Client,Client,Warehouse,Product,2024-01-01\nC1,C1,W1,P1,1\n"
	_, err = snapshot.DecodeCSV("sales.csv", strings.NewReader(input))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate column")
}

func TestDecodeCSV_BadValue(t *testing.T) {
	input := "Client,Warehouse,Product,2024-01-01\nC1,W1,P1,abc\n"

	_, err := snapshot.DecodeCSV("sales.csv", strings.NewReader(input))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "2024-01-01")
}

func TestDecodeCSV_EmptyFile(t *testing.T) {
	_, err := snapshot.DecodeCSV("sales.csv", strings.NewReader(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty file")
}
