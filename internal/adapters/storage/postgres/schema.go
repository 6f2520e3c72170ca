package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jsamuelsen11/parcel-service/internal/domain/parcel"
)

const createParcelsTableSQL = `
	CREATE TABLE IF NOT EXISTS parcels (
		id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		sender_name TEXT NOT NULL,
		receiver_name TEXT NOT NULL,
		parcel_description TEXT NOT NULL,
		received_date DATE NOT NULL,
		status TEXT NOT NULL,
		contact_number TEXT NULL
	);
	`

// InitSchema creates the parcels table if it does not exist. All DDL runs in
// one transaction.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		createParcelsTableSQL,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// ParcelSeed is one entry of a seed file. It uses the same JSON shape as the
// HTTP API.
type ParcelSeed struct {
	SenderName        string  `json:"senderName"`
	ReceiverName      string  `json:"receiverName"`
	ParcelDescription string  `json:"parcelDescription"`
	ReceivedDate      string  `json:"receivedDate"`
	Status            string  `json:"status"`
	ContactNumber     *string `json:"contactNumber"`
}

// LoadSeeds reads and validates a JSON array of parcels from path.
func LoadSeeds(path string) ([]parcel.Parcel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed parcels: read %q: %w", path, err)
	}

	var data []ParcelSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("seed parcels: parse json: %w", err)
	}

	parcels := make([]parcel.Parcel, 0, len(data))
	for i, item := range data {
		p := parcel.Parcel{
			SenderName:        strings.TrimSpace(item.SenderName),
			ReceiverName:      strings.TrimSpace(item.ReceiverName),
			ParcelDescription: strings.TrimSpace(item.ParcelDescription),
			Status:            parcel.Status(strings.TrimSpace(item.Status)),
			ContactNumber:     item.ContactNumber,
		}

		if item.ReceivedDate != "" {
			d, err := parcel.ParseDate(item.ReceivedDate)
			if err != nil {
				return nil, fmt.Errorf("seed parcels: item at index %d: %w", i+1, err)
			}
			p.ReceivedDate = d
		}

		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("seed parcels: item at index %d: %w", i+1, err)
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}

// SeedFromJSON inserts the parcels listed in the JSON file at path and
// returns how many rows were written. Either every row is inserted or none.
func SeedFromJSON(ctx context.Context, db *sql.DB, path string) (int, error) {
	if db == nil {
		return 0, errors.New("seed parcels: DB is nil")
	}

	parcels, err := LoadSeeds(path)
	if err != nil {
		return 0, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("seed parcels: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertParcelSQL)
	if err != nil {
		return 0, fmt.Errorf("seed parcels: prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, p := range parcels {
		var id int64
		if err := stmt.QueryRowContext(ctx,
			p.SenderName,
			p.ReceiverName,
			p.ParcelDescription,
			p.ReceivedDate.Time(),
			string(p.Status),
			nullString(p.ContactNumber),
		).Scan(&id); err != nil {
			return 0, fmt.Errorf("seed parcels: insert item at index %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("seed parcels: commit tx: %w", err)
	}

	return len(parcels), nil
}
