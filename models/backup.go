package models

import (
	"encoding/json"
	"time"
)

// Backup is a timestamped snapshot of the full inventory mapping. Immutable
// once created; old rows are never pruned.
type Backup struct {
	ID        int64           `json:"id"`
	Data      json.RawMessage `json:"dados"`
	Size      int64           `json:"size"`
	CreatedAt time.Time       `json:"created_at"`
}

// BackupSummary is the payload-free view used by the backup list endpoint.
type BackupSummary struct {
	ID        int64     `json:"id"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}
