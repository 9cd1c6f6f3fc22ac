// internal/event/event.go
package event

import (
	"encoding/json"
	"fmt"
	"io"
)

// Batch is one invocation's worth of object-store change notifications,
// in delivery order.
type Batch struct {
	Records []Record `json:"Records"`
}

// Record is a single change notification. The shape follows the S3 event
// notification JSON; only the nested object key is required.
type Record struct {
	EventName string `json:"eventName,omitempty"`
	S3        Entity `json:"s3"`
}

type Entity struct {
	Bucket Bucket `json:"bucket"`
	Object Object `json:"object"`
}

type Bucket struct {
	Name string `json:"name"`
}

type Object struct {
	Key  string `json:"key"`
	Size int64  `json:"size,omitempty"`
}

// Key returns the source object key named by the record.
func (r Record) Key() string {
	return r.S3.Object.Key
}

// DecodeBatch parses a notification batch from JSON.
func DecodeBatch(r io.Reader) (*Batch, error) {
	var batch Batch
	if err := json.NewDecoder(r).Decode(&batch); err != nil {
		return nil, fmt.Errorf("failed to decode notification batch: %w", err)
	}
	return &batch, nil
}

// SingleKeyBatch builds a one-record batch for the given source key, for
// manual replays that bypass the notification JSON.
func SingleKeyBatch(bucket, key string) *Batch {
	return &Batch{
		Records: []Record{
			{
				S3: Entity{
					Bucket: Bucket{Name: bucket},
					Object: Object{Key: key},
				},
			},
		},
	}
}
