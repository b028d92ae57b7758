package model

import "time"

// Metadata holds columns the store fills in on insert.
type Metadata struct {
	CreatedAt time.Time `db:"created_at" insert:"false" json:"createdAt"`
}
