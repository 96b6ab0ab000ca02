package domain

import "time"

// Status classifies how close an item is to its expiry date.
type Status string

const (
	StatusSafe     Status = "safe"     // 90 days or more remaining
	StatusSoon     Status = "soon"     // 31 to 89 days remaining
	StatusExpired  Status = "expired"  // 30 days or fewer remaining, including past dates
	StatusNoExpiry Status = "noexpiry" // no expiry date, or one we could not read
)

// Column names the sheet is expected to carry. The parser keys records by
// whatever the header actually says; these are the columns the rest of the
// pipeline consults. A missing column reads as an empty field, never an error.
const (
	ColName     = "name"
	ColCategory = "category"
	ColQuantity = "quantity"
	ColExpiry   = "expiry-date"
	ColNote     = "note"
)

// Record is one parsed data row. Fields holds exactly one entry per header
// column; Columns preserves the header order for display.
type Record struct {
	Columns []string
	Fields  map[string]string
}

// Get returns the value of the named column, or "" if the sheet has no such
// column.
func (r Record) Get(col string) string { return r.Fields[col] }

func (r Record) Name() string       { return r.Fields[ColName] }
func (r Record) Category() string   { return r.Fields[ColCategory] }
func (r Record) Quantity() string   { return r.Fields[ColQuantity] }
func (r Record) ExpiryDate() string { return r.Fields[ColExpiry] }
func (r Record) Note() string       { return r.Fields[ColNote] }

// ExpiryInfo is the derived classification for one record. DaysLeft is nil
// when the record has no usable expiry date.
type ExpiryInfo struct {
	DaysLeft *int
	Status   Status
}

// Item is a record together with its expiry classification.
type Item struct {
	Record Record
	Expiry ExpiryInfo
}

// Snapshot is the full item set produced by one fetch. Snapshots are
// immutable: a refresh builds a new one and swaps it in wholesale.
type Snapshot struct {
	Items          []Item
	FetchedAt      time.Time
	MalformedDates int
}

// Summary counts items by status over the full (unfiltered) set. Items with
// no expiry date count toward Total only.
type Summary struct {
	Total   int
	Safe    int
	Soon    int
	Expired int
}
