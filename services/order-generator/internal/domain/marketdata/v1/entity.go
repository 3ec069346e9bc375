package marketdatav1

// Snapshot is the order book snapshot the matching engine stores under the instrument symbol.
type Snapshot struct {
	OrderOffset       int64             `json:"orderOffset"`
	OrderBookSnapshot OrderBookSnapshot `json:"orderBookSnapshot"`
}

// OrderBookSnapshot lists the resting orders of the book.
type OrderBookSnapshot struct {
	Orders []SnapshotOrder `json:"orders"`
}

// SnapshotOrder is one resting order in a snapshot.
type SnapshotOrder struct {
	OrderID   string  `json:"orderID"`
	Size      float64 `json:"size"`
	Bid       bool    `json:"bid"`
	Price     float64 `json:"price"`
	UserID    string  `json:"userID"`
	Timestamp int64   `json:"timestamp"`
}
