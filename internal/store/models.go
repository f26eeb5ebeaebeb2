package store

type Run struct {
	ID         string
	InputPath  string
	StartedAt  int64
	FinishedAt int64
	Processed  int
	Applied    int
	Rejected   int
}

type SnapshotRow struct {
	RunID     string
	ClientID  int64
	Available int64
	Held      int64
	Total     int64
	Locked    bool
}
