package component

// StationID identifies one platform crowd
type StationID string

// LineID identifies a train and the line it runs on, one train per line
type LineID string
