package model

// TasbihSession is the live counter record. Count is unbounded above Goal;
// reaching the goal is a display state, not a cap.
type TasbihSession struct {
	Label string `json:"label"`
	Goal  int    `json:"goal"`
	Count int    `json:"count"`
}

// DhikrEntry is one entry in the recently-used list.
type DhikrEntry struct {
	Label string `json:"label"`
	Goal  int    `json:"goal"`
}

// TasbihLog is an immutable session record emitted on save.
type TasbihLog struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Count     int    `json:"count"`
	Goal      int    `json:"goal"`
	Timestamp int64  `json:"timestamp"`
}
