package model

// UserProfile is the tracker setup record. BirthDate is an ISO date string
// (empty means unset). HasSetup gates whether the debt ledger may be shown;
// callers must not infer "no debt" from owed days alone.
type UserProfile struct {
	BirthDate string `json:"birthDate"`
	HasSetup  bool   `json:"hasSetup"`
}
