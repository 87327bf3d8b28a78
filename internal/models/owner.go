package models

// AccountOwner is the persisted row shape for an account owner.
type AccountOwner struct {
	OwnerID string `db:"owner_id"`
	Name    string `db:"name"`
}
