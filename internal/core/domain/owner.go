package domain

// OwnerNameMaxLength is the upper bound on an account owner's display name.
// A name exactly at this length is rejected by validation.
const OwnerNameMaxLength = 100

// AccountOwner represents a customer that owns zero or more accounts.
type AccountOwner struct {
	OwnerID string `json:"ownerID"` // Primary key (UUID)
	Name    string `json:"name"`
}
