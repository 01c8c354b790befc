package types

// Item is a user-defined recurring thing being tracked. CategoryID may be
// empty ("no category") or reference a category that no longer exists;
// consumers resolve both cases to "Uncategorized".
type Item struct {
	ItemID     string `json:"id"`
	Title      string `json:"title"`
	CategoryID string `json:"categoryId"`
	CreatedAt  string `json:"createdAt"` // calendar date, YYYY-MM-DD
}

// ItemPatch describes a partial update to an Item.
// Nil fields are left unchanged.
type ItemPatch struct {
	Title      *string
	CategoryID *string
}
