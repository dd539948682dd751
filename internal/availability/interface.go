package availability

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Suggest returns up to five ranked, non-overlapping candidate slots
	// for the resolved target day. An empty result is a valid answer,
	// never an error.
	Suggest(ctx context.Context, userID string, input SuggestInput) ([]Slot, error)
}
