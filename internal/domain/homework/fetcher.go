package homework

import "context"

// Fetcher defines how homework statuses are retrieved from the review service.
// The returned payload is the decoded JSON body and still has to pass CheckResponse.
type Fetcher interface {
	FetchStatuses(ctx context.Context, fromDate int64) (any, error)
}
