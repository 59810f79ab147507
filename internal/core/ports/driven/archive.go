package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

// ArchiveStore persists crawl aggregates and chat transcripts so a
// retrieval session can be resumed later. Crawl trees themselves are
// built fresh per invocation; only the aggregated text is kept.
type ArchiveStore interface {
	// SaveBucket stores one domain's aggregated crawl text.
	SaveBucket(ctx context.Context, bucket *domain.DomainBucket) error

	// GetBucket loads the most recent aggregate for a domain.
	// Returns domain.ErrNotFound when the domain was never crawled.
	GetBucket(ctx context.Context, host string) (*domain.DomainBucket, error)

	// ListBuckets returns the archived domains, most recent first.
	ListBuckets(ctx context.Context) ([]ArchivedBucket, error)

	// SaveConversation stores a chat transcript.
	SaveConversation(ctx context.Context, conv *domain.Conversation) error

	// GetConversation loads a transcript by ID.
	GetConversation(ctx context.Context, id string) (*domain.Conversation, error)

	// Close releases the underlying database.
	Close() error
}

// ArchivedBucket is a listing entry for a stored crawl aggregate.
type ArchivedBucket struct {
	Domain    string
	Size      int
	CrawledAt time.Time
}
