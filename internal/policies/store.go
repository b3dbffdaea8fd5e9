package policies

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/repurposer/internal/domain"
)

const (
	storeMaxOpenConns    = 5
	storeMaxIdleConns    = 2
	storeConnMaxLifetime = 5 * time.Minute
	storePingTimeout     = 5 * time.Second
)

// Store reads policy list overrides from a relational database. It is
// consulted once at startup; the pipeline never touches it afterward.
type Store struct {
	db *sqlx.DB
}

// Open connects to the policy database. Supported drivers are sqlite3 and
// postgres; the caller imports the matching driver package.
func Open(driver, dsn string) (*Store, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open policy store: %w", err)
	}

	db.SetMaxOpenConns(storeMaxOpenConns)
	db.SetMaxIdleConns(storeMaxIdleConns)
	db.SetConnMaxLifetime(storeConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), storePingTimeout)
	defer cancel()

	if pingErr := db.PingContext(ctx); pingErr != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping policy store: %w", pingErr)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies store connectivity, used by the health endpoint.
func (s *Store) Ping() error {
	return s.db.Ping()
}

type policyEntry struct {
	ListName string `db:"list_name"`
	Entry    string `db:"entry"`
}

// LoadLists reads every override list, keyed by list name, ordered by the
// position column within each list.
func (s *Store) LoadLists(ctx context.Context) (map[string][]string, error) {
	query := `
		SELECT list_name, entry
		FROM policy_entries
		ORDER BY list_name, position
	`

	var entries []policyEntry
	if err := s.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("failed to load policy entries: %w", err)
	}

	lists := make(map[string][]string)
	for _, e := range entries {
		lists[e.ListName] = append(lists[e.ListName], e.Entry)
	}

	return lists, nil
}

// List names recognized by Apply.
const (
	ListPositiveWords      = "positive_words"
	ListNegativeWords      = "negative_words"
	ListCTAPhrases         = "cta_phrases"
	ListPowerWords         = "power_words"
	ListBusinessTerms      = "business_terms"
	ListHashtagTips        = "hashtag_tips"
	ListTimingTips         = "timing_tips"
	ListAudiences          = "audiences"
	ListShortFormTags      = "short_form_tags"
	ListProfessionalTags   = "professional_tags"
	ListShortFormTrending  = "short_form_trending"
	ListProfessionalTrends = "professional_trending"
)

// Apply overlays named list overrides onto the tables. Unknown list names
// are ignored so a shared database can carry lists for other services.
func (t *Tables) Apply(lists map[string][]string) {
	for name, entries := range lists {
		if len(entries) == 0 {
			continue
		}
		switch name {
		case ListPositiveWords:
			t.PositiveWords = entries
		case ListNegativeWords:
			t.NegativeWords = entries
		case ListCTAPhrases:
			t.CTAPhrases = entries
		case ListPowerWords:
			t.PowerWords = entries
		case ListBusinessTerms:
			t.BusinessTerms = entries
		case ListHashtagTips:
			t.HashtagTips = entries
		case ListTimingTips:
			t.TimingTips = entries
		case ListAudiences:
			t.Audiences = entries
		case ListShortFormTags:
			t.ChannelTags[domain.ChannelShortForm] = entries
		case ListProfessionalTags:
			t.ChannelTags[domain.ChannelProfessional] = entries
		case ListShortFormTrending:
			t.TrendingTags[domain.ChannelShortForm] = entries
		case ListProfessionalTrends:
			t.TrendingTags[domain.ChannelProfessional] = entries
		}
	}
}
