// Package loader orchestrates one dashboard load: directory tab first, then
// every referenced tab concurrently, then the aggregation barrier. A tab that
// fails or classifies as nothing contributes zero records and the load goes
// on; only the caller's write path ever surfaces errors to the user.
package loader

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"leadboard-engine/internal/aggregate"
	"leadboard-engine/internal/config"
	"leadboard-engine/internal/domain"
	"leadboard-engine/internal/sheet"
)

type TabError struct {
	Tab string `json:"tab"`
	Err string `json:"err"`
}

// Result is everything one load produced. It is request-scoped: nothing here
// survives past the response that carried it.
type Result struct {
	Posts     []domain.DirectoryEntry `json:"posts"`
	Profiles  []domain.ProfileEntry   `json:"profiles"`
	Leads     []domain.LeadEntry      `json:"leads"`
	Unified   []domain.UnifiedLead    `json:"unified"`
	Stats     domain.Stats            `json:"stats"`
	TabErrors []TabError              `json:"tabErrors,omitempty"`
	LoadedAt  time.Time               `json:"loadedAt"`
}

type Loader struct {
	Client *sheet.Client
	Cfg    config.Config
}

// Load runs the full fetch-classify-build-aggregate cycle. Per-tab fetches
// run concurrently; aggregation waits for all of them.
func (l *Loader) Load(ctx context.Context) Result {
	res := Result{LoadedAt: time.Now().UTC()}

	dirRows, err := l.fetchDirectory(ctx)
	if err != nil {
		log.Printf("[loader] directory fetch failed: %v", err)
		res.TabErrors = append(res.TabErrors, TabError{Tab: "directory", Err: err.Error()})
	} else {
		res.Posts = sheet.BuildDirectoryEntries(dirRows)
	}

	// Fan out per-tab fetches; collect into a slice indexed by directory
	// position so merge order (and therefore dedup winners) is deterministic.
	type tabResult struct {
		profiles []domain.ProfileEntry
		err      *TabError
	}
	perTab := make([]tabResult, len(res.Posts))

	timeout := l.tabTimeout()
	var g errgroup.Group
	for i, post := range res.Posts {
		if post.TabID == nil {
			log.Printf("[loader] no gid in sheet ref, skipping topic=%q ref=%q", post.Topic, post.SheetRef)
			continue
		}
		i, post := i, post
		g.Go(func() error {
			tctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			rows, err := l.Client.FetchTabByGID(tctx, *post.TabID)
			if err != nil {
				log.Printf("[loader] tab gid=%d topic=%q fetch failed: %v", *post.TabID, post.Topic, err)
				perTab[i] = tabResult{err: &TabError{Tab: fmt.Sprintf("gid=%d", *post.TabID), Err: err.Error()}}
				return nil // best-effort: don't cancel siblings
			}
			perTab[i] = tabResult{profiles: l.buildTab(rows, post)}
			return nil
		})
	}

	// The curated leads tab is addressed by name, not discovered from the
	// directory. No configured name means no curated tab.
	var leads []domain.LeadEntry
	if l.Cfg.Tabs.Leads != "" {
		g.Go(func() error {
			tctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			rows, err := l.Client.FetchTabByName(tctx, l.Cfg.Tabs.Leads)
			if err != nil {
				log.Printf("[loader] leads tab %q fetch failed: %v", l.Cfg.Tabs.Leads, err)
				res.TabErrors = append(res.TabErrors, TabError{Tab: l.Cfg.Tabs.Leads, Err: err.Error()})
				return nil
			}
			leads = sheet.BuildLeadEntries(rows, "")
			return nil
		})
	}

	_ = g.Wait()

	for _, tr := range perTab {
		res.Profiles = append(res.Profiles, tr.profiles...)
		if tr.err != nil {
			res.TabErrors = append(res.TabErrors, *tr.err)
		}
	}
	res.Leads = leads

	res.Unified = aggregate.MergeLeads(res.Profiles, res.Leads)
	res.Stats = aggregate.ComputeStats(res.Posts, res.Profiles, res.Leads)
	res.Stats.TotalUnified = len(res.Unified)

	log.Printf("[loader] done posts=%d scraped=%d leads=%d unified=%d tab_errors=%d",
		res.Stats.TotalPosts, res.Stats.TotalScraped, res.Stats.TotalLeads,
		res.Stats.TotalUnified, len(res.TabErrors))
	return res
}

// buildTab classifies a fetched tab and dispatches the matching builder.
func (l *Loader) buildTab(rows [][]string, post domain.DirectoryEntry) []domain.ProfileEntry {
	if len(rows) == 0 {
		return nil
	}
	switch tab := sheet.Classify(rows[0]); tab {
	case sheet.TabProfiles:
		return sheet.BuildProfileEntries(rows, post.Topic, post.TabID)
	case sheet.TabMessages, sheet.TabDirectory:
		log.Printf("[loader] tab for topic=%q classified as %s, not profile data; skipping", post.Topic, tab)
		return nil
	default:
		log.Printf("[loader] tab for topic=%q matches no schema; skipping", post.Topic)
		return nil
	}
}

func (l *Loader) fetchDirectory(ctx context.Context) ([][]string, error) {
	tctx, cancel := context.WithTimeout(ctx, l.tabTimeout())
	defer cancel()
	return l.Client.FetchTabByGID(tctx, l.Cfg.Sheet.DirectoryGID)
}

func (l *Loader) tabTimeout() time.Duration {
	if s := l.Cfg.Sheet.TabTimeoutSeconds; s > 0 {
		return time.Duration(s) * time.Second
	}
	return 30 * time.Second
}

// LoadMessages fetches and builds the message-queue tab. Both the /messages
// read and the approval updater's row re-derivation go through here, so the
// ordinal walk is one routine, not two copies.
func (l *Loader) LoadMessages(ctx context.Context) ([]domain.MessageEntry, sheet.MessageColumns, error) {
	tctx, cancel := context.WithTimeout(ctx, l.tabTimeout())
	defer cancel()

	rows, err := l.Client.FetchTabByName(tctx, l.Cfg.Tabs.Messages)
	if err != nil {
		return nil, sheet.MessageColumns{}, fmt.Errorf("messages tab %q: %w", l.Cfg.Tabs.Messages, err)
	}
	if len(rows) == 0 {
		return nil, sheet.MessageColumns{}, nil
	}
	return sheet.BuildMessageEntries(rows), sheet.ResolveMessageColumns(rows[0]), nil
}
