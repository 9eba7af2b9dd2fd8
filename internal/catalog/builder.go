package catalog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/docwolf/actionmap/internal/diag"
	"github.com/docwolf/actionmap/internal/logging"
	"github.com/docwolf/actionmap/internal/monitoring"
	"github.com/docwolf/actionmap/internal/scrape"
)

// Source retrieves and parses one documentation page. The network layer
// lives behind this interface so builds are testable with canned documents.
type Source interface {
	Document(ctx context.Context, pageID string) (*goquery.Document, error)
}

// Catalog maps service name to that service's final action record set.
type Catalog map[string]map[string]scrape.ActionRecord

// Config holds builder tunables.
type Config struct {
	// Workers bounds concurrent page fetches. Defaults to 1.
	Workers int
	Log     *logging.Logger
	Metrics *monitoring.Metrics
}

// Builder orchestrates harvesting and reconciliation across all services.
type Builder struct {
	source    Source
	harvester *scrape.Harvester
	urlMap    map[string][]string
	workers   int
	log       *logging.Logger
	metrics   *monitoring.Metrics
}

// New creates a builder over the given page source and service-to-page map.
func New(source Source, urlMap map[string][]string, cfg Config) *Builder {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	log := cfg.Log
	if log == nil {
		log = logging.Nop()
	}
	return &Builder{
		source:    source,
		harvester: scrape.NewHarvester(),
		urlMap:    urlMap,
		workers:   workers,
		log:       log,
		metrics:   cfg.Metrics,
	}
}

// pageResult is one page's independent harvest output.
type pageResult struct {
	records map[string]scrape.ActionRecord
	diags   []diag.Diagnostic
}

// Build generates the full catalog.
//
// authoritative maps each service to its known action names; its key set
// decides which services are built. published is the provider's full index
// of page identifiers, used only for the unmapped-service check.
//
// Pages are harvested concurrently, each exactly once even when shared by
// several services. Reconciliation then runs serially per service in
// configured page order, because first-documented-wins merging is
// order-sensitive. The diagnostics list is sorted, so output is identical
// regardless of worker scheduling.
func (b *Builder) Build(ctx context.Context, authoritative map[string][]string, published []string) (Catalog, []diag.Diagnostic) {
	start := time.Now()
	var diags []diag.Diagnostic

	diags = append(diags, b.checkPublished(published)...)

	services := make([]string, 0, len(authoritative))
	for name := range authoritative {
		services = append(services, name)
	}
	sort.Strings(services)

	results := b.harvestAll(ctx, b.uniquePages(services))

	catalog := make(Catalog, len(services))
	for _, pageID := range sortedKeys(results) {
		diags = append(diags, results[pageID].diags...)
	}
	for _, service := range services {
		b.log.Info("reconciling service", zap.String("service", service))

		pageIDs := b.urlMap[service]
		pages := make([]map[string]scrape.ActionRecord, 0, len(pageIDs))
		for _, pageID := range pageIDs {
			if res, ok := results[pageID]; ok {
				pages = append(pages, res.records)
			}
		}

		merged, serviceDiags := Reconcile(service, pages, authoritative[service])
		catalog[service] = merged
		diags = append(diags, serviceDiags...)

		if b.metrics != nil {
			for _, record := range merged {
				if record.Orphan {
					b.metrics.Synthesized.Inc()
				}
			}
		}
	}

	diag.Sort(diags)

	if b.metrics != nil {
		b.metrics.Services.Set(float64(len(catalog)))
		b.metrics.BuildDuration.Observe(time.Since(start).Seconds())
	}
	b.log.Info("catalog build complete",
		zap.Int("services", len(catalog)),
		zap.Int("diagnostics", len(diags)),
		zap.Duration("elapsed", time.Since(start)))

	return catalog, diags
}

// checkPublished flags published page identifiers that no service maps to.
func (b *Builder) checkPublished(published []string) []diag.Diagnostic {
	mapped := make(map[string]struct{})
	for _, pageIDs := range b.urlMap {
		for _, pageID := range pageIDs {
			mapped[pageID] = struct{}{}
		}
	}

	var diags []diag.Diagnostic
	for _, name := range published {
		if _, ok := mapped[name]; !ok {
			diags = append(diags, diag.Warningf("Unmapped service is being published: %s", name))
		}
	}
	return diags
}

// uniquePages returns each page identifier needed by the given services
// exactly once. Variant pages shared across services are fetched once.
func (b *Builder) uniquePages(services []string) []string {
	seen := make(map[string]struct{})
	var pages []string
	for _, service := range services {
		for _, pageID := range b.urlMap[service] {
			if _, ok := seen[pageID]; ok {
				continue
			}
			seen[pageID] = struct{}{}
			pages = append(pages, pageID)
		}
	}
	return pages
}

// harvestAll fetches and harvests all pages under the worker bound. Each
// worker produces an independent result; nothing is shared until the final
// collection under the mutex.
func (b *Builder) harvestAll(ctx context.Context, pageIDs []string) map[string]pageResult {
	results := make(map[string]pageResult, len(pageIDs))

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, b.workers)
	)
	for _, pageID := range pageIDs {
		wg.Add(1)
		sem <- struct{}{}
		go func(pageID string) {
			defer wg.Done()
			defer func() { <-sem }()

			res := b.harvestPage(ctx, pageID)

			mu.Lock()
			results[pageID] = res
			mu.Unlock()
		}(pageID)
	}
	wg.Wait()

	return results
}

func (b *Builder) harvestPage(ctx context.Context, pageID string) pageResult {
	doc, err := b.source.Document(ctx, pageID)
	if err != nil {
		// A page that cannot be fetched is treated the same as a page
		// without an actions table. The cause goes to the log, not the
		// diagnostics, so diagnostics stay deterministic.
		b.log.Warn("page fetch failed", zap.String("page", pageID), zap.Error(err))
		if b.metrics != nil {
			b.metrics.PageFailures.Inc()
		}
		return pageResult{
			records: map[string]scrape.ActionRecord{},
			diags:   []diag.Diagnostic{diag.Warningf("Page missing actions table: %s", pageID)},
		}
	}

	records, diags := b.harvester.Harvest(doc, pageID)
	if b.metrics != nil {
		b.metrics.PagesFetched.Inc()
		b.metrics.RecordsBuilt.Add(float64(len(records)))
		if len(records) == 0 {
			b.metrics.PageFailures.Inc()
		}
	}
	return pageResult{records: records, diags: diags}
}

func sortedKeys(m map[string]pageResult) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
