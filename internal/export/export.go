// Package export renders every selection of a catalog to static HTML and
// uploads the result, with the stylesheet and a manifest, to object storage.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/DukeRupert/felo-pricing/internal/catalog"
	"github.com/DukeRupert/felo-pricing/internal/handler"
	"github.com/DukeRupert/felo-pricing/internal/metrics"
	"github.com/DukeRupert/felo-pricing/internal/pricing"
	"github.com/DukeRupert/felo-pricing/internal/storage"
)

// Manifest summarizes one export run. It is written next to the pages.
type Manifest struct {
	RunID       string    `json:"run_id"`
	Variant     string    `json:"variant"`
	GeneratedAt time.Time `json:"generated_at"`
	Index       string    `json:"index"`
	Pages       []Entry   `json:"pages"`
	Assets      []string  `json:"assets"`

	// Pruned lists keys of the previous run that this run no longer
	// produces. They are deleted before the manifest is written.
	Pruned []string `json:"pruned,omitempty"`
}

// Entry is one exported page.
type Entry struct {
	Segment  string `json:"segment"`
	Currency string `json:"currency"`
	Key      string `json:"key"`
	URL      string `json:"url,omitempty"`
	Size     int    `json:"size"`
}

// Exporter writes the static site of one catalog.
type Exporter struct {
	catalog  *catalog.Catalog
	renderer *handler.Renderer
	storage  storage.Storage
	static   fs.FS
	config   Config
	logger   *slog.Logger
	now      func() time.Time
}

// New creates an Exporter. static holds the files served under /static/.
func New(
	cat *catalog.Catalog,
	renderer *handler.Renderer,
	store storage.Storage,
	static fs.FS,
	config Config,
	logger *slog.Logger,
) (*Exporter, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Exporter{
		catalog:  cat,
		renderer: renderer,
		storage:  store,
		static:   static,
		config:   config,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Run exports every segment and currency of the catalog, the landing page,
// the static assets and finally the manifest. Pages are uploaded
// concurrently; the first failure cancels the rest. Objects listed in the
// previous manifest that are not produced again are deleted.
func (e *Exporter) Run(ctx context.Context) (*Manifest, error) {
	start := e.now()
	variant := e.catalog.Variant().String()

	ctx, cancel := context.WithTimeout(ctx, e.config.Timeout)
	defer cancel()

	m := &Manifest{
		RunID:       uuid.NewString(),
		Variant:     variant,
		GeneratedAt: start.UTC(),
		Index:       storage.IndexKey(variant),
	}
	logger := e.logger.With("run_id", m.RunID, "variant", variant)
	logger.Info("export started")

	if err := e.run(ctx, m); err != nil {
		metrics.ExportFailed()
		logger.Error("export failed", "error", err)
		return nil, err
	}

	elapsed := e.now().Sub(start)
	metrics.ExportCompleted(elapsed, len(m.Pages)+1)
	logger.Info("export completed",
		"pages", len(m.Pages),
		"assets", len(m.Assets),
		"duration", elapsed,
	)
	return m, nil
}

func (e *Exporter) run(ctx context.Context, m *Manifest) error {
	previous, err := e.previousManifest(ctx, m.Variant)
	if err != nil {
		return err
	}

	states := e.states()

	entries := make([]Entry, len(states))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.Concurrency)

	for i, state := range states {
		g.Go(func() error {
			entry, err := e.exportPage(gctx, state)
			if err != nil {
				return err
			}
			entries[i] = entry
			return nil
		})
	}

	g.Go(func() error {
		return e.exportIndex(gctx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	m.Pages = entries

	assets, err := e.exportAssets(ctx)
	if err != nil {
		return err
	}
	m.Assets = assets

	if err := e.prune(ctx, previous, m); err != nil {
		return err
	}

	return e.putManifest(ctx, m)
}

// previousManifest reads the manifest of the last run. It returns nil when
// there is none or it cannot be decoded.
func (e *Exporter) previousManifest(ctx context.Context, variant string) (*Manifest, error) {
	key := storage.ManifestKey(variant)

	body, _, err := e.storage.Get(ctx, key)
	if storage.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read previous manifest: %w", err)
	}
	defer body.Close()

	var prev Manifest
	if err := json.NewDecoder(body).Decode(&prev); err != nil {
		e.logger.Warn("ignoring unreadable previous manifest", "key", key, "error", err)
		return nil, nil
	}
	return &prev, nil
}

// prune deletes the pages and assets of the previous run that m does not
// contain. Keys outside the variant's export root are never touched.
func (e *Exporter) prune(ctx context.Context, previous, m *Manifest) error {
	if previous == nil {
		return nil
	}

	current := make(map[string]bool, len(m.Pages)+len(m.Assets))
	for _, p := range m.Pages {
		current[p.Key] = true
	}
	for _, a := range m.Assets {
		current[a] = true
	}

	root := storage.VariantRoot(m.Variant) + "/"
	var stale []string
	for _, p := range previous.Pages {
		stale = append(stale, p.Key)
	}
	stale = append(stale, previous.Assets...)

	for _, key := range stale {
		if current[key] || !strings.HasPrefix(key, root) {
			continue
		}
		if err := e.storage.Delete(ctx, key); err != nil {
			return fmt.Errorf("prune %s: %w", key, err)
		}
		m.Pruned = append(m.Pruned, key)
		e.logger.Info("pruned stale object", "key", key)
	}
	return nil
}

// states lists every selection in tab order, currencies in selector order.
func (e *Exporter) states() []pricing.ViewState {
	var states []pricing.ViewState
	for _, seg := range e.catalog.Segments() {
		for _, code := range e.catalog.Currencies() {
			states = append(states, pricing.ViewState{Segment: seg, Currency: code})
		}
	}
	return states
}

func (e *Exporter) exportPage(ctx context.Context, state pricing.ViewState) (Entry, error) {
	variant := e.catalog.Variant().String()
	key := storage.PageKey(variant, state.Segment.String(), strings.ToLower(state.Currency.String()))

	url := e.publicURL(ctx, key)
	html, err := e.renderPage(ctx, state, "../..", url)
	if err != nil {
		return Entry{}, fmt.Errorf("render %s: %w", key, err)
	}

	if err := e.put(ctx, key, html); err != nil {
		return Entry{}, err
	}

	e.logger.Debug("exported page", "key", key, "size", len(html))
	return Entry{
		Segment:  state.Segment.String(),
		Currency: state.Currency.String(),
		Key:      key,
		URL:      url,
		Size:     len(html),
	}, nil
}

func (e *Exporter) exportIndex(ctx context.Context) error {
	key := storage.IndexKey(e.catalog.Variant().String())
	html, err := e.renderPage(ctx, pricing.NewViewState(e.catalog), ".", e.publicURL(ctx, key))
	if err != nil {
		return fmt.Errorf("render %s: %w", key, err)
	}
	return e.put(ctx, key, html)
}

func (e *Exporter) renderPage(ctx context.Context, state pricing.ViewState, root, canonical string) ([]byte, error) {
	page := pricing.BuildPage(e.catalog, state, e.now())

	section, err := handler.RenderSection(ctx, page)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	data := handler.NewStaticPageData(page, section, root, canonical)
	if err := e.renderer.Render(&buf, "public/pricing", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Exporter) exportAssets(ctx context.Context) ([]string, error) {
	variant := e.catalog.Variant().String()
	var keys []string

	err := fs.WalkDir(e.static, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(e.static, name)
		if err != nil {
			return err
		}
		key := storage.AssetKey(variant, name)
		if err := e.put(ctx, key, data); err != nil {
			return err
		}
		keys = append(keys, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("export assets: %w", err)
	}
	return keys, nil
}

func (e *Exporter) putManifest(ctx context.Context, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return e.put(ctx, storage.ManifestKey(m.Variant), data)
}

func (e *Exporter) put(ctx context.Context, key string, data []byte) error {
	return e.storage.Put(ctx, key, bytes.NewReader(data), storage.PutOptions{
		CacheControl: e.config.CacheControl,
		MaxSize:      e.config.MaxPageSize,
		Overwrite:    e.config.Overwrite,
	})
}

// publicURL is the absolute URL of key, or "" when the backend only knows
// relative paths.
func (e *Exporter) publicURL(ctx context.Context, key string) string {
	url, err := e.storage.URL(ctx, key, 0)
	if err != nil || !strings.HasPrefix(url, "http") {
		return ""
	}
	return url
}
