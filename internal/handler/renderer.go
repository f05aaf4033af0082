package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"strings"
	"sync"
)

// Renderer manages template parsing and rendering with isolated template sets.
// Pages share the "public" layout.
//
// Templates are organized as:
//   - layouts/public.html - base layout
//   - partials/*.html - fragments shared by pages and usable alone for htmx responses
//   - pages/public/*.html - pages (use public layout)
type Renderer struct {
	templates map[string]*template.Template
	logger    *slog.Logger
	isDev     bool
	mu        sync.RWMutex

	fsys fs.FS
}

// RendererConfig holds configuration for the renderer.
type RendererConfig struct {
	// TemplatesDir reads templates from disk. When empty, FS is used.
	TemplatesDir string
	FS           fs.FS
	Logger       *slog.Logger
	IsDev        bool
}

// NewRenderer creates a new template renderer.
func NewRenderer(cfg RendererConfig) (*Renderer, error) {
	fsys := cfg.FS
	if cfg.TemplatesDir != "" {
		fsys = os.DirFS(cfg.TemplatesDir)
	}
	if fsys == nil {
		return nil, fmt.Errorf("renderer: no template source configured")
	}

	r := &Renderer{
		templates: make(map[string]*template.Template),
		logger:    cfg.Logger,
		isDev:     cfg.IsDev && cfg.TemplatesDir != "",
		fsys:      fsys,
	}

	if err := r.loadTemplates(); err != nil {
		return nil, err
	}

	return r, nil
}

// NewRendererFromFS creates a renderer from an embedded filesystem rooted at
// the templates directory.
func NewRendererFromFS(fsys fs.FS, logger *slog.Logger) (*Renderer, error) {
	return NewRenderer(RendererConfig{FS: fsys, Logger: logger})
}

func (r *Renderer) loadTemplates() error {
	templates := make(map[string]*template.Template)

	partialFiles, err := fs.Glob(r.fsys, "partials/*.html")
	if err != nil {
		return fmt.Errorf("failed to glob partials: %w", err)
	}

	// Parse each partial as a standalone template
	for _, partial := range partialFiles {
		partialTmpl, err := template.New("").Funcs(TemplateFuncs()).ParseFS(r.fsys, partial)
		if err != nil {
			return fmt.Errorf("failed to parse partial %s: %w", partial, err)
		}
		templates["partial/"+baseName(partial)] = partialTmpl
	}

	publicBaseTmpl, err := template.New("public").Funcs(TemplateFuncs()).ParseFS(r.fsys, "layouts/public.html")
	if err != nil {
		return fmt.Errorf("failed to parse public layout: %w", err)
	}

	// Parse partials into public layout so pages can use {{template "partial_name"}}
	if len(partialFiles) > 0 {
		publicBaseTmpl, err = publicBaseTmpl.ParseFS(r.fsys, partialFiles...)
		if err != nil {
			return fmt.Errorf("failed to parse partials into public layout: %w", err)
		}
	}

	publicPages, err := fs.Glob(r.fsys, "pages/public/*.html")
	if err != nil {
		return fmt.Errorf("failed to glob public pages: %w", err)
	}

	for _, page := range publicPages {
		pageTmpl, err := publicBaseTmpl.Clone()
		if err != nil {
			return fmt.Errorf("failed to clone public template for %s: %w", page, err)
		}

		pageTmpl, err = pageTmpl.ParseFS(r.fsys, page)
		if err != nil {
			return fmt.Errorf("failed to parse public page %s: %w", page, err)
		}

		// Store as "public/pricing"
		templates["public/"+baseName(page)] = pageTmpl
	}

	r.templates = templates
	r.logger.Info("templates loaded", "count", len(templates))
	return nil
}

// Reload reloads all templates from the source. Useful for development.
func (r *Renderer) Reload() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.loadTemplates()
}

// Render renders a template to an io.Writer.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	if r.isDev {
		if err := r.Reload(); err != nil {
			return fmt.Errorf("template reload failed: %w", err)
		}
	}

	r.mu.RLock()
	tmpl, ok := r.templates[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	return tmpl.ExecuteTemplate(w, r.getBaseTemplateName(name), data)
}

// RenderHTML renders a template and returns the HTML as a string.
func (r *Renderer) RenderHTML(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderHTTP renders a template directly to an http.ResponseWriter.
func (r *Renderer) RenderHTTP(w http.ResponseWriter, name string, data any) {
	// Render to buffer first to catch errors before writing headers
	var buf bytes.Buffer
	if err := r.Render(&buf, name, data); err != nil {
		r.logger.Error("template execution failed", "name", name, "error", err)
		http.Error(w, "Template execution failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// RenderPartial renders a partial template (for htmx responses).
// The partial file should contain {{define "name"}}...{{end}} where name matches the file name.
func (r *Renderer) RenderPartial(w io.Writer, name string, data any) error {
	r.mu.RLock()
	tmpl, ok := r.templates["partial/"+name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("partial %q not found", name)
	}
	return tmpl.ExecuteTemplate(w, name, data)
}

// getBaseTemplateName determines which base template to execute.
func (r *Renderer) getBaseTemplateName(name string) string {
	if strings.HasPrefix(name, "partial/") {
		return path.Base(name)
	}
	return "public"
}

// ListTemplates returns a list of all loaded template names.
func (r *Renderer) ListTemplates() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	return names
}

func baseName(p string) string {
	return strings.TrimSuffix(path.Base(p), path.Ext(p))
}
