package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LISSConsulting/LISSTech.Gridwork/internal/config"
	"github.com/LISSConsulting/LISSTech.Gridwork/internal/dom"
	"github.com/LISSConsulting/LISSTech.Gridwork/internal/layout"
	"github.com/LISSConsulting/LISSTech.Gridwork/internal/observability"
	"github.com/LISSConsulting/LISSTech.Gridwork/internal/raster"
)

// env is the loaded configuration and the logger built from it.
type env struct {
	cfg    *config.Config
	log    *zap.Logger
	closer io.Closer
}

func (e *env) close() {
	_ = observability.Sync(e.log)
	_ = e.closer.Close()
}

// loadEnv loads the scene config named by --config and logs to stderr.
func loadEnv(cmd *cobra.Command) (*env, error) {
	return loadEnvWith(cmd, zapcore.Lock(os.Stderr))
}

// loadViewerEnv is loadEnv without console logging, which would corrupt the
// viewer's screen. Only log.file receives entries.
func loadViewerEnv(cmd *cobra.Command) (*env, error) {
	return loadEnvWith(cmd, nil)
}

func loadEnvWith(cmd *cobra.Command, console zapcore.WriteSyncer) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	level, _ := cmd.Flags().GetString("log-level")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if level != "" {
		cfg.Log.Level = level
	}
	log, closer, err := observability.New(cfg.Log, console)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, closer: closer}, nil
}

// selection binds indirect name to the alternative labelled alt.
type selection struct {
	name, alt string
}

type renderOptions struct {
	width, height int // 0 keeps the configured size
	selections    []selection
}

// parseSelections parses name=alternative pairs. An empty alternative picks
// the empty cell.
func parseSelections(raw []string) ([]selection, error) {
	out := make([]selection, 0, len(raw))
	for _, s := range raw {
		name, alt, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("--select %q: want name=alternative", s)
		}
		if alt == "" {
			alt = "(empty)"
		}
		out = append(out, selection{name: name, alt: alt})
	}
	return out, nil
}

// buildDocument builds the scene, applies the selections and renders it into
// a document of the requested size.
func buildDocument(e *env, opts renderOptions) (*config.Scene, *dom.Document, error) {
	scene, err := config.Build(e.cfg, e.log)
	if err != nil {
		return nil, nil, err
	}
	for _, sel := range opts.selections {
		ref := scene.Ref(sel.name)
		if ref == nil {
			return nil, nil, fmt.Errorf("--select: scene has no indirect %q", sel.name)
		}
		i := slices.Index(ref.Labels, sel.alt)
		if i < 0 {
			return nil, nil, fmt.Errorf("--select: indirect %q has no alternative %q (have %s)",
				sel.name, sel.alt, strings.Join(ref.Labels, ", "))
		}
		if err := ref.Select(i); err != nil {
			return nil, nil, err
		}
	}

	width, height := e.cfg.Scene.Width, e.cfg.Scene.Height
	if opts.width > 0 {
		width = opts.width
	}
	if opts.height > 0 {
		height = opts.height
	}
	doc := dom.NewDocument(width, height)
	if err := doc.Render(scene); err != nil {
		return nil, nil, fmt.Errorf("render scene %q: %w", scene.Name, err)
	}
	e.log.Info("rendered scene",
		zap.String("scene", scene.Name),
		zap.Int("width", width),
		zap.Int("height", height))
	return scene, doc, nil
}

// executeRender writes the painted scene to w.
func executeRender(w io.Writer, e *env, opts renderOptions, plain bool) error {
	_, doc, err := buildDocument(e, opts)
	if err != nil {
		return err
	}
	if !plain {
		_, err = fmt.Fprintln(w, raster.Terminal(doc.Root()))
		return err
	}
	cv := raster.Paint(doc.Root())
	_, height := cv.Size()
	for y := 0; y < height; y++ {
		if _, err := fmt.Fprintln(w, cv.Row(y)); err != nil {
			return err
		}
	}
	return nil
}

// executeSnapshot writes the scene as a PNG to out, creating its directory.
func executeSnapshot(e *env, opts renderOptions, out string, scale int) error {
	_, doc, err := buildDocument(e, opts)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := raster.SavePNG(out, doc.Root(), scale); err != nil {
		return err
	}
	e.log.Info("wrote snapshot", zap.String("path", out), zap.Int("scale", scale))
	return nil
}

// executePartition splits size by the comma-separated specs and formats
// every cell's spec, start and size as a table.
func executePartition(size int, specs string, margins []int, spacing int) (string, error) {
	if len(margins) != 2 {
		return "", fmt.Errorf("--margins takes two values, got %d", len(margins))
	}
	var cells []layout.SizeSpec
	for _, raw := range strings.Split(specs, ",") {
		spec, err := layout.ParseSizeSpec(raw)
		if err != nil {
			return "", err
		}
		cells = append(cells, spec)
	}

	sizes, err := layout.Partition(size, cells, margins[0], margins[1], spacing)
	if err != nil {
		return "", err
	}
	return formatPartition(cells, sizes), nil
}

func formatPartition(cells []layout.SizeSpec, sizes []int) string {
	offs := layout.Offsets(sizes)
	rows := make([][]string, len(cells))
	for i, spec := range cells {
		rows[i] = []string{
			strconv.Itoa(i),
			spec.String(),
			strconv.Itoa(offs[2*i+1]),
			strconv.Itoa(sizes[2*i+1]),
		}
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("cell", "spec", "start", "size").
		Rows(rows...)

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")
	fmt.Fprintf(&b, "margins %d/%d  spacing %d  total %d\n",
		sizes[0], sizes[len(sizes)-1], spacingOf(sizes), offs[len(offs)-1]+sizes[len(sizes)-1])
	return b.String()
}

// spacingOf returns the gutter of a partition, 0 when it has a single cell.
func spacingOf(sizes []int) int {
	if len(sizes) < 5 {
		return 0
	}
	return sizes[2]
}

// formatScaffoldResult formats the list of created files for display.
func formatScaffoldResult(created []string) string {
	if len(created) == 0 {
		return "All files already exist — nothing to create.\n"
	}
	var b strings.Builder
	for _, path := range created {
		fmt.Fprintf(&b, "Created %s\n", path)
	}
	return b.String()
}
