package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/spaghettifunk/meshforge/engine"
	"github.com/spaghettifunk/meshforge/engine/assets"
	"github.com/spaghettifunk/meshforge/engine/core"
	"github.com/spaghettifunk/meshforge/engine/export"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/spaghettifunk/meshforge/engine/systems"
	"github.com/spaghettifunk/meshforge/testbed"
)

var errFailedJobs = errors.New("some shapes failed to tessellate")

// forge holds the flags shared by every command.
type forge struct {
	verbose  bool
	workers  int
	outDir   string
	quiet    bool
	combined string
	weld     float32
	preview  export.PreviewOptions
}

func newRootCommand() *cobra.Command {
	f := &forge{preview: export.DefaultPreviewOptions()}

	root := &cobra.Command{
		Use:           "meshforge",
		Short:         "Procedural mesh tessellation for VFX shapes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if f.verbose {
				core.SetLogLevel(core.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().IntVarP(&f.workers, "workers", "w", runtime.NumCPU(), "number of tessellation workers")
	root.PersistentFlags().BoolVarP(&f.quiet, "quiet", "q", false, "hide the progress bar")

	root.AddCommand(
		f.buildCommand(),
		f.previewCommand(),
		f.statsCommand(),
		f.watchCommand(),
		f.galleryCommand(),
	)
	return root
}

func (f *forge) addPreviewFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.preview.Size, "size", f.preview.Size, "preview edge length in pixels")
	cmd.Flags().Float32Var(&f.preview.Yaw, "yaw", f.preview.Yaw, "camera yaw in degrees")
	cmd.Flags().Float32Var(&f.preview.Pitch, "pitch", f.preview.Pitch, "camera pitch in degrees")
}

func (f *forge) buildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <document>",
		Short: "Tessellate every entry of a shape document into OBJ files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := f.tessellateDocument(args[0])
			if err != nil {
				return err
			}
			if f.combined != "" {
				return f.writeCombined(results)
			}
			return f.writeOBJs(results)
		},
	}
	cmd.Flags().StringVarP(&f.outDir, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&f.combined, "combined", "", "write all entries as objects of one OBJ file with this name")
	cmd.Flags().Float32Var(&f.weld, "weld", 0, "merge vertices closer than this tolerance before writing")
	return cmd
}

func (f *forge) previewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <document>",
		Short: "Render a PNG preview of every entry of a shape document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := f.tessellateDocument(args[0])
			if err != nil {
				return err
			}
			return f.writePNGs(results)
		},
	}
	cmd.Flags().StringVarP(&f.outDir, "out", "o", ".", "output directory")
	f.addPreviewFlags(cmd)
	return cmd
}

func (f *forge) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <document>",
		Short: "Print vertex, primitive and size statistics of a shape document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.quiet = true
			results, err := f.tessellateDocument(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), statsTable(results))
			return failures(results)
		},
	}
}

func (f *forge) watchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <directory>",
		Short: "Rebuild the OBJ files of a directory of shape documents whenever they change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.quiet = true
			return f.watch(cmd.Context(), args[0])
		},
	}
	cmd.Flags().StringVarP(&f.outDir, "out", "o", ".", "output directory")
	return cmd
}

func (f *forge) galleryCommand() *cobra.Command {
	var frames int
	var fps float64
	var noPreview bool

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Render the built-in showcase of every shape family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := core.InfoLevel
			if f.verbose {
				level = core.DebugLevel
			}
			game := testbed.NewGalleryGame(&engine.ApplicationConfig{
				Name:            "meshforge gallery",
				Frames:          frames,
				FramesPerSecond: fps,
				Workers:         f.workers,
				LogLevel:        level,
			}, func(frame uint64, results []systems.JobResult) error {
				if err := f.writeOBJs(results); err != nil {
					return err
				}
				if noPreview {
					return nil
				}
				return f.writePNGs(results)
			})

			e, err := engine.New(game.Game)
			if err != nil {
				return err
			}
			if err := e.Initialize(); err != nil {
				return err
			}
			runErr := e.Run(cmd.Context())
			if err := e.Shutdown(); err != nil && runErr == nil {
				runErr = err
			}
			return runErr
		},
	}
	cmd.Flags().StringVarP(&f.outDir, "out", "o", "gallery", "output directory")
	cmd.Flags().IntVar(&frames, "frames", 1, "number of animation frames, 0 runs until interrupted")
	cmd.Flags().Float64Var(&fps, "fps", 30, "frames per second of the animation")
	cmd.Flags().BoolVar(&noPreview, "no-preview", false, "skip the PNG previews")
	f.addPreviewFlags(cmd)
	return cmd
}

// tessellateDocument loads path and runs every entry through a job system.
func (f *forge) tessellateDocument(path string) ([]systems.JobResult, error) {
	doc, err := assets.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return f.tessellate(doc)
}

func (f *forge) tessellate(doc *assets.Document) ([]systems.JobResult, error) {
	entries, err := doc.Resolve()
	if err != nil {
		return nil, err
	}
	jobs := make([]systems.TessellationJob, 0, len(entries))
	for _, e := range entries {
		jobs = append(jobs, systems.NewTessellationJob(e.Name, e.Shape, e.Options))
	}

	js, err := systems.NewJobSystem(f.workers, len(jobs))
	if err != nil {
		return nil, err
	}
	defer js.Shutdown()

	var progress func(systems.JobResult)
	if !f.quiet {
		bar := progressbar.Default(int64(len(jobs)), "tessellating")
		defer bar.Close()
		progress = func(systems.JobResult) {
			_ = bar.Add(1)
		}
	}
	results, err := js.RunAll(jobs, progress)
	if err != nil {
		return nil, err
	}
	core.LogDebug("tessellated %d shapes, %s average", len(results), js.Metrics().AverageTime())
	return results, nil
}

func (f *forge) writeOBJs(results []systems.JobResult) error {
	if err := os.MkdirAll(f.outDir, 0o755); err != nil {
		return err
	}
	for _, r := range results {
		if r.Err != nil {
			core.LogError("%s: %s", r.Name, r.Err)
			continue
		}
		path := filepath.Join(f.outDir, r.Name+".obj")
		if err := writeFile(path, func(file *os.File) error {
			_, err := export.WriteOBJ(file, r.Name, f.welded(r.Mesh), 1)
			return err
		}); err != nil {
			return err
		}
		core.LogDebug("wrote %s (%d primitives)", path, r.Mesh.PrimitiveCount())
	}
	return failures(results)
}

// welded merges duplicate seam vertices when --weld is set.
func (f *forge) welded(m *mesh.Mesh) *mesh.Mesh {
	if f.weld <= 0 {
		return m
	}
	return mesh.Weld(m, f.weld)
}

func (f *forge) writeCombined(results []systems.JobResult) error {
	if err := os.MkdirAll(f.outDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(f.outDir, f.combined)
	if filepath.Ext(path) == "" {
		path += ".obj"
	}
	err := writeFile(path, func(file *os.File) error {
		next := 1
		for _, r := range results {
			if r.Err != nil {
				core.LogError("%s: %s", r.Name, r.Err)
				continue
			}
			n, err := export.WriteOBJ(file, r.Name, f.welded(r.Mesh), next)
			if err != nil {
				return err
			}
			next += n
		}
		return nil
	})
	if err != nil {
		return err
	}
	return failures(results)
}

func (f *forge) writePNGs(results []systems.JobResult) error {
	if err := os.MkdirAll(f.outDir, 0o755); err != nil {
		return err
	}
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		path := filepath.Join(f.outDir, r.Name+".png")
		if err := writeFile(path, func(file *os.File) error {
			return export.WritePNG(file, r.Mesh, f.preview)
		}); err != nil {
			return err
		}
	}
	return failures(results)
}

func (f *forge) watch(ctx context.Context, dir string) error {
	lib, err := assets.NewShapeLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	if err := lib.Initialize(dir); err != nil {
		return err
	}
	for _, info := range lib.Documents() {
		f.rebuild(info)
	}
	core.LogInfo("watching %s for shape documents", dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-lib.Changes():
			if !ok {
				return nil
			}
			if change.Removed {
				core.LogInfo("%s removed", change.Path)
				continue
			}
			f.rebuild(change.Info)
		case err, ok := <-lib.Errors():
			if !ok {
				return nil
			}
			core.LogError("watcher: %s", err)
		}
	}
}

func (f *forge) rebuild(info assets.DocumentInfo) {
	if info.Err != nil {
		core.LogError("%s: %s", info.Path, info.Err)
		return
	}
	start := time.Now()
	results, err := f.tessellate(info.Document)
	if err != nil {
		core.LogError("%s: %s", info.Path, err)
		return
	}
	if err := f.writeOBJs(results); err != nil {
		core.LogError("%s: %s", info.Path, err)
		return
	}
	core.LogInfo("rebuilt %s (%d shapes) in %s", info.Path, len(results), time.Since(start).Round(time.Millisecond))
}

func writeFile(path string, write func(*os.File) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return file.Close()
}

func failures(results []systems.JobResult) error {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	if n > 0 {
		return fmt.Errorf("%w: %d of %d", errFailedJobs, n, len(results))
	}
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Padding(0, 1)
)

func statsTable(results []systems.JobResult) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("NAME", "TOPOLOGY", "VERTICES", "PRIMITIVES", "AREA", "SIZE", "DEGENERATE", "TIME")

	// failed is keyed by result index; data rows follow the header row.
	failed := map[int]bool{}
	for i, r := range results {
		if r.Err != nil {
			failed[i] = true
			t.Row(r.Name, "error", "-", "-", "-", "-", "-", r.Err.Error())
			continue
		}
		s := export.Collect(r.Name, r.Mesh)
		size := s.Size()
		t.Row(
			s.Name,
			s.Topology.String(),
			fmt.Sprint(s.Vertices),
			fmt.Sprint(s.Primitives),
			fmt.Sprintf("%.3f", s.Area),
			fmt.Sprintf("%.2f x %.2f x %.2f", size.X, size.Y, size.Z),
			fmt.Sprint(s.Degenerate),
			r.Elapsed.Round(time.Microsecond).String(),
		)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case failed[row-table.HeaderRow-1]:
			return errorStyle
		}
		return cellStyle
	})
	return t.String()
}
