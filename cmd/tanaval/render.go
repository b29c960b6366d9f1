package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"tanaval/internal/diagfmt"
	"tanaval/internal/request"
	"tanaval/internal/source"
	"tanaval/internal/ui"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] <request-file|directory>",
	Short: "Render validation error requests into diagnostic output",
	Long: `Render one validation error request (json|toml|yaml|msgpack) or every
request file within a directory into the shared Tana diagnostic format`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("format", "pretty", "output format (pretty|json|sarif|short)")
	renderCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	renderCmd.Flags().Uint8("width", 0, "max visible width of the quoted source row (0=unlimited)")
	renderCmd.Flags().Bool("with-block", false, "embed the rendered text block in json output")
	renderCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	renderCmd.Flags().Bool("ui", false, "show interactive progress for directory processing")
}

// renderSettings carries the resolved output configuration for one run.
type renderSettings struct {
	format string
	pretty diagfmt.PrettyOpts
	json   diagfmt.JSONOpts
	meta   diagfmt.SarifRunMeta
}

// runRender executes the "render" command. Rendering a validation error is
// itself never a failure, but a rendered error means the contract did not
// validate, so the command exits non-zero after printing, the way a compiler
// exits after printing diagnostics. Only I/O and decode problems surface as
// command errors.
func runRender(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "sarif", "short":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}

	width, err := cmd.Flags().GetUint8("width")
	if err != nil {
		return fmt.Errorf("failed to get width flag: %w", err)
	}

	withBlock, err := cmd.Flags().GetBool("with-block")
	if err != nil {
		return fmt.Errorf("failed to get with-block flag: %w", err)
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	settings := renderSettings{
		format: format,
		pretty: diagfmt.PrettyOpts{
			Color:    useColor,
			Width:    width,
			PathMode: pathMode,
		},
		json: diagfmt.JSONOpts{
			PathMode:     pathMode,
			IncludeBlock: withBlock,
		},
		meta: diagfmt.SarifRunMeta{
			ToolName:    "tanaval",
			ToolVersion: "0.1.0",
		},
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if st.IsDir() {
		return runRenderDir(cmd, path, settings)
	}
	return runRenderFile(cmd, path, settings)
}

func runRenderFile(cmd *cobra.Command, path string, settings renderSettings) error {
	req, err := request.Load(path)
	if err != nil {
		return err
	}

	fileSet := source.NewFileSet(filepath.Dir(path))
	if err := req.ResolveSource(fileSet); err != nil {
		return err
	}

	if err := renderTo(os.Stdout, req, settings); err != nil {
		return fmt.Errorf("failed to format diagnostic: %w", err)
	}
	return exitValidationError(cmd)
}

// renderTo writes one request in the configured format.
func renderTo(w io.Writer, req request.Request, settings renderSettings) error {
	switch settings.format {
	case "pretty":
		diagfmt.Pretty(w, req, settings.pretty)
		return nil
	case "short":
		_, err := fmt.Fprintln(w, diagfmt.Short(req))
		return err
	case "json":
		return diagfmt.JSON(w, req, settings.json)
	case "sarif":
		return diagfmt.Sarif(w, req, settings.meta)
	default:
		return fmt.Errorf("unknown format: %s", settings.format)
	}
}

type renderResult struct {
	out  []byte
	diag diagfmt.DiagnosticJSON
	req  request.Request
	err  error
}

func runRenderDir(cmd *cobra.Command, dir string, settings renderSettings) error {
	files, err := request.ListFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no request files found in %q", dir)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	useUI, err := cmd.Flags().GetBool("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}

	fileSet := source.NewFileSet(dir)
	results := make([]renderResult, len(files))

	run := func(emit func(ui.Event)) error {
		g, gctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(min(jobs, len(files)))

		for i, path := range files {
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				emit(ui.Event{Path: path, Status: ui.StatusLoading})
				results[i] = renderOne(path, fileSet, settings)
				if results[i].err != nil {
					emit(ui.Event{Path: path, Status: ui.StatusError})
				} else {
					emit(ui.Event{Path: path, Status: ui.StatusRendered})
				}
				return nil
			})
		}
		return g.Wait()
	}

	if useUI {
		events := make(chan ui.Event, len(files)*2)
		outcomeCh := make(chan error, 1)
		go func() {
			outcomeCh <- run(func(ev ui.Event) { events <- ev })
			close(events)
		}()
		model := ui.NewProgressModel("rendering validation errors", files, events)
		program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
		if _, uiErr := program.Run(); uiErr != nil {
			<-outcomeCh
			return uiErr
		}
		if err := <-outcomeCh; err != nil {
			return err
		}
	} else {
		if err := run(func(ui.Event) {}); err != nil {
			return err
		}
	}

	return printDirResults(cmd, os.Stdout, fileSet.BaseDir(), files, results, settings)
}

// renderOne loads, resolves, and formats a single request file.
func renderOne(path string, fileSet *source.FileSet, settings renderSettings) renderResult {
	req, err := request.Load(path)
	if err == nil {
		err = req.ResolveSource(fileSet)
	}
	if err != nil {
		return renderResult{err: err}
	}

	switch settings.format {
	case "json":
		// Directory mode emits one JSON document keyed by request path, so
		// workers build payloads and encoding happens once at the end.
		return renderResult{diag: diagfmt.BuildDiagnosticJSON(req, settings.json)}
	case "sarif":
		// Same for SARIF: one log, one run, one result per request.
		return renderResult{req: req}
	}

	var buf bytes.Buffer
	if err := renderTo(&buf, req, settings); err != nil {
		return renderResult{err: err}
	}
	return renderResult{out: buf.Bytes()}
}

// printDirResults writes worker output in sorted request-file order, so the
// output is identical regardless of --jobs. Request-file paths are shown
// relative to base (the scanned directory).
func printDirResults(cmd *cobra.Command, w io.Writer, base string, files []string, results []renderResult, settings renderSettings) error {
	displayMode := "relative"
	if settings.pretty.PathMode == diagfmt.PathModeAbsolute {
		displayMode = "absolute"
	}

	failed := 0
	rendered := 0

	switch settings.format {
	case "json":
		output := make(map[string]diagfmt.DiagnosticJSON, len(files))
		for i, path := range files {
			if results[i].err != nil {
				failed++
				continue
			}
			output[source.DisplayPath(path, displayMode, base)] = results[i].diag
			rendered++
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("failed to encode diagnostics output: %w", err)
		}
	case "sarif":
		reqs := make([]request.Request, 0, len(files))
		for i := range files {
			if results[i].err != nil {
				failed++
				continue
			}
			reqs = append(reqs, results[i].req)
			rendered++
		}
		if len(reqs) > 0 {
			if err := diagfmt.SarifAll(w, reqs, settings.meta); err != nil {
				return fmt.Errorf("failed to encode sarif output: %w", err)
			}
		}
	case "pretty":
		for i, path := range files {
			if results[i].err != nil {
				failed++
				continue
			}
			if rendered > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "== %s ==\n", source.DisplayPath(path, displayMode, base))
			_, _ = w.Write(results[i].out)
			rendered++
		}
	default: // short
		for i := range files {
			if results[i].err != nil {
				failed++
				continue
			}
			_, _ = w.Write(results[i].out)
			rendered++
		}
	}

	for i, path := range files {
		if results[i].err != nil {
			fmt.Fprintf(os.Stderr, "tanaval: %s: %v\n", path, results[i].err)
		}
	}
	if failed > 0 {
		cmd.SilenceUsage = true
		return fmt.Errorf("failed to render %d request file(s)", failed)
	}
	if rendered > 0 {
		return exitValidationError(cmd)
	}
	return nil
}

// exitValidationError makes the command exit with status 1 without extra
// output: the rendered diagnostics are the message.
func exitValidationError(cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return fmt.Errorf("")
}
