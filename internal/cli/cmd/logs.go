package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/bnema/lectern/internal/cli/styles"
	"github.com/bnema/lectern/internal/infrastructure/config"
	"github.com/bnema/lectern/internal/logging"
)

var (
	logsFollow   bool
	logsLines    int
	logsClearAll bool
)

const defaultLogsLines = 50

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View presenter logs",
	Long: `View the log written by 'lectern present'.

The terminal presenter owns the screen, so it logs to a rotated file under
the configured log directory instead of stderr.

Examples:
  lectern logs                # Show the last 50 lines
  lectern logs -n 200         # Show the last 200 lines
  lectern logs -f             # Follow the log while presenting elsewhere`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
}

func runLogs(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logPath := filepath.Join(logDir(app.Config), logging.DefaultLogName)
	if _, err := os.Stat(logPath); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("No logs yet. Run 'lectern present' to create them."))
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}

	if logsFollow {
		ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt)
		defer stop()
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
		return followLog(ctx, logPath, cmd.OutOrStdout(), app.Theme)
	}

	return showLog(logPath, logsLines, cmd.OutOrStdout(), app.Theme)
}

// logDir returns the configured log directory, falling back to XDG state.
func logDir(cfg *config.Config) string {
	if cfg != nil && cfg.Logging.LogDir != "" {
		return cfg.Logging.LogDir
	}
	dir, err := config.GetLogDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "lectern", "logs")
	}
	return dir
}

// tailLines returns the last n lines of r.
func tailLines(r io.Reader, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if len(ring) == n {
			ring = append(ring[1:], scanner.Text())
			continue
		}
		ring = append(ring, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return ring, nil
}

// showLog prints the last lines of a log file.
func showLog(logPath string, lines int, w io.Writer, theme *styles.Theme) (retErr error) {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	tail, err := tailLines(file, lines)
	if err != nil {
		return err
	}
	for _, line := range tail {
		fmt.Fprintln(w, colorizeLogLine(line, theme))
	}
	return nil
}

// followLog prints lines appended to logPath until ctx is done. A
// rotation reopens the new active file.
func followLog(ctx context.Context, logPath string, w io.Writer, theme *styles.Theme) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory so rotation (rename + create) is seen.
	if err := watcher.Add(filepath.Dir(logPath)); err != nil {
		return fmt.Errorf("watch log dir: %w", err)
	}

	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()
	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	reader := bufio.NewReader(file)
	pending := ""
	drain := func() error {
		for {
			chunk, err := reader.ReadString('\n')
			pending += chunk
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("read log file: %w", err)
			}
			fmt.Fprintln(w, colorizeLogLine(strings.TrimSuffix(pending, "\n"), theme))
			pending = ""
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch log file: %w", err)
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(logPath) {
				continue
			}
			switch {
			case ev.Has(fsnotify.Write):
				if err := drain(); err != nil {
					return err
				}
			case ev.Has(fsnotify.Create):
				// Rotated: finish the old file, then switch.
				if err := drain(); err != nil {
					return err
				}
				next, err := os.Open(logPath)
				if err != nil {
					return fmt.Errorf("reopen log file: %w", err)
				}
				_ = file.Close()
				file = next
				reader.Reset(file)
				pending = ""
				if err := drain(); err != nil {
					return err
				}
			}
		}
	}
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
	Slug      string `json:"slug"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil && entry.Level != "" {
		return formatJSONLogLine(entry, theme)
	}

	// Console format
	switch {
	case containsAny(line, " ERR ", "ERROR"):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, " WRN ", "WARN"):
		return theme.WarningStyle.Render(line)
	case containsAny(line, " DBG ", " TRC "):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

// formatJSONLogLine formats a parsed JSON log entry with colors.
func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "error", "fatal", "panic":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	msg := entry.Message
	if entry.Component != "" {
		msg = theme.Subtle.Render("["+entry.Component+"]") + " " + msg
	}
	if entry.Slug != "" {
		msg += " " + theme.Subtle.Render("slug="+entry.Slug)
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, msg)
}

func containsAny(s string, substrs ...string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// logFile is a rotated backup or the active log.
type logFile struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// rotatedLogs lists backups of the active log, newest first.
func rotatedLogs(dir string) ([]logFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	var files []logFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), logging.DefaultLogName+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, logFile{
			Name:    entry.Name(),
			Path:    filepath.Join(dir, entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files, nil
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove rotated log files",
	Long: `Remove rotated log backups older than logging.max_age_days.

Use --all to remove every backup and truncate the active log.`,
	Args: cobra.NoArgs,
	RunE: runLogsClear,
}

func init() {
	logsCmd.AddCommand(logsClearCmd)
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "remove all backups and truncate the active log")
}

func runLogsClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	out := cmd.OutOrStdout()
	theme := app.Theme

	dir := logDir(app.Config)
	maxAge := app.Config.Logging.MaxAgeDays
	if maxAge <= 0 {
		maxAge = 7
	}
	removed, err := clearLogs(dir, logsClearAll, time.Now().AddDate(0, 0, -maxAge), func(f logFile, err error) {
		if err != nil {
			fmt.Fprintf(out, "%s %s: %v\n", theme.ErrorStyle.Render(styles.IconX), f.Name, err)
			return
		}
		fmt.Fprintf(out, "%s %s (%s)\n", theme.SuccessStyle.Render(styles.IconCheck), f.Name, formatSize(f.Size))
	})
	if err != nil {
		return err
	}

	if removed == 0 {
		fmt.Fprintln(out, theme.Subtle.Render(fmt.Sprintf("No logs older than %d days", maxAge)))
		return nil
	}
	fmt.Fprintf(out, "\n%s\n", theme.SuccessStyle.Render(fmt.Sprintf("Cleared %d log file(s)", removed)))
	return nil
}

// clearLogs removes backups last modified before cutoff, or all of them
// when all is set. With all, the active log is truncated too.
func clearLogs(dir string, all bool, cutoff time.Time, report func(logFile, error)) (int, error) {
	files, err := rotatedLogs(dir)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, f := range files {
		if !all && !f.ModTime.Before(cutoff) {
			continue
		}
		err := os.Remove(f.Path)
		report(f, err)
		if err == nil {
			removed++
		}
	}

	if all {
		active := filepath.Join(dir, logging.DefaultLogName)
		if info, statErr := os.Stat(active); statErr == nil && info.Size() > 0 {
			err := os.Truncate(active, 0)
			report(logFile{Name: logging.DefaultLogName, Path: active, Size: info.Size()}, err)
			if err == nil {
				removed++
			}
		}
	}
	return removed, nil
}
