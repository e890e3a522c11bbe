package log

import (
	"github.com/pterm/pterm"

	"github.com/walteh/skelrc/pkg/status"
)

// 📝 FileChange renders the outcome of one visited file.
// Rewritten files and failures are always shown; unchanged files and skips
// only appear when debug messages are enabled.
func (l *Logger) FileChange(info status.FileInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := l.formatter.FormatFileOperation(info)

	var printer *pterm.PrefixPrinter
	switch info.Status {
	case status.StatusRewritten:
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: "🔄"})
	case status.StatusSkippedBinary, status.StatusSkippedExcluded:
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: "⏭️"})
	case status.StatusError:
		printer = pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"})
	default:
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: "👀"})
	}

	printer.WithWriter(l.console).Println(msg)

	switch info.Status {
	case status.StatusError:
		l.zlog.Warn().Str("path", info.Path).Err(info.Error).Msg("file visit failed")
	case status.StatusRewritten:
		l.zlog.Info().Str("path", info.Path).Int("replacements", info.Replacements).Msg("file updated")
	default:
		l.zlog.Debug().Str("path", info.Path).Str("status", info.Status.String()).Msg("file visited")
	}
}

// 📊 RewriteSummary renders the end-of-pass account
func (l *Logger) RewriteSummary(s *status.Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := l.formatter.FormatSummary(s)
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).WithWriter(l.console).Println(msg)
	l.zlog.Info().
		Int("updated", s.Count(status.StatusRewritten)).
		Int("unchanged", s.Count(status.StatusUnchanged)).
		Int("failed", s.Count(status.StatusError)).
		Msg("rewrite pass complete")
}

// ✨ Done renders the final success banner
func (l *Logger) Done(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	pterm.Success.WithPrefix(pterm.Prefix{Text: "✨"}).WithWriter(l.console).Println(msg)
	l.zlog.Info().Msg(msg)
}
