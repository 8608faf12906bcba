package logger

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
)

var (
	gray   = color.New(color.FgHiBlack)
	blue   = color.New(color.FgBlue)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	cyan   = color.New(color.FgCyan)
	purple = color.New(color.FgMagenta)
	white  = color.New(color.FgWhite)

	mu     sync.Mutex
	out    io.Writer = color.Output
	debugs atomic.Bool
)

// SetOutput redirige les logs (utilisé par les tests)
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// SetDebug active les messages Debug
func SetDebug(enabled bool) {
	debugs.Store(enabled)
}

func write(c *color.Color, prefix, message string, args ...interface{}) {
	timestamp := gray.Sprintf("[%s]", time.Now().Format("15:04:05"))
	line := c.Sprint(prefix + fmt.Sprintf(message, args...))

	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s %s\n", timestamp, line)
}

// Info log une information générale (bleu)
func Info(message string, args ...interface{}) {
	write(blue, "", message, args...)
}

// Success log un succès (vert)
func Success(message string, args ...interface{}) {
	write(green, "✓ ", message, args...)
}

// Warning log un avertissement (jaune)
func Warning(message string, args ...interface{}) {
	write(yellow, "⚠ ", message, args...)
}

// Error log une erreur (rouge)
func Error(message string, args ...interface{}) {
	write(red, "✗ ", message, args...)
}

// Debug log un message de debug (gris), seulement si DEBUG est actif
func Debug(message string, args ...interface{}) {
	if !debugs.Load() {
		return
	}
	write(gray, "DEBUG: ", message, args...)
}

// Request log une requête HTTP avec durée, colorée selon le status
func Request(method, path string, statusCode int, duration time.Duration) {
	var status *color.Color
	switch {
	case statusCode >= 200 && statusCode < 300:
		status = green
	case statusCode >= 300 && statusCode < 400:
		status = cyan
	case statusCode >= 400 && statusCode < 500:
		status = yellow
	default:
		status = red
	}

	timestamp := gray.Sprintf("[%s]", time.Now().Format("15:04:05"))

	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s %s %s %s %s\n",
		timestamp,
		purple.Sprintf("%-6s", method),
		white.Sprintf("%-50s", path),
		status.Sprintf("[%d]", statusCode),
		gray.Sprintf("(%s)", FormatDuration(duration)))
}

// FormatDuration formate une durée de façon compacte (µs, ms ou s)
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
