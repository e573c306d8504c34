package display_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/displayfmt/pkg/display"
	"github.com/dmitrymomot/displayfmt/pkg/logger"
)

// 2024-03-05 14:30:00 UTC, a Tuesday.
const tuesday int64 = 1709649000

func fixedClock(ts int64) func() time.Time {
	return func() time.Time { return time.Unix(ts, 0) }
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	f := display.New()
	assert.Equal(t, display.DefaultPlaceholder, f.Placeholder())
	assert.Equal(t, "Yes", f.Bool(true))
	assert.Equal(t, "1,234.50", f.Number(1234.5, 2))
	assert.Equal(t, "2024-03-05", f.Date(tuesday, ""))
}

func TestWithPlaceholder(t *testing.T) {
	t.Parallel()

	f := display.New(display.WithPlaceholder("n/a"))
	assert.Equal(t, "n/a", f.Placeholder())
	assert.Equal(t, "n/a", f.Bool(nil))

	empty := display.New(display.WithPlaceholder(""))
	assert.Equal(t, "", empty.Number("x", 0))
}

func TestNilOptionsAreIgnored(t *testing.T) {
	t.Parallel()

	f := display.New(
		nil,
		display.WithTranslator(nil),
		display.WithPluralizer(nil),
		display.WithNumberFormatter(nil),
		display.WithDateFormatter(nil),
		display.WithDateParser(nil),
		display.WithRelativeTimeFormatter(nil),
		display.WithLocalizer(nil),
		display.WithClock(nil),
		display.WithParagraphTransform(nil),
		display.WithStripTransform(nil),
		display.WithDateLayout(""),
	)

	assert.Equal(t, "No", f.Bool(false))
	assert.Equal(t, "2 Stars", f.Stars(2))
	assert.Equal(t, "2024-03-05", f.Date(tuesday, ""))
	assert.Equal(t, "<p>a</p>", f.Paragraphs("a"))
	assert.Equal(t, "a", f.Plain("<b>a</b>"))
}

func TestFallbackIsLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithTextFormatter(),
		logger.WithLevel(slog.LevelDebug),
	)

	f := display.New(display.WithLogger(log))
	require.Equal(t, "—", f.Number("twelve", 2))

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "rendering placeholder")
	assert.Contains(t, out, "component=display")
	assert.Contains(t, out, "formatter=number")
	assert.Contains(t, out, "input.value=twelve")
	assert.Contains(t, out, "input.type=string")
	assert.Contains(t, out, "invalid number")
}

func TestFallbackIsQuietAboveDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f := display.New(display.WithLogger(logger.New(logger.WithOutput(&buf))))
	f.Bool("maybe")

	assert.Empty(t, buf.String())
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	f := display.New(display.WithClock(fixedClock(tuesday + 3*3600)))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 25 {
				assert.Equal(t, "1.50 KB", f.FileSize(1536))
				assert.Equal(t, "3 hours ago", f.RelativeTime(tuesday))
				assert.Equal(t, "A, B and 2 more", f.ListWithOverflow([]string{"A", "B", "C", "D"}, 3))
			}
		}()
	}
	wg.Wait()
}
