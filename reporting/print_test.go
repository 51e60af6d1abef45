package reporting

import (
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
)

func TestKb2Bytes(t *testing.T) {
	assert.Equal(t, "32.0KB", kb2bytes(32))
	assert.Equal(t, "6.0MB", kb2bytes(6144))
}

func TestMhzFormatting(t *testing.T) {
	value := 1800.5
	assert.Equal(t, "1800.50 MHz", mhz(&value))
	assert.Equal(t, "Unknown", mhz(nil))
}

func TestLogoSelection(t *testing.T) {
	assert.Contains(t, Logo("Intel", true), "INTEL")
	assert.Contains(t, Logo("AMD", true), "AMD")
	assert.Contains(t, Logo("ARM", true), "ARM")
	assert.Contains(t, Logo("Apple", true), "APPLE")
	assert.Contains(t, Logo("SomethingElse", true), "CPU")
}

func TestLogoColor(t *testing.T) {
	// Color output is normally gated on terminal detection.
	text.EnableColors()
	defer text.DisableColors()

	plain := Logo("Intel", true)
	assert.False(t, strings.Contains(plain, "\x1b["))

	colored := Logo("Intel", false)
	assert.True(t, strings.Contains(colored, "\x1b["))
}
