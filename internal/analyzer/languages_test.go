package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifyLanguages_OrderedByFrequency(t *testing.T) {
	scan := &ScanResult{
		ExtensionCounts: map[string]int{
			".py":  2,
			".go":  5,
			".rs":  1,
			".jsx": 3,
		},
	}

	langs := IdentifyLanguages(scan)
	assert.Equal(t, []string{"go", "javascript", "python", "rust"}, langs)
}

func TestIdentifyLanguages_SumsAllExtensions(t *testing.T) {
	// javascript spans .js/.jsx/.mjs; the sum outranks a single .py count.
	scan := &ScanResult{
		ExtensionCounts: map[string]int{
			".js":  1,
			".jsx": 1,
			".mjs": 1,
			".py":  2,
		},
	}

	langs := IdentifyLanguages(scan)
	assert.Equal(t, []string{"javascript", "python"}, langs)
}

func TestIdentifyLanguages_TieBreaksByTableOrder(t *testing.T) {
	// Equal counts: declaration order decides (python before go).
	scan := &ScanResult{
		ExtensionCounts: map[string]int{
			".go": 1,
			".py": 1,
		},
	}

	langs := IdentifyLanguages(scan)
	assert.Equal(t, []string{"python", "go"}, langs)
}

func TestIdentifyLanguages_Empty(t *testing.T) {
	langs := IdentifyLanguages(&ScanResult{ExtensionCounts: map[string]int{}})
	assert.Empty(t, langs)
}

func TestIdentifyLanguages_UnknownExtensionIgnored(t *testing.T) {
	scan := &ScanResult{
		ExtensionCounts: map[string]int{
			".zig": 4,
			".rb":  1,
		},
	}

	langs := IdentifyLanguages(scan)
	assert.Equal(t, []string{"ruby"}, langs)
}
