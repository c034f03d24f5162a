package analyzer

import (
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/phuslu/log"
)

// Score weights for the four framework signal types.
const (
	weightMarkerFile = 3
	weightDependency = 5
	weightPattern    = 2
	weightConfigFile = 2
	maxContentBytes  = 1 << 20 // content-pattern scan ceiling per file
)

// Confidence tier thresholds over a framework's raw score.
func confidenceFor(score int) Confidence {
	switch {
	case score >= 10:
		return ConfidenceVeryHigh
	case score >= 7:
		return ConfidenceHigh
	case score >= 4:
		return ConfidenceMedium
	case score >= 2:
		return ConfidenceLow
	default:
		return ConfidenceVeryLow
	}
}

// DetectFrameworks scores every catalog framework against the project and
// returns the nonzero signals ordered by score. The scan result supplies
// the candidate source files, so the tree is never walked twice.
func DetectFrameworks(root string, scan *ScanResult, opts ...Option) *FrameworkResult {
	o := buildOptions(opts)

	// Extract each manifest's dependency set once, not per framework.
	manifests := make([]map[string]bool, 0, len(manifestFiles))
	for _, name := range manifestFiles {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		manifests = append(manifests, extractDependencies(path))
	}

	result := &FrameworkResult{
		Primary:    Unknown,
		Categories: make(map[string][]string),
	}

	type scored struct {
		signal FrameworkSignal
		order  int
	}
	var signals []scored
	modernCount := 0

	for i, spec := range frameworkCatalog {
		score := scoreFramework(root, scan, spec, compiledPatterns[i], manifests, o.contentLimit)
		if score <= 0 {
			continue
		}
		signals = append(signals, scored{
			signal: FrameworkSignal{Name: spec.name, Score: score, Confidence: confidenceFor(score)},
			order:  i,
		})
		result.Categories[spec.category] = append(result.Categories[spec.category], spec.name)
		if spec.modern {
			modernCount++
		}
	}

	// Order by score descending; equal scores keep catalog order, so the
	// first-declared framework wins ties for primary.
	sort.SliceStable(signals, func(i, j int) bool {
		if signals[i].signal.Score != signals[j].signal.Score {
			return signals[i].signal.Score > signals[j].signal.Score
		}
		return signals[i].order < signals[j].order
	})

	result.Signals = make([]FrameworkSignal, len(signals))
	for i, s := range signals {
		result.Signals[i] = s.signal
	}
	if len(result.Signals) > 0 {
		result.Primary = result.Signals[0].Name
	}

	result.ModernScore = modernScore(modernCount, len(result.Signals))

	log.Debug().
		Str("primary", result.Primary).
		Int("detected", len(result.Signals)).
		Int("modern_score", result.ModernScore).
		Msg("framework detection complete")

	return result
}

// scoreFramework computes one framework's weighted evidence score.
func scoreFramework(root string, scan *ScanResult, spec frameworkSpec, patterns []pattern, manifests []map[string]bool, contentLimit int64) int {
	score := 0

	for _, marker := range spec.markerFiles {
		if fileExists(filepath.Join(root, marker)) {
			score += weightMarkerFile
		}
	}

	// Each manifest contributes independently, so a dependency declared
	// in two manifests scores twice.
	for _, deps := range manifests {
		for _, want := range spec.deps {
			if deps[want] {
				score += weightDependency
			}
		}
	}

	for _, p := range patterns {
		if matchPattern(root, scan, p, contentLimit) {
			score += weightPattern
		}
	}

	for _, cfg := range spec.configFiles {
		if fileExists(filepath.Join(root, cfg)) {
			score += weightConfigFile
		}
	}

	return score
}

// matchPattern reports whether a single catalog pattern matches the
// project. Regex patterns are an existence check: scanning stops at the
// first file that matches, and files at or over the content limit are
// skipped so generated bundles never dominate the analysis.
func matchPattern(root string, scan *ScanResult, p pattern, contentLimit int64) bool {
	switch p.kind {
	case patternDir:
		info, err := os.Stat(filepath.Join(root, p.raw))
		return err == nil && info.IsDir()
	case patternPath:
		return fileExists(filepath.Join(root, p.raw))
	default:
		for _, sf := range scan.SourceFiles {
			if sf.Size >= contentLimit {
				continue
			}
			data, err := os.ReadFile(sf.Path)
			if err != nil {
				continue
			}
			if p.re.Match(data) {
				return true
			}
		}
		return false
	}
}

// modernScore maps the modern-framework ratio onto 1-10, defaulting to 5
// when nothing was detected.
func modernScore(modern, detected int) int {
	if detected == 0 {
		return modernScoreDefault
	}
	score := int(math.Round(10 * float64(modern) / float64(detected)))
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return score
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
