package analyzer

import (
	"os"
	"path/filepath"

	"github.com/phuslu/log"
	"golang.org/x/sync/errgroup"
)

// RulesFileName is the markdown rules artifact checked by the probe and
// written by the generator.
const RulesFileName = "CLAUDE.md"

// FeatureFileName is the feature-request artifact written by the generator.
const FeatureFileName = "INITIAL.md"

// minRulesFileBytes is the size below which an existing rules file is
// flagged as too short to be useful.
const minRulesFileBytes = 100

// RulesProbe is the aggregator's view of existing configuration artifacts.
type RulesProbe struct {
	HasRulesFile bool
	Issues       []string
	Suggestions  []string
}

// ProbeRules checks the project's existing rules configuration: the rules
// file's presence and size, and the presence of an auxiliary .claude/
// directory. It reads but never writes.
func ProbeRules(root string) RulesProbe {
	var probe RulesProbe

	info, err := os.Stat(filepath.Join(root, RulesFileName))
	switch {
	case err != nil:
		probe.Issues = append(probe.Issues, RulesFileName+" missing")
		probe.Suggestions = append(probe.Suggestions, "create "+RulesFileName+" with project rules")
	case info.Size() < minRulesFileBytes:
		probe.HasRulesFile = true
		probe.Issues = append(probe.Issues, RulesFileName+" too short")
		probe.Suggestions = append(probe.Suggestions, "expand "+RulesFileName+" with more detail")
	default:
		probe.HasRulesFile = true
	}

	if !dirExists(filepath.Join(root, ".claude")) {
		probe.Suggestions = append(probe.Suggestions, "create a .claude/ directory for advanced configuration")
	}

	return probe
}

// readinessScore computes the 1-10 readiness heuristic. Floating-point
// arithmetic is confined to this function; the result is truncated, not
// rounded, before clamping, matching max(1, min(10, int(score))).
func readinessScore(probe RulesProbe, complexity Complexity, primaryFramework string) int {
	score := 5.0

	if probe.HasRulesFile {
		score += 2
	}

	switch complexity {
	case ComplexityLow:
		score++
	case ComplexityHigh:
		score--
	}

	if primaryFramework != Unknown {
		score++
	}

	score -= 0.5 * float64(len(probe.Issues))

	n := int(score)
	if n < 1 {
		n = 1
	}
	if n > 10 {
		n = 10
	}
	return n
}

// Analyze classifies the project rooted at root. It scans the tree once,
// runs the three detectors over the shared immutable scan result, and
// merges their outputs with the readiness score. Each call produces a
// fresh Classification; nothing is cached between calls.
func Analyze(root string, opts ...Option) (*Classification, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	scan, err := Scan(abs, opts...)
	if err != nil {
		return nil, err
	}

	// The detectors are independent and read-only over the scan, so they
	// run concurrently. Results are deterministic either way.
	var (
		languages  []string
		frameworks *FrameworkResult
		structure  *Structure
	)
	var g errgroup.Group
	g.Go(func() error {
		languages = IdentifyLanguages(scan)
		return nil
	})
	g.Go(func() error {
		frameworks = DetectFrameworks(abs, scan, opts...)
		return nil
	})
	g.Go(func() error {
		structure = ClassifyStructure(abs, scan)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	probe := ProbeRules(abs)

	c := &Classification{
		Path:                abs,
		Name:                filepath.Base(abs),
		ProjectType:         structure.ProjectType,
		Complexity:          structure.Complexity,
		ArchitecturePattern: structure.Architecture.Pattern,
		PrimaryFramework:    frameworks.Primary,
		AllFrameworks:       frameworks.Scores(),
		Languages:           languages,
		ReadinessScore:      readinessScore(probe, structure.Complexity, frameworks.Primary),
		FileCount:           scan.TotalFiles,
		HasTests:            structure.HasTests,
		HasDocs:             structure.HasDocs,
		HasConfig:           structure.HasConfig,
		HasRulesFile:        probe.HasRulesFile,
		Issues:              probe.Issues,
		Suggestions:         probe.Suggestions,
		Structure:           structure,
		Frameworks:          frameworks,
		Stats:               scan,
	}

	log.Debug().
		Str("path", abs).
		Str("type", c.ProjectType).
		Str("framework", c.PrimaryFramework).
		Int("readiness", c.ReadinessScore).
		Msg("analysis complete")

	return c, nil
}
