// Package analyzer implements the heuristic project-classification engine:
// a single filesystem scan feeds language identification, framework
// detection, and structure classification, which are merged into one
// immutable Classification per call.
package analyzer

// Complexity buckets a project's structural complexity.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Confidence buckets a raw framework evidence score.
type Confidence string

const (
	ConfidenceVeryHigh Confidence = "very_high"
	ConfidenceHigh     Confidence = "high"
	ConfidenceMedium   Confidence = "medium"
	ConfidenceLow      Confidence = "low"
	ConfidenceVeryLow  Confidence = "very_low"
)

// Unknown is the fallback value for project type, framework, and
// architecture pattern when no evidence scores above zero.
const Unknown = "unknown"

// SourceFile is a file eligible for content-pattern scanning.
type SourceFile struct {
	// Path is the absolute path to the file.
	Path string

	// Size is the file size in bytes.
	Size int64
}

// ScanResult holds the aggregate output of one directory-tree traversal.
// It is created once per analysis and never mutated afterwards; the
// detectors all read the same instance.
type ScanResult struct {
	// TotalFiles is the number of files counted after denylist pruning.
	TotalFiles int `json:"total_files"`

	// TotalDirectories is the number of directories counted, excluding
	// the root itself.
	TotalDirectories int `json:"total_directories"`

	// TotalSizeBytes is the summed size of all counted files.
	TotalSizeBytes int64 `json:"total_size_bytes"`

	// ExtensionCounts maps a lowercase file extension (with leading dot)
	// to its occurrence count.
	ExtensionCounts map[string]int `json:"extension_counts"`

	// RootDirectories lists depth-1 directory names in traversal order.
	RootDirectories []string `json:"root_directories"`

	// AllDirectories maps a relative directory path to its child-entry
	// count, used for src/test/config sub-structure detection.
	AllDirectories map[string]int `json:"all_directories"`

	// MaxDepth is the deepest directory level relative to the root.
	MaxDepth int `json:"max_depth"`

	// Files lists the relative path of every counted file, in traversal
	// order. Used for glob-style indicator matching.
	Files []string `json:"-"`

	// SourceFiles lists files whose extension makes them eligible for
	// framework content-pattern scanning, in traversal order.
	SourceFiles []SourceFile `json:"-"`
}

// FrameworkSignal is the evidence record for one detected framework.
type FrameworkSignal struct {
	Name       string     `json:"name"`
	Score      int        `json:"score"`
	Confidence Confidence `json:"confidence"`
}

// FrameworkResult is the framework detector's output for one project.
type FrameworkResult struct {
	// Primary is the highest-scoring framework, or Unknown when nothing
	// scored above zero. Ties resolve to the earliest catalog entry.
	Primary string `json:"primary"`

	// Signals holds all frameworks with a nonzero score, ordered by
	// score descending (catalog order within equal scores).
	Signals []FrameworkSignal `json:"signals"`

	// Categories groups detected framework names by category
	// (frontend, backend, mobile, desktop, css, build_tools).
	Categories map[string][]string `json:"categories"`

	// ModernScore rates the stack's modernity from 1-10; 5 when no
	// frameworks were detected.
	ModernScore int `json:"modern_score"`
}

// Scores returns the detected frameworks as a name-to-score map.
func (r *FrameworkResult) Scores() map[string]int {
	m := make(map[string]int, len(r.Signals))
	for _, s := range r.Signals {
		m[s.Name] = s.Score
	}
	return m
}

// Architecture describes the detected architecture pattern.
type Architecture struct {
	// Pattern is one of mvc, layered, modular, microservices, or unknown.
	Pattern string `json:"pattern"`

	// Layers lists the layer directories backing an mvc or layered match.
	Layers []string `json:"layers,omitempty"`

	// HasSeparation is true when the pattern implies layer separation.
	HasSeparation bool `json:"has_separation"`

	// HasModules is true for modular and microservices patterns.
	HasModules bool `json:"has_modules"`
}

// Dependencies summarizes the package managers evident at the project root.
type Dependencies struct {
	PackageManagers []string `json:"package_managers"`
	DependencyFiles []string `json:"dependency_files"`

	// TotalDependencies counts package.json dependencies and
	// devDependencies when that manifest is present and parseable.
	TotalDependencies int `json:"total_dependencies"`
}

// Structure is the structure classifier's output.
type Structure struct {
	ProjectType  string       `json:"project_type"`
	Complexity   Complexity   `json:"complexity"`
	Architecture Architecture `json:"architecture"`
	Dependencies Dependencies `json:"dependencies"`

	HasTests  bool `json:"has_tests"`
	HasDocs   bool `json:"has_docs"`
	HasConfig bool `json:"has_config"`
}

// Classification is the immutable aggregate produced by one Analyze call.
type Classification struct {
	// Path is the absolute project root that was analyzed.
	Path string `json:"path"`

	// Name is the base name of the project directory.
	Name string `json:"name"`

	ProjectType         string         `json:"project_type"`
	Complexity          Complexity     `json:"complexity"`
	ArchitecturePattern string         `json:"architecture_pattern"`
	PrimaryFramework    string         `json:"primary_framework"`
	AllFrameworks       map[string]int `json:"all_frameworks"`

	// Languages is ordered most-frequent first.
	Languages []string `json:"languages"`

	// ReadinessScore is the 1-10 heuristic for how well the project is
	// already set up for AI-assisted tooling.
	ReadinessScore int `json:"readiness_score"`

	FileCount int  `json:"file_count"`
	HasTests  bool `json:"has_tests"`
	HasDocs   bool `json:"has_docs"`
	HasConfig bool `json:"has_config"`

	// HasRulesFile reports whether a rules file (CLAUDE.md) already
	// exists at the project root.
	HasRulesFile bool `json:"has_rules_file"`

	// Issues lists configuration problems found by the rules-file probe.
	Issues []string `json:"issues,omitempty"`

	// Suggestions lists follow-up actions derived from the probe.
	Suggestions []string `json:"suggestions,omitempty"`

	// Structure carries the full structure sub-record.
	Structure *Structure `json:"structure"`

	// Frameworks carries the full framework detection sub-record.
	Frameworks *FrameworkResult `json:"frameworks"`

	// Stats references the scan this classification was derived from.
	Stats *ScanResult `json:"stats"`
}
