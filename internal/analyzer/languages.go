package analyzer

import "sort"

// languageEntry maps a language name to its file extensions. The table is
// an ordered slice, not a map: equal-frequency languages resolve to the
// earlier declaration, keeping output deterministic.
type languageEntry struct {
	name string
	exts []string
}

var languageTable = []languageEntry{
	{"javascript", []string{".js", ".jsx", ".mjs"}},
	{"typescript", []string{".ts", ".tsx"}},
	{"python", []string{".py", ".pyx"}},
	{"php", []string{".php"}},
	{"java", []string{".java"}},
	{"c#", []string{".cs"}},
	{"c++", []string{".cpp", ".cc", ".cxx"}},
	{"c", []string{".c"}},
	{"go", []string{".go"}},
	{"rust", []string{".rs"}},
	{"ruby", []string{".rb"}},
	{"swift", []string{".swift"}},
	{"kotlin", []string{".kt"}},
	{"dart", []string{".dart"}},
	{"scala", []string{".scala"}},
	{"r", []string{".r"}},
	{"matlab", []string{".m"}},
	{"shell", []string{".sh", ".bash"}},
	{"powershell", []string{".ps1"}},
	{"sql", []string{".sql"}},
	{"html", []string{".html", ".htm"}},
	{"css", []string{".css", ".scss", ".sass"}},
	{"xml", []string{".xml"}},
	{"json", []string{".json"}},
	{"yaml", []string{".yml", ".yaml"}},
	{"markdown", []string{".md"}},
}

// IdentifyLanguages returns the languages evident in the scan, ordered by
// summed extension count descending. A language appears iff at least one
// of its extensions was counted. Pure function over the scan result.
func IdentifyLanguages(scan *ScanResult) []string {
	type ranked struct {
		name  string
		count int
		order int
	}

	var detected []ranked
	for i, entry := range languageTable {
		total := 0
		for _, ext := range entry.exts {
			total += scan.ExtensionCounts[ext]
		}
		if total > 0 {
			detected = append(detected, ranked{name: entry.name, count: total, order: i})
		}
	}

	sort.SliceStable(detected, func(i, j int) bool {
		if detected[i].count != detected[j].count {
			return detected[i].count > detected[j].count
		}
		return detected[i].order < detected[j].order
	})

	names := make([]string, len(detected))
	for i, d := range detected {
		names[i] = d.name
	}
	return names
}
