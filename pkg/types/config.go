package types

// Defaults applied when a TranslateConfig field is left empty.
const (
	DefaultRootDir    = "."
	DefaultMarker     = "_cn"
	DefaultExtension  = ".ipynb"
	DefaultReportFile = "中文翻译说明.md"
)

// DefaultExclude lists the directory path tokens that are always pruned
// from a scan, in addition to the marker itself.
var DefaultExclude = []string{"translated"}

// ScanConfig holds settings for the tree scanner.
type ScanConfig struct {
	// Extension is the file suffix of candidate notebooks (default ".ipynb").
	Extension string `json:"extension" yaml:"extension"`

	// Marker is the token that identifies translated artifacts (default "_cn").
	// Files whose name contains it are never candidates, and directories whose
	// path contains it are pruned.
	Marker string `json:"marker" yaml:"marker"`

	// Exclude lists extra directory path tokens to prune.
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

// TranslateConfig holds settings for one batch run.
type TranslateConfig struct {
	ScanConfig `yaml:",inline"`

	// RootDir is the tree to scan.
	RootDir string `json:"root_dir" yaml:"root_dir"`

	// ReportFile is the name of the explanatory markdown file written under
	// RootDir after every run.
	ReportFile string `json:"report_file" yaml:"report_file"`

	// PhrasesFile optionally replaces the built-in phrase table with a YAML
	// or TOML phrase file.
	PhrasesFile string `json:"phrases_file,omitempty" yaml:"phrases_file,omitempty"`

	// DryRun lists what would be translated without writing any file.
	DryRun bool `json:"dry_run" yaml:"dry_run"`
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c TranslateConfig) WithDefaults() TranslateConfig {
	if c.RootDir == "" {
		c.RootDir = DefaultRootDir
	}
	if c.Marker == "" {
		c.Marker = DefaultMarker
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if c.ReportFile == "" {
		c.ReportFile = DefaultReportFile
	}

	exclude := make([]string, 0, len(DefaultExclude)+len(c.Exclude))
	seen := make(map[string]bool)
	for _, e := range append(append([]string{}, DefaultExclude...), c.Exclude...) {
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		exclude = append(exclude, e)
	}
	c.Exclude = exclude
	return c
}
