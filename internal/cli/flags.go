package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Verbose    bool
	Archive    bool
	ListModels bool
	Parallel   int

	// Input and output files
	InputFile   string
	OutputFile  string
	MetaFile    string
	SummaryFile string
	ImagesDir   string
	DumpPlan    string
	FromPlan    string

	// Deck flags
	Preset    string
	NoTitle   bool
	NoTOC     bool
	Dedupe    bool
	DedupeSet bool // Dedupe was given explicitly; otherwise the preset decides
	CharLimit int

	// Image flags
	ImageAPI      string
	ImagesPerSlot int

	// Summary flags
	SummarySource string
	Language      string
	OpenAIModel   string
	OpenAIBaseURL string
	GeminiModel   string
	WikipediaURL  string
	WebURL        string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Parallel:      1,
		InputFile:     "input.txt",
		OutputFile:    "output.pptx",
		MetaFile:      "meta.txt",
		SummaryFile:   "summary.txt",
		ImagesDir:     "images",
		Preset:        "text",
		CharLimit:     200,
		ImageAPI:      "featured",
		ImagesPerSlot: 2,
		SummarySource: "template",
		Language:      "ko",
		OpenAIModel:   "gpt-4o-mini",
		GeminiModel:   "gemini-2.0-flash",
		WikipediaURL:  "https://ko.wikipedia.org",
		WebURL:        "https://ko.wikipedia.org/wiki/{keyword}",
	}
}
