package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/slidedeck/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "slidedeck",
		Short: "Keyword slide deck generator",
		Long: `slidedeck builds a PowerPoint deck from the [bracketed] keywords of a text file.

Every keyword gets a short summary, optionally stock photos, and one or more
slides. Alongside the deck it writes a metadata log and a summary file.

Examples:
  slidedeck                                 # input.txt -> output.pptx, meta.txt, summary.txt
  slidedeck -i notes.txt -o talk.pptx       # Custom input and output
  slidedeck --preset photo                  # One slide per keyword with two photos
  slidedeck --summary-source wikipedia      # Summaries from Wikipedia
  slidedeck --dump-plan plan.yaml           # Also write the slide plan as YAML
  slidedeck --from-plan plan.yaml           # Render an edited plan`,
		Args:          cobra.NoArgs,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.slidedeck.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	// Files
	cmd.Flags().StringVarP(&flags.InputFile, "input", "i", flags.InputFile, "Input text file with [keyword] tags")
	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", flags.OutputFile, "Output presentation file")
	cmd.Flags().StringVar(&flags.MetaFile, "meta", flags.MetaFile, "Metadata output file")
	cmd.Flags().StringVar(&flags.SummaryFile, "summary", flags.SummaryFile, "Summary output file")
	cmd.Flags().StringVar(&flags.ImagesDir, "images-dir", flags.ImagesDir, "Directory for downloaded images")
	cmd.Flags().StringVar(&flags.DumpPlan, "dump-plan", "", "Also write the slide plan as YAML to this file")
	cmd.Flags().StringVar(&flags.FromPlan, "from-plan", "", "Render a YAML slide plan instead of reading the input file")

	// Deck
	cmd.Flags().StringVarP(&flags.Preset, "preset", "p", flags.Preset, "Deck preset: text or photo")
	cmd.Flags().BoolVar(&flags.NoTitle, "no-title", false, "Omit the title slide (text preset)")
	cmd.Flags().BoolVar(&flags.NoTOC, "no-toc", false, "Omit the table of contents slide (text preset)")
	cmd.Flags().BoolVar(&flags.Dedupe, "dedupe", false, "Drop repeated keywords (default: on for text, off for photo)")
	cmd.Flags().IntVar(&flags.CharLimit, "char-limit", flags.CharLimit, "Maximum summary characters per content slide")

	// Images
	cmd.Flags().StringVar(&flags.ImageAPI, "image-api", flags.ImageAPI, "Image source: featured, unsplash or pixabay")
	cmd.Flags().IntVar(&flags.ImagesPerSlot, "images", flags.ImagesPerSlot, "Images per keyword (photo preset)")

	// Summaries
	cmd.Flags().StringVar(&flags.SummarySource, "summary-source", flags.SummarySource, "Summary source: template, openai, gemini, wikipedia or web")
	cmd.Flags().StringVar(&flags.Language, "lang", flags.Language, "Summary language code")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for summaries")
	cmd.Flags().StringVar(&flags.OpenAIBaseURL, "openai-base-url", "", "OpenAI compatible API base URL")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for summaries")
	cmd.Flags().StringVar(&flags.WikipediaURL, "wikipedia-url", flags.WikipediaURL, "Wikipedia base URL")
	cmd.Flags().StringVar(&flags.WebURL, "web-url", flags.WebURL, "Page URL template with a {keyword} placeholder")

	// Run
	cmd.Flags().IntVar(&flags.Parallel, "parallel", flags.Parallel, "Keywords prepared concurrently")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move outputs of the previous run into archive/ first")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List OpenAI chat models usable as summary source")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

// viperKeys maps flag names to configuration keys
var viperKeys = map[string]string{
	"input":           "input.file",
	"output":          "output.deck",
	"meta":            "output.meta",
	"summary":         "output.summary",
	"images-dir":      "output.images",
	"preset":          "deck.preset",
	"no-title":        "deck.no_title",
	"no-toc":          "deck.no_toc",
	"dedupe":          "deck.dedupe",
	"char-limit":      "deck.char_limit",
	"image-api":       "image.provider",
	"images":          "image.count",
	"summary-source":  "summary.source",
	"lang":            "summary.language",
	"openai-model":    "summary.openai_model",
	"openai-base-url": "summary.openai_base_url",
	"gemini-model":    "summary.gemini_model",
	"wikipedia-url":   "summary.wikipedia_url",
	"web-url":         "summary.web_url",
	"parallel":        "run.parallel",
}

func bindFlagsToViper(cmd *cobra.Command) {
	for name, key := range viperKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			viper.BindPFlag(key, flag)
		}
	}
}

// ApplyConfig copies the effective values (flag, then config file or
// environment, then default) from viper into flags
func ApplyConfig(flags *Flags) {
	flags.InputFile = viper.GetString("input.file")
	flags.OutputFile = viper.GetString("output.deck")
	flags.MetaFile = viper.GetString("output.meta")
	flags.SummaryFile = viper.GetString("output.summary")
	flags.ImagesDir = viper.GetString("output.images")
	flags.Preset = viper.GetString("deck.preset")
	flags.NoTitle = viper.GetBool("deck.no_title")
	flags.NoTOC = viper.GetBool("deck.no_toc")
	flags.CharLimit = viper.GetInt("deck.char_limit")
	flags.ImageAPI = viper.GetString("image.provider")
	flags.ImagesPerSlot = viper.GetInt("image.count")
	flags.SummarySource = viper.GetString("summary.source")
	flags.Language = viper.GetString("summary.language")
	flags.OpenAIModel = viper.GetString("summary.openai_model")
	flags.OpenAIBaseURL = viper.GetString("summary.openai_base_url")
	flags.GeminiModel = viper.GetString("summary.gemini_model")
	flags.WikipediaURL = viper.GetString("summary.wikipedia_url")
	flags.WebURL = viper.GetString("summary.web_url")
	flags.Parallel = viper.GetInt("run.parallel")

	if viper.IsSet("deck.dedupe") {
		flags.Dedupe = viper.GetBool("deck.dedupe")
		flags.DedupeSet = true
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".slidedeck" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".slidedeck")
	}

	// Environment variables
	viper.SetEnvPrefix("SLIDEDECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	return lookupKey("summary.openai_key", "OPENAI_API_KEY")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	return lookupKey("summary.gemini_key", "GEMINI_API_KEY", "GOOGLE_API_KEY")
}

// GetUnsplashKey retrieves the Unsplash access key from environment or config
func GetUnsplashKey() string {
	return lookupKey("image.unsplash_key", "UNSPLASH_ACCESS_KEY")
}

// GetPixabayKey retrieves the Pixabay API key from environment or config
func GetPixabayKey() string {
	return lookupKey("image.pixabay_key", "PIXABAY_API_KEY")
}

// lookupKey checks the environment variables first, then the config file
func lookupKey(configKey string, envVars ...string) string {
	for _, env := range envVars {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}
	return viper.GetString(configKey)
}
