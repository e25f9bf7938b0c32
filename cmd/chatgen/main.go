// Package main provides the chatgen CLI application entry point.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"chatgen/internal/gen"
)

const optionsExampleFile = "options.example.json"

var (
	cfgFile string
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "chatgen [options file name] [input file name] [output file name]",
	Short: "chatgen - chat message dataset → C++ header",
	Long: `chatgen translates a multilingual chat message dataset (JSON) into a
self-contained C++ header of compile-time string declarations.`,
	RunE: runChatgen,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("generate-options-example", false,
		"Generate an "+optionsExampleFile+" file documenting every option and exit")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bind flags: %v\n", err)
		os.Exit(1)
	}
}

func initConfig() {
	// Load .env file explicitly using gotenv
	envFile := ".env"
	if cfgFile != "" {
		envFile = cfgFile
	}

	if err := gotenv.Load(envFile); err != nil {
		// Don't exit if .env file doesn't exist, just warn
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		}
	}

	viper.SetEnvPrefix("CHATGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	logger = buildLogger(viper.GetString("log-level"))
}

func buildLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch strings.ToLower(level) {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	builtLogger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to build logger: %v", err))
	}

	return builtLogger
}

func runChatgen(_ *cobra.Command, args []string) error {
	if viper.GetBool("generate-options-example") {
		return generateOptionsExample()
	}

	// Too few arguments and unopenable files are user mistakes, not failures:
	// print a targeted message and exit cleanly.
	if len(args) < 3 {
		fmt.Printf("Usage: %s [options file name] [input file name] [output file name]\n", os.Args[0])
		return nil
	}

	optsData, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("Error: could not open %q options file for reading.\n", args[0])
		return nil
	}

	contentData, err := os.ReadFile(args[1])
	if err != nil {
		fmt.Printf("Error: could not open %q input file for reading.\n", args[1])
		return nil
	}

	outFile, err := os.Create(args[2])
	if err != nil {
		fmt.Printf("Error: could not open %q file for writing.\n", args[2])
		return nil
	}
	defer outFile.Close()

	opts, err := gen.LoadOptions(optsData)
	if err != nil {
		return fmt.Errorf("loading options: %w", err)
	}

	logger.Info("Generating chat message header",
		zap.String("options_file", args[0]),
		zap.String("input_file", args[1]),
		zap.String("output_file", args[2]),
		zap.Bool("compile_macro", opts.UseCompileMacro),
		zap.String("namespace", opts.Namespace))

	generator := gen.NewGenerator(opts, logger.Named("gen"))
	output, err := generator.Generate(contentData)
	if err != nil {
		return fmt.Errorf("generating output: %w", err)
	}

	if _, err := outFile.WriteString(output); err != nil {
		return fmt.Errorf("writing %q: %w", args[2], err)
	}

	return nil
}

func generateOptionsExample() error {
	fmt.Println("Generating " + optionsExampleFile + " file with default options...")

	if err := os.WriteFile(optionsExampleFile, []byte(optionsExampleContent()), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", optionsExampleFile, err)
	}

	fmt.Println("✅ Successfully generated " + optionsExampleFile + " file")
	return nil
}

func optionsExampleContent() string {
	var content strings.Builder

	content.WriteString("{\n")
	content.WriteString("  \"pch\": \"PROJECT_PCH\",\n")
	content.WriteString("  \"namespace\": \"chat_txt\",\n")
	content.WriteString("  \"languageEnum\": \"game::Languages\",\n")
	content.WriteString("  \"headerFiles\": [\"\\\"MyHeaderFile.h\\\"\"],\n")
	content.WriteString(fmt.Sprintf("  \"chatMessageType\": %q,\n", gen.DefaultChatMessageType))
	content.WriteString("  \"useCompileMacro\": true,\n")
	content.WriteString("  \"usePragmaOnce\": true\n")
	content.WriteString("}\n")

	return content.String()
}
