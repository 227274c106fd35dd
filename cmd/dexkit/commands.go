package main

import (
	"github.com/apk-analysis/dexkit-go/internal/config"
	"github.com/spf13/cobra"
)

var (
	archives     []string
	threadNum    int
	unzipThreads int
	fullCache    bool
	logLevel     string
	logFormat    string
	encodeOut    string

	logger = config.NewNopLogger()

	rootCmd = &cobra.Command{
		Use:   "dexkit",
		Short: "Query classes, methods and fields in APK and DEX archives",
		Long: `dexkit loads one or more APK/DEX archives into an in-process engine and runs
structured queries against them. Query files are JSON documents that are
encoded into the binary payload format before being executed, results are
decoded and printed as JSON.`,
		SilenceUsage: true,
	}

	infoCmd = &cobra.Command{
		Use:   "info",
		Short: "Load the archives and print the number of dex files",
		Args:  cobra.NoArgs,
		RunE:  runInfo,
	}

	queryCmd = &cobra.Command{
		Use:   "query <find-class|find-method|find-field|batch-class-using-strings|batch-method-using-strings> <query.json>",
		Short: "Run a structured query read from a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE:  runQuery,
	}

	encodeCmd = &cobra.Command{
		Use:   "encode <query kind> <query.json>",
		Short: "Encode a JSON query into the binary payload accepted by the HTTP API",
		Args:  cobra.ExactArgs(2),
		RunE:  runEncode,
	}

	lookupCmd = &cobra.Command{
		Use:   "lookup <kind> <descriptor|id>...",
		Short: "Look up metadata by descriptor or encoded id",
		Long: `Descriptor lookups: class-data, method-data, field-data.
Batch id lookups: classes, methods, fields (one or more ids).
Single id lookups: class-annotations, field-annotations, method-annotations,
parameter-annotations, field-readers, field-writers, callers, invokes,
using-fields, op-codes, parameter-names, using-strings.`,
		Args: cobra.MinimumNArgs(2),
		RunE: runLookup,
	}

	exportCmd = &cobra.Command{
		Use:   "export <dir>",
		Short: "Write every loaded dex image to a directory",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
)

func init() {
	rootCmd.PersistentFlags().StringArrayVarP(&archives, "archive", "a", nil, "APK or DEX file to load (repeatable)")
	rootCmd.PersistentFlags().IntVar(&threadNum, "threads", 4, "Query parallelism")
	rootCmd.PersistentFlags().IntVar(&unzipThreads, "unzip-threads", 4, "Decompression parallelism while loading")
	rootCmd.PersistentFlags().BoolVar(&fullCache, "full-cache", false, "Build the full index before running")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	encodeCmd.Flags().StringVarP(&encodeOut, "output", "o", "", "Write the payload to a file instead of stdout")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(exportCmd)
}
