package cmd

import "github.com/spf13/viper"

// effectiveWorkers resolves the decompression worker count: the
// --workers flag wins if set, otherwise the config/env default.
func effectiveWorkers() int {
	if workers > 0 {
		return workers
	}
	if w := viper.GetInt("workers"); w > 0 {
		return w
	}
	return 4
}

// effectiveOutputDir resolves the directory extract commands write
// into when the caller does not name an explicit output path.
func effectiveOutputDir() string {
	if dir := viper.GetString("output_dir"); dir != "" {
		return dir
	}
	return "."
}

// defaultArchivePath returns the configured default archive path and
// whether one was set, for commands invoked without an archive argument.
func defaultArchivePath() (string, bool) {
	path := viper.GetString("archive")
	return path, path != ""
}
