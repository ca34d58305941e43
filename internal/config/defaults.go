package config

const (
	defaultConfigPath         = "~/.config/corpusprep/config.toml"
	defaultStateDir           = "~/.local/share/corpusprep"
	defaultCleanInput         = "enron-mysqldump.sql"
	defaultCleanOutput        = "cleaned.txt"
	defaultCleanHeaderRows    = 196
	defaultCleanColumn        = 4
	defaultCleanEncoding      = "utf-8"
	defaultMeanWordLength     = 4.5
	defaultStdWordLength      = 2
	defaultMeanSentenceLength = 17.5
	defaultSplitSeed          = 42
	defaultSplitTrainRatio    = 0.8
	defaultDetectGoodPath     = "good.txt"
	defaultDetectBadPath      = "bad.txt"
	defaultHistoryDriver      = "sqlite"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Clean: Clean{
			Input:      defaultCleanInput,
			Output:     defaultCleanOutput,
			HeaderRows: defaultCleanHeaderRows,
			Column:     defaultCleanColumn,
			Encoding:   defaultCleanEncoding,
		},
		Gibberish: Gibberish{
			MeanWordLength:     defaultMeanWordLength,
			StdWordLength:      defaultStdWordLength,
			MeanSentenceLength: defaultMeanSentenceLength,
		},
		Split: Split{
			Seed:       defaultSplitSeed,
			TrainRatio: defaultSplitTrainRatio,
		},
		Detect: Detect{
			GoodPath: defaultDetectGoodPath,
			BadPath:  defaultDetectBadPath,
		},
		History: History{
			Enabled: true,
			Driver:  defaultHistoryDriver,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
