package main

import (
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/huffcode"
	"github.com/chronos-tachyon/huffcode/internal/config"
	"github.com/chronos-tachyon/huffcode/internal/textio"
)

var RootCommand = &cobra.Command{
	Use:   "huffcode",
	Short: "Huffman-code text as strings of 0 and 1",
	Long:  "build a Huffman code from sample text or a frequency table, then compress and decompress text with it",
}

var (
	seed       *string
	configPath *string
	charset    *string
)

func init() {
	flags := RootCommand.PersistentFlags()
	seed = flags.StringP("seed", "s", "", "sample text to derive character frequencies from")
	configPath = flags.StringP("config", "c", "", "YAML file with a seed or an alphabet frequency table")
	charset = flags.String("charset", "utf-8", "charset of text read from stdin or files")
}

func loadCoder() (*huffcode.Coder, error) {
	switch {
	case *seed != "" && *configPath != "":
		return nil, errors.New("--seed and --config are mutually exclusive")
	case *configPath != "":
		cfg, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		return cfg.Coder()
	case *seed != "":
		return huffcode.NewFromSeed(*seed)
	default:
		return nil, errors.New("one of --seed or --config is required")
	}
}

// inputText returns args[0], or stdin minus its trailing line break.
func inputText(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	text, err := textio.ReadString(os.Stdin, *charset)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(text, "\r\n"), nil
}

func main() {
	log.SetOutput(os.Stderr)
	if err := RootCommand.Execute(); err != nil {
		log.Fatal(err)
	}
}
