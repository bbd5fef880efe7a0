package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/DictPanel/internal/app"
)

var (
	dictionaryToken  string
	dictionaryLocale string
	dictionarySort   bool
)

var dictionaryCmd = &cobra.Command{
	Use:   "dictionary [strings...]",
	Short: "Translate strings the way embedded viewers see them",
	Long: `Fetch the dictionary served to static embeds and translate the given strings,
or one string per line from stdin when none are given.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		token := dictionaryToken
		if token == "" {
			token = cfg.EmbeddingToken()
		}
		if token == "" {
			log.Fatalf("An embedding token is required, pass --token or set embedding_token in the profile")
		}
		locale := dictionaryLocale
		if locale == "" {
			locale = cfg.Locale()
		}

		application, err := app.NewApplication(cfg, app.WithEmbeddingToken(token), app.WithNotifier(newToastPrinter(stderr)))
		if err != nil {
			log.Fatalf("Failed to create application: %v", err)
		}
		defer application.Stop()

		values := args
		if len(values) == 0 {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				values = append(values, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				log.Fatalf("Failed to read stdin: %v", err)
			}
		}

		hooks := application.Registry().ContentTranslation().Hooks(locale)
		if dictionarySort {
			hooks.SortByContentTranslation(values)
		}
		for _, v := range values {
			fmt.Println(hooks.TranslateContent(v))
		}
	},
}

func init() {
	dictionaryCmd.Flags().StringVarP(&dictionaryToken, "token", "t", "", "static embedding token (defaults to the profile's)")
	dictionaryCmd.Flags().StringVarP(&dictionaryLocale, "locale", "l", "", "viewer locale (defaults to the profile's)")
	dictionaryCmd.Flags().BoolVar(&dictionarySort, "sort", false, "order output by translated value")
	rootCmd.AddCommand(dictionaryCmd)
}
