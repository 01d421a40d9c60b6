package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sentineltools/commentcode"
	"github.com/sentineltools/commentcode/config"
	"github.com/sentineltools/commentcode/javasrc"
	"github.com/sentineltools/commentcode/model"
	"github.com/sentineltools/commentcode/store"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a directory tree of .java files for commented-out code",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			_ = cmd.Help()
			return fmt.Errorf("too many arguments")
		}

		root := directory
		if len(args) == 1 {
			root = args[0]
		}

		log := logger()
		ctx := context.Background()

		cfg, err := config.Load(root)
		if err != nil {
			return err
		}
		if storeBackend != "" {
			cfg.Store.Backend = storeBackend
		}

		issueStore, err := store.Open(ctx, cfg.Store)
		if err != nil {
			return fmt.Errorf("opening findings store: %w", err)
		}
		defer issueStore.Close()

		detector := commentcode.NewDetector(log, cfg.DataDir, cfg.MaxTokens, cfg.Threshold, nil)
		if debug {
			detector.Trace = func(_ string, _ commentcode.Batch, features []float64, pred model.Prediction) {
				repr.Println(struct {
					Features []float64
					Pred     model.Prediction
				}{features, pred})
			}
		}

		var allIssues []commentcode.Issue
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".java") {
				return nil
			}

			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			tokens := javasrc.NewScanner(string(src)).Scan()
			issues, err := detector.DetectFile(path, tokens)
			if err != nil {
				return err
			}
			allIssues = append(allIssues, issues...)
			return nil
		})
		if err != nil {
			return err
		}

		for _, iss := range allIssues {
			fmt.Printf("%s:%d:%d: %s [%s]\n", iss.File, iss.Span.StartLine, iss.Span.StartCol, iss.Message, iss.RuleKey)
		}
		log.WithFields(logrus.Fields{"issues": len(allIssues)}).Info("scan complete")

		run, err := commentcode.NewRunMetadata()
		if err != nil {
			return err
		}
		if err := issueStore.Save(ctx, run, allIssues); err != nil {
			return fmt.Errorf("saving findings: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
