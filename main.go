package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"rollcall-draw/config"
	"rollcall-draw/db"
	"rollcall-draw/handlers"
	"rollcall-draw/logging"
	"rollcall-draw/report"
	"rollcall-draw/sampler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.DefaultLogger.Error(err.Error())
		os.Exit(1)
	}

	if err := MainCommand(cfg, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

// MainCommand builds the rollcall command tree writing reports to out
func MainCommand(cfg config.Config, out io.Writer) *cobra.Command {
	var workbook string
	var logLevel string
	var seed uint64

	log := logging.DefaultLogger

	// newHandler builds the registry, seeds it and loads the optional workbook
	newHandler := func() (*handlers.DrawHandler, error) {
		if err := log.SetLevel(logLevel); err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", logLevel)
		}

		registry := db.NewRegistry(log)
		registry.SeedDefaults()
		if workbook != "" {
			if err := importWorkbook(registry, workbook); err != nil {
				return nil, err
			}
		}

		var src sampler.IndexSource
		if seed != 0 {
			src = sampler.NewSeededSource(seed)
		}
		return handlers.NewDrawHandler(registry, report.NewConsoleReporter(out), src, log), nil
	}

	cmd := &cobra.Command{
		Use:          "rollcall",
		Short:        "Draw random students from a class roster",
		SilenceUsage: true,
	}
	cmd.SetOut(out)
	cmd.PersistentFlags().StringVar(&workbook, "workbook", cfg.Workbook, "xlsx workbook with class definitions")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "log level")

	var mode string
	var count int
	var students int
	drawCmd := &cobra.Command{
		Use:   "draw <class>",
		Short: "Draw students from a class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := handlers.ParseMode(mode)
			if err != nil {
				return err
			}
			h, err := newHandler()
			if err != nil {
				return err
			}
			_, err = h.Draw(args[0], students, m, count)
			return err
		},
	}
	drawCmd.Flags().StringVar(&mode, "mode", string(handlers.ModeAll), "pool to draw from: all, even, odd, included, excluded")
	drawCmd.Flags().IntVarP(&count, "count", "n", 1, "number of students to draw")
	drawCmd.Flags().IntVar(&students, "students", 0, "roster size, used to create a class that is not registered")
	drawCmd.Flags().Uint64Var(&seed, "seed", cfg.Seed, "seed for reproducible draws (0 is random)")

	classesCmd := &cobra.Command{
		Use:   "classes",
		Short: "List registered classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := newHandler()
			if err != nil {
				return err
			}
			for _, clazz := range h.Classes() {
				fmt.Fprintf(out, "%s\t%d students\n", clazz.Name, clazz.RosterSize)
			}
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <class>",
		Short: "Show the configuration of a class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := newHandler()
			if err != nil {
				return err
			}
			clazz, err := h.Show(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "class:    %s\n", clazz.Name)
			fmt.Fprintf(out, "students: %d\n", clazz.RosterSize)
			fmt.Fprintf(out, "excluded: %s\n", formatList(clazz.Excluded))
			fmt.Fprintf(out, "included: %s\n", formatList(clazz.Included))
			return nil
		},
	}

	cmd.AddCommand(drawCmd, classesCmd, showCmd)
	return cmd
}

func importWorkbook(registry *db.Registry, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open workbook")
	}
	defer f.Close()

	if _, err := registry.ImportClassesFromExcel(f); err != nil {
		return errors.Wrapf(err, "failed to import %s", path)
	}
	return nil
}

func formatList(students []int) string {
	if students == nil {
		return "-"
	}
	parts := make([]string, 0, len(students))
	for _, s := range students {
		parts = append(parts, fmt.Sprint(s))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
