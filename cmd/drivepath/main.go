// Command drivepath resolves Google Drive names, IDs and paths from the
// command line. It authenticates with Application Default Credentials.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Jumpaku/go-drivepath"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

var (
	flagDelimiter string
	flagMax       int
	flagVerbose   bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "drivepath",
		Short:         "Resolve Google Drive names, IDs and paths",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flagDelimiter, "delimiter", drivepath.DefaultDelimiter, "path segment separator")
	cmd.PersistentFlags().IntVar(&flagMax, "max", drivepath.DefaultMaxResults, "maximum lineages or name matches per call")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "emit debug traces")

	cmd.AddCommand(newPathCmd())
	cmd.AddCommand(newFileIDCmd())
	cmd.AddCommand(newFolderIDCmd())
	return cmd
}

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <item-id>",
		Short: "Print the full path(s) of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			resolver, err := newResolver(ctx)
			if err != nil {
				return err
			}
			result, err := resolver.ResolvePath(ctx, args[0], flagDelimiter, flagMax)
			if err != nil {
				return err
			}
			switch result := result.(type) {
			case drivepath.SinglePath:
				fmt.Println(result.Path)
			case drivepath.MultiplePaths:
				for _, path := range result.Paths {
					fmt.Println(path)
				}
			}
			return nil
		},
	}
}

func newFileIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "file-id <name>",
		Short: "Print the ID of the file with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIDCmd(cmd.Context(), args[0], (*drivepath.Resolver).ResolveFileID)
		},
	}
}

func newFolderIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "folder-id <name>",
		Short: "Print the ID of the folder with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIDCmd(cmd.Context(), args[0], (*drivepath.Resolver).ResolveFolderID)
		},
	}
}

func runIDCmd(ctx context.Context, name string, resolve func(*drivepath.Resolver, context.Context, string, int) (drivepath.IDResult, error)) error {
	resolver, err := newResolver(ctx)
	if err != nil {
		return err
	}
	result, err := resolve(resolver, ctx, name, flagMax)
	if err != nil {
		return err
	}
	switch result := result.(type) {
	case drivepath.SingleID:
		fmt.Println(result.ID)
	case drivepath.AmbiguousIDs:
		for _, entry := range result.Entries {
			fmt.Println(entry)
		}
	}
	return nil
}

func newResolver(ctx context.Context) (*drivepath.Resolver, error) {
	// A missing .env is fine, credentials may come from the environment.
	_ = godotenv.Load()

	client, err := google.DefaultClient(ctx, drive.DriveReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to load Google credentials: %w", err)
	}
	service, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	resolver := drivepath.New(service)
	if flagVerbose {
		logger := zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
		}).With().Timestamp().Logger()
		resolver = resolver.WithLogger(logger)
	}
	return resolver, nil
}
