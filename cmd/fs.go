package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"ossdisk/core/filesystem"

	"github.com/spf13/cobra"
)

var (
	diskFlag      string
	recursiveFlag bool
	expiresFlag   time.Duration
	validityFlag  time.Duration
	mimetypeFlag  string
	publicFlag    bool
)

// fsCmd groups the filesystem operations on a single disk.
var fsCmd = &cobra.Command{
	Use:   "fs",
	Short: "Run filesystem operations against a disk",
	Long: `Runs a single filesystem operation against a disk. The disk defaults to the one
declared by the storage section of the configuration.`,
}

// fsOp is a filesystem operation bound to its command line arguments.
type fsOp func(ctx context.Context, fs *filesystem.Filesystem, out io.Writer, args []string) error

// withDisk resolves the selected disk and runs op against it.
func withDisk(op fsOp) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, logg, disks, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		name := diskFlag
		if name == "" {
			name = cfg.DefaultDisk()
		}
		fs, err := disks.Disk(name)
		if err != nil {
			return err
		}
		return op(cmd.Context(), fs, cmd.OutOrStdout(), args)
	}
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeConfig() *filesystem.Config {
	cfg := filesystem.NewConfig(nil)
	if mimetypeFlag != "" {
		cfg.Set(filesystem.OptionMimetype, mimetypeFlag)
	}
	if publicFlag {
		cfg.Set(filesystem.OptionVisibility, string(filesystem.VisibilityPublic))
	}
	return cfg
}

func runLs(ctx context.Context, fs *filesystem.Filesystem, out io.Writer, args []string) error {
	dir := ""
	if len(args) > 0 {
		dir = args[0]
	}
	list, err := fs.ListContents(ctx, dir, recursiveFlag)
	if err != nil {
		return err
	}
	for _, entry := range list {
		if entry.IsDir() {
			fmt.Fprintf(out, "%-4s %12s  %s/\n", entry.Type, "-", entry.Path)
			continue
		}
		fmt.Fprintf(out, "%-4s %12d  %s\n", entry.Type, entry.Size, entry.Path)
	}
	return nil
}

func runCat(ctx context.Context, fs *filesystem.Filesystem, out io.Writer, args []string) error {
	res, err := fs.Read(ctx, args[0])
	if err != nil {
		return err
	}
	_, err = out.Write(res.Contents)
	return err
}

func runPut(ctx context.Context, fs *filesystem.Filesystem, out io.Writer, args []string) error {
	contents, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[1], err)
	}
	meta, err := fs.Put(ctx, args[0], contents, writeConfig())
	if err != nil {
		return err
	}
	return printJSON(out, meta)
}

func runUpload(ctx context.Context, fs *filesystem.Filesystem, out io.Writer, args []string) error {
	meta, err := fs.UploadFile(ctx, args[0], args[1], writeConfig())
	if err != nil {
		return err
	}
	return printJSON(out, meta)
}

func runRm(ctx context.Context, fs *filesystem.Filesystem, out io.Writer, args []string) error {
	return fs.Delete(ctx, args[0])
}

func runMkdir(ctx context.Context, fs *filesystem.Filesystem, out io.Writer, args []string) error {
	meta, err := fs.CreateDir(ctx, args[0], writeConfig())
	if err != nil {
		return err
	}
	return printJSON(out, meta)
}

func runRmdir(ctx context.Context, fs *filesystem.Filesystem, out io.Writer, args []string) error {
	return fs.DeleteDir(ctx, args[0])
}

func runCp(ctx context.Context, fs *filesystem.Filesystem, out io.Writer, args []string) error {
	return fs.Copy(ctx, args[0], args[1])
}

func runMv(ctx context.Context, fs *filesystem.Filesystem, out io.Writer, args []string) error {
	return fs.Rename(ctx, args[0], args[1])
}

func runStat(ctx context.Context, fs *filesystem.Filesystem, out io.Writer, args []string) error {
	meta, err := fs.GetMetadata(ctx, args[0])
	if err != nil {
		return err
	}
	return printJSON(out, meta)
}

func runURL(ctx context.Context, fs *filesystem.Filesystem, out io.Writer, args []string) error {
	var (
		u   string
		err error
	)
	if expiresFlag > 0 {
		u, err = fs.FullURL(ctx, args[0], expiresFlag)
	} else {
		u, err = fs.URL(ctx, args[0])
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, u)
	return err
}

func runTempURL(ctx context.Context, fs *filesystem.Filesystem, out io.Writer, args []string) error {
	u, err := fs.TemporaryURL(ctx, args[0], validityFlag)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, u)
	return err
}

func runVisibility(ctx context.Context, fs *filesystem.Filesystem, out io.Writer, args []string) error {
	if len(args) == 1 {
		meta, err := fs.GetVisibility(ctx, args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, meta.Visibility)
		return err
	}

	v, err := filesystem.ParseVisibility(args[1])
	if err != nil {
		return err
	}
	meta, err := fs.SetVisibility(ctx, args[0], v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, meta.Visibility)
	return err
}

func init() {
	RootCmd.AddCommand(fsCmd)
	fsCmd.PersistentFlags().StringVar(&diskFlag, "disk", "", "Disk to operate on (defaults to the storage disk)")

	lsCmd := &cobra.Command{Use: "ls [dir]", Short: "List a directory", Args: cobra.MaximumNArgs(1), RunE: withDisk(runLs)}
	lsCmd.Flags().BoolVarP(&recursiveFlag, "recursive", "r", false, "List sub-directories recursively")

	putCmd := &cobra.Command{Use: "put <path> <local-file>", Short: "Write a local file's contents to an object", Args: cobra.ExactArgs(2), RunE: withDisk(runPut)}
	uploadCmd := &cobra.Command{Use: "upload <path> <local-file>", Short: "Stream a local file to an object", Args: cobra.ExactArgs(2), RunE: withDisk(runUpload)}
	mkdirCmd := &cobra.Command{Use: "mkdir <dir>", Short: "Create a directory", Args: cobra.ExactArgs(1), RunE: withDisk(runMkdir)}
	for _, c := range []*cobra.Command{putCmd, uploadCmd, mkdirCmd} {
		c.Flags().StringVar(&mimetypeFlag, "mimetype", "", "Content type of the object")
		c.Flags().BoolVar(&publicFlag, "public", false, "Make the object publicly readable")
	}

	urlCmd := &cobra.Command{Use: "url <path>", Short: "Print the URL of an object", Args: cobra.ExactArgs(1), RunE: withDisk(runURL)}
	urlCmd.Flags().DurationVar(&expiresFlag, "expires", 0, "Sign the URL for this long")
	tempURLCmd := &cobra.Command{Use: "temp-url <path>", Short: "Print a signed URL of an object", Args: cobra.ExactArgs(1), RunE: withDisk(runTempURL)}
	tempURLCmd.Flags().DurationVar(&validityFlag, "expires", time.Hour, "Validity of the URL")

	fsCmd.AddCommand(
		lsCmd,
		&cobra.Command{Use: "cat <path>", Short: "Print an object", Args: cobra.ExactArgs(1), RunE: withDisk(runCat)},
		putCmd,
		uploadCmd,
		&cobra.Command{Use: "rm <path>", Short: "Delete an object", Args: cobra.ExactArgs(1), RunE: withDisk(runRm)},
		mkdirCmd,
		&cobra.Command{Use: "rmdir <dir>", Short: "Delete a directory recursively", Args: cobra.ExactArgs(1), RunE: withDisk(runRmdir)},
		&cobra.Command{Use: "cp <from> <to>", Short: "Copy an object", Args: cobra.ExactArgs(2), RunE: withDisk(runCp)},
		&cobra.Command{Use: "mv <from> <to>", Short: "Rename an object", Args: cobra.ExactArgs(2), RunE: withDisk(runMv)},
		&cobra.Command{Use: "stat <path>", Short: "Print object metadata", Args: cobra.ExactArgs(1), RunE: withDisk(runStat)},
		urlCmd,
		tempURLCmd,
		&cobra.Command{Use: "visibility <path> [public|private]", Short: "Show or change object visibility", Args: cobra.RangeArgs(1, 2), RunE: withDisk(runVisibility)},
	)
}
