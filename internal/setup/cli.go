package setup

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

var flags Flags

var rootCmd = &cobra.Command{
	Use:          "pivid-setup",
	Short:        "Pivid dev environment setup",
	Long:         "Installs system packages, creates the project venv and drives Conan for all C++ dependencies.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSetup(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Version information",
	Run: func(_ *cobra.Command, _ []string) {
		colNote.Printf("pivid-setup %s (%s) built %s\n", version, arch, buildDate)
	},
}

var doctorCmd = &cobra.Command{
	Use:          "doctor",
	Short:        "Check that every required external tool is on PATH",
	SilenceUsage: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		return Doctor()
	},
}

// Main is the CLI entrypoint for pivid-setup.
func Main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			colArrow.Print("\n-> ")
			color.Danger.Printf("Received %v. Cancelling setup\n", sig)
			cancel()
			// A second signal forces an immediate exit.
			<-sigs
			os.Exit(130)
		case <-ctx.Done():
		}
	}()

	rootCmd.Flags().BoolVar(&flags.Clean, "clean", false, "Wipe build dir first")
	rootCmd.Flags().BoolVar(&flags.NoConan, "no-conan", false, "Skip conan setup")
	rootCmd.Flags().BoolVar(&flags.Debug, "debug", false, "Debug build for deps")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runSetup executes the whole bootstrap pipeline for the current
// directory. Every failure is fatal; nothing is rolled back.
func runSetup(ctx context.Context) error {
	sourceDir, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(sourceDir)
	if err != nil {
		return err
	}

	release, err := lockSourceTree(sourceDir)
	if err != nil {
		return err
	}
	defer release()

	user := &Executor{Context: ctx}
	root := &Executor{Context: ctx, ShouldRunAsRoot: true, Interactive: true}

	s := New(cfg, flags, user, root)
	if err := runPipeline(s.Steps()); err != nil {
		return err
	}

	colArrow.Print("\n-> ")
	if flags.NoConan {
		colSuccess.Println("Complete (without Conan, per --no-conan)")
	} else {
		colSuccess.Println("Setup complete, build with: ninja -C build")
	}
	return nil
}
