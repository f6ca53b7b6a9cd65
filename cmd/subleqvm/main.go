// Command subleqvm loads a subleq ROM image and runs it, interleaving
// batches of interpretation steps with an optional framebuffer dump, the
// same batching shape the reference host uses (spec.md §5, §4.9).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"subleq/config"
	"subleq/vm"
)

var (
	configPath string
	noRawIO    bool
)

var command = &cobra.Command{
	Use:           "subleqvm",
	Short:         "Run a subleq ROM image",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		mem, err := vm.LoadROMFile(cfg.ROMPath, cfg.RAMCells)
		if err != nil {
			return err
		}
		inst, err := vm.New(mem)
		if err != nil {
			return err
		}

		raw, tearDown := setupIO(noRawIO)
		if tearDown != nil {
			defer tearDown()
		}
		stop := make(chan struct{})
		if raw {
			go watchShutdownKey(stop)
		}
		return run(inst, cfg, stop)
	},
}

func init() {
	command.Flags().StringVar(&configPath, "config", "subleqvm.toml", "optional host configuration file")
	command.Flags().BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO (no shutdown keypress)")
}

// run drives the host batching loop described in spec.md §5: interleave
// batches of cfg.StepsPerFrame steps with an optional framebuffer dump,
// until stop is closed. There is no halt opcode (spec.md §5), so absent a
// shutdown signal this runs forever.
func run(inst *vm.Instance, cfg *config.Config, stop chan struct{}) error {
	shouldStop := func() bool {
		select {
		case <-stop:
			return true
		default:
			return false
		}
	}

	for frame := 0; ; frame++ {
		n := inst.RunBatch(cfg.StepsPerFrame, shouldStop)
		if cfg.FrameDumpPath != "" && cfg.FramesPerDump > 0 && frame%cfg.FramesPerDump == 0 {
			if err := dumpFrame(inst.Mem, cfg, frame); err != nil {
				return err
			}
		}
		if n < cfg.StepsPerFrame {
			return nil
		}
	}
}

func dumpFrame(mem vm.Memory, cfg *config.Config, frame int) error {
	pixels := vm.Framebuffer(mem, 0, cfg.Screen.Width, cfg.Screen.Height)
	data := vm.PBM(pixels, cfg.Screen.Width, cfg.Screen.Height)
	name := filepath.Join(cfg.FrameDumpPath, fmt.Sprintf("frame-%06d.pbm", frame))
	return os.WriteFile(name, data, 0o644)
}

func main() {
	if err := command.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
