package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/arimage/backend"
	_ "github.com/gogpu/arimage/backend/gpu"
	"github.com/gogpu/arimage/backend/recording"
	"github.com/gogpu/arimage/registry"
)

// errCheckFailed is returned by check --strict when an asset was skipped.
var errCheckFailed = errors.New("some assets failed to load")

func newCheckCmd() *cobra.Command {
	var (
		backendName string
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "check DIR",
		Short: "Load every asset in DIR and report the results",
		Long: `Check builds the overlay registry from DIR and prints one line per
candidate file. The recording backend parses models and decodes textures
without a GPU; --backend gpu uploads them to a real device.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBackend(backendName, true)
			if err != nil {
				return err
			}
			defer b.Close()

			reg, err := registry.Build(cmd.Context(), args[0], b)
			if err != nil {
				return err
			}
			defer reg.Destroy()

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tKEY\tMODEL\tTEXTURE\tSTATUS")
			for _, r := range reg.Results() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Kind, dash(r.Key), dash(r.Model), dash(r.Texture), status(r))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			failed := len(reg.Failures())
			fmt.Fprintf(out, "\n%d models, %d descriptors, %d failed\n",
				len(reg.ModelKeys()), len(reg.DescriptorKeys()), failed)
			if strict && failed > 0 {
				return fmt.Errorf("%w: %w", errCheckFailed, reg.Err())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&backendName, "backend", backend.NameRecording,
		"Backend used to load assets ("+strings.Join(backend.Available(), ", ")+")")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error if any asset failed to load")
	return cmd
}

// openBackend returns an initialized backend. The recording backend is
// created directly so asset validation can be switched on.
func openBackend(name string, validate bool) (backend.Backend, error) {
	var b backend.Backend
	if name == backend.NameRecording {
		b = recording.New(recording.WithValidation(validate))
	} else {
		b = backend.Get(name)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			backend.ErrBackendNotAvailable, name, strings.Join(backend.Available(), ", "))
	}
	if err := b.Init(); err != nil {
		return nil, fmt.Errorf("init %s backend: %w", name, err)
	}
	return b, nil
}

func status(r registry.Result) string {
	if r.OK() {
		return "ok"
	}
	if r.Err == nil && r.Replaced {
		return "replaced"
	}
	var be *registry.AssetBuildError
	if errors.As(r.Err, &be) {
		return "FAIL: " + be.Err.Error()
	}
	return "FAIL: " + r.Err.Error()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
