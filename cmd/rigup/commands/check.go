package commands

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/rigup/internal/capability"
	"github.com/thoreinstein/rigup/internal/errors"
	"github.com/thoreinstein/rigup/internal/execx"
	"github.com/thoreinstein/rigup/internal/hostenv"
)

var checkJSON bool

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false,
		"output results as JSON")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe the machine without installing anything",
	Long: `Probe the platform's package manager and every capability in the
catalog without mutating the machine. Unlike 'rigup up' this never installs
a missing package manager.

Exit codes:
  0 - All required capabilities are present
  1 - One or more required capabilities are missing
  2 - Unsupported platform or missing package manager`,
	RunE: runCheck,
}

// checkResult is one probed capability in the JSON output.
type checkResult struct {
	Name     string `json:"name"`
	Command  string `json:"command"`
	Required bool   `json:"required"`
	Present  bool   `json:"present"`
}

// checkOutput is the full JSON document for 'rigup check --json'.
type checkOutput struct {
	OS             string        `json:"os"`
	PackageManager string        `json:"package_manager,omitempty"`
	Capabilities   []checkResult `json:"capabilities"`
}

func runCheck(cmd *cobra.Command, _ []string) error {
	runner := execx.NewSystem()

	profile, err := hostenv.Detect(runner, runtime.GOOS)
	if err != nil {
		return errors.NewSystemError(err,
			"rigup supports apt, yum, dnf, Homebrew, and Chocolatey hosts")
	}

	out := checkOutput{
		OS:             string(profile.OS),
		PackageManager: string(profile.PackageManager),
	}
	missingRequired := 0
	for _, c := range capability.Catalog() {
		present := capability.Check(runner, c)
		if c.Required && !present {
			missingRequired++
		}
		out.Capabilities = append(out.Capabilities, checkResult{
			Name:     c.Name,
			Command:  c.Command,
			Required: c.Required,
			Present:  present,
		})
	}

	if checkJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return errors.Wrap(err, "encoding JSON")
		}
	} else {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Platform: %s (%s)\n\n", out.OS, out.PackageManager)
		for _, r := range out.Capabilities {
			icon := "✓"
			if !r.Present {
				icon = "✗"
			}
			tag := "optional"
			if r.Required {
				tag = "required"
			}
			fmt.Fprintf(w, "  %s %-10s %s (%s)\n", icon, r.Name, tag, r.Command)
		}
	}

	if missingRequired > 0 {
		err := errors.Newf("%d required capabilities missing", missingRequired)
		return errors.NewUserError(err, "Run 'rigup up' to install them")
	}
	return nil
}
