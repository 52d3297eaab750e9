package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dcarber/spinesel/internal/registry"
)

var scopeFilter string

// registryCmd represents the registry command
var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "List registered variables and cuts",
	Long: `Registry lists every variable and cut name known to the analysis
context, with its registration scope. These names are what selection
files refer to.

Example:
  spinesel registry
  spinesel registry --scope truth`,
	RunE: runRegistry,
}

func init() {
	rootCmd.AddCommand(registryCmd)

	registryCmd.Flags().StringVar(&scopeFilter, "scope", "", "filter by scope: truth, reco, both, both_particle")
}

func runRegistry(cmd *cobra.Command, args []string) error {
	_, actx, err := buildContext()
	if err != nil {
		return err
	}

	scopes, err := scopesForFilter(scopeFilter)
	if err != nil {
		return err
	}

	set := actx.Registries
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, name := range set.Vars.Enumerate(scopes...) {
		_, sc, _ := set.Vars.Lookup(name)
		fmt.Fprintf(w, "variable\t%s\t%s\n", name, sc)
	}
	for _, name := range set.Cuts.Enumerate(scopes...) {
		_, sc, _ := set.Cuts.Lookup(name)
		fmt.Fprintf(w, "cut\t%s\t%s\n", name, sc)
	}
	for _, name := range set.ParticleVars.Enumerate(scopes...) {
		_, sc, _ := set.ParticleVars.Lookup(name)
		fmt.Fprintf(w, "particle variable\t%s\t%s\n", name, sc)
	}
	for _, name := range set.ParticleCuts.Enumerate(scopes...) {
		_, sc, _ := set.ParticleCuts.Lookup(name)
		fmt.Fprintf(w, "particle cut\t%s\t%s\n", name, sc)
	}
	return w.Flush()
}

func scopesForFilter(filter string) ([]registry.Scope, error) {
	switch filter {
	case "":
		return nil, nil
	case "truth":
		return []registry.Scope{registry.TruthOnly, registry.Both}, nil
	case "reco":
		return []registry.Scope{registry.RecoOnly, registry.Both}, nil
	case "both":
		return []registry.Scope{registry.Both}, nil
	case "both_particle":
		return []registry.Scope{registry.BothParticle}, nil
	default:
		return nil, fmt.Errorf("unknown scope %q (want truth, reco, both or both_particle)", filter)
	}
}
