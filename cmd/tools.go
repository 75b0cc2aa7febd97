package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repolens/repolens/internal/tools"
)

var toolsJSON bool

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools the gateway exposes",
	RunE:  runTools,
}

func init() {
	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "Print descriptors as JSON")
}

func runTools(_ *cobra.Command, _ []string) error {
	// Discovery needs no credential.
	reg, err := tools.Default(nil)
	if err != nil {
		return err
	}
	descriptors := reg.Descriptors()

	if toolsJSON {
		data, err := json.MarshalIndent(descriptors, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%s repolens tools\n\n", logo)
	for _, d := range descriptors {
		fmt.Printf("  %-22s %s\n", d.Name, d.Description)
	}
	return nil
}
