package cmd

import (
	"context"
	"fmt"

	"warehouse-counter/core/codegen"

	"github.com/spf13/cobra"
)

var (
	codeCategory string
	codeBranch   string
	codeName     string
)

// codeCmd previews the code a new product would get.
var codeCmd = &cobra.Command{
	Use:   "code",
	Short: "Preview the next product code",
	Long: `Prints the code a product with the given category, branch and name
would get, based on the codes already in the catalog. Nothing is reserved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(context.Background())
		if err != nil {
			return err
		}
		defer rt.close()

		code, err := codegen.New().Next(rt.catalog, codegen.Input{
			Category: codeCategory,
			Branch:   codeBranch,
			Name:     codeName,
		})
		if err != nil {
			return err
		}
		fmt.Println(code)
		return nil
	},
}

func init() {
	codeCmd.Flags().StringVar(&codeCategory, "category", "", "Category label")
	codeCmd.Flags().StringVar(&codeBranch, "branch", "", "Branch label")
	codeCmd.Flags().StringVar(&codeName, "name", "", "Product name")
	_ = codeCmd.MarkFlagRequired("name")

	RootCmd.AddCommand(codeCmd)
}
