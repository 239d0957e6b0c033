package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/x4empire/internal/domain/planning"
	"github.com/andrescamacho/x4empire/pkg/utils"
)

// NewExpansionCommand creates the expansion command
func NewExpansionCommand() *cobra.Command {
	var (
		saveFile string
		modules  int
	)

	cmd := &cobra.Command{
		Use:   "expansion <ware>",
		Short: "Plan the impact of adding production modules",
		Long: `Expansion simulates adding production modules for a ware and checks
every input of its production chain: which inputs still have surplus,
which become marginal, and which turn into hard bottlenecks. For each
bottleneck it ranks concrete solutions (expand upstream production,
assign miners, buy from the market).

Requires production rate data, so either the game directory or a rate
overrides file must be configured.

Examples:
  x4empire expansion hullparts --modules 2
  x4empire expansion claytronics --modules 1 --save ~/save/quicksave.xml.gz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpansion(cmd, args[0], saveFile, modules)
		},
	}

	cmd.Flags().StringVar(&saveFile, "save", "", "Save file to analyze (default: newest)")
	cmd.Flags().IntVar(&modules, "modules", 1, "Number of modules to add")

	return cmd
}

func runExpansion(cmd *cobra.Command, wareID, saveFile string, modules int) error {
	service, _, err := newService(false)
	if err != nil {
		return err
	}
	savePath, err := service.ResolveSavePath(saveFile)
	if err != nil {
		return err
	}

	result, err := service.Analyze(cmd.Context(), savePath)
	if err != nil {
		return err
	}

	planner := planning.NewPlanner(service.Registry(), result.RateTable, result.Report)
	plan, err := planner.PlanExpansion(wareID, modules)
	if err != nil {
		return err
	}

	printPlan(plan)
	return nil
}

func printPlan(plan *planning.ExpansionPlan) {
	fmt.Printf("Expansion plan: %s\n", plan.TargetWare.Name)
	fmt.Printf("Modules:        %d -> %d\n", plan.CurrentModules, plan.PlannedModules)
	fmt.Printf("Production:     %.1f/h -> %.1f/h (+%.1f/h, +%.1f%%)\n",
		plan.CurrentRate, plan.PlannedRate, plan.IncreaseAmount, plan.IncreasePercent)
	if plan.Feasible {
		fmt.Println("Verdict:        feasible, no input bottlenecks")
	} else {
		fmt.Printf("Verdict:        %d bottleneck(s)\n", len(plan.Bottlenecks))
	}

	if len(plan.Inputs) > 0 {
		printSection("INPUTS")
		w := newTabWriter()
		fmt.Fprintln(w, "WARE\tCURRENT CONS/H\tADDED/H\tPRODUCTION/H\tSURPLUS/H\tSTATUS")
		for _, input := range plan.Inputs {
			fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f\t%+.1f\t%s\n",
				input.Ware.Name, input.CurrentConsumption, input.DeltaConsumption,
				input.CurrentProduction, input.SurplusOrDeficit, input.Status)
		}
		w.Flush()
	}

	for _, b := range plan.Bottlenecks {
		printSection(fmt.Sprintf("BOTTLENECK: %s (%s, deficit %s)", b.Ware.Name, b.Severity, utils.FormatRate(b.Deficit)))
		for _, sol := range b.Solutions {
			marker := " "
			if sol == b.Recommended {
				marker = "*"
			}
			feasibility := ""
			if !sol.Feasible {
				feasibility = " [not currently feasible]"
			}
			fmt.Printf(" %s %s%s\n", marker, sol.Description, feasibility)
			for _, issue := range sol.BlockingIssues {
				fmt.Printf("     - %s\n", issue)
			}
		}
	}

	if len(plan.Recommendations) > 0 {
		printSection("RECOMMENDATIONS")
		for _, rec := range plan.Recommendations {
			fmt.Printf(" - %s\n", rec)
		}
	}
}
