package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/theapemachine/baryogen"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func main() {
	pflag.Float64("epsilon", 0.1, "CP violation parameter in [-1, 1]")
	pflag.Int("shots", 10000, "number of decay trials")
	pflag.Uint64("seed", 1, "seed for the local simulator")
	pflag.Bool("sweep", false, "sweep epsilon from -1 to 1 instead of a single run")
	pflag.Parse()

	viper.SetEnvPrefix("baryogen")
	viper.AutomaticEnv()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sim := baryogen.NewLocalSimulator(viper.GetUint64("seed"))
	shots := viper.GetInt("shots")

	if viper.GetBool("sweep") {
		runSweep(sim, shots)
		return
	}

	tally, err := run(sim, viper.GetFloat64("epsilon"), shots)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	printHistogram(tally)
}

func run(sim baryogen.Simulator, epsilon float64, shots int) (*baryogen.Tally, error) {
	model, err := baryogen.NewDecayModel(epsilon)
	if err != nil {
		return nil, err
	}
	return sim.Run(model, shots)
}

func runSweep(sim baryogen.Simulator, shots int) {
	fmt.Println(labelStyle.Render("epsilon   asymmetry   matter/antimatter"))

	for epsilon := -1.0; epsilon <= 1.0; epsilon += 0.25 {
		tally, err := run(sim, epsilon, shots)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("%+.2f     %+.4f     %d/%d\n",
			epsilon, tally.Asymmetry(), tally.Matter, tally.Antimatter)
	}
}

func printHistogram(tally *baryogen.Tally) {
	outcomes := make([]string, 0, len(tally.Counts))
	maxCount := 0
	for outcome, count := range tally.Counts {
		outcomes = append(outcomes, outcome)
		if count > maxCount {
			maxCount = count
		}
	}
	sort.Strings(outcomes)

	for _, outcome := range outcomes {
		count := tally.Counts[outcome]
		width := count * 40 / maxCount
		fmt.Printf("%s %s %s\n",
			labelStyle.Render(outcome),
			barStyle.Render(strings.Repeat("█", width)),
			dimStyle.Render(fmt.Sprintf("%d", count)),
		)
	}

	fmt.Printf("\nmatter %d, antimatter %d, asymmetry %+.4f\n",
		tally.Matter, tally.Antimatter, tally.Asymmetry())
}
