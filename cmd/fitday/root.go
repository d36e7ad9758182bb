package fitday

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath  string
	backend string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:          "fitday",
	Short:        "fitday tracks meals, exercise and calorie balance from your terminal",
	Long:         "fitday is a local-first fitness tracker with a biometric profile, day-bucketed meal and exercise logs, and BMI, BMR and calorie balance figures.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (overrides FITDAY_DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Storage backend: sqlite or redis (overrides FITDAY_BACKEND)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file to load before reading the environment")
}
