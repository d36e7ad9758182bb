package fitday

import (
	"github.com/spf13/cobra"

	"github.com/saadjs/fitday/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize local fitday storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *session) error {
			if s.cfg.Backend == config.BackendRedis {
				out(cmd, "Connected to redis at %s (prefix %q)\n", s.cfg.RedisAddr, s.cfg.RedisPrefix)
				return nil
			}
			out(cmd, "Initialized fitday database at %s\n", s.cfg.DBPath)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
