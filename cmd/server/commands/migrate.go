package commands

import (
	"github.com/spf13/cobra"
)

// migrateCmd 只执行数据库迁移
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg.Log)

		if _, err := openDatabase(cfg.Database); err != nil {
			return err
		}
		logger.WithField("db_driver", cfg.Database.Driver).Info("数据库迁移完成")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
