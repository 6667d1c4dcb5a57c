package commands

import (
	"context"
	"fmt"

	"workout-go/internal/dto"
	"workout-go/internal/repository"
	"workout-go/internal/service"
	"workout-go/internal/utils"

	"github.com/gin-gonic/gin/binding"
	"github.com/spf13/cobra"
)

var (
	// create-user 参数
	newUsername string
	newPassword string
	newName     string
)

// createUserCmd 从命令行创建普通用户
var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create a regular user account",
	Long: `Create a regular (non-admin) user account.

Examples:
  server create-user --username jane --password pw123 --name "Jane Smith"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg.Log)

		req := &dto.CreateUserRequest{Username: newUsername, Password: newPassword, Name: newName}
		if err := utils.InitValidator(); err != nil {
			return err
		}
		if err := binding.Validator.ValidateStruct(req); err != nil {
			return fmt.Errorf("参数无效: %w", err)
		}

		db, err := openDatabase(cfg.Database)
		if err != nil {
			return err
		}

		user, err := service.NewUserService(repository.NewUserRepository(db)).CreateUser(context.Background(), req)
		if err != nil {
			return err
		}

		logger.WithField("username", user.Username).Info("用户已创建")
		return nil
	},
}

func init() {
	createUserCmd.Flags().StringVar(&newUsername, "username", "", "用户名")
	createUserCmd.Flags().StringVar(&newPassword, "password", "", "密码")
	createUserCmd.Flags().StringVar(&newName, "name", "", "显示名称")
	_ = createUserCmd.MarkFlagRequired("username")
	_ = createUserCmd.MarkFlagRequired("password")
	_ = createUserCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(createUserCmd)
}
