package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"puzzlekit/internal/app"
	"puzzlekit/internal/config"
	"puzzlekit/internal/logger"
	"puzzlekit/pkg/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	log     *logger.Logger
)

var RootCmd = &cobra.Command{
	Use:   "puzzlekit",
	Short: "puzzlekit solves two small numeric puzzles",
	Long: `puzzlekit reads puzzle input from a file or standard input and prints one
integer per answer:

  triplet    classify a sequence by decreasing triplets and monotonicity
  deletions  count removable digits that keep a number divisible by three`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := app.NewApp(cfgFile)
		if err != nil {
			return fmt.Errorf("初始化应用失败: %w", err)
		}

		log = appInstance.Logger
		if cfgFile != "" {
			log.Debugf("使用配置文件: %s", cfgFile)
		}
		viper.Set("app", appInstance)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appInstance, err := currentApp(); err == nil {
			appInstance.Close()
		}
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute(ctx context.Context) {
	if err := RootCmd.ExecuteContext(ctx); err != nil {
		log.Errorf("执行命令失败: %v", err)
		log.SyncLogger()
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径 (json or yaml)")
	utils.CheckErr(viper.BindPFlag("config", RootCmd.PersistentFlags().Lookup("config")), "绑定配置文件标志失败")

	// 初始化日志, 应用启动后会被替换
	var err error
	log, err = logger.InitLogger(&config.LoggingConfig{})
	utils.CheckErr(err, "初始化日志失败")
}

func currentApp() (*app.App, error) {
	appInstance, ok := viper.Get("app").(*app.App)
	if !ok {
		return nil, fmt.Errorf("failed to get app instance")
	}
	return appInstance, nil
}

// openInput returns standard input for "" and "-", and the named file
// otherwise.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}
