package main

import (
	"fmt"
	"strings"

	"hof_tool/pkg/dataset"
	"hof_tool/pkg/diffutil"
	"hof_tool/pkg/errorutil"
	"hof_tool/pkg/graph"
	"hof_tool/pkg/initutil"
	"hof_tool/pkg/logutil"
	"hof_tool/pkg/playground"
	"hof_tool/pkg/report"
	"hof_tool/pkg/toolutil"

	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	logFile    string
	logLevel   logutil.LogLevel
	format     report.Format
	dataFile   string
	scoresFile string

	// PersistentPreRunE 里填充
	set dataset.Set
}

func newRootCmd() *cobra.Command {
	opts := &options{logLevel: logutil.WARN, format: report.FormatText}

	rootCmd := &cobra.Command{
		Use:   "hofplay",
		Short: fmt.Sprintf("hofplay v%s 演示 map/filter/reduce/sorted/flatMap/compactMap 及链式调用", TOOL_VERSION),
		// 阻止 Cobra 在命令参数错误时输出帮助
		SilenceUsage: true,
		// 阻止Cobra自动打印RunEs返回的错误内容，由 run 统一输出
		SilenceErrors: true,
	}

	// 定义全局flag(屁股后面带P的函数才支持短选项)
	flags := rootCmd.PersistentFlags()
	flags.VarP(&opts.logLevel, "log-level", "e", "日志等级(DEBUG/INFO/WARN/ERROR)")
	flags.StringVarP(&opts.logFile, "log-file", "l", "hofplay.log", "日志文件名(stdout 表示标准输出)")
	flags.VarP(&opts.format, "format", "f", "输出格式("+strings.Join(opts.format.Values(), "/")+")")
	flags.StringVarP(&opts.dataFile, "data", "d", "", "JSON 数据文件，缺失的键使用内置数据")
	flags.StringVarP(&opts.scoresFile, "scores", "s", "", "分数文件，每行一个，替换数据中的 scores")
	flags.StringVarP(&opts.configPath, "config", "c", "", "配置文件(默认 ./"+initutil.DefaultConfigFile+"，不存在则忽略)")

	// 这个钩子会在用户的命令解析完成、flag 值填充后执行
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return opts.prepare(cmd)
	}

	for _, sec := range playground.Sections {
		rootCmd.AddCommand(sectionCmd(opts, sec))
	}
	rootCmd.AddCommand(allCmd(opts), datasetsCmd(opts))
	return rootCmd
}

// prepare 合并配置文件和 flag，初始化日志，加载数据
func (o *options) prepare(cmd *cobra.Command) error {
	cfg, err := initutil.LoadConfig(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("format") {
		if err := o.format.Set(cfg.Format); err != nil {
			return errorutil.NewExitError(errorutil.CodeConfigError, err)
		}
	}
	if !flags.Changed("log-level") {
		if err := o.logLevel.Set(cfg.LogLevel); err != nil {
			return errorutil.NewExitError(errorutil.CodeConfigError, err)
		}
	}
	if !flags.Changed("data") {
		o.dataFile = cfg.DataFile
	}

	if err := logutil.InitLogger(o.logFile, o.logLevel); err != nil {
		return errorutil.NewExitError(errorutil.CodeIOError, err)
	}
	cfg.Format, cfg.LogLevel, cfg.DataFile = o.format.String(), o.logLevel.String(), o.dataFile
	initutil.SetConfig(cfg)

	o.set = dataset.Default()
	if o.dataFile != "" {
		if o.set, err = dataset.LoadFile(o.dataFile); err != nil {
			return err
		}
	}
	if o.scoresFile != "" {
		if o.set.Scores, err = dataset.LoadScores(o.scoresFile); err != nil {
			return err
		}
	}
	return nil
}

func (o *options) write(cmd *cobra.Command, results []playground.Result) error {
	if err := report.Write(cmd.OutOrStdout(), o.format, results); err != nil {
		return errorutil.NewExitError(errorutil.CodeIOError, err)
	}
	return nil
}

func sectionCmd(opts *options, sec playground.Section) *cobra.Command {
	cmd := &cobra.Command{
		Use:   sec.Name,
		Short: "运行 " + sec.Name + " 演示",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logutil.Debug("运行演示分组: %s", sec.Name)
			return opts.write(cmd, sec.Run(opts.set))
		},
	}

	switch sec.Name {
	case "sorted":
		var showDiff bool
		cmd.Flags().BoolVar(&showDiff, "diff", false, "并排显示排序前后的 numbers")
		run := cmd.RunE
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			if err := run(cmd, args); err != nil {
				return err
			}
			if !showDiff {
				return nil
			}
			return printSortDiff(cmd, opts.set.Numbers)
		}
	case "chain":
		var dot bool
		cmd.Flags().BoolVar(&dot, "dot", false, "以 Graphviz DOT 格式输出链式调用的步骤")
		run := cmd.RunE
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			if !dot {
				return run(cmd, args)
			}
			return printPipelines(cmd)
		}
	}
	return cmd
}

func printSortDiff(cmd *cobra.Command, numbers []int) error {
	toText := func(n int) string { return fmt.Sprint(n) }
	before := toolutil.Map(toolutil.StreamOf(numbers), toText).ToSlice()
	after := toolutil.Map(toolutil.SortedNatural(toolutil.StreamOf(numbers)), toText).ToSlice()
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), diffutil.FormatSideBySide(diffutil.CompareSequences(before, after))); err != nil {
		return errorutil.NewExitError(errorutil.CodeIOError, err)
	}
	return nil
}

func printPipelines(cmd *cobra.Command) error {
	chains := toolutil.Map(toolutil.StreamOf(playground.ChainPipelines()), func(p playground.Pipeline) graph.Chain {
		return graph.Chain{Name: p.Name, Stages: p.Stages}
	}).ToSlice()
	dot, err := graph.PipelineDOT(chains)
	if err != nil {
		return errorutil.NewExitError(errorutil.CodeInternalErr, err)
	}
	if _, err = fmt.Fprint(cmd.OutOrStdout(), dot); err != nil {
		return errorutil.NewExitError(errorutil.CodeIOError, err)
	}
	return nil
}

func allCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "按顺序运行全部演示",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.write(cmd, playground.RunAll(opts.set))
		},
	}
}

func datasetsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "datasets [prefix]",
		Short: "列出名字以 prefix 开头的数据集",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := dataset.NewRegistry(opts.set)
			prefix := ""
			if len(args) > 0 {
				prefix = args[0]
			}
			entries := reg.Match(prefix)
			if len(entries) == 0 {
				return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage,
					fmt.Sprintf("没有名字以 %q 开头的数据集", prefix), nil)
			}
			results := toolutil.Map(toolutil.StreamOf(entries), func(e dataset.Entry) playground.Result {
				return playground.Result{Section: "datasets", Title: fmt.Sprintf("%s (%s, %d)", e.Name, e.Kind, e.Count), Value: e.Value}
			}).ToSlice()
			return opts.write(cmd, results)
		},
	}
}
