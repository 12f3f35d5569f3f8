package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/canvas"
	"github.com/zooyer/canvas/core"
	"github.com/zooyer/canvas/entities"
	"github.com/zooyer/canvas/utils"
)

const epsilon = 1 // 像素取整后的对比精度

var (
	verbose bool
	output  string
	csvFile string
	ids     []string
	groupID string
	logger  = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
)

var rootCmd = &cobra.Command{
	Use:   "canvas",
	Short: "Group and ungroup components of a canvas layout",
	Long: `canvas computes the geometry of grouped canvas components.

Examples:
  canvas bounds layout.yaml                     # Print every component's rotated extent
  canvas group layout.yaml --ids a,b --id g1    # Group components a and b into g1
  canvas ungroup layout.yaml --id g1 -o out.yaml`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
	},
}

var boundsCmd = &cobra.Command{
	Use:   "bounds <layout>",
	Short: "Print the absolute rect and rotated extent of every component",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := canvas.Open(args[0])
		if err != nil {
			return err
		}
		return report(doc, csvFile)
	},
}

var groupCmd = &cobra.Command{
	Use:   "group <layout>",
	Short: "Group top level components into a new group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := canvas.Open(args[0])
		if err != nil {
			return err
		}

		id := groupID
		if id == "" {
			id = nextGroupID(doc)
		}

		group, err := doc.Group(id, ids...)
		if err != nil {
			return err
		}

		rect, _ := entities.Style(group)
		logger.Info("grouped", "group", group.ID(), "children", len(group.Children), "rect", rect)

		return save(doc, args[0])
	},
}

var ungroupCmd = &cobra.Command{
	Use:   "ungroup <layout>",
	Short: "Dissolve a top level group back into absolute components",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := canvas.Open(args[0])
		if err != nil {
			return err
		}

		children, err := doc.Ungroup(groupID)
		if err != nil {
			return err
		}

		for _, child := range children {
			rect, _ := entities.Style(child)
			logger.Debug("resolved", "component", child.ID(), "rect", rect)
		}
		logger.Info("ungrouped", "group", groupID, "children", len(children))

		return save(doc, args[0])
	},
}

func nextGroupID(doc *canvas.Document) string {
	for i := len(doc.Components) + 1; ; i++ {
		if c, _ := doc.Find(fmt.Sprintf("group-%d", i)); c == nil {
			return fmt.Sprintf("group-%d", i)
		}
	}
}

func save(doc *canvas.Document, input string) error {
	if output == "" {
		output = input
	}
	if output == "-" {
		return doc.Save(os.Stdout)
	}

	logger.Debug("writing layout", "file", output)

	return doc.WriteFile(output)
}

func renderBool(b bool) string {
	if b {
		return "✅"
	}

	return "❌"
}

// centered 旋转后的包围盒中心必须与原矩形中心一致
func centered(rect core.Rect, ext core.Extent) bool {
	center := utils.CenterPoint(core.Point{X: ext.Left, Y: ext.Top}, core.Point{X: ext.Right, Y: ext.Bottom})
	moved := core.Rect{
		Left:   center.X - rect.Width/2,
		Top:    center.Y - rect.Height/2,
		Width:  rect.Width,
		Height: rect.Height,
		Rotate: rect.Rotate,
	}

	return moved.Equal(rect, epsilon)
}

// report 打印每个组件的位置，csv 不为空时同时追加到表格
func report(doc *canvas.Document, csv string) error {
	const header = "id,type,left,top,width,height,rotate,right,bottom\n"

	if csv != "" {
		if err := os.WriteFile(csv, []byte(header), 0644); err != nil {
			return err
		}
		fmt.Println("写入文件:", csv)
	}

	var walk func(comps []entities.Component, depth int) error
	walk = func(comps []entities.Component, depth int) error {
		for _, comp := range comps {
			rect, err := doc.Absolute(comp.ID())
			if err != nil {
				return err
			}
			ext := utils.RotatedExtent(rect)

			fmt.Printf("%s[%s %s] | %.0f x %.0f @ %.0f° | 显示 %.0f x %.0f | RECTANG %.2f,%.2f %.2f,%.2f %s\n",
				strings.Repeat("    ", depth), comp.Type(), comp.ID(),
				rect.Width, rect.Height, rect.Rotate,
				doc.Scaled(rect.Width), doc.Scaled(rect.Height),
				ext.Left, ext.Top, ext.Right, ext.Bottom, renderBool(centered(rect, ext)),
			)

			if csv != "" {
				var line = fmt.Sprintf("%s,%s,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f\n",
					comp.ID(), comp.Type(), rect.Left, rect.Top, rect.Width, rect.Height, rect.Rotate, ext.Right, ext.Bottom,
				)
				if err = xos.AppendFile(csv, []byte(line), 0644); err != nil {
					return err
				}
			}

			if g, ok := comp.(*entities.Group); ok {
				if err = walk(g.Children, depth+1); err != nil {
					return err
				}
			}
		}
		return nil
	}

	fmt.Printf("开始处理: %d 个组件...\n", len(doc.Components))

	return walk(doc.Components, 0)
}

// dragAndDrop 把布局文件拖到程序上执行：打印报告并生成同名 csv
func dragAndDrop(filename string) {
	defer xos.PauseExit()

	if filename == "" {
		var err error
		filename, err = zenity.SelectFile(
			zenity.Title("选择画布布局文件"),
			zenity.FileFilter{Name: "Layout", Patterns: []string{"*.yaml", "*.yml", "*.json"}},
		)
		if err != nil {
			if !errors.Is(err, zenity.ErrCanceled) {
				logger.Error("select file", "err", err)
			}
			return
		}
	}

	doc, err := canvas.Open(filename)
	if err == nil {
		err = report(doc, strings.TrimSuffix(filename, filepath.Ext(filename))+".csv")
	}
	if err != nil {
		logger.Error("report", "file", filename, "err", err)
		_ = zenity.Error(err.Error(), zenity.Title("canvas"))
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	boundsCmd.Flags().StringVar(&csvFile, "csv", "", "also write the report to a CSV file")

	groupCmd.Flags().StringSliceVar(&ids, "ids", nil, "ids of the top level components to group")
	groupCmd.Flags().StringVar(&groupID, "id", "", "id of the new group (default group-N)")
	groupCmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default: overwrite input)")
	_ = groupCmd.MarkFlagRequired("ids")

	ungroupCmd.Flags().StringVar(&groupID, "id", "", "id of the group to dissolve")
	ungroupCmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default: overwrite input)")
	_ = ungroupCmd.MarkFlagRequired("id")

	rootCmd.AddCommand(boundsCmd, groupCmd, ungroupCmd)
}

func main() {
	// 拖拽执行或双击执行
	if len(os.Args) < 2 {
		dragAndDrop("")
		return
	}
	if len(os.Args) == 2 && !strings.HasPrefix(os.Args[1], "-") {
		if cmd, _, err := rootCmd.Find(os.Args[1:]); err != nil || cmd == rootCmd {
			if _, err = os.Stat(os.Args[1]); err == nil {
				dragAndDrop(os.Args[1])
				return
			}
		}
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, core.ErrInvalidInput) || errors.Is(err, core.ErrInvalidState) || errors.Is(err, core.ErrProtocol) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
