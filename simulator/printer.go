package simulator

import (
	"OSSim-go/deadlock"
	"OSSim-go/metrics"
	"OSSim-go/schedulers/types"
	"OSSim-go/util"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

const (
	ganttCellWidth = 6
	ganttIdleLabel = "idle"
	ganttEpsilon   = 1e-6
)

// Printer 按照 LogPrintLevel 向终端输出结果。
type Printer struct {
	w     io.Writer
	level LogPrintLevel
}

func NewPrinter(w io.Writer, level LogPrintLevel) *Printer {
	return &Printer{w: w, level: level}
}

func (p *Printer) PrintRecord(record *types.Record, report *metrics.Report) {
	switch p.level {
	case NoPrint:
		return
	case ShortMsgPrint:
		_, _ = fmt.Fprintf(p.w, "%s: avg TAT = %s, avg WT = %s, makespan = %s\n",
			record.Algorithm, formatFloat(report.Execution.AverageTurnaround),
			formatFloat(report.Execution.AverageWaiting), formatFloat(report.Execution.Makespan))
	case AllFormatPrint:
		outputTitle(p.w, record.Algorithm.String())
		_, _ = fmt.Fprintf(p.w, "%s, time complexity: %s\n", record.Algorithm.Description(), record.Algorithm.Complexity())
		_, _ = fmt.Fprintln(p.w, "Gantt chart")
		_, _ = fmt.Fprint(p.w, RenderGantt(record))
		_, _ = fmt.Fprintln(p.w)
		outputSchedule(p.w, record, report)
		_, _ = fmt.Fprintln(p.w, util.Pretty(report.Execution))
	}
}

func (p *Printer) PrintComparison(c *metrics.Comparison) {
	if p.level == NoPrint {
		return
	}
	outputTitle(p.w, "Algorithm comparison")
	table := tablewriter.NewWriter(p.w)
	table.SetHeader([]string{"Algorithm", "Avg TAT", "Avg WT", "Makespan", "Complexity"})
	for _, e := range c.Entries {
		complexity := "-"
		if a, err := types.ParseAlgorithm(e.Algorithm); err == nil {
			complexity = a.Complexity()
		}
		table.Append([]string{e.Algorithm, formatFloat(e.AverageTurnaround), formatFloat(e.AverageWaiting), formatFloat(e.Makespan), complexity})
	}
	table.SetFooter([]string{"Best", c.Best, "", "", ""})
	table.Render()
}

func (p *Printer) PrintSafety(state *deadlock.State, result *deadlock.Result) {
	switch p.level {
	case NoPrint:
		return
	case AllFormatPrint:
		outputTitle(p.w, "Banker's Algorithm")
		outputMatrix(p.w, "Allocation", state.Allocation)
		outputMatrix(p.w, "Max", state.Max)
		outputMatrix(p.w, "Need", state.DisplayNeed())
		outputAvailable(p.w, state.Available)
		if edges, err := state.ResourceAllocationGraph(); err == nil {
			_, _ = fmt.Fprintln(p.w, "Resource allocation graph")
			for _, e := range edges {
				_, _ = fmt.Fprintf(p.w, "  %-10s %s\n", e.Kind, e)
			}
		}
	}
	_, _ = fmt.Fprintln(p.w, result)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// outputSchedule 仅在优先级算法下输出 Priority 列。
func outputSchedule(w io.Writer, record *types.Record, report *metrics.Report) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	withPriority := record.Algorithm.UsesPriority()
	header := []string{"PID", "Arrival", "Burst"}
	if withPriority {
		header = append(header, "Priority")
	}
	header = append(header, "Start", "Completion", "TAT", "WT")
	rows := make([][]string, 0, len(record.Processes))
	for _, p := range record.Processes {
		row := []string{strconv.Itoa(int(p.PID)), p.Arrival.String(), p.Burst.String()}
		if withPriority {
			row = append(row, strconv.Itoa(p.Priority))
		}
		row = append(row, p.Start.String(), p.Completion.String(), p.Turnaround.String(), p.Waiting.String())
		rows = append(rows, row)
	}
	footer := make([]string, len(header))
	footer[len(footer)-3] = "Average"
	footer[len(footer)-2] = formatFloat(report.Execution.AverageTurnaround)
	footer[len(footer)-1] = formatFloat(report.Execution.AverageWaiting)
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.SetFooter(footer)
	table.Render()
}

func outputMatrix(w io.Writer, title string, matrix [][]int) {
	_, _ = fmt.Fprintln(w, title)
	if len(matrix) == 0 {
		return
	}
	header := []string{""}
	for r := range matrix[0] {
		header = append(header, deadlock.ResourceLabel(r))
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	for p, row := range matrix {
		cells := []string{deadlock.ProcessLabel(p)}
		for _, v := range row {
			cells = append(cells, strconv.Itoa(v))
		}
		table.Append(cells)
	}
	table.Render()
}

func outputAvailable(w io.Writer, available []int) {
	cells := make([]string, 0, len(available))
	for r, v := range available {
		cells = append(cells, fmt.Sprintf("%s=%d", deadlock.ResourceLabel(r), v))
	}
	_, _ = fmt.Fprintf(w, "Available: %s\n", strings.Join(cells, " "))
}

type ganttBlock struct {
	label string
	start types.Time
	end   types.Time
}

func ganttBlocks(timeline []*types.ExecutionRange) []*ganttBlock {
	blocks := make([]*ganttBlock, 0, len(timeline))
	now := types.Time(0.)
	for _, er := range timeline {
		if float64(er.TimeRange.Start-now) > ganttEpsilon {
			blocks = append(blocks, &ganttBlock{label: ganttIdleLabel, start: now, end: er.TimeRange.Start})
		}
		blocks = append(blocks, &ganttBlock{
			label: "P" + strconv.Itoa(int(er.PID)),
			start: er.TimeRange.Start,
			end:   er.TimeRange.End,
		})
		now = er.TimeRange.End
	}
	return blocks
}

// RenderGantt 以文本形式绘制甘特图：第一行为进程，第二行为每段的起始时刻。
func RenderGantt(record *types.Record) string {
	return RenderTimeline(record.Timeline())
}

// RenderTimeline 绘制任意一段按开始时间排序的执行区间，例如回放的某一帧。
func RenderTimeline(timeline []*types.ExecutionRange) string {
	return renderGanttBlocks(ganttBlocks(timeline))
}

func renderGanttBlocks(blocks []*ganttBlock) string {
	if len(blocks) == 0 {
		return ""
	}
	bars := &strings.Builder{}
	ticks := &strings.Builder{}
	for _, blk := range blocks {
		bars.WriteString("|")
		bars.WriteString(center(blk.label, ganttCellWidth))
		ticks.WriteString(padRight(blk.start.String(), ganttCellWidth+1))
	}
	bars.WriteString("|\n")
	ticks.WriteString(blocks[len(blocks)-1].end.String())
	ticks.WriteString("\n")
	return bars.String() + ticks.String()
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
