package types

// Params carries the per-run arguments that only some disciplines read.
type Params struct {
	// Quantum is the Round Robin time slice. Zero means absent.
	Quantum Duration `json:"quantum,omitempty" yaml:"quantum,omitempty"`
}

type Scheduler interface {
	// Schedule 在单个CPU上模拟该调度算法。
	// processes 必须已经通过 ValidateProcesses 校验并 Reset，调用结束后每个 Process 的输出字段都被填满。
	// 调度器本身不保存任何跨调用的状态，因此对同一输入重复调用得到相同的结果。
	Schedule(processes []*Process, params *Params)

	// Algorithm 调度器对应的算法标识
	Algorithm() Algorithm

	// Name 调度器基本描述信息
	Name() string

	// Info 详细描述信息
	Info() interface{}
}
