package engine

// TaskID is a stable, monotonically assigned, non-zero task identifier
// handed back by the creating API call.
type TaskID uint16

// TaskState is one state of the task state machine (spec.md §4.3).
type TaskState int

const (
	// TaskNothing marks a free pool slot.
	TaskNothing TaskState = iota
	TaskSend
	TaskSendDone
	TaskReceive
	TaskReceiveDataAvailable
	TaskReceiveDataRetrieved
	TaskReceiveTimedOut
	// TaskFinished is transient: destroyed at the end of the tick that
	// produces it.
	TaskFinished
)

func (s TaskState) String() string {
	switch s {
	case TaskNothing:
		return "NOTHING"
	case TaskSend:
		return "SEND"
	case TaskSendDone:
		return "SEND_DONE"
	case TaskReceive:
		return "RECEIVE"
	case TaskReceiveDataAvailable:
		return "RECEIVE_DATA_AVAILABLE"
	case TaskReceiveDataRetrieved:
		return "RECEIVE_DATA_RETRIEVED"
	case TaskReceiveTimedOut:
		return "RECEIVE_TIMEDOUT"
	case TaskFinished:
		return "FINISHED"
	default:
		return "UNKNOWN"
	}
}

// RxConfig enumerates the optional per-call receive filters (spec.md
// §4.6): a sender filter, a timeout, and a completion callback. Each is
// independently present or absent.
type RxConfig struct {
	Sender     *Address
	Timeout    uint32 // milliseconds; 0 means "no timeout configured"
	RxCallback func(sender Address, payload []byte)
}

// Task is one in-flight send or receive activity.
type Task struct {
	ID    TaskID
	State TaskState
	Buf   *Packet

	RefTime  uint32 // when the task was created or entered its current wait
	Deadline uint32 // wake-up deadline, meaningful only if SubscribedTimer

	LastDriverStatus Status
	FinalStatus      Status

	Schedule []ScheduleEntry
	Cursor   int
	TxCount  int

	SubscribedTimer bool
	SubscribedFrame bool

	IsAck          bool
	NeedsAck       bool
	HasReceivedAck bool
	Unattended     bool // fire-and-forget: no caller will poll this task

	SingleSender  bool
	FilterAddress Address

	RxCallback func(sender Address, payload []byte)
}

func (t *Task) reset() {
	*t = Task{}
}
