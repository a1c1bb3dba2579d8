package domain

import "time"

type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "INFO"
	NoticeError NoticeLevel = "ERROR"
)

// Notice is a one-line status message shown to the waiter. WaiterID zero
// means every waiter sees it.
type Notice struct {
	Seq      uint64
	WaiterID uint64
	Level    NoticeLevel
	Message  string
	At       time.Time
}

// To addresses the notice to a single waiter.
func (n Notice) To(waiterID uint64) Notice {
	n.WaiterID = waiterID
	return n
}

// VisibleTo reports whether waiterID may see the notice.
func (n Notice) VisibleTo(waiterID uint64) bool {
	return n.WaiterID == 0 || n.WaiterID == waiterID
}

func InfoNotice(msg string) Notice {
	return Notice{Level: NoticeInfo, Message: msg, At: time.Now()}
}

func ErrorNotice(msg string) Notice {
	return Notice{Level: NoticeError, Message: msg, At: time.Now()}
}
