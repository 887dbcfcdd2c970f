package workflow

type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeError
)

// Notice is a user-facing message raised by a component, shown until
// dismissed.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}
