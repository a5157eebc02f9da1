package promotion

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}
