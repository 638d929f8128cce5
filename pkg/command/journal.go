package command

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/mandelsoft/goutils/general"
)

const TIMESTAMP_FORMAT = "2006-01-02 15:04:05"

// Journal is the user visible log channel. Every message
// is written as a single timestamped line.
type Journal struct {
	lock  sync.Mutex
	out   io.Writer
	clock func() time.Time
}

func NewJournal(out io.Writer, clock ...func() time.Time) *Journal {
	return &Journal{
		out:   out,
		clock: general.OptionalDefaulted(time.Now, clock...),
	}
}

func (j *Journal) Printf(msg string, args ...interface{}) {
	if j == nil || j.out == nil {
		return
	}
	j.lock.Lock()
	defer j.lock.Unlock()
	fmt.Fprintf(j.out, "[%s] %s\n", j.clock().Format(TIMESTAMP_FORMAT), fmt.Sprintf(msg, args...))
}

func (j *Journal) Error(err error) {
	j.Printf("Error: %s", err)
}
