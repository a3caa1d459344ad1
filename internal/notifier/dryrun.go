package notifier

import (
	"fmt"
	"io"

	"github.com/mbruckner/tourwatch/internal/tour"
)

// DryRunNotifier prints what would be announced without posting anywhere.
type DryRunNotifier struct {
	out io.Writer
}

// NewDryRunNotifier creates a dry-run notifier writing to out.
func NewDryRunNotifier(out io.Writer) *DryRunNotifier {
	return &DryRunNotifier{out: out}
}

// Notify prints the messages that would be posted.
func (n *DryRunNotifier) Notify(added []tour.Tour) error {
	for i, t := range added {
		fmt.Fprintf(n.out, "--- Announcement %d/%d ---\n", i+1, len(added))
		fmt.Fprintln(n.out, formatMessage(t))
		fmt.Fprintln(n.out)
	}
	return nil
}
