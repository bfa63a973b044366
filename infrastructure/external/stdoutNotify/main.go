package stdoutNotify

import (
	"fmt"

	"github.com/t-kuni/wgslbindgen/domain/external/buildNotify"
)

// StdoutNotifier prints change-tracking lines an outer build system can pick
// up to re-trigger generation.
type StdoutNotifier struct{}

func NewStdoutNotifier() buildNotify.Notifier {
	return &StdoutNotifier{}
}

func (n *StdoutNotifier) NotifyChangedFile(path string) {
	fmt.Printf("wgslbindgen: rerun-if-changed: %s\n", path)
}
