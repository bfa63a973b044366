//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package buildNotify

// Notifier receives the set of files the build depends on so an outer build
// system can re-trigger generation when any of them changes.
type Notifier interface {
	NotifyChangedFile(path string)
}
