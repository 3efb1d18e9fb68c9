//go:build !windows

package credentials

// DefaultSources returns the machine-wide credentials file followed by the
// per-user one.
func DefaultSources() []Source {
	return []Source{MachineFileSource(), UserFileSource()}
}
