package paths

import (
	"os"
	"path/filepath"
)

// GetConfigDir returns the user's config directory for gabeacon.
//
// If the home directory cannot be determined, it falls back to a directory
// under the system temporary directory.
func GetConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Clean(filepath.Join(os.TempDir(), ".gabeacon-config"))
	}
	return filepath.Clean(filepath.Join(homeDir, ".config", "gabeacon"))
}
