package app

import (
	"fmt"
	"io"

	"github.com/glotta-io/glotta/internal/config"
)

// RunSetKey stores the auth key in the user key file. The key value is
// never echoed back or logged.
func RunSetKey(out io.Writer, authKey string) error {
	path, err := config.DefaultKeyFilePath()
	if err != nil {
		return err
	}
	if err := config.SaveAuthKey(path, authKey); err != nil {
		return err
	}
	fmt.Fprintf(out, "auth key saved to %s\n", path)
	return nil
}
