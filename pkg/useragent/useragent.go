package useragent

import (
	"fmt"
	"runtime"

	"github.com/docker/gabeacon/pkg/version"
)

var Header = fmt.Sprintf("gabeacon/%s (%s; %s)", version.Version, runtime.GOOS, runtime.GOARCH)
